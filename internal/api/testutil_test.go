package api

import (
	"strings"
	"testing"
	"time"

	"habitbloom/internal/db"
	"habitbloom/internal/profile"
	"habitbloom/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUserDB(t *testing.T) *gorm.DB {
	dbConn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := dbConn.AutoMigrate(
		&user.User{},
		&profile.Profile{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	db.DB = dbConn
	return dbConn
}

func resetTables(t *testing.T) {
	if err := db.DB.Exec("DELETE FROM users").Error; err != nil {
		t.Fatalf("failed to reset users table: %v", err)
	}
	if err := db.DB.Exec("DELETE FROM profiles").Error; err != nil {
		t.Fatalf("failed to reset profiles table: %v", err)
	}
}

func seedUser(t *testing.T, email string) user.User {
	hash, err := user.HashPassword("pw")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	u := user.User{Email: email, PasswordHash: hash, CreatedAt: time.Now()}
	if err := db.DB.Create(&u).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return u
}

func setupRedis() *redis.Client {
	// Dummy client; handler tests never rely on a real Redis (errors ignored).
	return redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 15})
}

// newProfileEnv builds a store + manager over the test DB with a fixed clock.
func newProfileEnv(t *testing.T, day time.Time) (*profile.Manager, *profile.Store) {
	setupUserDB(t)
	resetTables(t)
	store := profile.NewStore(db.DB)
	mgr := profile.NewManager(store, func() time.Time { return day })
	return mgr, store
}

// asUser injects an authenticated user into the request context, standing in
// for the auth middleware.
func asUser(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userId", id)
		c.Next()
	}
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
