package api

import (
	"net/http"
	"strings"
	"time"

	"habitbloom/internal/auth"
	"habitbloom/internal/config"
	"habitbloom/internal/db"
	"habitbloom/internal/profile"
	"habitbloom/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type LoginResponse struct {
	Token  string `json:"token"`
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
}

func LoginHandler(cfg *config.Config, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		// If no users exist, indicate need for setup
		var count int64
		if err := db.DB.Model(&user.User{}).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "DB error"}})
			return
		}
		if count == 0 {
			c.JSON(http.StatusForbidden, gin.H{"error": gin.H{"message": "Initial setup required", "need_setup": true}})
			return
		}
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}
		var u user.User
		email := strings.ToLower(strings.TrimSpace(req.Email))
		if err := db.DB.Where("email = ?", email).First(&u).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Invalid email or password"}})
			return
		}
		if err := user.CheckPassword(u.PasswordHash, req.Password); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Invalid email or password"}})
			return
		}
		token, err := auth.GenerateJWT(cfg.Server.JWTSecret, u.ID, u.Email, 7*24*time.Hour)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to generate token"}})
			return
		}
		_ = auth.SetSession(rdb, u.ID, token, 7*24*time.Hour)
		c.JSON(http.StatusOK, LoginResponse{
			Token:  token,
			UserID: u.ID,
			Email:  u.Email,
		})
	}
}

func LogoutHandler(rdb *redis.Client, mgr *profile.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, exists := c.Get("userId")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Not authenticated"}})
			return
		}
		_ = auth.DeleteSession(rdb, userId.(uint))
		mgr.Drop(userId.(uint))
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

func MeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, _ := c.Get("userId")
		var u user.User
		if err := db.DB.First(&u, userId.(uint)).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "User not found"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"id":        u.ID,
			"email":     u.Email,
			"createdAt": u.CreatedAt,
		})
	}
}

// DeleteMeHandler removes the account, its wellness profile and its session.
func DeleteMeHandler(rdb *redis.Client, mgr *profile.Manager, store *profile.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, _ := c.Get("userId")
		uid := userId.(uint)
		if err := store.Delete(uid); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to delete profile"}})
			return
		}
		if err := db.DB.Delete(&user.User{}, uid).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to delete user"}})
			return
		}
		mgr.Drop(uid)
		_ = auth.DeleteSession(rdb, uid)
		c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
	}
}
