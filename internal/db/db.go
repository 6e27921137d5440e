package db

import (
	"log"

	"habitbloom/internal/config"
	"habitbloom/internal/profile"
	"habitbloom/internal/user"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) error {
	db, err := gorm.Open(postgres.Open(cfg.Postgres.DSN), &gorm.Config{})
	if err != nil {
		return err
	}

	// Auto-migrate account and profile models
	if err := db.AutoMigrate(&user.User{}, &profile.Profile{}); err != nil {
		return err
	}

	DB = db
	log.Printf("Database connected and migrated")
	return nil
}
