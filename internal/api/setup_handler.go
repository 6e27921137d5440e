package api

import (
	"net/http"
	"strings"

	"habitbloom/internal/db"
	"habitbloom/internal/user"

	"github.com/gin-gonic/gin"
)

type SetupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SetupHandler creates the first account; it refuses once any user exists.
func SetupHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var count int64
		if err := db.DB.Model(&user.User{}).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "DB error"}})
			return
		}
		if count != 0 {
			c.JSON(http.StatusForbidden, gin.H{"error": gin.H{"message": "Setup not allowed; users already exist"}})
			return
		}
		var req SetupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}
		if req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Email and password required"}})
			return
		}
		pwHash, err := user.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Password hash failed"}})
			return
		}
		u := user.User{
			Email:        strings.ToLower(strings.TrimSpace(req.Email)),
			PasswordHash: pwHash,
		}
		if err := db.DB.Create(&u).Error; err != nil {
			if strings.Contains(err.Error(), "unique") {
				c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Email already exists"}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "DB error"}})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"id":             u.ID,
			"email":          u.Email,
			"createdAt":      u.CreatedAt,
			"setup_complete": true,
		})
	}
}
