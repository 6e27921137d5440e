package api

import (
	"net/http"

	"habitbloom/internal/companion"
	"habitbloom/internal/profile"

	"github.com/gin-gonic/gin"
)

// stateJSON is the shared response body for profile reads and habit
// mutations: ledger summary, derived companion state and the active reward.
func stateJSON(sess *profile.Session) gin.H {
	total := sess.Ledger.TotalPoints()
	return gin.H{
		"totalPoints": total,
		"habits": gin.H{
			"daily":   sess.Ledger.Daily,
			"weekly":  sess.Ledger.Weekly,
			"monthly": sess.Ledger.Monthly,
		},
		"companion": companion.Derive(companion.Type(sess.CompanionType), sess.CompanionName, total),
		"theme":     sess.Theme,
		"reward":    sess.Detector.Active(),
	}
}

// GET /profile
func ProfileHandler(mgr *profile.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, _ := c.Get("userId")
		var body gin.H
		mgr.View(userId.(uint), func(sess *profile.Session) {
			body = stateJSON(sess)
			body["moodEntries"] = sess.MoodEntries
			body["lastDailyReset"] = sess.LastDailyReset
		})
		c.JSON(http.StatusOK, body)
	}
}

type CompanionRequest struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// PUT /profile/companion
func UpdateCompanionHandler(mgr *profile.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CompanionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}
		if req.Type != string(companion.TypePlant) && req.Type != string(companion.TypeAnimal) {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Companion type must be plant or animal"}})
			return
		}
		userId, _ := c.Get("userId")
		var body gin.H
		err := mgr.With(userId.(uint), func(sess *profile.Session) error {
			sess.CompanionType = req.Type
			sess.CompanionName = req.Name
			body = stateJSON(sess)
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to update companion"}})
			return
		}
		c.JSON(http.StatusOK, body)
	}
}

type ThemeRequest struct {
	Theme string `json:"theme"`
}

var validThemes = map[string]bool{
	"warm":   true,
	"pastel": true,
}

// PUT /profile/theme
func UpdateThemeHandler(mgr *profile.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ThemeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}
		if !validThemes[req.Theme] {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Unknown theme"}})
			return
		}
		userId, _ := c.Get("userId")
		var body gin.H
		err := mgr.With(userId.(uint), func(sess *profile.Session) error {
			sess.Theme = req.Theme
			body = stateJSON(sess)
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to update theme"}})
			return
		}
		c.JSON(http.StatusOK, body)
	}
}
