package api

import (
	"math/rand"
	"net/http"
	"sync"
	"time"

	"habitbloom/internal/companion"
	"habitbloom/internal/ledger"
	"habitbloom/internal/profile"

	"github.com/gin-gonic/gin"
)

type MoodRequest struct {
	Mood string `json:"mood"`
}

// POST /mood records one entry per calendar day; later entries overwrite.
func MoodHandler(mgr *profile.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoodRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}
		if !profile.ValidMoods[req.Mood] {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Mood must be happy, mid, sad or mad"}})
			return
		}
		userId, _ := c.Get("userId")
		day := mgr.Today()
		var body gin.H
		err := mgr.With(userId.(uint), func(sess *profile.Session) error {
			sess.MoodEntries[day] = req.Mood
			body = gin.H{"date": day, "mood": req.Mood, "moodEntries": sess.MoodEntries}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to record mood"}})
			return
		}
		c.JSON(http.StatusOK, body)
	}
}

var (
	encourageMu  sync.Mutex
	encourageRng = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// GET /encouragement serves a playful one-liner keyed to today's completed count.
func EncouragementHandler(mgr *profile.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, _ := c.Get("userId")
		var count int
		mgr.View(userId.(uint), func(sess *profile.Session) {
			count = sess.Ledger.CompletedCount(ledger.CategoryDaily)
		})
		encourageMu.Lock()
		msg := companion.GirlMath(count, encourageRng)
		encourageMu.Unlock()
		c.JSON(http.StatusOK, gin.H{"message": msg, "completedToday": count})
	}
}
