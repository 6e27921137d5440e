package api

import (
	"net/http"
	"strings"

	"habitbloom/internal/ledger"
	"habitbloom/internal/profile"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HabitActionRequest struct {
	HabitID string `json:"habitId"`
}

// habitMutation runs op against the user's ledger for the :category URL
// segment, feeds the new completion count to the milestone detector and
// responds with the updated state.
func habitMutation(mgr *profile.Manager, op func(*ledger.Ledger, ledger.Category, string)) gin.HandlerFunc {
	return func(c *gin.Context) {
		cat, err := ledger.ParseCategory(c.Param("category"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Category must be daily, weekly or monthly"}})
			return
		}
		var req HabitActionRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.HabitID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "habitId required"}})
			return
		}
		userId, _ := c.Get("userId")
		var body gin.H
		err = mgr.With(userId.(uint), func(sess *profile.Session) error {
			op(sess.Ledger, cat, req.HabitID)
			sess.Detector.Observe(cat, sess.Ledger.CompletedCount(cat))
			body = stateJSON(sess)
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to update habits"}})
			return
		}
		c.JSON(http.StatusOK, body)
	}
}

// POST /habits/:category/toggle
func ToggleHabitHandler(mgr *profile.Manager) gin.HandlerFunc {
	return habitMutation(mgr, func(l *ledger.Ledger, cat ledger.Category, id string) {
		l.Toggle(cat, id)
	})
}

// POST /habits/:category/increment
func IncrementHabitHandler(mgr *profile.Manager) gin.HandlerFunc {
	return habitMutation(mgr, func(l *ledger.Ledger, cat ledger.Category, id string) {
		l.Increment(cat, id)
	})
}

// POST /habits/:category/decrement
func DecrementHabitHandler(mgr *profile.Manager) gin.HandlerFunc {
	return habitMutation(mgr, func(l *ledger.Ledger, cat ledger.Category, id string) {
		l.Decrement(cat, id)
	})
}

type CustomHabitRequest struct {
	Label         string `json:"label"`
	Emoji         string `json:"emoji"`
	GoalFrequency int    `json:"goalFrequency"`
}

// POST /habits/:category/custom
func CreateCustomHabitHandler(mgr *profile.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cat, err := ledger.ParseCategory(c.Param("category"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Category must be daily, weekly or monthly"}})
			return
		}
		var req CustomHabitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}
		if strings.TrimSpace(req.Label) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Label required"}})
			return
		}
		h := ledger.Habit{
			ID:            uuid.NewString(),
			Label:         strings.TrimSpace(req.Label),
			Emoji:         req.Emoji,
			GoalFrequency: req.GoalFrequency,
		}
		userId, _ := c.Get("userId")
		var body gin.H
		err = mgr.With(userId.(uint), func(sess *profile.Session) error {
			sess.Ledger.AddCustom(cat, h)
			body = stateJSON(sess)
			body["habitId"] = h.ID
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to create habit"}})
			return
		}
		c.JSON(http.StatusCreated, body)
	}
}

type CustomHabitUpdateRequest struct {
	Label         *string `json:"label"`
	Emoji         *string `json:"emoji"`
	GoalFrequency *int    `json:"goalFrequency"`
}

// PUT /habits/:category/custom/:id
func UpdateCustomHabitHandler(mgr *profile.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cat, err := ledger.ParseCategory(c.Param("category"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Category must be daily, weekly or monthly"}})
			return
		}
		var req CustomHabitUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}
		userId, _ := c.Get("userId")
		var body gin.H
		err = mgr.With(userId.(uint), func(sess *profile.Session) error {
			sess.Ledger.EditCustom(cat, c.Param("id"), ledger.HabitUpdate{
				Label:         req.Label,
				Emoji:         req.Emoji,
				GoalFrequency: req.GoalFrequency,
			})
			sess.Detector.Observe(cat, sess.Ledger.CompletedCount(cat))
			body = stateJSON(sess)
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to update habit"}})
			return
		}
		c.JSON(http.StatusOK, body)
	}
}

// DELETE /habits/:category/custom/:id
func DeleteCustomHabitHandler(mgr *profile.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cat, err := ledger.ParseCategory(c.Param("category"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Category must be daily, weekly or monthly"}})
			return
		}
		userId, _ := c.Get("userId")
		var body gin.H
		err = mgr.With(userId.(uint), func(sess *profile.Session) error {
			sess.Ledger.DeleteCustom(cat, c.Param("id"))
			sess.Detector.Observe(cat, sess.Ledger.CompletedCount(cat))
			body = stateJSON(sess)
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to delete habit"}})
			return
		}
		c.JSON(http.StatusOK, body)
	}
}

// POST /habits/reward/dismiss
func DismissRewardHandler(mgr *profile.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, _ := c.Get("userId")
		mgr.View(userId.(uint), func(sess *profile.Session) {
			sess.Detector.Dismiss()
		})
		c.JSON(http.StatusOK, gin.H{"message": "Reward dismissed"})
	}
}
