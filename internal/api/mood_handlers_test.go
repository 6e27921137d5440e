package api

import (
	"net/http"
	"testing"
	"time"

	"habitbloom/internal/ledger"
	"habitbloom/internal/profile"

	"github.com/gin-gonic/gin"
)

func TestMoodHandler_RejectsUnknownMood(t *testing.T) {
	mgr, _ := newProfileEnv(t, time.Now())
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(asUser(1))
	r.POST("/mood", MoodHandler(mgr))

	w := postJSON(r, "POST", "/mood", MoodRequest{Mood: "ecstatic"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown mood, got %d: %s", w.Code, w.Body.String())
	}
}

func TestMoodHandler_RecordsAndOverwrites(t *testing.T) {
	day := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	mgr, store := newProfileEnv(t, day)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(asUser(2))
	r.POST("/mood", MoodHandler(mgr))

	w := postJSON(r, "POST", "/mood", MoodRequest{Mood: "sad"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	// A second entry on the same day replaces the first.
	w = postJSON(r, "POST", "/mood", MoodRequest{Mood: "happy"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	snap, err := store.Load(2)
	if err != nil || snap == nil {
		t.Fatalf("load: %v", err)
	}
	if snap.MoodEntries["2025-06-01"] != "happy" {
		t.Errorf("expected overwritten mood, got %+v", snap.MoodEntries)
	}
	if len(snap.MoodEntries) != 1 {
		t.Errorf("expected one entry for the day, got %+v", snap.MoodEntries)
	}
}

func TestEncouragementHandler_EmptyWithoutHabits(t *testing.T) {
	mgr, _ := newProfileEnv(t, time.Now())
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(asUser(3))
	r.GET("/encouragement", EncouragementHandler(mgr))

	w := postJSON(r, "GET", "/encouragement", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	if !contains(w.Body.String(), `"message":""`) {
		t.Errorf("expected empty message with no completed habits, got: %s", w.Body.String())
	}
}

func TestEncouragementHandler_WithHabits(t *testing.T) {
	mgr, _ := newProfileEnv(t, time.Now())
	if err := mgr.With(4, func(sess *profile.Session) error {
		sess.Ledger.Toggle(ledger.CategoryDaily, "water")
		sess.Ledger.Toggle(ledger.CategoryDaily, "walk")
		return nil
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(asUser(4))
	r.GET("/encouragement", EncouragementHandler(mgr))

	w := postJSON(r, "GET", "/encouragement", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	if !contains(w.Body.String(), `"completedToday":2`) {
		t.Errorf("expected completedToday 2, got: %s", w.Body.String())
	}
	if contains(w.Body.String(), `"message":""`) {
		t.Errorf("expected a non-empty message, got: %s", w.Body.String())
	}
}
