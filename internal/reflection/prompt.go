package reflection

import (
	"fmt"
	"strings"

	"habitbloom/internal/companion"
)

// ActivityLevel buckets a day's completed habit count.
type ActivityLevel string

const (
	ActivityLow    ActivityLevel = "low"
	ActivityMedium ActivityLevel = "medium"
	ActivityHigh   ActivityLevel = "high"
)

func ActivityLevelFor(completedCount int) ActivityLevel {
	switch {
	case completedCount >= 5:
		return ActivityHigh
	case completedCount >= 2:
		return ActivityMedium
	default:
		return ActivityLow
	}
}

// Request carries the state snapshot a reflection is generated from.
// GoalsCompleted is a legacy field from earlier profile shapes; it may be
// empty and only enriches the prompt when present.
type Request struct {
	CompletedHabits []string        `json:"completedHabits"`
	ActivityLevel   ActivityLevel   `json:"activityLevel"`
	GoalsCompleted  []string        `json:"goalsCompleted"`
	CompanionType   companion.Type  `json:"companionType"`
	CompanionStage  companion.Stage `json:"companionStage"`
}

// BuildPrompt renders the generation prompt. The output contract (one short
// sentence, terminal punctuation, no guilt or streak talk) is enforced again
// by validation on the way back.
func BuildPrompt(req Request) string {
	habitCount := len(req.CompletedHabits)
	habitList := "none yet"
	if habitCount > 0 {
		habitList = strings.Join(req.CompletedHabits, ", ")
	}
	goalsDone := "none yet"
	if len(req.GoalsCompleted) > 0 {
		goalsDone = strings.Join(req.GoalsCompleted, ", ")
	}

	stageNote := "Their companion is still growing. Gently encourage them without pressure."
	if req.CompanionStage == companion.StageAdult {
		stageNote = "Their companion is fully grown. Acknowledge this milestone while emphasizing that growth and self-care are ongoing, lifelong journeys. Mention that their companion continues to thrive because of their care."
	}

	showingUpNote := "Celebrates their effort without making it conditional"
	if habitCount == 0 {
		showingUpNote = "Acknowledges that showing up is enough, even without completing habits"
	}

	return fmt.Sprintf(`You are a warm, gentle, trauma-informed wellness companion in an app called HabitBloom.

The user has a %s companion at the "%s" growth stage.
Today they completed %d self-care habit(s): %s.
Their overall activity level today is: %s.
Goals completed so far: %s.

%s

Write ONE complete sentence of at most 10 words, ending in a period, exclamation mark or question mark, that is:
- Warm, kind, and non-judgmental
- Normalizes inconsistency (it's okay to have off days)
- Does NOT include medical advice, streak counts, or guilt
- Does NOT use phrases like "I'm proud of you" (avoid parasocial dynamics)
- %s

Respond with ONLY the reflection text, no quotes or labels.`,
		req.CompanionType, req.CompanionStage, habitCount, habitList,
		req.ActivityLevel, goalsDone, stageNote, showingUpNote)
}

// IsCompleteSentence reports whether trimmed text ends in terminal
// punctuation. Anything else (empty, truncated, missing) is treated as a
// generation failure.
func IsCompleteSentence(text string) bool {
	t := strings.TrimSpace(text)
	if t == "" {
		return false
	}
	switch t[len(t)-1] {
	case '.', '!', '?':
		return true
	default:
		return false
	}
}
