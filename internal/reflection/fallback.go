package reflection

import (
	"math/rand"

	"habitbloom/internal/companion"
)

// FallbackMessages are served whenever generation is unavailable, slow,
// rate-limited or returns something unusable.
var FallbackMessages = []string{
	"You're showing up in your own way today — that counts!",
	"Small acts of care are meaningful — keep going.",
	"Your companion is grateful for your presence, however it looks today.",
	"There's no wrong way to take care of yourself. You're doing it.",
	"Every gentle moment you give yourself matters more than you know.",
	"Progress isn't always visible, but it's always real.",
	"You chose yourself today. That takes courage.",
	"Rest is productive. Stillness is growth. You are enough.",
}

// PostAdultFallbacks extend the pool once the companion reached the terminal
// stage.
var PostAdultFallbacks = []string{
	"Your companion is fully grown, but your habits continue to nourish your wellbeing.",
	"Even though your companion is mature, your care continues to make a difference.",
	"A fully bloomed companion still needs your light — and so do you.",
	"Growth doesn't stop at 'done.' You're proof that care is continuous.",
	"Your companion sparkles a little more with every kind thing you do for yourself.",
}

// errorFallback is the fixed message for unexpected internal failures.
const errorFallback = "You're showing up in your own way today — that counts!"

// fallbackPool returns the messages eligible for the given stage.
func fallbackPool(stage companion.Stage) []string {
	if stage != companion.StageAdult {
		return FallbackMessages
	}
	pool := make([]string, 0, len(FallbackMessages)+len(PostAdultFallbacks))
	pool = append(pool, FallbackMessages...)
	pool = append(pool, PostAdultFallbacks...)
	return pool
}

func pickFallback(stage companion.Stage, r *rand.Rand) string {
	pool := fallbackPool(stage)
	return pool[r.Intn(len(pool))]
}
