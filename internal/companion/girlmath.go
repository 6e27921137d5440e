package companion

import (
	"fmt"
	"math/rand"
)

// girlMathPool builds the daily encouragement messages for a given completed
// habit count. Some entries fold the count into playful arithmetic.
func girlMathPool(habitCount int) []string {
	plural := ""
	if habitCount > 1 {
		plural = "s"
	}
	return []string{
		fmt.Sprintf("%d habit%s done. That's real progress. 🌸", habitCount, plural),
		"Small steps still move you forward. ✨",
		"Consistency today builds strength tomorrow. 🌱",
		"Every habit is a vote for yourself. 🗳️",
		fmt.Sprintf("You chose yourself %d time%s today. 💖", habitCount, plural),
		fmt.Sprintf("%d small acts of care. That's everything. 🧘", habitCount),
		fmt.Sprintf("%d habits done = %d companion growth points. That's basically free serotonin 🧠✨", habitCount, habitCount*2),
		fmt.Sprintf("If each habit saves you $5 in future therapy, you just saved $%d today. Girl math says that's profit 💰", habitCount*5),
		fmt.Sprintf("%d small acts of care today × 365 days = %d moments of choosing yourself this year 🌸", habitCount, habitCount*365),
	}
}

// GirlMath picks one encouragement message for the day. Returns "" when no
// habits are completed yet. The random source is injected for testability.
func GirlMath(habitCount int, r *rand.Rand) string {
	if habitCount <= 0 {
		return ""
	}
	pool := girlMathPool(habitCount)
	return pool[r.Intn(len(pool))]
}
