package milestone

import "habitbloom/internal/ledger"

// DefaultTables returns the static milestone configuration. Thresholds are
// exact completion counts per category.
func DefaultTables() map[ledger.Category]Table {
	return map[ledger.Category]Table{
		ledger.CategoryDaily: {
			5:  {Emoji: "👏", Message: "Way to go! Pat yourself on the back!"},
			10: {Emoji: "💃", Message: "10 goals, wow! Dance it out!"},
			15: {Emoji: "🎨", Message: "Congrats! Set aside 15 minutes for your favorite hobby!"},
		},
		ledger.CategoryWeekly: {
			1:  {Emoji: "☕", Message: "Good job girl! Take a 15 min break!"},
			3:  {Emoji: "🧁", Message: "Don't forget to fuel your brain, grab a snack or a sweet treat!"},
			5:  {Emoji: "🚶", Message: "Change your environment, take a walk or see a friend!"},
			10: {Emoji: "💅", Message: "Check something off your wish list, you earned it!"},
		},
		ledger.CategoryMonthly: {
			1:  {Emoji: "🍫", Message: "You crushed your first monthly goal! Treat yourself to something small and sweet!"},
			3:  {Emoji: "🎉", Message: "You did it! Celebrate with your favorite activity!"},
			10: {Emoji: "🏆", Message: "Ten monthly goals down. You're unstoppable!"},
			15: {Emoji: "🌟", Message: "Fifteen! Plan a proper evening off, you earned it!"},
			20: {Emoji: "🎊", Message: "Twenty monthly goals. Throw yourself a little party!"},
		},
	}
}
