package ledger

// Habit is a trackable self-care action. GoalFrequency is how many times per
// period the habit must be logged before it counts as complete (minimum 1).
type Habit struct {
	ID            string `json:"id"`
	Label         string `json:"label"`
	Emoji         string `json:"emoji"`
	GoalFrequency int    `json:"goalFrequency"`
}

// DefaultHabits are the built-in starter habits. They are immutable: users can
// complete them but not edit or delete them.
var DefaultHabits = []Habit{
	{ID: "water", Label: "Drink a glass of water", Emoji: "💧", GoalFrequency: 1},
	{ID: "walk", Label: "Take a short walk", Emoji: "🚶", GoalFrequency: 1},
	{ID: "journal", Label: "Write in your journal", Emoji: "📝", GoalFrequency: 1},
	{ID: "meditate", Label: "Meditate or breathe deeply", Emoji: "🧘", GoalFrequency: 1},
	{ID: "cook", Label: "Cook or prep a meal", Emoji: "🍳", GoalFrequency: 1},
	{ID: "rest", Label: "Take a mindful rest", Emoji: "😌", GoalFrequency: 1},
	{ID: "stretch", Label: "Gentle stretching", Emoji: "🌊", GoalFrequency: 1},
	{ID: "connect", Label: "Reach out to someone", Emoji: "💌", GoalFrequency: 1},
}

func defaultHabit(id string) (Habit, bool) {
	for _, h := range DefaultHabits {
		if h.ID == id {
			return h, true
		}
	}
	return Habit{}, false
}
