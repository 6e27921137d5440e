package ledger

import (
	"fmt"
	"sort"
)

// CategoryState holds one category's completion set, user-created habit
// definitions and per-habit progress counters.
//
// Invariant: for any habit with a counter entry, the habit id is in Completed
// iff Counts[id] >= the habit's goal frequency. Completion of counter habits
// is always re-derived from the counter, never set independently.
type CategoryState struct {
	Completed map[string]bool `json:"completed"`
	Custom    []Habit         `json:"custom"`
	Counts    map[string]int  `json:"counts"`
}

func newCategoryState() CategoryState {
	return CategoryState{
		Completed: make(map[string]bool),
		Custom:    []Habit{},
		Counts:    make(map[string]int),
	}
}

// normalize backfills nil maps after JSON decoding of stored snapshots.
func (s *CategoryState) normalize() {
	if s.Completed == nil {
		s.Completed = make(map[string]bool)
	}
	if s.Counts == nil {
		s.Counts = make(map[string]int)
	}
	if s.Custom == nil {
		s.Custom = []Habit{}
	}
}

// Ledger tracks a single user's habit state across the three categories.
// It is owned by one session; callers are responsible for serializing access.
type Ledger struct {
	Daily   CategoryState `json:"daily"`
	Weekly  CategoryState `json:"weekly"`
	Monthly CategoryState `json:"monthly"`
}

func New() *Ledger {
	return &Ledger{
		Daily:   newCategoryState(),
		Weekly:  newCategoryState(),
		Monthly: newCategoryState(),
	}
}

// Normalize repairs nil maps in all categories (after decoding a snapshot).
func (l *Ledger) Normalize() {
	l.Daily.normalize()
	l.Weekly.normalize()
	l.Monthly.normalize()
}

// State returns the mutable state for cat. An invalid category is a
// programmer error, not a runtime condition: it panics.
func (l *Ledger) State(cat Category) *CategoryState {
	switch cat {
	case CategoryDaily:
		return &l.Daily
	case CategoryWeekly:
		return &l.Weekly
	case CategoryMonthly:
		return &l.Monthly
	default:
		panic(fmt.Sprintf("ledger: invalid category %q", cat))
	}
}

// habit resolves a habit id within a category (custom first, then built-ins).
func (s *CategoryState) habit(id string) (Habit, bool) {
	for _, h := range s.Custom {
		if h.ID == id {
			return h, true
		}
	}
	return defaultHabit(id)
}

func (s *CategoryState) goalFrequency(id string) int {
	if h, ok := s.habit(id); ok && h.GoalFrequency > 0 {
		return h.GoalFrequency
	}
	return 1
}

// syncCompletion re-derives completion for a counter habit. Must run as a
// side effect of every counter mutation so completion flips exactly at the
// goal-frequency crossing.
func (s *CategoryState) syncCompletion(id string) {
	if s.Counts[id] >= s.goalFrequency(id) {
		s.Completed[id] = true
	} else {
		delete(s.Completed, id)
	}
}

// Toggle flips completion of a habit. Unknown habit ids are a no-op. For a
// habit with a progress counter the counter is snapped to the goal frequency
// (or zero) so the counter/completion invariant keeps holding.
func (l *Ledger) Toggle(cat Category, habitID string) {
	s := l.State(cat)
	if _, ok := s.habit(habitID); !ok {
		return
	}
	if s.Completed[habitID] {
		delete(s.Completed, habitID)
		if _, tracked := s.Counts[habitID]; tracked {
			s.Counts[habitID] = 0
		}
	} else {
		s.Completed[habitID] = true
		if _, tracked := s.Counts[habitID]; tracked {
			s.Counts[habitID] = s.goalFrequency(habitID)
		}
	}
}

// Increment raises a habit's progress counter by one and re-derives completion.
func (l *Ledger) Increment(cat Category, habitID string) {
	s := l.State(cat)
	if _, ok := s.habit(habitID); !ok {
		return
	}
	s.Counts[habitID]++
	s.syncCompletion(habitID)
}

// Decrement lowers a habit's progress counter by one, floored at zero, and
// re-derives completion.
func (l *Ledger) Decrement(cat Category, habitID string) {
	s := l.State(cat)
	if _, ok := s.habit(habitID); !ok {
		return
	}
	if s.Counts[habitID] > 0 {
		s.Counts[habitID]--
	}
	s.syncCompletion(habitID)
}

// AddCustom appends a user-created habit. A non-positive goal frequency is
// coerced to 1.
func (l *Ledger) AddCustom(cat Category, h Habit) {
	s := l.State(cat)
	if h.GoalFrequency < 1 {
		h.GoalFrequency = 1
	}
	s.Custom = append(s.Custom, h)
}

// HabitUpdate is a partial edit of a custom habit; nil fields are unchanged.
type HabitUpdate struct {
	Label         *string
	Emoji         *string
	GoalFrequency *int
}

// EditCustom merges upd into an existing custom habit. Unknown ids are a
// no-op. Changing the goal frequency re-derives completion if the habit has
// a counter.
func (l *Ledger) EditCustom(cat Category, habitID string, upd HabitUpdate) {
	s := l.State(cat)
	for i := range s.Custom {
		if s.Custom[i].ID != habitID {
			continue
		}
		if upd.Label != nil {
			s.Custom[i].Label = *upd.Label
		}
		if upd.Emoji != nil {
			s.Custom[i].Emoji = *upd.Emoji
		}
		if upd.GoalFrequency != nil {
			gf := *upd.GoalFrequency
			if gf < 1 {
				gf = 1
			}
			s.Custom[i].GoalFrequency = gf
			if _, tracked := s.Counts[habitID]; tracked {
				s.syncCompletion(habitID)
			}
		}
		return
	}
}

// DeleteCustom removes a custom habit along with its completion and counter
// entries, so no dangling completed id survives the definition.
func (l *Ledger) DeleteCustom(cat Category, habitID string) {
	s := l.State(cat)
	for i := range s.Custom {
		if s.Custom[i].ID == habitID {
			s.Custom = append(s.Custom[:i], s.Custom[i+1:]...)
			delete(s.Completed, habitID)
			delete(s.Counts, habitID)
			return
		}
	}
}

// CompletedCount returns the size of one category's completion set.
func (l *Ledger) CompletedCount(cat Category) int {
	return len(l.State(cat).Completed)
}

// CompletedLabels resolves one category's completed habit ids to their display
// labels, sorted for stable output. Ids whose definition was deleted fall back
// to the raw id.
func (l *Ledger) CompletedLabels(cat Category) []string {
	s := l.State(cat)
	ids := make([]string, 0, len(s.Completed))
	for id := range s.Completed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		if h, ok := s.habit(id); ok {
			labels = append(labels, h.Label)
		} else {
			labels = append(labels, id)
		}
	}
	return labels
}

// TotalPoints is the sum of the three completion set sizes (one point per
// completed habit). Always recomputed, never tracked incrementally.
func (l *Ledger) TotalPoints() int {
	return len(l.Daily.Completed) + len(l.Weekly.Completed) + len(l.Monthly.Completed)
}

// ResetDaily clears the daily category's completion set and counters while
// leaving custom definitions and the other categories untouched.
func (l *Ledger) ResetDaily() {
	l.Daily.Completed = make(map[string]bool)
	l.Daily.Counts = make(map[string]int)
}
