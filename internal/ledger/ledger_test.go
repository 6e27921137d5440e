package ledger

import "testing"

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

func TestToggle_FlipTwiceIsNoop(t *testing.T) {
	l := New()
	l.Toggle(CategoryDaily, "water")
	if !l.Daily.Completed["water"] {
		t.Fatalf("expected water completed after toggle")
	}
	if l.TotalPoints() != 1 {
		t.Errorf("expected 1 point, got %d", l.TotalPoints())
	}
	l.Toggle(CategoryDaily, "water")
	if l.Daily.Completed["water"] {
		t.Errorf("expected water not completed after second toggle")
	}
	if l.TotalPoints() != 0 {
		t.Errorf("expected 0 points, got %d", l.TotalPoints())
	}
}

func TestToggle_UnknownHabitIsNoop(t *testing.T) {
	l := New()
	l.Toggle(CategoryDaily, "no-such-habit")
	if len(l.Daily.Completed) != 0 {
		t.Errorf("unknown habit must not enter the completed set: %v", l.Daily.Completed)
	}
}

func TestState_InvalidCategoryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for invalid category")
		}
	}()
	l := New()
	l.State(Category("yearly"))
}

func TestIncrement_CompletionFlipsAtGoal(t *testing.T) {
	l := New()
	l.AddCustom(CategoryWeekly, Habit{ID: "gym", Label: "Go to the gym", Emoji: "🏋️", GoalFrequency: 3})

	l.Increment(CategoryWeekly, "gym")
	l.Increment(CategoryWeekly, "gym")
	if l.Weekly.Completed["gym"] {
		t.Fatalf("gym must not be complete at 2/3")
	}
	l.Increment(CategoryWeekly, "gym")
	if !l.Weekly.Completed["gym"] {
		t.Fatalf("gym must be complete at 3/3")
	}
	// Completion must flip back synchronously when the counter drops below goal.
	l.Decrement(CategoryWeekly, "gym")
	if l.Weekly.Completed["gym"] {
		t.Errorf("gym must not be complete at 2/3 after decrement")
	}
}

func TestDecrement_FlooredAtZero(t *testing.T) {
	l := New()
	l.AddCustom(CategoryDaily, Habit{ID: "sleep", Label: "Sleep early", Emoji: "😴", GoalFrequency: 2})
	l.Decrement(CategoryDaily, "sleep")
	if got := l.Daily.Counts["sleep"]; got != 0 {
		t.Errorf("expected counter floored at 0, got %d", got)
	}
}

func TestCounterInvariant_HoldsAcrossSequences(t *testing.T) {
	l := New()
	l.AddCustom(CategoryMonthly, Habit{ID: "budget", Label: "Review budget", Emoji: "💰", GoalFrequency: 2})

	check := func(step int) {
		complete := l.Monthly.Counts["budget"] >= 2
		if l.Monthly.Completed["budget"] != complete {
			t.Fatalf("after op %d: completed=%v but count=%d", step, l.Monthly.Completed["budget"], l.Monthly.Counts["budget"])
		}
	}
	ops := []func(){
		func() { l.Increment(CategoryMonthly, "budget") },
		func() { l.Increment(CategoryMonthly, "budget") },
		func() { l.Decrement(CategoryMonthly, "budget") },
		func() { l.Decrement(CategoryMonthly, "budget") },
		func() { l.Decrement(CategoryMonthly, "budget") },
		func() { l.Increment(CategoryMonthly, "budget") },
		func() { l.Increment(CategoryMonthly, "budget") },
		func() { l.Increment(CategoryMonthly, "budget") },
	}
	for i, op := range ops {
		op()
		check(i)
	}
}

func TestToggle_CounterHabitSnapsCounter(t *testing.T) {
	l := New()
	l.AddCustom(CategoryDaily, Habit{ID: "hydrate", Label: "Hydrate", Emoji: "💧", GoalFrequency: 5})
	l.Increment(CategoryDaily, "hydrate")
	l.Increment(CategoryDaily, "hydrate")

	l.Toggle(CategoryDaily, "hydrate")
	if !l.Daily.Completed["hydrate"] || l.Daily.Counts["hydrate"] != 5 {
		t.Errorf("toggle-complete must snap counter to goal: completed=%v count=%d",
			l.Daily.Completed["hydrate"], l.Daily.Counts["hydrate"])
	}
	l.Toggle(CategoryDaily, "hydrate")
	if l.Daily.Completed["hydrate"] || l.Daily.Counts["hydrate"] != 0 {
		t.Errorf("toggle-uncomplete must reset counter: completed=%v count=%d",
			l.Daily.Completed["hydrate"], l.Daily.Counts["hydrate"])
	}
}

func TestAddCustom_CoercesGoalFrequency(t *testing.T) {
	l := New()
	l.AddCustom(CategoryDaily, Habit{ID: "a", Label: "A"})
	l.AddCustom(CategoryDaily, Habit{ID: "b", Label: "B", GoalFrequency: -3})
	for _, h := range l.Daily.Custom {
		if h.GoalFrequency != 1 {
			t.Errorf("habit %s: expected goal frequency 1, got %d", h.ID, h.GoalFrequency)
		}
	}
}

func TestEditCustom_PartialMergeAndResync(t *testing.T) {
	l := New()
	l.AddCustom(CategoryWeekly, Habit{ID: "run", Label: "Run", Emoji: "🏃", GoalFrequency: 4})
	l.Increment(CategoryWeekly, "run")
	l.Increment(CategoryWeekly, "run")
	if l.Weekly.Completed["run"] {
		t.Fatalf("run must not be complete at 2/4")
	}

	l.EditCustom(CategoryWeekly, "run", HabitUpdate{Label: strPtr("Go running"), GoalFrequency: intPtr(2)})
	h := l.Weekly.Custom[0]
	if h.Label != "Go running" || h.Emoji != "🏃" || h.GoalFrequency != 2 {
		t.Errorf("unexpected habit after edit: %+v", h)
	}
	// Lowering the goal below the current counter must complete the habit.
	if !l.Weekly.Completed["run"] {
		t.Errorf("run must be complete once goal frequency drops to 2")
	}

	l.EditCustom(CategoryWeekly, "run", HabitUpdate{GoalFrequency: intPtr(0)})
	if l.Weekly.Custom[0].GoalFrequency != 1 {
		t.Errorf("goal frequency must be coerced to >= 1, got %d", l.Weekly.Custom[0].GoalFrequency)
	}
}

func TestDeleteCustom_RemovesCompletionAndCounts(t *testing.T) {
	l := New()
	l.AddCustom(CategoryDaily, Habit{ID: "read", Label: "Read", Emoji: "📚", GoalFrequency: 1})
	l.Increment(CategoryDaily, "read")
	if !l.Daily.Completed["read"] {
		t.Fatalf("read must be complete at 1/1")
	}

	l.DeleteCustom(CategoryDaily, "read")
	if len(l.Daily.Custom) != 0 {
		t.Errorf("custom habit not removed")
	}
	if l.Daily.Completed["read"] {
		t.Errorf("dangling completed id after delete")
	}
	if _, ok := l.Daily.Counts["read"]; ok {
		t.Errorf("dangling counter after delete")
	}
	if l.TotalPoints() != 0 {
		t.Errorf("expected 0 points after delete, got %d", l.TotalPoints())
	}
}

func TestTotalPoints_SumsAllCategories(t *testing.T) {
	l := New()
	l.Toggle(CategoryDaily, "water")
	l.Toggle(CategoryDaily, "walk")
	l.Toggle(CategoryWeekly, "journal")
	l.AddCustom(CategoryMonthly, Habit{ID: "m1", Label: "M1", GoalFrequency: 1})
	l.Increment(CategoryMonthly, "m1")

	if l.TotalPoints() != 4 {
		t.Errorf("expected 4 total points, got %d", l.TotalPoints())
	}
	l.Toggle(CategoryDaily, "walk")
	if l.TotalPoints() != 3 {
		t.Errorf("expected 3 total points after untoggle, got %d", l.TotalPoints())
	}
}

func TestResetDaily_LeavesOtherCategories(t *testing.T) {
	l := New()
	l.Toggle(CategoryDaily, "water")
	l.AddCustom(CategoryDaily, Habit{ID: "c1", Label: "C1", GoalFrequency: 2})
	l.Increment(CategoryDaily, "c1")
	l.Toggle(CategoryWeekly, "walk")
	l.Toggle(CategoryMonthly, "rest")

	l.ResetDaily()
	if len(l.Daily.Completed) != 0 || len(l.Daily.Counts) != 0 {
		t.Errorf("daily state not cleared: %+v", l.Daily)
	}
	if len(l.Daily.Custom) != 1 {
		t.Errorf("daily reset must keep custom definitions")
	}
	if !l.Weekly.Completed["walk"] || !l.Monthly.Completed["rest"] {
		t.Errorf("daily reset must not touch weekly/monthly")
	}
}
