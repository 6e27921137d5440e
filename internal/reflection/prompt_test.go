package reflection

import (
	"strings"
	"testing"

	"habitbloom/internal/companion"
)

func TestBuildPrompt_EmbedsState(t *testing.T) {
	p := BuildPrompt(Request{
		CompletedHabits: []string{"water", "walk"},
		ActivityLevel:   ActivityMedium,
		CompanionType:   companion.TypeAnimal,
		CompanionStage:  companion.StageTeen,
	})
	for _, want := range []string{
		"animal companion",
		`"teen" growth stage`,
		"completed 2 self-care habit(s): water, walk",
		"activity level today is: medium",
		"still growing",
		"at most 10 words",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Contains(p, "fully grown") {
		t.Errorf("non-adult prompt must not use milestone framing")
	}
}

func TestBuildPrompt_AdultFraming(t *testing.T) {
	p := BuildPrompt(Request{
		CompletedHabits: []string{"rest"},
		ActivityLevel:   ActivityLow,
		CompanionType:   companion.TypePlant,
		CompanionStage:  companion.StageAdult,
	})
	if !strings.Contains(p, "fully grown") {
		t.Errorf("adult prompt must acknowledge the milestone")
	}
}

func TestBuildPrompt_EmptyStateAndLegacyGoals(t *testing.T) {
	p := BuildPrompt(Request{
		ActivityLevel:  ActivityLow,
		CompanionType:  companion.TypePlant,
		CompanionStage: companion.StageBaby,
	})
	if !strings.Contains(p, "habit(s): none yet") || !strings.Contains(p, "Goals completed so far: none yet") {
		t.Errorf("empty state not rendered: %s", p)
	}
	if !strings.Contains(p, "showing up is enough") {
		t.Errorf("zero-habit prompt must acknowledge showing up")
	}

	p = BuildPrompt(Request{
		ActivityLevel:  ActivityLow,
		GoalsCompleted: []string{"stretch goal"},
		CompanionType:  companion.TypePlant,
		CompanionStage: companion.StageBaby,
	})
	if !strings.Contains(p, "Goals completed so far: stretch goal") {
		t.Errorf("legacy goals not rendered when present")
	}
}

func TestIsCompleteSentence(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"You showed up today.", true},
		{"  Keep blooming!  ", true},
		{"Did you rest?", true},
		{"Great job", false},
		{"", false},
		{"   ", false},
		{"trailing comma,", false},
	}
	for _, c := range cases {
		if got := IsCompleteSentence(c.text); got != c.want {
			t.Errorf("IsCompleteSentence(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}
