package companion

import (
	"math"
	"math/rand"
	"strings"
	"testing"
)

func TestStageFor_Boundaries(t *testing.T) {
	cases := []struct {
		points int
		want   Stage
	}{
		{0, StageBaby},
		{9, StageBaby},
		{10, StageTeen},
		{24, StageTeen},
		{25, StageYoung},
		{49, StageYoung},
		{50, StageAdult},
		{120, StageAdult},
	}
	for _, c := range cases {
		if got := StageFor(c.points); got != c.want {
			t.Errorf("StageFor(%d) = %s, want %s", c.points, got, c.want)
		}
	}
}

func TestPostAdultPoints(t *testing.T) {
	if got := PostAdultPoints(62); got != 12 {
		t.Errorf("PostAdultPoints(62) = %d, want 12", got)
	}
	if got := PostAdultPoints(49); got != 0 {
		t.Errorf("PostAdultPoints(49) = %d, want 0", got)
	}
	if got := PostAdultPoints(50); got != 0 {
		t.Errorf("PostAdultPoints(50) = %d, want 0", got)
	}
}

func TestStageProgress(t *testing.T) {
	cases := []struct {
		points int
		want   float64
	}{
		{0, 0},
		{5, 0.5},
		{10, 0},        // fresh teen
		{17, 7.0 / 15}, // teen midway
		{25, 0},        // fresh young
		{40, 0.6},
		{50, 1}, // adult saturates
		{99, 1},
	}
	for _, c := range cases {
		if got := StageProgress(c.points); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("StageProgress(%d) = %v, want %v", c.points, got, c.want)
		}
	}
}

func TestDerive_IsPureOverPoints(t *testing.T) {
	s := Derive(TypePlant, "Fern", 57)
	if s.Stage != StageAdult || s.Progress != 1 || s.PostAdultPoints != 7 {
		t.Errorf("unexpected derived state: %+v", s)
	}
	if s.Type != TypePlant || s.Name != "Fern" {
		t.Errorf("type/name not carried through: %+v", s)
	}
}

func TestGirlMath_ZeroHabitsIsEmpty(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	if msg := GirlMath(0, r); msg != "" {
		t.Errorf("expected empty message for 0 habits, got %q", msg)
	}
}

func TestGirlMath_DrawsFromPool(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	pool := girlMathPool(3)
	for i := 0; i < 20; i++ {
		msg := GirlMath(3, r)
		found := false
		for _, p := range pool {
			if msg == p {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("message %q not in pool", msg)
		}
	}
}

func TestGirlMath_SingularPlural(t *testing.T) {
	for _, msg := range girlMathPool(1) {
		if strings.Contains(msg, "1 habits done.") || strings.Contains(msg, "1 times today") {
			t.Errorf("singular count must not pluralize: %q", msg)
		}
	}
}
