package companion

// Stage is the companion's growth stage, derived from total points.
type Stage string

const (
	StageBaby  Stage = "baby"
	StageTeen  Stage = "teen"
	StageYoung Stage = "young"
	StageAdult Stage = "adult"
)

type Type string

const (
	TypePlant  Type = "plant"
	TypeAnimal Type = "animal"
)

// Stage thresholds (inclusive lower bounds) and the span of each tier.
const (
	teenThreshold  = 10
	youngThreshold = 25
	adultThreshold = 50

	babySpan  = 10 // 0 → 10
	teenSpan  = 15 // 10 → 25
	youngSpan = 25 // 25 → 50
)

// StageFor maps total points to a growth stage. Exactly 50 is already adult.
func StageFor(totalPoints int) Stage {
	switch {
	case totalPoints >= adultThreshold:
		return StageAdult
	case totalPoints >= youngThreshold:
		return StageYoung
	case totalPoints >= teenThreshold:
		return StageTeen
	default:
		return StageBaby
	}
}

// PostAdultPoints is the point surplus past the terminal stage, floored at 0.
func PostAdultPoints(totalPoints int) int {
	if totalPoints < adultThreshold {
		return 0
	}
	return totalPoints - adultThreshold
}

// StageProgress is the fraction toward the next stage threshold; adult is
// saturated at 1.
func StageProgress(totalPoints int) float64 {
	switch StageFor(totalPoints) {
	case StageAdult:
		return 1
	case StageYoung:
		return float64(totalPoints-youngThreshold) / youngSpan
	case StageTeen:
		return float64(totalPoints-teenThreshold) / teenSpan
	default:
		return float64(totalPoints) / babySpan
	}
}

// State is the companion as shown to the user. Stage, Progress and
// PostAdultPoints are derived on every call and never stored, so they cannot
// drift from the ledger.
type State struct {
	Type            Type    `json:"type"`
	Name            string  `json:"name,omitempty"`
	Stage           Stage   `json:"stage"`
	Progress        float64 `json:"progress"`
	PostAdultPoints int     `json:"postAdultPoints"`
}

func Derive(typ Type, name string, totalPoints int) State {
	return State{
		Type:            typ,
		Name:            name,
		Stage:           StageFor(totalPoints),
		Progress:        StageProgress(totalPoints),
		PostAdultPoints: PostAdultPoints(totalPoints),
	}
}
