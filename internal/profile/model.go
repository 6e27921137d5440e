package profile

import (
	"time"

	"gorm.io/datatypes"
)

// Profile is the persisted per-user wellness state. The three category
// columns and MoodEntries hold JSON snapshots; saves merge fields instead of
// replacing the row, so a stale writer cannot clobber unrelated fields.
type Profile struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	UserID         uint           `gorm:"uniqueIndex;not null" json:"userId"`
	CompanionType  string         `gorm:"size:16" json:"companionType"`
	CompanionName  string         `gorm:"size:64" json:"companionName"`
	Theme          string         `gorm:"size:16;default:'warm'" json:"theme"`
	TotalPoints    int            `json:"totalPoints"`
	Daily          datatypes.JSON `json:"daily"`
	Weekly         datatypes.JSON `json:"weekly"`
	Monthly        datatypes.JSON `json:"monthly"`
	MoodEntries    datatypes.JSON `json:"moodEntries"`
	LastDailyReset string         `gorm:"size:10" json:"lastDailyReset"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// Moods a user can log, one entry per calendar day.
var ValidMoods = map[string]bool{
	"happy": true,
	"mid":   true,
	"sad":   true,
	"mad":   true,
}
