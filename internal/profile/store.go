package profile

import (
	"encoding/json"
	"errors"
	"fmt"

	"habitbloom/internal/ledger"

	"gorm.io/gorm"
)

// Snapshot is the decoded form of a Profile row.
type Snapshot struct {
	CompanionType  string
	CompanionName  string
	Theme          string
	TotalPoints    int
	Ledger         *ledger.Ledger
	MoodEntries    map[string]string
	LastDailyReset string
}

// Store reads and writes profile rows. Writes are field merges, never
// whole-row replaces.
type Store struct {
	gdb *gorm.DB
}

func NewStore(gdb *gorm.DB) *Store {
	return &Store{gdb: gdb}
}

// Load returns the decoded snapshot for userID, or nil when no profile row
// exists yet (first session).
func (s *Store) Load(userID uint) (*Snapshot, error) {
	var p Profile
	if err := s.gdb.Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}

	snap := &Snapshot{
		CompanionType:  p.CompanionType,
		CompanionName:  p.CompanionName,
		Theme:          p.Theme,
		TotalPoints:    p.TotalPoints,
		Ledger:         ledger.New(),
		MoodEntries:    make(map[string]string),
		LastDailyReset: p.LastDailyReset,
	}
	decodeCategory(p.Daily, &snap.Ledger.Daily)
	decodeCategory(p.Weekly, &snap.Ledger.Weekly)
	decodeCategory(p.Monthly, &snap.Ledger.Monthly)
	if len(p.MoodEntries) > 0 {
		// Corrupt mood history degrades to empty, never fails the load.
		_ = json.Unmarshal(p.MoodEntries, &snap.MoodEntries)
	}
	snap.Ledger.Normalize()
	return snap, nil
}

func decodeCategory(raw []byte, out *ledger.CategoryState) {
	if len(raw) == 0 {
		return
	}
	_ = json.Unmarshal(raw, out)
}

// Create inserts an empty profile row for a first-time user.
func (s *Store) Create(userID uint) error {
	empty, _ := json.Marshal(ledger.New().Daily)
	p := Profile{
		UserID:      userID,
		Theme:       "warm",
		Daily:       empty,
		Weekly:      empty,
		Monthly:     empty,
		MoodEntries: []byte("{}"),
	}
	if err := s.gdb.Create(&p).Error; err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

// Save merges the snapshot's fields into the stored row, creating the row if
// it does not exist yet.
func (s *Store) Save(userID uint, snap *Snapshot) error {
	daily, err := json.Marshal(snap.Ledger.Daily)
	if err != nil {
		return fmt.Errorf("encode daily: %w", err)
	}
	weekly, err := json.Marshal(snap.Ledger.Weekly)
	if err != nil {
		return fmt.Errorf("encode weekly: %w", err)
	}
	monthly, err := json.Marshal(snap.Ledger.Monthly)
	if err != nil {
		return fmt.Errorf("encode monthly: %w", err)
	}
	moods, err := json.Marshal(snap.MoodEntries)
	if err != nil {
		return fmt.Errorf("encode moods: %w", err)
	}

	updates := map[string]interface{}{
		"companion_type":   snap.CompanionType,
		"companion_name":   snap.CompanionName,
		"theme":            snap.Theme,
		"total_points":     snap.Ledger.TotalPoints(),
		"daily":            daily,
		"weekly":           weekly,
		"monthly":          monthly,
		"mood_entries":     moods,
		"last_daily_reset": snap.LastDailyReset,
	}
	res := s.gdb.Model(&Profile{}).Where("user_id = ?", userID).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("save profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		if err := s.Create(userID); err != nil {
			return err
		}
		return s.Save(userID, snap)
	}
	return nil
}

// Delete removes the profile row; used when the account is deleted.
func (s *Store) Delete(userID uint) error {
	if err := s.gdb.Where("user_id = ?", userID).Delete(&Profile{}).Error; err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
