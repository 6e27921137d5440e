package milestone

import (
	"sync"

	"habitbloom/internal/ledger"
)

// Reward is the ephemeral celebration surfaced when a completion count lands
// exactly on a configured threshold. It is never persisted.
type Reward struct {
	Emoji   string `json:"emoji"`
	Message string `json:"message"`
}

// Table maps exact completion counts to rewards for one category.
type Table map[int]Reward

// Detector watches per-category completion counts and fires each threshold at
// most once, at the exact count. Categories are independent state machines.
type Detector struct {
	mu     sync.Mutex
	tables map[ledger.Category]Table
	prev   map[ledger.Category]int
	active *Reward
}

// NewDetector seeds the previous counts from the loaded ledger, so resuming a
// session never re-fires milestones that were crossed before.
func NewDetector(l *ledger.Ledger) *Detector {
	return NewDetectorWithTables(l, DefaultTables())
}

func NewDetectorWithTables(l *ledger.Ledger, tables map[ledger.Category]Table) *Detector {
	prev := make(map[ledger.Category]int, len(ledger.Categories))
	for _, cat := range ledger.Categories {
		prev[cat] = l.CompletedCount(cat)
	}
	return &Detector{tables: tables, prev: prev}
}

// Observe records a category's new completion count. If the count changed and
// lands exactly on a table entry, that reward fires once and becomes the
// active reward (replacing any previous one, no queue). Thresholds jumped
// over in a single update do not fire retroactively; that keeps bulk restores
// from replaying stale celebrations.
func (d *Detector) Observe(cat ledger.Category, newCount int) *Reward {
	d.mu.Lock()
	defer d.mu.Unlock()

	if newCount == d.prev[cat] {
		return nil
	}
	d.prev[cat] = newCount

	table, ok := d.tables[cat]
	if !ok {
		return nil
	}
	reward, ok := table[newCount]
	if !ok {
		return nil
	}
	d.active = &reward
	return &reward
}

// Active returns the currently displayed reward, or nil.
func (d *Detector) Active() *Reward {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active
}

// Dismiss consumes the active reward.
func (d *Detector) Dismiss() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.active = nil
}
