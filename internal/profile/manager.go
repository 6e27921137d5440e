package profile

import (
	"log"
	"sync"
	"time"

	"habitbloom/internal/ledger"
	"habitbloom/internal/milestone"
)

const dateLayout = "2006-01-02"

// Session is one user's live state. The owning user's requests are the sole
// mutators; Manager serializes them through the session mutex.
type Session struct {
	mu sync.Mutex

	Ledger   *ledger.Ledger
	Detector *milestone.Detector

	CompanionType  string
	CompanionName  string
	Theme          string
	MoodEntries    map[string]string
	LastDailyReset string
}

// Manager owns the per-user sessions and their persistence. Loading a
// session applies the daily reset and seeds the milestone detector from the
// loaded ledger before any milestone comparison can run.
type Manager struct {
	store *Store
	now   func() time.Time

	mu       sync.Mutex
	sessions map[uint]*Session
}

func NewManager(store *Store, now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}
	return &Manager{
		store:    store,
		now:      now,
		sessions: make(map[uint]*Session),
	}
}

func (m *Manager) today() string {
	return m.now().Format(dateLayout)
}

// session returns the cached session or loads it from the store. A missing
// profile row means first session: start from an empty ledger. A failed load
// is logged and also treated as first session, so the user can keep working
// in memory while persistence is down.
func (m *Manager) session(userID uint) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sess, ok := m.sessions[userID]; ok {
		return sess
	}

	snap, err := m.store.Load(userID)
	if err != nil {
		log.Printf("[Profile] WARNING: load for user %d failed (starting empty session): %v", userID, err)
		snap = nil
	}
	today := m.today()
	sess := &Session{
		Theme:          "warm",
		Ledger:         ledger.New(),
		MoodEntries:    make(map[string]string),
		LastDailyReset: today,
	}
	if snap != nil {
		sess.CompanionType = snap.CompanionType
		sess.CompanionName = snap.CompanionName
		if snap.Theme != "" {
			sess.Theme = snap.Theme
		}
		sess.Ledger = snap.Ledger
		sess.MoodEntries = snap.MoodEntries
		sess.LastDailyReset = snap.LastDailyReset

		// A new calendar day clears the daily category exactly once;
		// weekly/monthly stay untouched.
		if sess.LastDailyReset != today {
			log.Printf("[Profile] daily reset for user %d (%s → %s)", userID, sess.LastDailyReset, today)
			sess.Ledger.ResetDaily()
			sess.LastDailyReset = today
		}
	} else {
		if err := m.store.Create(userID); err != nil {
			// First save will retry the insert; keep the session usable.
			log.Printf("[Profile] WARNING: create profile for user %d failed: %v", userID, err)
		}
	}

	// Seed milestone state from the (possibly reset) ledger so resuming a
	// session never re-fires already-crossed milestones.
	sess.Detector = milestone.NewDetector(sess.Ledger)
	m.sessions[userID] = sess
	return sess
}

// With runs fn against the user's session under its lock, then persists the
// result. A failed save is logged and tolerated: the session state stays
// authoritative in memory.
func (m *Manager) With(userID uint, fn func(*Session) error) error {
	sess := m.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := fn(sess); err != nil {
		return err
	}
	if err := m.store.Save(userID, sess.snapshot()); err != nil {
		log.Printf("[Profile] WARNING: save for user %d failed (state kept in memory): %v", userID, err)
	}
	return nil
}

// View runs fn read-only (still under the session lock, without persisting).
func (m *Manager) View(userID uint, fn func(*Session)) {
	sess := m.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	fn(sess)
}

func (s *Session) snapshot() *Snapshot {
	return &Snapshot{
		CompanionType:  s.CompanionType,
		CompanionName:  s.CompanionName,
		Theme:          s.Theme,
		Ledger:         s.Ledger,
		MoodEntries:    s.MoodEntries,
		LastDailyReset: s.LastDailyReset,
	}
}

// Today exposes the manager's current date string (mood entries are keyed by
// calendar day).
func (m *Manager) Today() string {
	return m.today()
}

// Drop evicts a user's cached session (logout or account deletion).
func (m *Manager) Drop(userID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
