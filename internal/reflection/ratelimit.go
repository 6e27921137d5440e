package reflection

import (
	"sync"
	"time"
)

// Clock abstracts time.Now so tests can drive the window deterministically.
type Clock func() time.Time

// RateLimiter enforces a per-client sliding window: at most max allowed
// requests per window. Rejected requests are not recorded, so a burst of
// rejections never extends a client's lockout.
type RateLimiter struct {
	max    int
	window time.Duration
	now    Clock

	mu      sync.Mutex
	clients map[string]*clientWindow
}

type clientWindow struct {
	mu     sync.Mutex
	stamps []time.Time
}

func NewRateLimiter(max int, window time.Duration, now Clock) *RateLimiter {
	if now == nil {
		now = time.Now
	}
	return &RateLimiter{
		max:     max,
		window:  window,
		now:     now,
		clients: make(map[string]*clientWindow),
	}
}

func (rl *RateLimiter) client(id string) *clientWindow {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	cw, ok := rl.clients[id]
	if !ok {
		cw = &clientWindow{}
		rl.clients[id] = cw
	}
	return cw
}

// Allow reports whether a request from clientID may proceed, recording its
// timestamp only when allowed. Each client's window is updated atomically;
// different clients never contend beyond the map lookup.
func (rl *RateLimiter) Allow(clientID string) bool {
	cw := rl.client(clientID)
	cw.mu.Lock()
	defer cw.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.window)
	kept := cw.stamps[:0]
	for _, ts := range cw.stamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	cw.stamps = kept

	if len(cw.stamps) >= rl.max {
		return false
	}
	cw.stamps = append(cw.stamps, now)
	return true
}
