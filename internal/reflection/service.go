package reflection

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Source tags which path produced a reflection. Exposed for observability and
// tests; never shown to the end user.
type Source string

const (
	SourceGenerated     Source = "generated"
	SourceFallback      Source = "fallback"
	SourceRateLimited   Source = "rate-limited"
	SourceErrorFallback Source = "error-fallback"
)

// Result is what callers always get: a usable string plus its origin. The
// service never returns an error.
type Result struct {
	Reflection string `json:"reflection"`
	Source     Source `json:"source"`
}

// callState drives the per-request state machine. Modeling the retry
// explicitly keeps the single-retry cap and the terminal-fallback guarantee
// obvious.
type callState int

const (
	stateGenerating callState = iota
	stateRetry
	stateFallback
)

// Service produces affirming one-liners from the user's current state,
// backed by a generation provider with a deterministic fallback pool.
type Service struct {
	gen        Generator
	limiter    *RateLimiter
	retryDelay time.Duration
	sleep      func(time.Duration)

	randMu sync.Mutex
	rng    *rand.Rand
}

// NewService wires the generator and rate limiter. retryDelay is the fixed
// wait before the single retry after a provider 429.
func NewService(gen Generator, limiter *RateLimiter, retryDelay time.Duration) *Service {
	return &Service{
		gen:        gen,
		limiter:    limiter,
		retryDelay: retryDelay,
		sleep:      time.Sleep,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetSleepForTest replaces the blocking retry wait (tests only).
func (s *Service) SetSleepForTest(fn func(time.Duration)) { s.sleep = fn }

// SetRandForTest replaces the fallback random source (tests only).
func (s *Service) SetRandForTest(r *rand.Rand) { s.rng = r }

func (s *Service) fallback(req Request) string {
	s.randMu.Lock()
	defer s.randMu.Unlock()
	return pickFallback(req.CompanionStage, s.rng)
}

// Reflect runs one request through the state machine:
// RateLimitCheck → {RateLimited | Generating → {Success | Retry(once) →
// Generating | Fallback}}. Every path terminates in a Result; the retry wait
// blocks only this request.
func (s *Service) Reflect(ctx context.Context, clientID string, req Request) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Reflection] PANIC recovered: %v", r)
			res = Result{Reflection: errorFallback, Source: SourceErrorFallback}
		}
	}()

	if req.ActivityLevel == "" {
		req.ActivityLevel = ActivityLevelFor(len(req.CompletedHabits))
	}

	if !s.limiter.Allow(clientID) {
		log.Printf("[Reflection] client %s rate limited", clientID)
		return Result{Reflection: s.fallback(req), Source: SourceRateLimited}
	}

	prompt := BuildPrompt(req)
	attempts := 0
	state := stateGenerating
	for {
		switch state {
		case stateGenerating:
			attempts++
			text, err := s.gen.Generate(ctx, prompt)
			switch {
			case err == nil && IsCompleteSentence(text):
				return Result{Reflection: strings.TrimSpace(text), Source: SourceGenerated}
			case err == nil:
				log.Printf("[Reflection] rejected incomplete generation %q", text)
				state = stateFallback
			case errors.Is(err, ErrProviderBusy) && attempts < 2:
				state = stateRetry
			default:
				log.Printf("[Reflection] generation failed (attempt %d): %v", attempts, err)
				state = stateFallback
			}
		case stateRetry:
			log.Printf("[Reflection] provider busy, retrying once after %s", s.retryDelay)
			s.sleep(s.retryDelay)
			state = stateGenerating
		case stateFallback:
			return Result{Reflection: s.fallback(req), Source: SourceFallback}
		}
	}
}
