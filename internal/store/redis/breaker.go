package redis

import (
	"errors"
	"sync"
	"time"
)

// ErrBreakerOpen is returned by Execute while the breaker is rejecting calls.
var ErrBreakerOpen = errors.New("circuit breaker open")

// BreakerState is the circuit breaker state.
type BreakerState int

const (
	BreakerClosed BreakerState = iota // normal operation
	BreakerOpen                       // rejecting calls after repeated failures
	BreakerHalfOpen                   // probing with a single call
)

func (s BreakerState) String() string {
	switch s {
	case BreakerClosed:
		return "closed"
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Breaker wraps Redis calls so a dead server degrades publishing instead of
// blocking the recompute path. After maxFailures consecutive failures the
// breaker opens and rejects calls immediately; after resetTimeout it lets one
// probe through and closes again on success.
type Breaker struct {
	mu          sync.Mutex
	state       BreakerState
	failures    int
	lastFailure time.Time

	maxFailures  int
	resetTimeout time.Duration

	// OnStateChange fires outside the lock on every transition. Optional.
	OnStateChange func(from, to BreakerState)
}

// NewBreaker creates a closed breaker.
func NewBreaker(maxFailures int, resetTimeout time.Duration) *Breaker {
	return &Breaker{
		state:        BreakerClosed,
		maxFailures:  maxFailures,
		resetTimeout: resetTimeout,
	}
}

// State returns the current state.
func (b *Breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Execute runs fn if the breaker allows it and records the result.
func (b *Breaker) Execute(fn func() error) error {
	b.mu.Lock()
	switch b.state {
	case BreakerOpen:
		if time.Since(b.lastFailure) < b.resetTimeout {
			b.mu.Unlock()
			return ErrBreakerOpen
		}
		b.transition(BreakerHalfOpen)
	case BreakerHalfOpen:
		// One probe at a time.
		b.mu.Unlock()
		return ErrBreakerOpen
	}
	b.mu.Unlock()

	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.failures++
		b.lastFailure = time.Now()
		if b.state == BreakerHalfOpen || b.failures >= b.maxFailures {
			b.transition(BreakerOpen)
		}
		return err
	}
	b.failures = 0
	if b.state != BreakerClosed {
		b.transition(BreakerClosed)
	}
	return nil
}

// transition changes state and schedules the hook. Caller holds b.mu.
func (b *Breaker) transition(to BreakerState) {
	from := b.state
	if from == to {
		return
	}
	b.state = to
	if b.OnStateChange != nil {
		go b.OnStateChange(from, to)
	}
}
