// Package candles holds the canonical candle timeline consumed by every
// indicator instance: an ordered, deduplicated sequence of confirmed candles
// plus at most one mutable "forming" tail candle.
package candles

import (
	"sort"

	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"
)

// ApplyOutcome describes what a feed message did to the store.
type ApplyOutcome int

const (
	// Ignored: no state change (ack, duplicate, stale forming bar).
	Ignored ApplyOutcome = iota
	// FormingReplaced: the forming tail was overwritten.
	FormingReplaced
	// Appended: a confirmed candle was added to history.
	Appended
	// Duplicate: a confirmed candle with the same time already exists.
	Duplicate
)

// Store is the candle store for one (symbol, interval) subscription.
// Designed for single-goroutine usage - no locks needed; all mutation
// funnels through the engine's serialized command loop.
type Store struct {
	confirmed []model.Candle
	seen      map[int64]struct{} // confirmed times, for O(1) dedupe
	forming   *model.Candle

	// maxCandles bounds confirmed history; 0 = unbounded.
	maxCandles int
}

// New creates an empty store. maxCandles of 0 keeps unbounded history.
func New(maxCandles int) *Store {
	return &Store{
		seen:       make(map[int64]struct{}, 1024),
		maxCandles: maxCandles,
	}
}

// Apply folds one feed message into the store and reports the outcome.
// Confirmed and historical bars are idempotent: re-delivery of a time
// already present is discarded without corrupting the series.
func (s *Store) Apply(msg model.StreamMessage) ApplyOutcome {
	switch msg.Type {
	case model.BarForming:
		c := msg.Candle()
		// The forming bar must not precede confirmed history.
		if n := len(s.confirmed); n > 0 && c.Time < s.confirmed[n-1].Time {
			return Ignored
		}
		s.forming = &c
		return FormingReplaced

	case model.BarConfirmed, model.BarHistorical:
		c := msg.Candle()
		if _, dup := s.seen[c.Time]; dup {
			return Duplicate
		}
		s.insert(c)
		// A confirmed bar supersedes whatever was forming for its interval.
		s.forming = nil
		s.evict()
		return Appended

	default:
		// SUBSCRIBED and anything unknown: acknowledgement only.
		return Ignored
	}
}

// insert places c in chronological order. The common case is an append;
// historical backfill may arrive out of order and lands at its sorted slot.
func (s *Store) insert(c model.Candle) {
	s.seen[c.Time] = struct{}{}
	n := len(s.confirmed)
	if n == 0 || c.Time > s.confirmed[n-1].Time {
		s.confirmed = append(s.confirmed, c)
		return
	}
	i := sort.Search(n, func(i int) bool { return s.confirmed[i].Time > c.Time })
	s.confirmed = append(s.confirmed, model.Candle{})
	copy(s.confirmed[i+1:], s.confirmed[i:])
	s.confirmed[i] = c
}

// evict drops the oldest confirmed candles beyond the capacity bound.
func (s *Store) evict() {
	if s.maxCandles <= 0 || len(s.confirmed) <= s.maxCandles {
		return
	}
	drop := len(s.confirmed) - s.maxCandles
	for _, c := range s.confirmed[:drop] {
		delete(s.seen, c.Time)
	}
	s.confirmed = append(s.confirmed[:0], s.confirmed[drop:]...)
}

// Timeline returns confirmed history with the forming candle appended as the
// provisional last element. The returned slice is a copy; callers may hold it
// across subsequent mutations.
func (s *Store) Timeline() []model.Candle {
	n := len(s.confirmed)
	if s.forming != nil {
		n++
	}
	out := make([]model.Candle, 0, n)
	out = append(out, s.confirmed...)
	if s.forming != nil {
		out = append(out, *s.forming)
	}
	return out
}

// Confirmed returns the confirmed history (no forming tail), shared slice.
func (s *Store) Confirmed() []model.Candle {
	return s.confirmed
}

// Forming returns a copy of the forming candle, if any.
func (s *Store) Forming() (model.Candle, bool) {
	if s.forming == nil {
		return model.Candle{}, false
	}
	return *s.forming, true
}

// Len returns the number of confirmed candles.
func (s *Store) Len() int {
	return len(s.confirmed)
}

// Reset clears all candles. Called on symbol/interval switch.
func (s *Store) Reset() {
	s.confirmed = s.confirmed[:0]
	s.forming = nil
	s.seen = make(map[int64]struct{}, 1024)
}
