package engine

import (
	"sync"

	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"
)

// Fanout broadcasts indicator updates from the controller to N output
// channels. If an output channel is full, the update is dropped for that
// consumer: a slow renderer or publisher must never block the recompute loop.
type Fanout struct {
	mu      sync.RWMutex
	outputs []chan model.IndicatorUpdate
	bufSize int

	// OnDrop is called when an update is dropped for a subscriber.
	OnDrop func(subscriberIdx int)
}

// NewFanout creates a Fanout with the given buffer size for output channels.
func NewFanout(outputBufferSize int) *Fanout {
	return &Fanout{bufSize: outputBufferSize}
}

// Subscribe creates and returns a new output channel.
func (f *Fanout) Subscribe() <-chan model.IndicatorUpdate {
	ch := make(chan model.IndicatorUpdate, f.bufSize)
	f.mu.Lock()
	f.outputs = append(f.outputs, ch)
	f.mu.Unlock()
	return ch
}

// Publish sends an update to all subscribers, dropping on full channels.
func (f *Fanout) Publish(u model.IndicatorUpdate) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for i, ch := range f.outputs {
		select {
		case ch <- u:
		default:
			if f.OnDrop != nil {
				f.OnDrop(i)
			}
		}
	}
}

// Close closes all subscriber channels.
func (f *Fanout) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.outputs {
		close(ch)
	}
	f.outputs = nil
}
