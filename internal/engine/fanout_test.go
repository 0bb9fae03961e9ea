package engine

import (
	"testing"
	"time"

	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"
)

func TestFanout_BroadcastsToAll(t *testing.T) {
	f := NewFanout(4)
	out1 := f.Subscribe()
	out2 := f.Subscribe()

	f.Publish(model.IndicatorUpdate{InstanceID: "abc"})

	for i, out := range []<-chan model.IndicatorUpdate{out1, out2} {
		select {
		case u := <-out:
			if u.InstanceID != "abc" {
				t.Errorf("subscriber %d: id = %s", i, u.InstanceID)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d: timed out", i)
		}
	}
}

func TestFanout_DropsOnFullChannel(t *testing.T) {
	f := NewFanout(1)
	slow := f.Subscribe()

	dropped := 0
	f.OnDrop = func(int) { dropped++ }

	f.Publish(model.IndicatorUpdate{InstanceID: "1"})
	f.Publish(model.IndicatorUpdate{InstanceID: "2"}) // buffer full, dropped

	if dropped != 1 {
		t.Fatalf("dropped = %d, want 1", dropped)
	}
	// The slow consumer still sees the first update.
	u := <-slow
	if u.InstanceID != "1" {
		t.Errorf("got id %s, want 1", u.InstanceID)
	}
}

func TestFanout_CloseClosesSubscribers(t *testing.T) {
	f := NewFanout(1)
	out := f.Subscribe()
	f.Close()
	if _, ok := <-out; ok {
		t.Error("subscriber channel should be closed")
	}
}
