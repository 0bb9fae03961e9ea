package candles

import (
	"testing"

	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"
)

func msg(t model.MessageType, ts int64, close float64) model.StreamMessage {
	return model.StreamMessage{
		Type:      t,
		Symbol:    "BTCUSDT",
		TSStartMS: ts,
		Open:      close,
		High:      close + 1,
		Low:       close - 1,
		Close:     close,
		Volume:    10,
	}
}

func TestStore_FormingReplacesNotAppends(t *testing.T) {
	s := New(0)

	if out := s.Apply(msg(model.BarForming, 1000, 10)); out != FormingReplaced {
		t.Fatalf("expected FormingReplaced, got %v", out)
	}
	if out := s.Apply(msg(model.BarForming, 1000, 11)); out != FormingReplaced {
		t.Fatalf("expected FormingReplaced, got %v", out)
	}

	tl := s.Timeline()
	if len(tl) != 1 {
		t.Fatalf("timeline len = %d, want 1", len(tl))
	}
	if tl[0].Close != 11 {
		t.Errorf("forming close = %v, want 11 (latest update wins)", tl[0].Close)
	}
	if s.Len() != 0 {
		t.Errorf("confirmed len = %d, want 0", s.Len())
	}
}

func TestStore_ConfirmClearsForming(t *testing.T) {
	s := New(0)
	s.Apply(msg(model.BarForming, 1000, 10))

	if out := s.Apply(msg(model.BarConfirmed, 1000, 10.5)); out != Appended {
		t.Fatalf("expected Appended, got %v", out)
	}

	if _, ok := s.Forming(); ok {
		t.Error("forming candle should be cleared by a confirmed bar")
	}
	tl := s.Timeline()
	if len(tl) != 1 || tl[0].Close != 10.5 {
		t.Errorf("timeline = %+v, want single confirmed bar at 10.5", tl)
	}
}

func TestStore_DuplicateConfirmedIsIdempotent(t *testing.T) {
	s := New(0)
	s.Apply(msg(model.BarConfirmed, 1000, 10))

	if out := s.Apply(msg(model.BarConfirmed, 1000, 99)); out != Duplicate {
		t.Fatalf("expected Duplicate, got %v", out)
	}
	if s.Len() != 1 {
		t.Fatalf("confirmed len = %d, want 1", s.Len())
	}
	if s.Confirmed()[0].Close != 10 {
		t.Error("duplicate must not overwrite the original bar")
	}
}

func TestStore_HistoricalBackfillSortsInPlace(t *testing.T) {
	s := New(0)
	s.Apply(msg(model.BarConfirmed, 3000, 3))
	s.Apply(msg(model.BarHistorical, 1000, 1))
	s.Apply(msg(model.BarHistorical, 2000, 2))

	got := s.Confirmed()
	if len(got) != 3 {
		t.Fatalf("confirmed len = %d, want 3", len(got))
	}
	for i, want := range []int64{1000, 2000, 3000} {
		if got[i].Time != want {
			t.Errorf("confirmed[%d].Time = %d, want %d", i, got[i].Time, want)
		}
	}
}

func TestStore_StaleFormingIgnored(t *testing.T) {
	s := New(0)
	s.Apply(msg(model.BarConfirmed, 2000, 20))

	if out := s.Apply(msg(model.BarForming, 1000, 10)); out != Ignored {
		t.Fatalf("expected Ignored for forming bar behind history, got %v", out)
	}
	if _, ok := s.Forming(); ok {
		t.Error("stale forming bar must not be stored")
	}
}

func TestStore_AckIsIgnored(t *testing.T) {
	s := New(0)
	if out := s.Apply(model.StreamMessage{Type: model.SubscribedAck, Symbol: "BTCUSDT"}); out != Ignored {
		t.Fatalf("expected Ignored, got %v", out)
	}
	if len(s.Timeline()) != 0 {
		t.Error("ack must not create candles")
	}
}

func TestStore_EvictionKeepsNewest(t *testing.T) {
	s := New(3)
	for i := int64(1); i <= 5; i++ {
		s.Apply(msg(model.BarConfirmed, i*1000, float64(i)))
	}

	got := s.Confirmed()
	if len(got) != 3 {
		t.Fatalf("confirmed len = %d, want 3", len(got))
	}
	if got[0].Time != 3000 || got[2].Time != 5000 {
		t.Errorf("expected newest three, got times %d..%d", got[0].Time, got[2].Time)
	}
	// The evicted time is re-admissible: its dedupe entry is gone too.
	if out := s.Apply(msg(model.BarConfirmed, 1000, 1)); out != Appended {
		t.Errorf("evicted time should re-append, got %v", out)
	}
}

func TestStore_TimelineIsACopy(t *testing.T) {
	s := New(0)
	s.Apply(msg(model.BarConfirmed, 1000, 10))
	tl := s.Timeline()
	tl[0].Close = 999

	if s.Confirmed()[0].Close != 10 {
		t.Error("mutating the returned timeline must not affect the store")
	}
}

func TestStore_Reset(t *testing.T) {
	s := New(0)
	s.Apply(msg(model.BarConfirmed, 1000, 10))
	s.Apply(msg(model.BarForming, 2000, 11))
	s.Reset()

	if len(s.Timeline()) != 0 {
		t.Fatal("reset must clear all candles")
	}
	// Times from before the reset are fresh again.
	if out := s.Apply(msg(model.BarConfirmed, 1000, 10)); out != Appended {
		t.Errorf("expected Appended after reset, got %v", out)
	}
}
