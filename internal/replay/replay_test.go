package replay

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aaravjj2/tradingview-sim-sub000/internal/logger"
	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"
	sqlitestore "github.com/aaravjj2/tradingview-sim-sub000/internal/store/sqlite"
)

type captureSink struct {
	msgs []model.StreamMessage
}

func (s *captureSink) Ingest(msg model.StreamMessage) {
	s.msgs = append(s.msgs, msg)
}

// seedStore writes n contiguous one-minute candles and returns a reader.
func seedStore(t *testing.T, n int, base int64) *sqlitestore.Reader {
	t.Helper()
	log := logger.Init("test", logger.ParseLevel("error"))
	path := filepath.Join(t.TempDir(), "candles.db")
	w, err := sqlitestore.NewWriter(sqlitestore.WriterConfig{DBPath: path}, log)
	if err != nil {
		t.Fatalf("open writer: %v", err)
	}
	t.Cleanup(func() { w.Close() })

	entryCh := make(chan sqlitestore.Entry, n)
	for i := 0; i < n; i++ {
		entryCh <- sqlitestore.Entry{
			Symbol: "BTCUSDT", Interval: "1m",
			Candle: model.Candle{
				Time: base + int64(i)*60_000,
				Open: 10, High: 12, Low: 9, Close: float64(10 + i), Volume: 100,
			},
		}
	}
	close(entryCh)
	done := make(chan struct{})
	go func() {
		w.Run(context.Background(), entryCh)
		close(done)
	}()
	<-done

	return sqlitestore.NewReaderFromDB(w.DB())
}

func TestReplay_BatchThenConfirmed(t *testing.T) {
	base := int64(1_700_000_000_000)
	r := New(seedStore(t, 10, base), logger.Init("test", logger.ParseLevel("error")))

	sink := &captureSink{}
	if err := r.Run(context.Background(), sink, "BTCUSDT", "1m", 0, 0, 4); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(sink.msgs) != 10 {
		t.Fatalf("emitted = %d, want 10", len(sink.msgs))
	}
	for i, m := range sink.msgs {
		wantType := model.BarConfirmed
		if i < 4 {
			wantType = model.BarHistorical
		}
		if m.Type != wantType {
			t.Errorf("msg %d: type = %s, want %s", i, m.Type, wantType)
		}
		if m.TSStartMS != base+int64(i)*60_000 {
			t.Errorf("msg %d: ts = %d", i, m.TSStartMS)
		}
		if m.Symbol != "BTCUSDT" {
			t.Errorf("msg %d: symbol = %s", i, m.Symbol)
		}
	}
}

func TestReplay_FromTSFilters(t *testing.T) {
	base := int64(1_700_000_000_000)
	r := New(seedStore(t, 10, base), logger.Init("test", logger.ParseLevel("error")))

	sink := &captureSink{}
	// After the 5th bar, exclusive: 4 remain.
	if err := r.Run(context.Background(), sink, "BTCUSDT", "1m", base+5*60_000, 0, 2); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(sink.msgs) != 4 {
		t.Fatalf("emitted = %d, want 4", len(sink.msgs))
	}
	if sink.msgs[0].TSStartMS != base+6*60_000 {
		t.Errorf("first ts = %d", sink.msgs[0].TSStartMS)
	}
}

func TestReplay_EmptyStoreIsNoOp(t *testing.T) {
	base := int64(1_700_000_000_000)
	r := New(seedStore(t, 5, base), logger.Init("test", logger.ParseLevel("error")))

	sink := &captureSink{}
	if err := r.Run(context.Background(), sink, "ETHUSDT", "1m", 0, 0, 10); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(sink.msgs) != 0 {
		t.Errorf("emitted = %d for unknown symbol", len(sink.msgs))
	}
}

func TestReplay_BatchLargerThanStore(t *testing.T) {
	base := int64(1_700_000_000_000)
	r := New(seedStore(t, 3, base), logger.Init("test", logger.ParseLevel("error")))

	sink := &captureSink{}
	if err := r.Run(context.Background(), sink, "BTCUSDT", "1m", 0, 0, 100); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(sink.msgs) != 3 {
		t.Fatalf("emitted = %d, want 3", len(sink.msgs))
	}
	for i, m := range sink.msgs {
		if m.Type != model.BarHistorical {
			t.Errorf("msg %d: type = %s, want all historical", i, m.Type)
		}
	}
}
