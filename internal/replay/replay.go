// Package replay feeds stored candles back into the engine at a configurable
// speed, bypassing the websocket feed entirely. Useful for reproducing chart
// state from a recorded session.
package replay

import (
	"context"
	"log/slog"
	"time"

	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"
	sqlitestore "github.com/aaravjj2/tradingview-sim-sub000/internal/store/sqlite"
)

// Sink receives replayed feed messages. *engine.Controller satisfies it.
type Sink interface {
	Ingest(msg model.StreamMessage)
}

// Replayer reads stored candles and re-emits them as feed messages.
type Replayer struct {
	reader *sqlitestore.Reader
	log    *slog.Logger
}

// New creates a Replayer backed by a SQLite reader.
func New(reader *sqlitestore.Reader, log *slog.Logger) *Replayer {
	return &Replayer{reader: reader, log: log}
}

// Run replays all stored candles for one subscription into sink. The first
// batchSize bars go out as historical backfill in one burst; the remainder is
// emitted as confirmed bars paced by the recorded gaps divided by speed.
// speed 0 replays as fast as possible. fromTS filters to candles after that
// epoch-ms timestamp (0 = all).
func (r *Replayer) Run(ctx context.Context, sink Sink, symbol, interval string, fromTS int64, speed float64, batchSize int) error {
	cs, err := r.reader.ReadCandles(symbol, interval, fromTS, 0)
	if err != nil {
		return err
	}
	if len(cs) == 0 {
		r.log.Info("no stored candles to replay", "symbol", symbol, "interval", interval)
		return nil
	}
	r.log.Info("replaying stored candles",
		"symbol", symbol, "interval", interval, "count", len(cs), "speed", speed)

	if batchSize > len(cs) {
		batchSize = len(cs)
	}
	for _, c := range cs[:batchSize] {
		sink.Ingest(message(model.BarHistorical, symbol, c))
	}

	var prevTS int64
	emitted := batchSize
	for _, c := range cs[batchSize:] {
		if speed > 0 && prevTS != 0 {
			gap := time.Duration(c.Time-prevTS) * time.Millisecond
			if gap > 0 {
				scaled := time.Duration(float64(gap) / speed)
				if scaled > 5*time.Second {
					scaled = 5 * time.Second
				}
				select {
				case <-ctx.Done():
					r.log.Info("replay cancelled", "emitted", emitted)
					return ctx.Err()
				case <-time.After(scaled):
				}
			}
		}
		prevTS = c.Time

		sink.Ingest(message(model.BarConfirmed, symbol, c))
		emitted++
	}

	r.log.Info("replay complete", "emitted", emitted)
	return nil
}

func message(t model.MessageType, symbol string, c model.Candle) model.StreamMessage {
	return model.StreamMessage{
		Type:      t,
		Symbol:    symbol,
		TSStartMS: c.Time,
		Open:      c.Open,
		High:      c.High,
		Low:       c.Low,
		Close:     c.Close,
		Volume:    c.Volume,
	}
}
