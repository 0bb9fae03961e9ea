// Package sqlite persists confirmed candles for backfill and replay.
// Computed indicator series are never persisted - they are recomputed from
// candles on demand.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"

	_ "github.com/mattn/go-sqlite3"
)

const (
	defaultBatchSize  = 100
	defaultFlushDelay = 200 * time.Millisecond
)

// Entry is one confirmed candle with its subscription key.
type Entry struct {
	Symbol   string
	Interval string
	Candle   model.Candle
}

// WriterConfig configures the SQLite writer.
type WriterConfig struct {
	DBPath string // path to SQLite database file, e.g. "data/candles.db"
}

// Writer is a single-goroutine SQLite writer with transaction batching.
type Writer struct {
	db  *sql.DB
	log *slog.Logger
}

// DB returns the underlying sql.DB for health checks.
func (w *Writer) DB() *sql.DB { return w.db }

// NewWriter opens the database in WAL mode and ensures the schema.
func NewWriter(cfg WriterConfig, log *slog.Logger) (*Writer, error) {
	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	// Single-writer pool.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := createSchema(db); err != nil {
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	log.Info("sqlite opened", "path", cfg.DBPath)
	return &Writer{db: db, log: log}, nil
}

func createSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS candles (
			symbol   TEXT    NOT NULL,
			interval TEXT    NOT NULL,
			ts       INTEGER NOT NULL,
			open     REAL    NOT NULL,
			high     REAL    NOT NULL,
			low      REAL    NOT NULL,
			close    REAL    NOT NULL,
			volume   REAL    NOT NULL,
			PRIMARY KEY (symbol, interval, ts)
		);
	`)
	return err
}

// Run reads entries from entryCh and inserts them in batched transactions.
// Flushes every batchSize entries OR every flushDelay, whichever first.
// Blocks until ctx is cancelled or entryCh is closed.
func (w *Writer) Run(ctx context.Context, entryCh <-chan Entry) {
	batch := make([]Entry, 0, defaultBatchSize)
	timer := time.NewTimer(defaultFlushDelay)
	defer timer.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := w.insertBatch(batch); err != nil {
			w.log.Error("sqlite batch insert failed", "err", err, "count", len(batch))
		}
		batch = batch[:0]
	}

	for {
		select {
		case <-ctx.Done():
			flush()
			return
		case e, ok := <-entryCh:
			if !ok {
				flush()
				return
			}
			batch = append(batch, e)
			if len(batch) >= defaultBatchSize {
				flush()
				timer.Reset(defaultFlushDelay)
			}
		case <-timer.C:
			flush()
			timer.Reset(defaultFlushDelay)
		}
	}
}

// insertBatch inserts a batch in a single transaction. INSERT OR IGNORE keeps
// the table idempotent under re-delivered bars.
func (w *Writer) insertBatch(batch []Entry) error {
	tx, err := w.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT OR IGNORE INTO candles (symbol, interval, ts, open, high, low, close, volume)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, e := range batch {
		c := e.Candle
		if _, err := stmt.Exec(e.Symbol, e.Interval, c.Time, c.Open, c.High, c.Low, c.Close, c.Volume); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// LastTimestamp returns the newest stored candle time (epoch ms) for a
// subscription, or 0 if none exist.
func (w *Writer) LastTimestamp(symbol, interval string) (int64, error) {
	var ts sql.NullInt64
	err := w.db.QueryRow(
		`SELECT MAX(ts) FROM candles WHERE symbol = ? AND interval = ?`,
		symbol, interval,
	).Scan(&ts)
	if err != nil {
		return 0, err
	}
	if !ts.Valid {
		return 0, nil
	}
	return ts.Int64, nil
}

// Close closes the database.
func (w *Writer) Close() error {
	return w.db.Close()
}
