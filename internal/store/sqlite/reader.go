package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"

	_ "github.com/mattn/go-sqlite3"
)

// Reader provides read-only access to stored candles for backfill and replay.
type Reader struct {
	db *sql.DB
}

// NewReader opens the database read-only.
func NewReader(dbPath string) (*Reader, error) {
	db, err := sql.Open("sqlite3", dbPath+"?mode=ro&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	return &Reader{db: db}, nil
}

// NewReaderFromDB wraps an existing connection, for sharing the writer's pool.
func NewReaderFromDB(db *sql.DB) *Reader {
	return &Reader{db: db}
}

// ReadCandles returns stored candles for a subscription with ts > afterTS,
// ordered by time ascending. limit <= 0 means no limit.
func (r *Reader) ReadCandles(symbol, interval string, afterTS int64, limit int) ([]model.Candle, error) {
	query := `
		SELECT ts, open, high, low, close, volume
		FROM candles
		WHERE symbol = ? AND interval = ? AND ts > ?
		ORDER BY ts ASC
	`
	args := []any{symbol, interval, afterTS}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite query candles: %w", err)
	}
	defer rows.Close()

	var out []model.Candle
	for rows.Next() {
		var c model.Candle
		if err := rows.Scan(&c.Time, &c.Open, &c.High, &c.Low, &c.Close, &c.Volume); err != nil {
			return nil, fmt.Errorf("sqlite scan candle: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Subscriptions lists the distinct (symbol, interval) pairs in the store.
func (r *Reader) Subscriptions() ([][2]string, error) {
	rows, err := r.db.Query(`SELECT DISTINCT symbol, interval FROM candles ORDER BY symbol, interval`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out [][2]string
	for rows.Next() {
		var sym, ivl string
		if err := rows.Scan(&sym, &ivl); err != nil {
			return nil, err
		}
		out = append(out, [2]string{sym, ivl})
	}
	return out, rows.Err()
}

// Close closes the database.
func (r *Reader) Close() error {
	return r.db.Close()
}
