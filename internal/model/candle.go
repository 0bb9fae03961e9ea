package model

import (
	"encoding/json"
	"time"
)

// Candle represents one OHLCV bar on the chart timeline.
// Time is the bar's start timestamp in epoch milliseconds (UTC).
type Candle struct {
	Time   int64   `json:"time"` // epoch ms, bar start
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// TS returns the candle's start time as a time.Time in UTC.
func (c *Candle) TS() time.Time {
	return time.UnixMilli(c.Time).UTC()
}

// Range returns high - low.
func (c *Candle) Range() float64 {
	return c.High - c.Low
}

// Typical returns the typical price (H+L+C)/3 used by CCI, MFI and the
// VWAP family.
func (c *Candle) Typical() float64 {
	return (c.High + c.Low + c.Close) / 3.0
}

// JSON returns the JSON-encoded candle (ignoring errors for hot-path usage).
func (c *Candle) JSON() []byte {
	b, _ := json.Marshal(c)
	return b
}
