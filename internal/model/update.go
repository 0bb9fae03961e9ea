package model

import "encoding/json"

// IndicatorUpdate is a full republication of one indicator instance's output
// channels after a recompute pass. Prior results are replaced wholesale;
// consumers must not assume incremental deltas.
type IndicatorUpdate struct {
	InstanceID string   `json:"instance_id"`
	Type       string   `json:"type"` // registry type key, e.g. "macd"
	Symbol     string   `json:"symbol"`
	Interval   string   `json:"interval"`
	Visible    bool     `json:"visible"`
	Times      []int64  `json:"times"` // epoch ms, index-aligned with channels
	Channels   Channels `json:"channels"`
}

// PubChannel returns the Redis channel this update is published on:
// "chart:{symbol}:{interval}:{instance_id}".
func (u *IndicatorUpdate) PubChannel() string {
	return "chart:" + u.Symbol + ":" + u.Interval + ":" + u.InstanceID
}

// JSON returns the JSON-encoded update.
func (u *IndicatorUpdate) JSON() []byte {
	b, _ := json.Marshal(u)
	return b
}
