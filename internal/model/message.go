package model

// MessageType classifies inbound feed messages.
type MessageType string

const (
	// BarForming carries the in-progress bar of the current interval.
	// It replaces the forming tail, never appends.
	BarForming MessageType = "BAR_FORMING"

	// BarConfirmed finalizes the current interval's bar.
	BarConfirmed MessageType = "BAR_CONFIRMED"

	// BarHistorical is a backfill bar delivered before live data starts.
	BarHistorical MessageType = "BAR_HISTORICAL"

	// SubscribedAck acknowledges a subscribe request. Carries no bar data.
	SubscribedAck MessageType = "SUBSCRIBED"
)

// StreamMessage is the wire format of the candle feed.
type StreamMessage struct {
	Type      MessageType `json:"type"`
	Symbol    string      `json:"symbol"`
	TSStartMS int64       `json:"ts_start_ms"`
	Open      float64     `json:"open"`
	High      float64     `json:"high"`
	Low       float64     `json:"low"`
	Close     float64     `json:"close"`
	Volume    float64     `json:"volume"`
}

// Candle converts the message's bar payload into a Candle.
func (m *StreamMessage) Candle() Candle {
	return Candle{
		Time:   m.TSStartMS,
		Open:   m.Open,
		High:   m.High,
		Low:    m.Low,
		Close:  m.Close,
		Volume: m.Volume,
	}
}

// HasBar reports whether the message type carries bar data.
func (m *StreamMessage) HasBar() bool {
	switch m.Type {
	case BarForming, BarConfirmed, BarHistorical:
		return true
	}
	return false
}

// SubscribeRequest is sent by the client after (re)connecting.
type SubscribeRequest struct {
	Action   string `json:"action"` // always "subscribe"
	Symbol   string `json:"symbol"`
	Interval string `json:"interval"` // e.g. "1m", "5m"
}
