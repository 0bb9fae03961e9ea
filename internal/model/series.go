package model

import (
	"encoding/json"
	"math"
	"strconv"
)

// Warmup is the "insufficient history" sentinel stored in output series
// before an indicator has seen enough candles for its period. It is
// represented as NaN on the wire, but it is the only NaN the calculators
// ever produce: every division-by-zero case has a documented numeric
// fallback, so a NaN in a Series always means warmup, never a failed
// computation.
var Warmup = math.NaN()

// IsWarmup reports whether v is the warmup sentinel.
func IsWarmup(v float64) bool {
	return math.IsNaN(v)
}

// Series is a single indicator output channel, aligned one-to-one by index
// (and therefore by timestamp) with the candle timeline it was computed from.
type Series []float64

// NewWarmupSeries returns a Series of length n filled with the warmup sentinel.
func NewWarmupSeries(n int) Series {
	s := make(Series, n)
	for i := range s {
		s[i] = Warmup
	}
	return s
}

// Last returns the most recent value, or the warmup sentinel if empty.
func (s Series) Last() float64 {
	if len(s) == 0 {
		return Warmup
	}
	return s[len(s)-1]
}

// MarshalJSON encodes warmup values as null, since encoding/json rejects NaN.
func (s Series) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, len(s)*8+2)
	buf = append(buf, '[')
	for i, v := range s {
		if i > 0 {
			buf = append(buf, ',')
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			buf = append(buf, "null"...)
		} else {
			buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		}
	}
	buf = append(buf, ']')
	return buf, nil
}

// UnmarshalJSON decodes null entries back into the warmup sentinel.
func (s *Series) UnmarshalJSON(data []byte) error {
	var raw []*float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Series, len(raw))
	for i, p := range raw {
		if p == nil {
			out[i] = Warmup
		} else {
			out[i] = *p
		}
	}
	*s = out
	return nil
}

// Channels is the full output of one indicator instance. Primary is always
// present; the remaining channels are nil unless the indicator kind defines
// them. Non-nil channels all share the timeline length.
type Channels struct {
	Primary   Series `json:"primary"`
	Signal    Series `json:"signal,omitempty"`
	Histogram Series `json:"histogram,omitempty"`
	Upper     Series `json:"upper,omitempty"`
	Lower     Series `json:"lower,omitempty"`
}

// Len returns the timeline length of the channel set.
func (c *Channels) Len() int {
	return len(c.Primary)
}

// Each calls fn for every non-nil channel with its wire name.
func (c *Channels) Each(fn func(name string, s Series)) {
	if c.Primary != nil {
		fn("primary", c.Primary)
	}
	if c.Signal != nil {
		fn("signal", c.Signal)
	}
	if c.Histogram != nil {
		fn("histogram", c.Histogram)
	}
	if c.Upper != nil {
		fn("upper", c.Upper)
	}
	if c.Lower != nil {
		fn("lower", c.Lower)
	}
}
