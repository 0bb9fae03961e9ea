// Package indicator is the calculation engine: pure functions from a candle
// timeline to index-aligned output series.
//
// Contract shared by every calculator:
//   - the returned series has exactly the same length as the input,
//   - indices before enough history exist hold the warmup sentinel
//     (model.Warmup), never a partial value,
//   - empty input yields empty output, short input yields all-warmup output,
//   - numeric edge cases (zero ranges, zero denominators) resolve to the
//     documented per-indicator fallback value, never a panic or an error.
//
// Most calculators are pure functions of the full input. Supertrend and
// Parabolic SAR are sequential state machines: their value at index i depends
// on branching state carried from index i-1, so they are implemented as
// explicit left-to-right folds and must never be evaluated per-index.
// Wilder-smoothed families (RSI, ATR, ADX) also carry scalar state but do
// not branch; they share the wilderSmooth fold below.
package indicator

import (
	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"
)

func closes(cs []model.Candle) []float64 {
	out := make([]float64, len(cs))
	for i := range cs {
		out[i] = cs[i].Close
	}
	return out
}

// smaAt returns the arithmetic mean of vals[i-period+1..i].
// Caller guarantees i >= period-1.
func smaAt(vals []float64, period, i int) float64 {
	sum := 0.0
	for j := i - period + 1; j <= i; j++ {
		sum += vals[j]
	}
	return sum / float64(period)
}

// emaOf computes an EMA over vals, seeded by the SMA of the first full
// window, with smoothing constant k = 2/(period+1).
func emaOf(vals []float64, period int) model.Series {
	out := model.NewWarmupSeries(len(vals))
	if period <= 0 || len(vals) < period {
		return out
	}
	k := 2.0 / float64(period+1)
	ema := smaAt(vals, period, period-1)
	out[period-1] = ema
	for i := period; i < len(vals); i++ {
		ema = vals[i]*k + ema*(1-k)
		out[i] = ema
	}
	return out
}

// emaOfDefined is emaOf over a series that starts with warmup entries: the
// EMA recursion is seeded at the first defined value and runs from there.
// Used by MACD's signal line and TRIX's EMA stack.
func emaOfDefined(vals model.Series, period int) model.Series {
	out := model.NewWarmupSeries(len(vals))
	if period <= 0 {
		return out
	}
	k := 2.0 / float64(period+1)
	started := false
	var ema float64
	for i, v := range vals {
		if model.IsWarmup(v) {
			continue
		}
		if !started {
			ema = v
			started = true
		} else {
			ema = v*k + ema*(1-k)
		}
		out[i] = ema
	}
	return out
}

// wilderSmooth folds Wilder's averaging rule over vals:
// seeded by the simple mean of the first period values, then
// avg = (avg*(period-1) + x) / period.
// vals may lead with warmup entries; smoothing starts at the first
// defined run.
func wilderSmooth(vals model.Series, period int) model.Series {
	out := model.NewWarmupSeries(len(vals))
	if period <= 0 {
		return out
	}
	p := float64(period)
	seen := 0
	sum := 0.0
	var avg float64
	for i, v := range vals {
		if model.IsWarmup(v) {
			continue
		}
		seen++
		if seen < period {
			sum += v
			continue
		}
		if seen == period {
			sum += v
			avg = sum / p
		} else {
			avg = (avg*(p-1) + v) / p
		}
		out[i] = avg
	}
	return out
}

// highestHigh returns the maximum High over cs[i-period+1..i].
func highestHigh(cs []model.Candle, period, i int) float64 {
	hh := cs[i-period+1].High
	for j := i - period + 2; j <= i; j++ {
		if cs[j].High > hh {
			hh = cs[j].High
		}
	}
	return hh
}

// lowestLow returns the minimum Low over cs[i-period+1..i].
func lowestLow(cs []model.Candle, period, i int) float64 {
	ll := cs[i-period+1].Low
	for j := i - period + 2; j <= i; j++ {
		if cs[j].Low < ll {
			ll = cs[j].Low
		}
	}
	return ll
}

// moneyFlowMultiplier is ((close-low) - (high-close)) / (high-low),
// 0 when the bar has zero range.
func moneyFlowMultiplier(c model.Candle) float64 {
	r := c.High - c.Low
	if r == 0 {
		return 0
	}
	return ((c.Close - c.Low) - (c.High - c.Close)) / r
}
