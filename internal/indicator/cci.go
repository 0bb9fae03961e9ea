package indicator

import (
	"math"

	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"
)

// CCISeries is the Commodity Channel Index over typical prices:
// (tp − sma(tp)) / (0.015·meanDeviation). A zero mean deviation yields 0.
func CCISeries(cs []model.Candle, period int) model.Series {
	n := len(cs)
	out := model.NewWarmupSeries(n)
	if period <= 0 || n < period {
		return out
	}
	tp := make([]float64, n)
	for i := range cs {
		tp[i] = cs[i].Typical()
	}
	for i := period - 1; i < n; i++ {
		mean := smaAt(tp, period, i)
		md := 0.0
		for j := i - period + 1; j <= i; j++ {
			md += math.Abs(tp[j] - mean)
		}
		md /= float64(period)
		if md == 0 {
			out[i] = 0
			continue
		}
		out[i] = (tp[i] - mean) / (0.015 * md)
	}
	return out
}

// WilliamsRSeries is −100·(highestHigh − close)/(highestHigh − lowestLow);
// a zero-range window yields −50.
func WilliamsRSeries(cs []model.Candle, period int) model.Series {
	n := len(cs)
	out := model.NewWarmupSeries(n)
	if period <= 0 || n < period {
		return out
	}
	for i := period - 1; i < n; i++ {
		hh := highestHigh(cs, period, i)
		ll := lowestLow(cs, period, i)
		if hh == ll {
			out[i] = -50.0
			continue
		}
		out[i] = -100.0 * (hh - cs[i].Close) / (hh - ll)
	}
	return out
}

// TRIXSeries is the 1-bar percentage rate of change of a triple-smoothed EMA
// of closes. A zero prior value yields 0.
func TRIXSeries(cs []model.Candle, period int) model.Series {
	n := len(cs)
	out := model.NewWarmupSeries(n)
	if period <= 0 || n == 0 {
		return out
	}
	e1 := emaOf(closes(cs), period)
	e2 := emaOfDefinedWindowed(e1, period)
	e3 := emaOfDefinedWindowed(e2, period)
	for i := 1; i < n; i++ {
		if model.IsWarmup(e3[i]) || model.IsWarmup(e3[i-1]) {
			continue
		}
		if e3[i-1] == 0 {
			out[i] = 0
			continue
		}
		out[i] = 100.0 * (e3[i] - e3[i-1]) / e3[i-1]
	}
	return out
}

// emaOfDefinedWindowed seeds with the SMA of the first period defined values
// (unlike emaOfDefined, which seeds at the first defined value alone).
func emaOfDefinedWindowed(vals model.Series, period int) model.Series {
	out := model.NewWarmupSeries(len(vals))
	if period <= 0 {
		return out
	}
	k := 2.0 / float64(period+1)
	seen := 0
	sum := 0.0
	var ema float64
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
			ema = sum / float64(period)
		} else {
			ema = v*k + ema*(1-k)
		}
		out[i] = ema
	}
	return out
}
