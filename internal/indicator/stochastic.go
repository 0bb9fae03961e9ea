package indicator

import "github.com/aaravjj2/tradingview-sim-sub000/internal/model"

// stochSmoothing is the %D smoothing window.
const stochSmoothing = 3

// StochasticSeries returns (%K, %D).
// %K = 100·(close − lowestLow)/(highestHigh − lowestLow) over the window;
// a zero-range window yields 50 instead of propagating a division by zero.
// %D is a simple moving average of defined %K values.
func StochasticSeries(cs []model.Candle, period int) (model.Series, model.Series) {
	n := len(cs)
	k := model.NewWarmupSeries(n)
	if period <= 0 || n < period {
		return k, model.NewWarmupSeries(n)
	}
	for i := period - 1; i < n; i++ {
		hh := highestHigh(cs, period, i)
		ll := lowestLow(cs, period, i)
		if hh == ll {
			k[i] = 50.0
			continue
		}
		k[i] = 100.0 * (cs[i].Close - ll) / (hh - ll)
	}
	return k, smaOfDefined(k, stochSmoothing)
}

// StochRSISeries applies the stochastic formula to the RSI series itself:
// (RSI − minRSI)/(maxRSI − minRSI)·100 over a period window, 50 on a flat
// window. Returns (%K, %D).
func StochRSISeries(cs []model.Candle, period int) (model.Series, model.Series) {
	n := len(cs)
	k := model.NewWarmupSeries(n)
	if period <= 0 {
		return k, model.NewWarmupSeries(n)
	}
	rsi := RSISeries(cs, period)
	for i := 0; i < n; i++ {
		if model.IsWarmup(rsi[i]) {
			continue
		}
		// Window of period defined RSI values ending at i.
		lo, hi, count := rsi[i], rsi[i], 0
		for j := i; j >= 0 && count < period; j-- {
			if model.IsWarmup(rsi[j]) {
				break
			}
			if rsi[j] < lo {
				lo = rsi[j]
			}
			if rsi[j] > hi {
				hi = rsi[j]
			}
			count++
		}
		if count < period {
			continue
		}
		if hi == lo {
			k[i] = 50.0
			continue
		}
		k[i] = 100.0 * (rsi[i] - lo) / (hi - lo)
	}
	return k, smaOfDefined(k, stochSmoothing)
}

// smaOfDefined is an SMA over a series that leads with warmup entries:
// output is defined once period defined values have accumulated.
func smaOfDefined(vals model.Series, period int) model.Series {
	out := model.NewWarmupSeries(len(vals))
	if period <= 0 {
		return out
	}
	for i := range vals {
		if model.IsWarmup(vals[i]) {
			continue
		}
		sum, count := 0.0, 0
		for j := i; j >= 0 && count < period; j-- {
			if model.IsWarmup(vals[j]) {
				break
			}
			sum += vals[j]
			count++
		}
		if count == period {
			out[i] = sum / float64(period)
		}
	}
	return out
}
