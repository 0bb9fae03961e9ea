package indicator

import "github.com/aaravjj2/tradingview-sim-sub000/internal/model"

// SMASeries is the arithmetic mean of trailing period closes.
func SMASeries(cs []model.Candle, period int) model.Series {
	vals := closes(cs)
	out := model.NewWarmupSeries(len(cs))
	if period <= 0 || len(cs) < period {
		return out
	}
	// Rolling sum keeps the pass O(n).
	sum := 0.0
	for i, v := range vals {
		sum += v
		if i >= period {
			sum -= vals[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		}
	}
	return out
}

// EMASeries is the exponential moving average of closes, seeded by the SMA
// of the first full window, smoothing constant k = 2/(period+1).
func EMASeries(cs []model.Candle, period int) model.Series {
	return emaOf(closes(cs), period)
}

// WMASeries is the linearly weighted moving average: the newest close gets
// weight period, the oldest weight 1.
func WMASeries(cs []model.Candle, period int) model.Series {
	vals := closes(cs)
	out := model.NewWarmupSeries(len(cs))
	if period <= 0 || len(cs) < period {
		return out
	}
	denom := float64(period*(period+1)) / 2.0
	for i := period - 1; i < len(vals); i++ {
		sum := 0.0
		for w := 1; w <= period; w++ {
			sum += vals[i-period+w] * float64(w)
		}
		out[i] = sum / denom
	}
	return out
}

// VWMASeries is the volume-weighted trailing mean of closes. Windows with
// zero total volume fall back to the plain mean.
func VWMASeries(cs []model.Candle, period int) model.Series {
	out := model.NewWarmupSeries(len(cs))
	if period <= 0 || len(cs) < period {
		return out
	}
	for i := period - 1; i < len(cs); i++ {
		pv, v := 0.0, 0.0
		for j := i - period + 1; j <= i; j++ {
			pv += cs[j].Close * cs[j].Volume
			v += cs[j].Volume
		}
		if v == 0 {
			sum := 0.0
			for j := i - period + 1; j <= i; j++ {
				sum += cs[j].Close
			}
			out[i] = sum / float64(period)
			continue
		}
		out[i] = pv / v
	}
	return out
}

// MomentumSeries is close[i] - close[i-period].
func MomentumSeries(cs []model.Candle, period int) model.Series {
	out := model.NewWarmupSeries(len(cs))
	if period <= 0 {
		return out
	}
	for i := period; i < len(cs); i++ {
		out[i] = cs[i].Close - cs[i-period].Close
	}
	return out
}

// ROCSeries is the percentage rate of change over period bars.
// A zero reference close yields 0.
func ROCSeries(cs []model.Candle, period int) model.Series {
	out := model.NewWarmupSeries(len(cs))
	if period <= 0 {
		return out
	}
	for i := period; i < len(cs); i++ {
		ref := cs[i-period].Close
		if ref == 0 {
			out[i] = 0
			continue
		}
		out[i] = 100.0 * (cs[i].Close - ref) / ref
	}
	return out
}
