package indicator

import "github.com/aaravjj2/tradingview-sim-sub000/internal/model"

// OBVSeries is a cumulative signed-volume walk: add volume on an up close,
// subtract on a down close, unchanged on an equal close. Starts at 0.
func OBVSeries(cs []model.Candle) model.Series {
	n := len(cs)
	out := make(model.Series, n)
	if n == 0 {
		return out
	}
	obv := 0.0
	out[0] = obv
	for i := 1; i < n; i++ {
		switch {
		case cs[i].Close > cs[i-1].Close:
			obv += cs[i].Volume
		case cs[i].Close < cs[i-1].Close:
			obv -= cs[i].Volume
		}
		out[i] = obv
	}
	return out
}

// ADLSeries is the Accumulation/Distribution line: the cumulative sum of
// moneyFlowMultiplier·volume.
func ADLSeries(cs []model.Candle) model.Series {
	out := make(model.Series, len(cs))
	adl := 0.0
	for i := range cs {
		adl += moneyFlowMultiplier(cs[i]) * cs[i].Volume
		out[i] = adl
	}
	return out
}

// CMFSeries is Chaikin Money Flow: the window sum of
// moneyFlowMultiplier·volume divided by the window sum of volume.
// A zero-volume window yields 0.
func CMFSeries(cs []model.Candle, period int) model.Series {
	n := len(cs)
	out := model.NewWarmupSeries(n)
	if period <= 0 || n < period {
		return out
	}
	for i := period - 1; i < n; i++ {
		mf, vol := 0.0, 0.0
		for j := i - period + 1; j <= i; j++ {
			mf += moneyFlowMultiplier(cs[j]) * cs[j].Volume
			vol += cs[j].Volume
		}
		if vol == 0 {
			out[i] = 0
			continue
		}
		out[i] = mf / vol
	}
	return out
}

// MFISeries is the Money Flow Index built on the signed money-flow volume:
// 100·positiveFlow/(positiveFlow+negativeFlow) over the window, where the
// sign comes from the money-flow multiplier. A window with no flow yields 50.
func MFISeries(cs []model.Candle, period int) model.Series {
	n := len(cs)
	out := model.NewWarmupSeries(n)
	if period <= 0 || n < period {
		return out
	}
	for i := period - 1; i < n; i++ {
		pos, neg := 0.0, 0.0
		for j := i - period + 1; j <= i; j++ {
			flow := moneyFlowMultiplier(cs[j]) * cs[j].Volume * cs[j].Typical()
			if flow >= 0 {
				pos += flow
			} else {
				neg -= flow
			}
		}
		if pos+neg == 0 {
			out[i] = 50.0
			continue
		}
		out[i] = 100.0 * pos / (pos + neg)
	}
	return out
}
