package indicator

import (
	"math"

	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"
)

// trueRanges returns the true-range sequence:
// max(high-low, |high-prevClose|, |low-prevClose|); the first bar has no
// previous close and uses high-low alone.
func trueRanges(cs []model.Candle) model.Series {
	out := make(model.Series, len(cs))
	for i := range cs {
		hl := cs[i].High - cs[i].Low
		if i == 0 {
			out[i] = hl
			continue
		}
		pc := cs[i-1].Close
		out[i] = math.Max(hl, math.Max(math.Abs(cs[i].High-pc), math.Abs(cs[i].Low-pc)))
	}
	return out
}

// ATRSeries is the Wilder-smoothed average true range, smoothed identically
// to RSI's averaging rule.
func ATRSeries(cs []model.Candle, period int) model.Series {
	if len(cs) == 0 {
		return model.Series{}
	}
	return wilderSmooth(trueRanges(cs), period)
}
