package indicator

import (
	"math"

	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"
	"github.com/aaravjj2/tradingview-sim-sub000/internal/session"
)

// vwapBandK is the band width in volume-weighted standard deviations.
const vwapBandK = 2.0

// VWAPSeries accumulates typicalPrice·volume / volume from the start of the
// current session, resetting the sums when the candle timestamps cross a
// calendar-day boundary. A zero cumulative volume falls back to the bar's
// typical price.
func VWAPSeries(cs []model.Candle) model.Series {
	vwap, _, _ := vwapWithBands(cs, false)
	return vwap
}

// VWAPBandsSeries returns (vwap, upper, lower) where the bands are
// vwap ± k·stddev, stddev being the volume-weighted population deviation of
// typical prices within the session.
func VWAPBandsSeries(cs []model.Candle) (model.Series, model.Series, model.Series) {
	return vwapWithBands(cs, true)
}

func vwapWithBands(cs []model.Candle, withBands bool) (model.Series, model.Series, model.Series) {
	n := len(cs)
	vwap := model.NewWarmupSeries(n)
	upper := model.NewWarmupSeries(n)
	lower := model.NewWarmupSeries(n)

	var cumPV, cumV, cumPV2 float64
	for i := 0; i < n; i++ {
		if i > 0 && session.Boundary(cs[i-1].Time, cs[i].Time) {
			cumPV, cumV, cumPV2 = 0, 0, 0
		}
		tp := cs[i].Typical()
		cumPV += tp * cs[i].Volume
		cumV += cs[i].Volume
		cumPV2 += tp * tp * cs[i].Volume

		if cumV == 0 {
			vwap[i] = tp
			if withBands {
				upper[i] = tp
				lower[i] = tp
			}
			continue
		}
		v := cumPV / cumV
		vwap[i] = v
		if withBands {
			variance := cumPV2/cumV - v*v
			if variance < 0 {
				variance = 0
			}
			sd := math.Sqrt(variance)
			upper[i] = v + vwapBandK*sd
			lower[i] = v - vwapBandK*sd
		}
	}
	return vwap, upper, lower
}

// AnchoredVWAPSeries accumulates typicalPrice·volume / volume from the
// anchor index onward; indices before the anchor stay warmup. There is no
// session reset - the anchor is the reset.
func AnchoredVWAPSeries(cs []model.Candle, anchor int) model.Series {
	n := len(cs)
	out := model.NewWarmupSeries(n)
	if anchor < 0 {
		anchor = 0
	}
	if anchor >= n {
		return out
	}
	var cumPV, cumV float64
	for i := anchor; i < n; i++ {
		tp := cs[i].Typical()
		cumPV += tp * cs[i].Volume
		cumV += cs[i].Volume
		if cumV == 0 {
			out[i] = tp
			continue
		}
		out[i] = cumPV / cumV
	}
	return out
}
