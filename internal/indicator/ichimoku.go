package indicator

import "github.com/aaravjj2/tradingview-sim-sub000/internal/model"

// Conventional Ichimoku period ratios relative to the tenkan period (9):
// kijun 26, senkou span B 52.
const (
	ichimokuKijunRatio   = 26.0 / 9.0
	ichimokuSenkouBRatio = 52.0 / 9.0
)

// IchimokuSeries returns (tenkan, kijun, senkouA, senkouB).
// tenkan/kijun are midpoints of the rolling highest-high/lowest-low over
// their periods; senkou A = (tenkan+kijun)/2 and senkou B is the midpoint
// over its longer period. The spans are emitted WITHOUT time displacement:
// forward/backward shifting is a rendering concern, not an engine concern.
func IchimokuSeries(cs []model.Candle, tenkanPeriod int) (model.Series, model.Series, model.Series, model.Series) {
	if tenkanPeriod <= 0 {
		tenkanPeriod = 9
	}
	kijunPeriod := int(float64(tenkanPeriod)*ichimokuKijunRatio + 0.5)
	senkouBPeriod := int(float64(tenkanPeriod)*ichimokuSenkouBRatio + 0.5)

	n := len(cs)
	tenkan := midpointSeries(cs, tenkanPeriod)
	kijun := midpointSeries(cs, kijunPeriod)
	senkouB := midpointSeries(cs, senkouBPeriod)

	senkouA := model.NewWarmupSeries(n)
	for i := 0; i < n; i++ {
		if model.IsWarmup(tenkan[i]) || model.IsWarmup(kijun[i]) {
			continue
		}
		senkouA[i] = (tenkan[i] + kijun[i]) / 2
	}
	return tenkan, kijun, senkouA, senkouB
}

// midpointSeries is (highestHigh + lowestLow)/2 over a rolling window.
func midpointSeries(cs []model.Candle, period int) model.Series {
	out := model.NewWarmupSeries(len(cs))
	if period <= 0 || len(cs) < period {
		return out
	}
	for i := period - 1; i < len(cs); i++ {
		out[i] = (highestHigh(cs, period, i) + lowestLow(cs, period, i)) / 2
	}
	return out
}
