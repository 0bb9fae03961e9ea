package indicator

import "github.com/aaravjj2/tradingview-sim-sub000/internal/model"

// Standard MACD constants; the fast period is user-configurable, the
// slow/signal periods keep their conventional ratios to it.
const (
	macdSlowRatio   = 26.0 / 12.0
	macdSignalRatio = 9.0 / 12.0
)

// MACDPeriods derives (fast, slow, signal) from the configured fast period,
// preserving the 12/26/9 shape.
func MACDPeriods(fast int) (int, int, int) {
	if fast <= 0 {
		fast = 12
	}
	slow := int(float64(fast)*macdSlowRatio + 0.5)
	if slow <= fast {
		slow = fast + 1
	}
	signal := int(float64(fast)*macdSignalRatio + 0.5)
	if signal < 1 {
		signal = 1
	}
	return fast, slow, signal
}

// MACDSeries returns (macd, signal, histogram).
// macd = fastEMA - slowEMA; signal is an EMA of the macd line seeded at its
// first defined value; histogram = macd - signal.
func MACDSeries(cs []model.Candle, fastPeriod int) (model.Series, model.Series, model.Series) {
	fast, slow, signalPeriod := MACDPeriods(fastPeriod)

	n := len(cs)
	macd := model.NewWarmupSeries(n)
	fastEMA := EMASeries(cs, fast)
	slowEMA := EMASeries(cs, slow)
	for i := 0; i < n; i++ {
		if model.IsWarmup(fastEMA[i]) || model.IsWarmup(slowEMA[i]) {
			continue
		}
		macd[i] = fastEMA[i] - slowEMA[i]
	}

	signal := emaOfDefined(macd, signalPeriod)

	hist := model.NewWarmupSeries(n)
	for i := 0; i < n; i++ {
		if model.IsWarmup(macd[i]) || model.IsWarmup(signal[i]) {
			continue
		}
		hist[i] = macd[i] - signal[i]
	}
	return macd, signal, hist
}
