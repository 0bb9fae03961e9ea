package indicator

import "github.com/aaravjj2/tradingview-sim-sub000/internal/model"

// AroonSeries returns (oscillator, up, down).
// up = 100·(period − barsSinceHighestHigh)/period over the trailing
// period+1 bars; down symmetric with the lowest low; oscillator = up − down.
func AroonSeries(cs []model.Candle, period int) (model.Series, model.Series, model.Series) {
	n := len(cs)
	osc := model.NewWarmupSeries(n)
	up := model.NewWarmupSeries(n)
	down := model.NewWarmupSeries(n)
	if period <= 0 || n < period+1 {
		return osc, up, down
	}
	p := float64(period)
	for i := period; i < n; i++ {
		hiIdx, loIdx := i-period, i-period
		for j := i - period; j <= i; j++ {
			if cs[j].High >= cs[hiIdx].High {
				hiIdx = j
			}
			if cs[j].Low <= cs[loIdx].Low {
				loIdx = j
			}
		}
		u := 100.0 * (p - float64(i-hiIdx)) / p
		d := 100.0 * (p - float64(i-loIdx)) / p
		up[i] = u
		down[i] = d
		osc[i] = u - d
	}
	return osc, up, down
}
