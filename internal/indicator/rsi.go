package indicator

import "github.com/aaravjj2/tradingview-sim-sub000/internal/model"

// RSISeries is Wilder's Relative Strength Index over closes.
// Average gain/loss are seeded as the simple mean of the first period deltas,
// then recursed with avg = (avg*(period-1) + new) / period.
// When the average loss is 0 the RSI is 100 by convention.
func RSISeries(cs []model.Candle, period int) model.Series {
	n := len(cs)
	out := model.NewWarmupSeries(n)
	if period <= 0 || n < period+1 {
		return out
	}
	p := float64(period)

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		delta := cs[i].Close - cs[i-1].Close
		if delta > 0 {
			avgGain += delta
		} else {
			avgLoss -= delta
		}
	}
	avgGain /= p
	avgLoss /= p
	out[period] = rsiValue(avgGain, avgLoss)

	for i := period + 1; i < n; i++ {
		delta := cs[i].Close - cs[i-1].Close
		gain, loss := 0.0, 0.0
		if delta > 0 {
			gain = delta
		} else {
			loss = -delta
		}
		avgGain = (avgGain*(p-1) + gain) / p
		avgLoss = (avgLoss*(p-1) + loss) / p
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}
