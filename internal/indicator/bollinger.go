package indicator

import (
	"math"

	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"
)

// bollingerK is the band width in standard deviations.
const bollingerK = 2.0

// BollingerSeries returns (middle, upper, lower).
// middle is the SMA of closes; the bands are middle ± k·stddev where stddev
// is the population standard deviation of the same window (divide by period,
// not period-1).
func BollingerSeries(cs []model.Candle, period int) (model.Series, model.Series, model.Series) {
	n := len(cs)
	middle := SMASeries(cs, period)
	upper := model.NewWarmupSeries(n)
	lower := model.NewWarmupSeries(n)
	if period <= 0 || n < period {
		return middle, upper, lower
	}
	vals := closes(cs)
	for i := period - 1; i < n; i++ {
		m := middle[i]
		sq := 0.0
		for j := i - period + 1; j <= i; j++ {
			d := vals[j] - m
			sq += d * d
		}
		sd := math.Sqrt(sq / float64(period))
		upper[i] = m + bollingerK*sd
		lower[i] = m - bollingerK*sd
	}
	return middle, upper, lower
}
