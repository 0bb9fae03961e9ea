package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"
)

func trendBars(n int, start, step float64) []model.Candle {
	out := make([]model.Candle, n)
	for i := 0; i < n; i++ {
		c := start + float64(i)*step
		out[i] = bar(i, c, c+1, c-1, c, 1)
	}
	return out
}

func TestSupertrendSeries_UptrendStaysLong(t *testing.T) {
	cs := trendBars(20, 100, 2)
	line, dir := SupertrendSeries(cs, 5)

	for i := range cs {
		if model.IsWarmup(dir[i]) {
			continue
		}
		assert.Equal(t, 1.0, dir[i], "direction at %d", i)
		// In an uptrend the line is the lower band, below the close.
		assert.Less(t, line[i], cs[i].Close, "line at %d", i)
	}
}

func TestSupertrendSeries_DirectionIsBinary(t *testing.T) {
	cs := []model.Candle{
		bar(0, 100, 102, 98, 101, 1),
		bar(1, 101, 103, 99, 102, 1),
		bar(2, 102, 104, 100, 99, 1),
		bar(3, 99, 100, 90, 91, 1),
		bar(4, 91, 92, 80, 81, 1),
		bar(5, 81, 85, 79, 84, 1),
		bar(6, 84, 95, 83, 94, 1),
		bar(7, 94, 110, 93, 108, 1),
		bar(8, 108, 120, 107, 118, 1),
	}
	_, dir := SupertrendSeries(cs, 3)
	for i, d := range dir {
		if model.IsWarmup(d) {
			continue
		}
		assert.True(t, d == 1.0 || d == -1.0, "direction[%d] = %v", i, d)
	}
}

func TestSupertrendSeries_CrashFlipsShort(t *testing.T) {
	cs := trendBars(10, 100, 1)
	// A collapse far below the lower band forces a flip.
	for i := 10; i < 16; i++ {
		c := 100.0 - float64(i-9)*20
		cs = append(cs, bar(i, c+1, c+2, c-2, c, 1))
	}
	_, dir := SupertrendSeries(cs, 3)
	last := dir[len(dir)-1]
	assert.Equal(t, -1.0, last)
}

func TestSupertrendSeries_WarmupMatchesATR(t *testing.T) {
	cs := trendBars(8, 50, 1)
	line, dir := SupertrendSeries(cs, 4)
	atr := ATRSeries(cs, 4)
	for i := range cs {
		assert.Equal(t, model.IsWarmup(atr[i]), model.IsWarmup(line[i]), "line at %d", i)
		assert.Equal(t, model.IsWarmup(atr[i]), model.IsWarmup(dir[i]), "dir at %d", i)
	}
}
