package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"
)

func TestMACDPeriods(t *testing.T) {
	fast, slow, signal := MACDPeriods(12)
	assert.Equal(t, 12, fast)
	assert.Equal(t, 26, slow)
	assert.Equal(t, 9, signal)

	fast, slow, signal = MACDPeriods(6)
	assert.Equal(t, 6, fast)
	assert.Equal(t, 13, slow)
	assert.Equal(t, 5, signal)

	// Zero falls back to the conventional defaults.
	fast, slow, signal = MACDPeriods(0)
	assert.Equal(t, 12, fast)
	assert.Equal(t, 26, slow)
	assert.Equal(t, 9, signal)
}

func TestMACDSeries_FlatMarketIsZero(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100
	}
	macd, signal, hist := MACDSeries(fromCloses(closes...), 6)

	for i := range macd {
		if model.IsWarmup(macd[i]) {
			continue
		}
		assert.InDelta(t, 0.0, macd[i], 1e-9, "macd[%d]", i)
	}
	for i := range signal {
		if model.IsWarmup(signal[i]) {
			continue
		}
		assert.InDelta(t, 0.0, signal[i], 1e-9, "signal[%d]", i)
		assert.InDelta(t, 0.0, hist[i], 1e-9, "hist[%d]", i)
	}
}

func TestMACDSeries_Alignment(t *testing.T) {
	cs := fromCloses(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	macd, signal, hist := MACDSeries(cs, 3)

	assert.Len(t, macd, len(cs))
	assert.Len(t, signal, len(cs))
	assert.Len(t, hist, len(cs))

	// macd is defined exactly where the slow EMA is; histogram only where
	// both macd and signal are.
	_, slow, _ := MACDPeriods(3)
	assert.Equal(t, slow-1, countWarmup(macd))
	for i := range hist {
		if !model.IsWarmup(hist[i]) {
			assert.InDelta(t, macd[i]-signal[i], hist[i], 1e-9, "hist[%d]", i)
		}
	}
}
