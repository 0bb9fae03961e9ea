package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"
)

func TestRSISeries_HandComputed(t *testing.T) {
	// period 2, closes 10, 11, 10, 11: deltas +1, -1, +1.
	cs := fromCloses(10, 11, 10, 11)
	rsi := RSISeries(cs, 2)

	assert.True(t, model.IsWarmup(rsi[0]))
	assert.True(t, model.IsWarmup(rsi[1]))
	// Seed: avgGain = 0.5, avgLoss = 0.5 -> RS = 1 -> RSI = 50.
	assert.InDelta(t, 50.0, rsi[2], 1e-9)
	// avgGain = (0.5+1)/2 = 0.75, avgLoss = 0.5/2 = 0.25 -> RS = 3 -> RSI = 75.
	assert.InDelta(t, 75.0, rsi[3], 1e-9)
}

func TestRSISeries_AllGainsIs100(t *testing.T) {
	cs := fromCloses(1, 2, 3, 4, 5, 6, 7)
	rsi := RSISeries(cs, 5)
	for i := 5; i < len(rsi); i++ {
		assert.InDelta(t, 100.0, rsi[i], 1e-9, "index %d", i)
	}
}

func TestRSISeries_Bounds(t *testing.T) {
	cs := fromCloses(10, 12, 9, 14, 8, 13, 11, 15, 7, 16, 10, 12)
	rsi := RSISeries(cs, 3)
	assertAllInRange(t, "rsi", rsi, 0, 100)
	assert.Equal(t, 3, countWarmup(rsi))
}
