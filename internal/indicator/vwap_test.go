package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"
	"github.com/aaravjj2/tradingview-sim-sub000/internal/session"
)

const dayMS = int64(86_400_000)

func TestVWAPSeries_HandComputed(t *testing.T) {
	cs := []model.Candle{
		// typical = 10, volume 100
		bar(0, 10, 10, 10, 10, 100),
		// typical = 12, volume 200
		bar(1, 12, 12, 12, 12, 200),
	}
	vwap := VWAPSeries(cs)

	assert.InDelta(t, 10.0, vwap[0], 1e-9)
	assert.InDelta(t, (10*100+12*200)/300.0, vwap[1], 1e-6) // 11.333...
}

func TestVWAPSeries_SessionReset(t *testing.T) {
	c0 := bar(0, 10, 10, 10, 10, 100)
	c1 := bar(1, 20, 20, 20, 20, 100)
	c1.Time = c0.Time + dayMS // next calendar day

	if !session.Boundary(c0.Time, c1.Time) {
		t.Fatal("test candles must straddle a day boundary")
	}
	vwap := VWAPSeries([]model.Candle{c0, c1})

	// The new session starts fresh: its VWAP is the bar's own typical price.
	assert.InDelta(t, 10.0, vwap[0], 1e-9)
	assert.InDelta(t, 20.0, vwap[1], 1e-9)
}

func TestVWAPSeries_ZeroVolumeFallsBackToTypical(t *testing.T) {
	cs := []model.Candle{bar(0, 8, 10, 6, 9, 0)}
	vwap := VWAPSeries(cs)
	assert.InDelta(t, cs[0].Typical(), vwap[0], 1e-9)
}

func TestVWAPBandsSeries_Ordering(t *testing.T) {
	cs := []model.Candle{
		bar(0, 10, 11, 9, 10, 100),
		bar(1, 10, 13, 10, 12, 150),
		bar(2, 12, 12, 8, 9, 120),
	}
	vwap, upper, lower := VWAPBandsSeries(cs)
	for i := range cs {
		assert.LessOrEqual(t, lower[i], vwap[i], "index %d", i)
		assert.LessOrEqual(t, vwap[i], upper[i], "index %d", i)
	}
}

func TestAnchoredVWAPSeries(t *testing.T) {
	cs := []model.Candle{
		bar(0, 100, 100, 100, 100, 500), // before the anchor, ignored
		bar(1, 10, 10, 10, 10, 100),
		bar(2, 12, 12, 12, 12, 200),
	}
	av := AnchoredVWAPSeries(cs, 1)

	assert.True(t, model.IsWarmup(av[0]))
	assert.InDelta(t, 10.0, av[1], 1e-9)
	assert.InDelta(t, (10*100+12*200)/300.0, av[2], 1e-6)
}

func TestAnchoredVWAPSeries_AnchorBeyondEnd(t *testing.T) {
	cs := fromCloses(1, 2, 3)
	av := AnchoredVWAPSeries(cs, 10)
	assert.Equal(t, 3, countWarmup(av))
}
