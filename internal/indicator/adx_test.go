package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"
)

func TestADXSeries_UptrendFavorsPlusDI(t *testing.T) {
	cs := trendBars(20, 100, 2)
	adx, plusDI, minusDI := ADXSeries(cs, 4)

	for i := range cs {
		if model.IsWarmup(plusDI[i]) {
			continue
		}
		assert.Greater(t, plusDI[i], minusDI[i], "index %d", i)
	}
	assertAllInRange(t, "adx", adx, 0, 100)
	assertAllInRange(t, "plusDI", plusDI, 0, 100)
	assertAllInRange(t, "minusDI", minusDI, 0, 100)
}

func TestADXSeries_DoubleWarmup(t *testing.T) {
	cs := trendBars(20, 100, 2)
	adx, plusDI, _ := ADXSeries(cs, 4)

	// DI needs period smoothed bars starting from the second candle; ADX
	// smooths DX again on top of that.
	assert.Equal(t, 4, countWarmup(plusDI))
	assert.Equal(t, 7, countWarmup(adx))
}

func TestADXSeries_FlatMarket(t *testing.T) {
	cs := fromCloses(5, 5, 5, 5, 5, 5, 5, 5)
	adx, plusDI, minusDI := ADXSeries(cs, 3)

	// No directional movement and no range: DI and ADX settle at 0.
	for i := range cs {
		if model.IsWarmup(plusDI[i]) {
			continue
		}
		assert.InDelta(t, 0.0, plusDI[i], 1e-9, "plusDI[%d]", i)
		assert.InDelta(t, 0.0, minusDI[i], 1e-9, "minusDI[%d]", i)
	}
	for i := range cs {
		if model.IsWarmup(adx[i]) {
			continue
		}
		assert.InDelta(t, 0.0, adx[i], 1e-9, "adx[%d]", i)
	}
}

func TestAroonSeries_FreshHighIs100(t *testing.T) {
	cs := trendBars(10, 50, 1)
	osc, up, down := AroonSeries(cs, 4)

	assert.Equal(t, 4, countWarmup(up))
	for i := 4; i < len(cs); i++ {
		// Every bar makes a new high; the low sits at the window's far edge.
		assert.InDelta(t, 100.0, up[i], 1e-9, "up[%d]", i)
		assert.InDelta(t, 0.0, down[i], 1e-9, "down[%d]", i)
		assert.InDelta(t, 100.0, osc[i], 1e-9, "osc[%d]", i)
	}
}

func TestAroonSeries_TiesGoToMostRecent(t *testing.T) {
	cs := fromCloses(5, 5, 5, 5, 5)
	osc, up, down := AroonSeries(cs, 3)
	// All bars tie: the most recent extreme wins, so both lines read 100.
	assert.InDelta(t, 100.0, up[4], 1e-9)
	assert.InDelta(t, 100.0, down[4], 1e-9)
	assert.InDelta(t, 0.0, osc[4], 1e-9)
}
