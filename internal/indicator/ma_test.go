package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"
)

func TestSMASeries(t *testing.T) {
	cs := fromCloses(10, 20, 30)
	sma := SMASeries(cs, 3)

	assert.True(t, model.IsWarmup(sma[0]))
	assert.True(t, model.IsWarmup(sma[1]))
	assert.InDelta(t, 20.0, sma[2], 1e-9)

	sma2 := SMASeries(cs, 2)
	assert.True(t, model.IsWarmup(sma2[0]))
	assert.InDelta(t, 15.0, sma2[1], 1e-9)
	assert.InDelta(t, 25.0, sma2[2], 1e-9)
}

func TestEMASeries_SeededBySMA(t *testing.T) {
	cs := fromCloses(1, 2, 3, 4, 5, 6)
	ema := EMASeries(cs, 5)

	// First defined value is the SMA of the first window.
	assert.Equal(t, 4, countWarmup(ema))
	assert.InDelta(t, 3.0, ema[4], 1e-9)
	// k = 2/6 = 1/3: 6*(1/3) + 3*(2/3) = 4.
	assert.InDelta(t, 4.0, ema[5], 1e-9)
}

func TestWMASeries(t *testing.T) {
	cs := fromCloses(1, 2, 3)
	wma := WMASeries(cs, 3)

	assert.Equal(t, 2, countWarmup(wma))
	// (1*1 + 2*2 + 3*3) / 6
	assert.InDelta(t, 14.0/6.0, wma[2], 1e-9)
}

func TestVWMASeries(t *testing.T) {
	cs := []model.Candle{
		bar(0, 10, 10, 10, 10, 1),
		bar(1, 20, 20, 20, 20, 3),
	}
	vwma := VWMASeries(cs, 2)
	assert.InDelta(t, (10*1+20*3)/4.0, vwma[1], 1e-9)
}

func TestVWMASeries_ZeroVolumeFallsBackToMean(t *testing.T) {
	cs := []model.Candle{
		bar(0, 10, 10, 10, 10, 0),
		bar(1, 20, 20, 20, 20, 0),
	}
	vwma := VWMASeries(cs, 2)
	assert.InDelta(t, 15.0, vwma[1], 1e-9)
}

func TestMomentumSeries(t *testing.T) {
	cs := fromCloses(1, 2, 4)
	m := MomentumSeries(cs, 1)

	assert.True(t, model.IsWarmup(m[0]))
	assert.InDelta(t, 1.0, m[1], 1e-9)
	assert.InDelta(t, 2.0, m[2], 1e-9)
}

func TestROCSeries(t *testing.T) {
	cs := fromCloses(100, 110)
	roc := ROCSeries(cs, 1)
	assert.InDelta(t, 10.0, roc[1], 1e-9)
}

func TestROCSeries_ZeroReference(t *testing.T) {
	cs := fromCloses(0, 5)
	roc := ROCSeries(cs, 1)
	assert.InDelta(t, 0.0, roc[1], 1e-9)
}
