package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"
)

// Cross-checks against values worked out by hand, independent of the
// helper-based tests elsewhere in the package.

func TestSMASeries_CrossCheck(t *testing.T) {
	out := SMASeries(fromCloses(1, 2, 3, 4), 2)
	assert.True(t, model.IsWarmup(out[0]))
	assert.InDelta(t, 1.5, out[1], 1e-9)
	assert.InDelta(t, 2.5, out[2], 1e-9)
	assert.InDelta(t, 3.5, out[3], 1e-9)
}

func TestEMASeries_CrossCheck(t *testing.T) {
	// Seed is the simple mean of the first 3 closes; k = 2/(3+1) = 0.5.
	out := EMASeries(fromCloses(1, 2, 3, 4, 5), 3)
	assert.True(t, model.IsWarmup(out[1]))
	assert.InDelta(t, 2.0, out[2], 1e-9) // seed
	assert.InDelta(t, 3.0, out[3], 1e-9) // 2 + 0.5*(4-2)
	assert.InDelta(t, 4.0, out[4], 1e-9) // 3 + 0.5*(5-3)
}

func TestWMASeries_CrossCheck(t *testing.T) {
	out := WMASeries(fromCloses(10, 20, 30), 3)
	// (10*1 + 20*2 + 30*3) / (1+2+3)
	assert.InDelta(t, 140.0/6.0, out[2], 1e-9)
}

func TestBollingerSeries_CrossCheck(t *testing.T) {
	// Classic population-stddev example: mean 5, sigma 2.
	mid, up, lo := BollingerSeries(fromCloses(2, 4, 4, 4, 5, 5, 7, 9), 8)
	assert.True(t, model.IsWarmup(mid[6]))
	assert.InDelta(t, 5.0, mid[7], 1e-9)
	assert.InDelta(t, 9.0, up[7], 1e-9)
	assert.InDelta(t, 1.0, lo[7], 1e-9)
}
