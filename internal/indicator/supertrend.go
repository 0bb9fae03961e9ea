package indicator

import (
	"math"

	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"
)

// supertrendMultiplier scales the ATR band offset.
const supertrendMultiplier = 3.0

// supertrendState is the carried state of the chronological fold. Each bar's
// band depends on the previous bar's chosen band, so this indicator cannot be
// memoized per index.
type supertrendState struct {
	upper     float64 // final upper band
	lower     float64 // final lower band
	direction float64 // +1 up, -1 down
	prevClose float64
	started   bool
}

// supertrendStep advances the fold by one bar. atr must be defined.
func (st *supertrendState) step(c model.Candle, atr float64) (line, dir float64) {
	mid := (c.High + c.Low) / 2
	basicUpper := mid + supertrendMultiplier*atr
	basicLower := mid - supertrendMultiplier*atr

	if !st.started {
		st.upper = basicUpper
		st.lower = basicLower
		st.direction = 1
		st.prevClose = c.Close
		st.started = true
		return st.lower, st.direction
	}

	// Sticky bands: the upper band only ratchets downward unless the prior
	// close broke above it; symmetric for the lower band.
	upper := basicUpper
	if st.prevClose <= st.upper {
		upper = math.Min(basicUpper, st.upper)
	}
	lower := basicLower
	if st.prevClose >= st.lower {
		lower = math.Max(basicLower, st.lower)
	}

	// Direction flips when close crosses the currently active band.
	dir = st.direction
	if st.direction == 1 && c.Close < lower {
		dir = -1
	} else if st.direction == -1 && c.Close > upper {
		dir = 1
	}

	st.upper = upper
	st.lower = lower
	st.direction = dir
	st.prevClose = c.Close

	if dir == 1 {
		return lower, dir
	}
	return upper, dir
}

// SupertrendSeries returns (line, direction) where direction is +1 in an
// uptrend and -1 in a downtrend. The line tracks the lower band while up and
// the upper band while down. Strictly a left-to-right single pass.
func SupertrendSeries(cs []model.Candle, period int) (model.Series, model.Series) {
	n := len(cs)
	line := model.NewWarmupSeries(n)
	dir := model.NewWarmupSeries(n)
	atr := ATRSeries(cs, period)

	var st supertrendState
	for i := 0; i < n; i++ {
		if model.IsWarmup(atr[i]) {
			continue
		}
		line[i], dir[i] = st.step(cs[i], atr[i])
	}
	return line, dir
}
