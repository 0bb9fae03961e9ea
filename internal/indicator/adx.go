package indicator

import (
	"math"

	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"
)

// ADXSeries returns (adx, plusDI, minusDI).
// Directional movement comes from consecutive high/low deltas; true range
// and ±DM are Wilder-smoothed; DI± = 100·smoothedDM/smoothedTR;
// DX = 100·|DI+ − DI−| / (DI+ + DI−); ADX is the Wilder-smoothed mean of DX
// and is only defined after 2·period−1 bars (double warmup).
func ADXSeries(cs []model.Candle, period int) (model.Series, model.Series, model.Series) {
	n := len(cs)
	adx := model.NewWarmupSeries(n)
	plusDI := model.NewWarmupSeries(n)
	minusDI := model.NewWarmupSeries(n)
	if period <= 0 || n < 2 {
		return adx, plusDI, minusDI
	}

	// ±DM and TR start at the second bar.
	plusDM := model.NewWarmupSeries(n)
	minusDM := model.NewWarmupSeries(n)
	tr := model.NewWarmupSeries(n)
	for i := 1; i < n; i++ {
		up := cs[i].High - cs[i-1].High
		dn := cs[i-1].Low - cs[i].Low
		pos, neg := 0.0, 0.0
		if up > dn && up > 0 {
			pos = up
		}
		if dn > up && dn > 0 {
			neg = dn
		}
		plusDM[i] = pos
		minusDM[i] = neg

		pc := cs[i-1].Close
		hl := cs[i].High - cs[i].Low
		tr[i] = math.Max(hl, math.Max(math.Abs(cs[i].High-pc), math.Abs(cs[i].Low-pc)))
	}

	smPlus := wilderSmooth(plusDM, period)
	smMinus := wilderSmooth(minusDM, period)
	smTR := wilderSmooth(tr, period)

	dx := model.NewWarmupSeries(n)
	for i := 0; i < n; i++ {
		if model.IsWarmup(smTR[i]) {
			continue
		}
		var dip, dim float64
		if smTR[i] != 0 {
			dip = 100.0 * smPlus[i] / smTR[i]
			dim = 100.0 * smMinus[i] / smTR[i]
		}
		plusDI[i] = dip
		minusDI[i] = dim
		if dip+dim == 0 {
			dx[i] = 0
			continue
		}
		dx[i] = 100.0 * math.Abs(dip-dim) / (dip + dim)
	}

	adx = wilderSmooth(dx, period)
	return adx, plusDI, minusDI
}
