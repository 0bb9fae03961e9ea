package indicator

import "github.com/aaravjj2/tradingview-sim-sub000/internal/model"

// valueAreaTarget is the share of total volume the value area must enclose.
const valueAreaTarget = 0.70

// Profile is the result of a volume-profile pass over a candle window.
type Profile struct {
	Rows    []float64 // volume per price row, low to high
	RowLow  float64   // bottom price of row 0
	RowSize float64   // price height of one row
	POC     float64   // center price of the max-volume row
	VAH     float64   // value area high (top of highest VA row)
	VAL     float64   // value area low (bottom of lowest VA row)
}

// ComputeProfile buckets the candles' price range into rows equal price rows
// and distributes each candle's volume evenly across all rows its high-low
// range spans. The POC is the max-volume row; the value area grows outward
// from the POC by always absorbing whichever neighboring row holds more
// volume, until at least 70% of total volume is enclosed.
func ComputeProfile(cs []model.Candle, rows int) (Profile, bool) {
	if len(cs) == 0 || rows <= 0 {
		return Profile{}, false
	}

	lo, hi := cs[0].Low, cs[0].High
	for _, c := range cs[1:] {
		if c.Low < lo {
			lo = c.Low
		}
		if c.High > hi {
			hi = c.High
		}
	}
	if hi == lo {
		// Degenerate flat range: one row holds everything.
		total := 0.0
		for _, c := range cs {
			total += c.Volume
		}
		return Profile{
			Rows:    []float64{total},
			RowLow:  lo,
			RowSize: 0,
			POC:     lo,
			VAH:     lo,
			VAL:     lo,
		}, true
	}

	p := Profile{
		Rows:    make([]float64, rows),
		RowLow:  lo,
		RowSize: (hi - lo) / float64(rows),
	}
	rowOf := func(price float64) int {
		r := int((price - lo) / p.RowSize)
		if r < 0 {
			r = 0
		}
		if r >= rows {
			r = rows - 1
		}
		return r
	}

	total := 0.0
	for _, c := range cs {
		first, last := rowOf(c.Low), rowOf(c.High)
		share := c.Volume / float64(last-first+1)
		for r := first; r <= last; r++ {
			p.Rows[r] += share
		}
		total += c.Volume
	}

	poc := 0
	for r := range p.Rows {
		if p.Rows[r] > p.Rows[poc] {
			poc = r
		}
	}
	p.POC = lo + (float64(poc)+0.5)*p.RowSize

	// Grow the value area outward from the POC toward the heavier neighbor.
	lower, upper := poc, poc
	enclosed := p.Rows[poc]
	for enclosed < valueAreaTarget*total && (lower > 0 || upper < rows-1) {
		below, above := -1.0, -1.0
		if lower > 0 {
			below = p.Rows[lower-1]
		}
		if upper < rows-1 {
			above = p.Rows[upper+1]
		}
		if above > below {
			upper++
			enclosed += p.Rows[upper]
		} else {
			lower--
			enclosed += p.Rows[lower]
		}
	}
	p.VAL = lo + float64(lower)*p.RowSize
	p.VAH = lo + float64(upper+1)*p.RowSize
	return p, true
}

// VolumeProfileSeries projects the profile onto the channel contract:
// (poc, vah, val) as constant-valued series aligned to the timeline, so the
// one-shape-per-indicator contract holds for every kind.
func VolumeProfileSeries(cs []model.Candle, rows int) (model.Series, model.Series, model.Series) {
	n := len(cs)
	poc := model.NewWarmupSeries(n)
	vah := model.NewWarmupSeries(n)
	val := model.NewWarmupSeries(n)
	p, ok := ComputeProfile(cs, rows)
	if !ok {
		return poc, vah, val
	}
	for i := 0; i < n; i++ {
		poc[i] = p.POC
		vah[i] = p.VAH
		val[i] = p.VAL
	}
	return poc, vah, val
}
