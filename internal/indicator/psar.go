package indicator

import (
	"math"

	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"
)

const (
	psarAFStart = 0.02
	psarAFStep  = 0.02
	psarAFMax   = 0.2
)

// PSARSeries is Wilder's Parabolic Stop-and-Reverse: an explicit two-state
// machine (rising / falling) carrying the extreme point and an acceleration
// factor that starts at 0.02, grows by 0.02 per new extreme and caps at 0.2.
// Reversal triggers: low < SAR while rising, high > SAR while falling; on
// reversal the SAR snaps to the prior extreme and af/extreme reset.
// Values start at the second bar.
func PSARSeries(cs []model.Candle) model.Series {
	n := len(cs)
	out := model.NewWarmupSeries(n)
	if n < 2 {
		return out
	}

	rising := cs[1].Close >= cs[0].Close
	af := psarAFStart
	var sar, ep float64
	if rising {
		sar = cs[0].Low
		ep = cs[1].High
	} else {
		sar = cs[0].High
		ep = cs[1].Low
	}
	out[1] = sar

	for i := 2; i < n; i++ {
		c := cs[i]
		sar = sar + af*(ep-sar)

		if rising {
			// SAR never rises above the prior two lows.
			sar = math.Min(sar, math.Min(cs[i-1].Low, cs[i-2].Low))
			if c.Low < sar {
				// Reverse to falling: snap to the prior extreme.
				sar = ep
				ep = c.Low
				af = psarAFStart
				rising = false
			} else if c.High > ep {
				ep = c.High
				af = math.Min(af+psarAFStep, psarAFMax)
			}
		} else {
			sar = math.Max(sar, math.Max(cs[i-1].High, cs[i-2].High))
			if c.High > sar {
				sar = ep
				ep = c.High
				af = psarAFStart
				rising = true
			} else if c.Low < ep {
				ep = c.Low
				af = math.Min(af+psarAFStep, psarAFMax)
			}
		}
		out[i] = sar
	}
	return out
}
