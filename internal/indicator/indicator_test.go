package indicator

import (
	"math"
	"testing"

	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"
)

const minuteMS = int64(60_000)

// testBase sits mid-day so minute bars never straddle a session boundary.
var testBase = int64(1_700_000_000_000)

func bar(i int, o, h, l, c, v float64) model.Candle {
	return model.Candle{
		Time:   testBase + int64(i)*minuteMS,
		Open:   o,
		High:   h,
		Low:    l,
		Close:  c,
		Volume: v,
	}
}

// fromCloses builds flat bars (open=high=low=close) with volume 1.
func fromCloses(closes ...float64) []model.Candle {
	out := make([]model.Candle, len(closes))
	for i, c := range closes {
		out[i] = bar(i, c, c, c, c, 1)
	}
	return out
}

func countWarmup(s model.Series) int {
	n := 0
	for _, v := range s {
		if model.IsWarmup(v) {
			n++
		}
	}
	return n
}

func assertAllInRange(t *testing.T, label string, s model.Series, lo, hi float64) {
	t.Helper()
	for i, v := range s {
		if model.IsWarmup(v) {
			continue
		}
		if v < lo || v > hi {
			t.Errorf("%s[%d] = %v outside [%v, %v]", label, i, v, lo, hi)
		}
	}
}

func assertClose(t *testing.T, label string, got, want float64) {
	t.Helper()
	if model.IsWarmup(got) {
		t.Fatalf("%s: got warmup, want %v", label, want)
	}
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", label, got, want)
	}
}

func TestSeriesLengthContract(t *testing.T) {
	cs := fromCloses(1, 2, 3)

	if got := len(SMASeries(cs, 10)); got != 3 {
		t.Fatalf("short input: len = %d, want 3", got)
	}
	if got := countWarmup(SMASeries(cs, 10)); got != 3 {
		t.Fatalf("short input: warmups = %d, want all 3", got)
	}
	if got := len(SMASeries(nil, 5)); got != 0 {
		t.Fatalf("empty input: len = %d, want 0", got)
	}
}
