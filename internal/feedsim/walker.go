package feedsim

import "math/rand"

// Walker evolves a simulated bar via a small random walk. One Walker per
// subscription; the RNG is seeded explicitly so runs are reproducible.
type Walker struct {
	rng   *rand.Rand
	price float64
}

// NewWalker creates a walker starting at the given price.
func NewWalker(seed int64, startPrice float64) *Walker {
	return &Walker{rng: rand.New(rand.NewSource(seed)), price: startPrice}
}

// step moves the price by up to ±0.1% and floors it at one cent.
func (w *Walker) step() float64 {
	pct := (w.rng.Float64()*0.2 - 0.1) / 100.0
	w.price += w.price * pct
	if w.price < 0.01 {
		w.price = 0.01
	}
	return w.price
}

// Bar is the simulator's in-progress bar state.
type Bar struct {
	Time   int64 // epoch ms, aligned to the interval
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// OpenBar starts a fresh bar at ts, opening at the current price.
func (w *Walker) OpenBar(ts int64) Bar {
	p := w.price
	return Bar{Time: ts, Open: p, High: p, Low: p, Close: p}
}

// Tick advances the walk and folds the new trade into the bar.
func (w *Walker) Tick(b Bar) Bar {
	p := w.step()
	b.Close = p
	if p > b.High {
		b.High = p
	}
	if p < b.Low {
		b.Low = p
	}
	b.Volume += float64(w.rng.Intn(100) + 1)
	return b
}

// HistoryBars generates n consecutive confirmed bars ending just before
// startTS, oldest first.
func (w *Walker) HistoryBars(n int, startTS, intervalMS int64) []Bar {
	out := make([]Bar, 0, n)
	ts := startTS - int64(n)*intervalMS
	for i := 0; i < n; i++ {
		b := w.OpenBar(ts)
		for t := 0; t < 10; t++ {
			b = w.Tick(b)
		}
		out = append(out, b)
		ts += intervalMS
	}
	return out
}

// AlignTS floors an epoch-ms timestamp to the interval boundary.
func AlignTS(ts, intervalMS int64) int64 {
	return ts - ts%intervalMS
}
