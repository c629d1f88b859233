// Package core holds the per-sample contract shared by every unit generator
// together with small numeric and configuration helpers.
package core

// Ticker processes one sample and returns one sample.
//
// A tick consumes one input sample, produces one output sample and advances
// internal state by one sample period. Sources that generate a signal on their
// own ignore the input.
type Ticker interface {
	Tick(sample float64) float64
}

// Resetter is implemented by tickers that can clear their internal state.
type Resetter interface {
	Reset()
}

// TickerFunc adapts a plain function to [Ticker].
type TickerFunc func(sample float64) float64

// Tick calls f(sample).
func (f TickerFunc) Tick(sample float64) float64 { return f(sample) }

// Passthrough returns its input unchanged.
type Passthrough struct{}

// Tick returns sample.
func (Passthrough) Tick(sample float64) float64 { return sample }

// ProcessInPlace replaces every sample of buf with t.Tick(sample), in order.
func ProcessInPlace(t Ticker, buf []float64) {
	for i := range buf {
		buf[i] = t.Tick(buf[i])
	}
}

// Reset calls Reset on t if it implements [Resetter].
func Reset(t Ticker) {
	if r, ok := t.(Resetter); ok {
		r.Reset()
	}
}
