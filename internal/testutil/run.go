package testutil

import "github.com/cwbudde/algo-ugen/dsp/core"

// Run ticks t once per input sample and returns the outputs in a new slice.
func Run(t core.Ticker, in []float64) []float64 {
	out := make([]float64, len(in))
	for i, x := range in {
		out[i] = t.Tick(x)
	}
	return out
}

// RunSilence ticks t n times with a zero input.
func RunSilence(t core.Ticker, n int) []float64 {
	return Run(t, make([]float64, n))
}
