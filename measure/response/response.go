package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Impulse resets t when it implements core.Resetter, feeds it a unit impulse
// followed by silence and returns length output samples.
func Impulse(t core.Ticker, length int) ([]float64, error) {
	if t == nil {
		return nil, errors.New("response ticker must not be nil")
	}

	if length <= 0 {
		return nil, fmt.Errorf("response length must be > 0: %d", length)
	}

	core.Reset(t)

	out := make([]float64, length)
	out[0] = t.Tick(1)

	for i := 1; i < length; i++ {
		out[i] = t.Tick(0)
	}

	return out, nil
}

// Magnitude returns |H[k]| for bins 0..fftSize/2 of the zero-padded impulse
// response. fftSize must be a power of two and at least len(ir).
func Magnitude(ir []float64, fftSize int) ([]float64, error) {
	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("response fft size must be a power of two >= 2: %d", fftSize)
	}

	if len(ir) > fftSize {
		return nil, fmt.Errorf("response impulse length %d exceeds fft size %d", len(ir), fftSize)
	}

	in := make([]complex128, fftSize)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: %w", err)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, in); err != nil {
		return nil, fmt.Errorf("response: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for k := range bins {
		re[k] = real(freq[k])
		im[k] = imag(freq[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}

// Notches returns the bins that are local minima of mag and lie at least
// depthDB below its peak. A silent spectrum has no notches.
func Notches(mag []float64, depthDB float64) []int {
	if len(mag) == 0 {
		return nil
	}

	peak := floats.Max(mag)
	if peak <= 0 {
		return nil
	}

	limit := peak * core.DBToLinear(-depthDB)

	var notches []int

	for i, v := range mag {
		left, right := math.Inf(1), math.Inf(1)
		if i > 0 {
			left = mag[i-1]
		}

		if i < len(mag)-1 {
			right = mag[i+1]
		}

		if v <= limit && v <= left && v < right {
			notches = append(notches, i)
		}
	}

	return notches
}

// FirstArrival returns the index of the first sample whose magnitude exceeds
// threshold, or -1 if there is none.
func FirstArrival(ir []float64, threshold float64) int {
	for i, v := range ir {
		if math.Abs(v) > threshold {
			return i
		}
	}

	return -1
}

// Energy returns the sum of squared samples.
func Energy(ir []float64) float64 {
	return floats.Dot(ir, ir)
}
