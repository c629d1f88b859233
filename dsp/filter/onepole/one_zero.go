package onepole

import (
	"fmt"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

// OneZero is the averaging filter
//
//	y[n] = 0.5*(x[n] + b1*x[n-1])
//
// With b1=1 it is the classic two-point average with a zero at Nyquist.
type OneZero struct {
	b1 float64
	x1 float64
}

// NewOneZero returns a one-zero filter with a finite coefficient b1.
func NewOneZero(b1 float64) (*OneZero, error) {
	f := &OneZero{}
	if err := f.SetCoefficient(b1); err != nil {
		return nil, err
	}

	return f, nil
}

// SetCoefficient sets b1.
func (f *OneZero) SetCoefficient(b1 float64) error {
	if !core.IsFinite(b1) {
		return fmt.Errorf("one-zero coefficient must be finite: %f", b1)
	}

	f.b1 = b1

	return nil
}

// Coefficient returns b1.
func (f *OneZero) Coefficient() float64 { return f.b1 }

// Tick filters one sample.
func (f *OneZero) Tick(x float64) float64 {
	y := 0.5 * (x + f.b1*f.x1)
	f.x1 = x

	return y
}

// ProcessInPlace filters buf in place.
func (f *OneZero) ProcessInPlace(buf []float64) {
	for i, x := range buf {
		buf[i] = f.Tick(x)
	}
}

// Reset clears the filter state.
func (f *OneZero) Reset() {
	f.x1 = 0
}
