package onepole

import (
	"fmt"
	"math"
)

// Smooth is a one-pole lowpass:
//
//	y[n] = (1-s)*x[n] + s*y[n-1]
//
// s=0 passes the input through, values near 1 smooth heavily.
type Smooth struct {
	s  float64
	y1 float64
}

// NewSmooth returns a smoother with coefficient s in [0, 1].
func NewSmooth(s float64) (*Smooth, error) {
	f := &Smooth{}
	if err := f.SetCoefficient(s); err != nil {
		return nil, err
	}

	return f, nil
}

// SetCoefficient sets the feedback coefficient in [0, 1].
func (f *Smooth) SetCoefficient(s float64) error {
	if s < 0 || s > 1 || math.IsNaN(s) {
		return fmt.Errorf("smooth coefficient must be in [0, 1]: %f", s)
	}

	f.s = s

	return nil
}

// Coefficient returns the feedback coefficient.
func (f *Smooth) Coefficient() float64 { return f.s }

// Tick filters one sample.
func (f *Smooth) Tick(x float64) float64 {
	f.y1 = (1-f.s)*x + f.s*f.y1
	return f.y1
}

// ProcessInPlace filters buf in place.
func (f *Smooth) ProcessInPlace(buf []float64) {
	for i, x := range buf {
		buf[i] = f.Tick(x)
	}
}

// Reset clears the filter state.
func (f *Smooth) Reset() {
	f.y1 = 0
}
