package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

// RequireSliceNearlyEqual fails tb at the first sample where got and want
// differ by more than eps, or when their lengths differ. A NaN on either side
// always fails.
func RequireSliceNearlyEqual(tb testing.TB, got, want []float64, eps float64) {
	tb.Helper()

	if len(got) != len(want) {
		tb.Fatalf("got %d samples, want %d", len(got), len(want))
	}

	for i := range got {
		if d := math.Abs(got[i] - want[i]); !(d <= eps) {
			tb.Fatalf("sample %d: got %v, want %v (|diff| %g > %g)", i, got[i], want[i], d, eps)
		}
	}
}

// RequireFinite fails tb at the first NaN or Inf sample.
func RequireFinite(tb testing.TB, samples []float64) {
	tb.Helper()

	for i, v := range samples {
		if !core.IsFinite(v) {
			tb.Fatalf("sample %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the largest absolute difference between a and b and the
// index where it occurs.
func MaxAbsDiff(a, b []float64) (float64, int, error) {
	if len(a) != len(b) {
		return 0, -1, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}

	worst, at := 0.0, -1
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > worst {
			worst, at = d, i
		}
	}

	return worst, at, nil
}
