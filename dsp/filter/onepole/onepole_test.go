package onepole

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-ugen/internal/testutil"
)

func TestSmoothPassthroughAtZero(t *testing.T) {
	f, err := NewSmooth(0)
	if err != nil {
		t.Fatal(err)
	}

	in := testutil.Ramp(8)
	got := testutil.Run(f, in)
	testutil.RequireSliceNearlyEqual(t, got, in, 0)
}

func TestSmoothStepResponse(t *testing.T) {
	f, err := NewSmooth(0.5)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{0.5, 0.75, 0.875, 0.9375}
	for i, w := range want {
		if got := f.Tick(1); got != w {
			t.Fatalf("sample %d: got %v want %v", i, got, w)
		}
	}

	f.Reset()

	if got := f.Tick(1); got != 0.5 {
		t.Fatalf("after reset: got %v want 0.5", got)
	}
}

func TestSmoothHoldsAtOne(t *testing.T) {
	f, err := NewSmooth(1)
	if err != nil {
		t.Fatal(err)
	}

	for range 4 {
		if got := f.Tick(1); got != 0 {
			t.Fatalf("got %v want 0", got)
		}
	}
}

func TestSmoothValidation(t *testing.T) {
	for _, s := range []float64{-0.1, 1.1, math.NaN()} {
		if _, err := NewSmooth(s); err == nil {
			t.Fatalf("expected error for s=%v", s)
		}
	}

	f, err := NewSmooth(0.3)
	if err != nil {
		t.Fatal(err)
	}

	if err := f.SetCoefficient(2); err == nil {
		t.Fatal("expected error")
	}

	if f.Coefficient() != 0.3 {
		t.Fatalf("coefficient changed on error: %v", f.Coefficient())
	}
}

func TestOneZeroImpulse(t *testing.T) {
	f, err := NewOneZero(1)
	if err != nil {
		t.Fatal(err)
	}

	got := testutil.Run(f, testutil.Impulse(4, 0))
	testutil.RequireSliceNearlyEqual(t, got, []float64{0.5, 0.5, 0, 0}, 0)
}

func TestOneZeroNyquistNull(t *testing.T) {
	f, err := NewOneZero(1)
	if err != nil {
		t.Fatal(err)
	}

	f.Tick(1)

	for i := 1; i < 16; i++ {
		x := 1.0
		if i%2 == 1 {
			x = -1
		}

		if got := f.Tick(x); got != 0 {
			t.Fatalf("sample %d: got %v want 0", i, got)
		}
	}
}

func TestOneZeroProcessInPlaceAndReset(t *testing.T) {
	f, err := NewOneZero(-1)
	if err != nil {
		t.Fatal(err)
	}

	buf := []float64{1, 1, 1}
	f.ProcessInPlace(buf)
	testutil.RequireSliceNearlyEqual(t, buf, []float64{0.5, 0, 0}, 0)

	f.Reset()

	if got := f.Tick(2); got != 1 {
		t.Fatalf("after reset: got %v want 1", got)
	}

	if _, err := NewOneZero(math.Inf(1)); err == nil {
		t.Fatal("expected error for infinite coefficient")
	}
}
