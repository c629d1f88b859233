package effects

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-ugen/dsp/delay"
	"github.com/cwbudde/algo-ugen/internal/testutil"
)

func TestEchoValidation(t *testing.T) {
	tests := []struct {
		name string
		opts []EchoOption
	}{
		{name: "mix sums above one", opts: []EchoOption{WithEchoMix(0.7, 0.7)}},
		{name: "mix sums below one", opts: []EchoOption{WithEchoMix(0.2, 0.2)}},
		{name: "negative dry", opts: []EchoOption{WithEchoMix(-0.5, 1.5)}},
		{name: "dry above one", opts: []EchoOption{WithEchoDry(1.5)}},
		{name: "nan mix", opts: []EchoOption{WithEchoMix(math.NaN(), 0.5)}},
		{name: "feedback below zero", opts: []EchoOption{WithEchoFeedback(-0.1)}},
		{name: "feedback above one", opts: []EchoOption{WithEchoFeedback(1.1)}},
		{name: "feedback nan", opts: []EchoOption{WithEchoFeedback(math.NaN())}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewEcho(4, tt.opts...); err == nil {
				t.Fatal("NewEcho() expected error")
			}
			if _, err := NewVariableEcho(4, 1, tt.opts...); err == nil {
				t.Fatal("NewVariableEcho() expected error")
			}
		})
	}
}

func TestEchoSizeValidation(t *testing.T) {
	if _, err := NewEcho(0); !errors.Is(err, delay.ErrInvalidSize) {
		t.Fatalf("NewEcho(0) err = %v, want ErrInvalidSize", err)
	}
	if _, err := NewVariableEcho(4, 4); !errors.Is(err, delay.ErrOffsetOutOfRange) {
		t.Fatalf("NewVariableEcho(4, 4) err = %v, want ErrOffsetOutOfRange", err)
	}
}

func TestEchoDefaults(t *testing.T) {
	e, err := NewEcho(8, nil)
	if err != nil {
		t.Fatalf("NewEcho() error = %v", err)
	}

	if e.Feedback() != 0 || e.Dry() != 0.5 || e.Wet() != 0.5 {
		t.Fatalf("defaults: feedback=%v dry=%v wet=%v", e.Feedback(), e.Dry(), e.Wet())
	}
	if e.Delay() != 8 || e.Size() != 8 || e.Resizable() {
		t.Fatalf("delay=%d size=%d resizable=%v", e.Delay(), e.Size(), e.Resizable())
	}
}

func TestEchoDryOnlyIsPassthrough(t *testing.T) {
	for _, build := range []func() (*Echo, error){
		func() (*Echo, error) { return NewEcho(5, WithEchoMix(1, 0)) },
		func() (*Echo, error) { return NewVariableEcho(5, 3, WithEchoMix(1, 0)) },
	} {
		e, err := build()
		if err != nil {
			t.Fatal(err)
		}

		in := testutil.DeterministicNoise(3, 1, 64)
		got := testutil.Run(e, in)
		testutil.RequireSliceNearlyEqual(t, got, in, 0)
	}
}

func TestEchoImpulseWithoutFeedback(t *testing.T) {
	e, err := NewEcho(3)
	if err != nil {
		t.Fatal(err)
	}

	got := testutil.Run(e, testutil.Impulse(8, 0))
	testutil.RequireSliceNearlyEqual(t, got, []float64{0.5, 0, 0, 0.5, 0, 0, 0, 0}, 0)
}

func TestEchoFeedbackRepeats(t *testing.T) {
	e, err := NewEcho(2, WithEchoFeedback(0.5), WithEchoMix(0, 1))
	if err != nil {
		t.Fatal(err)
	}

	got := testutil.Run(e, testutil.Impulse(9, 0))
	want := []float64{0, 0, 1, 0, 0.5, 0, 0.25, 0, 0.125}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-15)
}

func TestEchoFullFeedbackSustains(t *testing.T) {
	e, err := NewEcho(3, WithEchoFeedback(1), WithEchoMix(0, 1))
	if err != nil {
		t.Fatal(err)
	}

	got := testutil.Run(e, testutil.Impulse(31, 0))
	for k := 3; k < len(got); k += 3 {
		if got[k] != 1 {
			t.Fatalf("k=%d: got %v want 1", k, got[k])
		}
	}
}

func TestVariableEchoSetDelay(t *testing.T) {
	e, err := NewVariableEcho(8, 2, WithEchoMix(0, 1))
	if err != nil {
		t.Fatal(err)
	}
	if !e.Resizable() || e.Delay() != 2 {
		t.Fatalf("resizable=%v delay=%d", e.Resizable(), e.Delay())
	}

	in := testutil.Ramp(20)
	var out []float64
	for k, x := range in {
		if k == 10 {
			if err := e.SetDelay(5); err != nil {
				t.Fatal(err)
			}
		}
		out = append(out, e.Tick(x))
	}

	for k := 2; k < 10; k++ {
		if out[k] != in[k-2] {
			t.Fatalf("k=%d: got %v want %v", k, out[k], in[k-2])
		}
	}
	for k := 10; k < len(in); k++ {
		if out[k] != in[k-5] {
			t.Fatalf("k=%d after SetDelay: got %v want %v", k, out[k], in[k-5])
		}
	}
}

func TestVariableEchoZeroDelay(t *testing.T) {
	e, err := NewVariableEcho(4, 0, WithEchoDry(0.25))
	if err != nil {
		t.Fatal(err)
	}

	in := []float64{0.5, -1, 0.25}
	testutil.RequireSliceNearlyEqual(t, testutil.Run(e, in), in, 1e-15)
}

func TestEchoSetDelayErrors(t *testing.T) {
	fixed, err := NewEcho(4)
	if err != nil {
		t.Fatal(err)
	}
	if err := fixed.SetDelay(2); !errors.Is(err, ErrFixedDelay) {
		t.Fatalf("fixed SetDelay err = %v, want ErrFixedDelay", err)
	}

	variable, err := NewVariableEcho(4, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := variable.SetDelay(4); !errors.Is(err, delay.ErrOffsetOutOfRange) {
		t.Fatalf("variable SetDelay(4) err = %v, want ErrOffsetOutOfRange", err)
	}
	if variable.Delay() != 1 {
		t.Fatalf("delay changed after failed SetDelay: %d", variable.Delay())
	}
}

func TestEchoSettersKeepStateOnError(t *testing.T) {
	e, err := NewEcho(4, WithEchoFeedback(0.3), WithEchoMix(0.6, 0.4))
	if err != nil {
		t.Fatal(err)
	}

	if err := e.SetFeedback(2); err == nil {
		t.Fatal("SetFeedback(2) expected error")
	}
	if err := e.SetMix(0.7, 0.7); err == nil {
		t.Fatal("SetMix(0.7, 0.7) expected error")
	}
	if e.Feedback() != 0.3 || e.Dry() != 0.6 || e.Wet() != 0.4 {
		t.Fatalf("state changed: feedback=%v dry=%v wet=%v", e.Feedback(), e.Dry(), e.Wet())
	}

	if err := e.SetFeedback(1); err != nil {
		t.Fatalf("SetFeedback(1) error = %v", err)
	}
	if err := e.SetMix(0.1, 0.9); err != nil {
		t.Fatalf("SetMix(0.1, 0.9) error = %v", err)
	}
}

func TestEchoResetAndProcessInPlace(t *testing.T) {
	e, err := NewEcho(5, WithEchoFeedback(0.4))
	if err != nil {
		t.Fatal(err)
	}

	in := testutil.DeterministicSine(300, 8000, 0.7, 48)
	want := testutil.Run(e, in)

	e.Reset()
	buf := append([]float64(nil), in...)
	e.ProcessInPlace(buf)
	testutil.RequireSliceNearlyEqual(t, buf, want, 0)
}

func TestEchoTickDoesNotAllocate(t *testing.T) {
	e, err := NewVariableEcho(64, 10, WithEchoFeedback(0.5))
	if err != nil {
		t.Fatal(err)
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = e.SetDelay(12)
		e.Tick(0.25)
	})
	if allocs != 0 {
		t.Fatalf("Tick allocated %v times per run", allocs)
	}
}
