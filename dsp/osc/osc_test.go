package osc

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhasorWrapsAndResets(t *testing.T) {
	p, err := NewPhasor(0, 0.25)
	require.NoError(t, err)

	got := make([]float64, 5)
	for i := range got {
		got[i] = p.Tick(0)
	}

	assert.Equal(t, []float64{0.25, 0.5, 0.75, 0, 0.25}, got)

	p.Reset()
	assert.Equal(t, 0.0, p.Phase())
}

func TestPhasorNegativeIncrement(t *testing.T) {
	p, err := NewPhasor(0, -0.25)
	require.NoError(t, err)

	assert.Equal(t, 0.75, p.Tick(0))
	assert.Equal(t, 0.5, p.Tick(0))
}

func TestPhasorStaysInUnitInterval(t *testing.T) {
	p, err := NewPhasor(0.5, -1e-17)
	require.NoError(t, err)

	require.NoError(t, p.SetIncrement(-0.5-1e-17))

	for range 100 {
		ph := p.Tick(0)
		require.GreaterOrEqual(t, ph, 0.0)
		require.Less(t, ph, 1.0)
	}
}

func TestPhasorValidation(t *testing.T) {
	for _, phase := range []float64{-0.1, 1, math.NaN()} {
		_, err := NewPhasor(phase, 0.1)
		assert.Error(t, err, "phase %v", phase)
	}

	_, err := NewPhasor(0, math.Inf(1))
	assert.Error(t, err)

	p, err := NewPhasor(0, 0.1)
	require.NoError(t, err)
	assert.Error(t, p.SetIncrement(math.NaN()))
	assert.Equal(t, 0.1, p.Increment())
}

func TestPhasorHz(t *testing.T) {
	p, err := NewPhasorHz(480, core.WithSampleRate(48000))
	require.NoError(t, err)
	assert.InDelta(t, 0.01, p.Increment(), 1e-15)
}

func TestSineTableValue(t *testing.T) {
	table, err := NewSineTable(4)
	require.NoError(t, err)
	require.Equal(t, 4, table.Len())

	assert.Equal(t, 0.0, table.Value(0))
	assert.Equal(t, 1.0, table.Value(0.25))
	assert.Equal(t, -1.0, table.Value(0.75))
	assert.Equal(t, 1.0, table.Value(1.25))
	assert.Equal(t, 1.0, table.Value(-0.75))

	_, err = NewSineTable(0)
	assert.Error(t, err)
}

func TestDefaultSineTableIsShared(t *testing.T) {
	a := DefaultSineTable()
	b := DefaultSineTable()

	assert.Same(t, a, b)
	assert.Equal(t, DefaultSineTableSize, a.Len())
}

func TestSineQuarterCycle(t *testing.T) {
	table, err := NewSineTable(4)
	require.NoError(t, err)

	s, err := NewSineHz(table, 12000, core.WithSampleRate(48000))
	require.NoError(t, err)
	require.NoError(t, s.SetGain(2))

	want := []float64{2, 0, -2, 0}
	for i, w := range want {
		assert.InDelta(t, w, s.Tick(0), 1e-12, "sample %d", i)
	}

	s.Reset()
	assert.InDelta(t, 2, s.Tick(0), 1e-12)
}

func TestSineValidation(t *testing.T) {
	p, err := NewPhasor(0, 0.1)
	require.NoError(t, err)

	_, err = NewSine(nil, p)
	assert.Error(t, err)

	_, err = NewSine(DefaultSineTable(), nil)
	assert.Error(t, err)

	s, err := NewSine(DefaultSineTable(), p)
	require.NoError(t, err)
	assert.Error(t, s.SetGain(math.Inf(-1)))
	assert.Equal(t, 1.0, s.Gain())
	assert.Same(t, p, s.Phasor())
}

func TestAMWithoutIndexMatchesSine(t *testing.T) {
	table := DefaultSineTable()

	am, err := NewAM(table, 440, 5, 0, 1)
	require.NoError(t, err)

	sine, err := NewSineHz(table, 440)
	require.NoError(t, err)

	for i := range 1000 {
		require.Equal(t, sine.Tick(0), am.Tick(0), "sample %d", i)
	}
}

func TestAMBounded(t *testing.T) {
	am, err := NewAM(DefaultSineTable(), 440, 7, 1, 0.5)
	require.NoError(t, err)

	for range 10000 {
		require.LessOrEqual(t, math.Abs(am.Tick(0)), 0.5)
	}

	_, err = NewAM(nil, 440, 7, 1, 1)
	assert.Error(t, err)

	_, err = NewAM(DefaultSineTable(), 440, 7, math.NaN(), 1)
	assert.Error(t, err)
}

func TestFMWithoutIndexMatchesSine(t *testing.T) {
	table := DefaultSineTable()

	fm, err := NewFM(table, 440, 110, 0, 1)
	require.NoError(t, err)

	sine, err := NewSineHz(table, 440)
	require.NoError(t, err)

	for i := range 1000 {
		require.Equal(t, sine.Tick(0), fm.Tick(0), "sample %d", i)
	}
}

func TestFMResetRepeats(t *testing.T) {
	fm, err := NewFM(DefaultSineTable(), 440, 110, 200, 1)
	require.NoError(t, err)

	first := make([]float64, 256)
	for i := range first {
		first[i] = fm.Tick(0)
		require.LessOrEqual(t, math.Abs(first[i]), 1.0)
	}

	fm.Reset()

	for i := range first {
		require.Equal(t, first[i], fm.Tick(0), "sample %d", i)
	}
}

func TestPWM(t *testing.T) {
	tests := []struct {
		duty   float64
		period int
		want   []float64
	}{
		{duty: 0.5, period: 4, want: []float64{1, 1, 0, 0, 1, 1, 0, 0}},
		{duty: 0, period: 3, want: []float64{0, 0, 0, 0}},
		{duty: 1, period: 3, want: []float64{1, 1, 1, 1}},
		{duty: 0.25, period: 4, want: []float64{1, 0, 0, 0, 1}},
	}

	for _, tt := range tests {
		p, err := NewPWM(tt.duty, tt.period)
		require.NoError(t, err)

		got := make([]float64, len(tt.want))
		for i := range got {
			got[i] = p.Tick(0)
		}

		assert.Equal(t, tt.want, got, "duty=%v period=%d", tt.duty, tt.period)
	}
}

func TestPWMValidationAndReset(t *testing.T) {
	_, err := NewPWM(1.5, 4)
	assert.Error(t, err)

	_, err = NewPWM(0.5, 0)
	assert.Error(t, err)

	p, err := NewPWM(0.5, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, p.OnFrames())
	assert.Equal(t, 4, p.Period())

	p.Tick(0)
	p.Tick(0)
	p.Tick(0)
	p.Reset()
	assert.Equal(t, 1.0, p.Tick(0))
}

func TestWhiteNoise(t *testing.T) {
	n := NewWhiteNoise(42)

	first := make([]float64, 4096)
	for i := range first {
		v := n.Tick(0)
		require.GreaterOrEqual(t, v, -1.0)
		require.Less(t, v, 1.0)
		first[i] = v
	}

	n.Reset()

	other := NewWhiteNoise(42)
	for i := range first {
		require.Equal(t, first[i], n.Tick(0), "reset sample %d", i)
		require.Equal(t, first[i], other.Tick(0), "same seed sample %d", i)
	}

	assert.NotEqual(t, NewWhiteNoise(1).Tick(0), NewWhiteNoise(2).Tick(0))
}

func TestConstant(t *testing.T) {
	c := NewConstant(0.25)
	assert.Equal(t, 0.25, c.Tick(1))

	c.SetValue(-2)
	assert.Equal(t, -2.0, c.Value())
	assert.Equal(t, -2.0, c.Tick(0))
}

func TestOscillatorsDoNotAllocate(t *testing.T) {
	sine, err := NewSineHz(DefaultSineTable(), 440)
	require.NoError(t, err)

	noise := NewWhiteNoise(3)

	allocs := testing.AllocsPerRun(100, func() {
		sine.Tick(0)
		noise.Tick(0)
	})
	assert.Zero(t, allocs)
}
