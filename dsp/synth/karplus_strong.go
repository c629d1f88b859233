package synth

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/delay"
	"github.com/cwbudde/algo-ugen/dsp/filter/onepole"
)

// KarplusStrong is a plucked-string voice: a delay line of one period closed
// through a one-zero lowpass with an extra direct feedback term.
//
//	d   = line output
//	f   = oneZero(in + excitation + d)
//	out = f + feedback*d
//
// The loop gain at DC is 0.5*(1+b1) + feedback. Keep its magnitude below 1
// for a decaying string.
type KarplusStrong struct {
	line      *delay.Line
	loop      *onepole.OneZero
	feedback  float64
	triggered bool
}

// NewKarplusStrong returns a voice tuned to freqHz. The loop length is
// round(sampleRate/freqHz) samples.
func NewKarplusStrong(freqHz, feedback, b1 float64, opts ...core.ProcessorOption) (*KarplusStrong, error) {
	cfg := core.ApplyProcessorOptions(opts...)

	if freqHz <= 0 || freqHz > cfg.SampleRate || math.IsNaN(freqHz) {
		return nil, fmt.Errorf("karplus-strong frequency must be in (0, %g]: %f", cfg.SampleRate, freqHz)
	}

	if feedback < -1 || feedback > 1 || math.IsNaN(feedback) {
		return nil, fmt.Errorf("karplus-strong feedback must be in [-1, 1]: %f", feedback)
	}

	loop, err := onepole.NewOneZero(b1)
	if err != nil {
		return nil, fmt.Errorf("karplus-strong: %w", err)
	}

	line, err := delay.New(int(math.Round(cfg.SampleRate / freqHz)))
	if err != nil {
		return nil, fmt.Errorf("karplus-strong: %w", err)
	}

	return &KarplusStrong{
		line:     line,
		loop:     loop,
		feedback: feedback,
	}, nil
}

// Trigger injects a unit excitation on the next tick.
func (k *KarplusStrong) Trigger() {
	k.triggered = true
}

// Tick adds sample to the loop and returns the string output.
func (k *KarplusStrong) Tick(sample float64) float64 {
	excitation := 0.0
	if k.triggered {
		k.triggered = false
		excitation = 1
	}

	d := k.line.Read()
	out := core.FlushDenormals(k.loop.Tick(sample+excitation+d) + k.feedback*d)
	k.line.Tick(out)

	return out
}

// ProcessInPlace runs the voice over buf in place.
func (k *KarplusStrong) ProcessInPlace(buf []float64) {
	for i, x := range buf {
		buf[i] = k.Tick(x)
	}
}

// Reset silences the string and clears a pending trigger.
func (k *KarplusStrong) Reset() {
	k.line.Reset()
	k.loop.Reset()
	k.triggered = false
}

// DelayLength returns the loop length in samples.
func (k *KarplusStrong) DelayLength() int { return k.line.Len() }

// Feedback returns the direct feedback coefficient.
func (k *KarplusStrong) Feedback() float64 { return k.feedback }
