package osc

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

// Phasor accumulates phase in [0, 1) by a fixed increment per tick.
type Phasor struct {
	phase     float64
	increment float64
	initial   float64
}

// NewPhasor returns a phasor starting at initialPhase in [0, 1) and advancing
// by increment cycles per sample. Negative increments run backwards.
func NewPhasor(initialPhase, increment float64) (*Phasor, error) {
	if initialPhase < 0 || initialPhase >= 1 || math.IsNaN(initialPhase) {
		return nil, fmt.Errorf("phasor initial phase must be in [0, 1): %f", initialPhase)
	}

	if !core.IsFinite(increment) {
		return nil, fmt.Errorf("phasor increment must be finite: %f", increment)
	}

	return &Phasor{
		phase:     initialPhase,
		increment: increment,
		initial:   initialPhase,
	}, nil
}

// NewPhasorHz returns a phasor at phase 0 running at freqHz for the
// configured sample rate.
func NewPhasorHz(freqHz float64, opts ...core.ProcessorOption) (*Phasor, error) {
	cfg := core.ApplyProcessorOptions(opts...)
	return NewPhasor(0, freqHz/cfg.SampleRate)
}

// SetIncrement sets the phase increment in cycles per sample.
func (p *Phasor) SetIncrement(increment float64) error {
	if !core.IsFinite(increment) {
		return fmt.Errorf("phasor increment must be finite: %f", increment)
	}

	p.increment = increment

	return nil
}

// Tick advances the phase and returns it. The input is ignored.
func (p *Phasor) Tick(float64) float64 {
	p.phase += p.increment
	p.phase -= math.Floor(p.phase)
	if p.phase >= 1 {
		// Tiny negative phases round up to exactly 1.
		p.phase = 0
	}

	return p.phase
}

// Reset returns the phase to its initial value.
func (p *Phasor) Reset() {
	p.phase = p.initial
}

// Phase returns the current phase in [0, 1).
func (p *Phasor) Phase() float64 { return p.phase }

// Increment returns the phase increment in cycles per sample.
func (p *Phasor) Increment() float64 { return p.increment }
