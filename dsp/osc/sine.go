package osc

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

// Sine is a table-lookup sine oscillator driven by a Phasor.
type Sine struct {
	table  *SineTable
	phasor *Phasor
	gain   float64
}

// NewSine returns a unit-gain oscillator reading table at the phasor's phase.
// The oscillator takes ownership of phasor.
func NewSine(table *SineTable, phasor *Phasor) (*Sine, error) {
	if table == nil {
		return nil, errors.New("sine table must not be nil")
	}

	if phasor == nil {
		return nil, errors.New("sine phasor must not be nil")
	}

	return &Sine{table: table, phasor: phasor, gain: 1}, nil
}

// NewSineHz returns a unit-gain oscillator at freqHz starting from phase 0.
func NewSineHz(table *SineTable, freqHz float64, opts ...core.ProcessorOption) (*Sine, error) {
	phasor, err := NewPhasorHz(freqHz, opts...)
	if err != nil {
		return nil, fmt.Errorf("sine: %w", err)
	}

	return NewSine(table, phasor)
}

// SetGain sets the output gain.
func (s *Sine) SetGain(gain float64) error {
	if !core.IsFinite(gain) {
		return fmt.Errorf("sine gain must be finite: %f", gain)
	}

	s.gain = gain

	return nil
}

// Gain returns the output gain.
func (s *Sine) Gain() float64 { return s.gain }

// Phasor returns the phasor driving the oscillator.
func (s *Sine) Phasor() *Phasor { return s.phasor }

// Tick advances the phasor and returns the gained table value.
func (s *Sine) Tick(sample float64) float64 {
	return s.table.Value(s.phasor.Tick(sample)) * s.gain
}

// Reset restarts the phasor.
func (s *Sine) Reset() {
	s.phasor.Reset()
}
