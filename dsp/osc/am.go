package osc

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

// AM is an amplitude-modulated sine: a carrier whose level is pulled down by
// a unipolar modulator.
//
//	mod    = sin(modPhase)*0.5 + 0.5
//	output = sin(carrierPhase) * (1 - mod*index) * gain
type AM struct {
	table     *SineTable
	carrier   *Phasor
	modulator *Phasor
	index     float64
	gain      float64
}

// NewAM returns an AM oscillator with carrier and modulator frequencies in Hz.
func NewAM(table *SineTable, carrierHz, modHz, index, gain float64, opts ...core.ProcessorOption) (*AM, error) {
	if table == nil {
		return nil, errors.New("am sine table must not be nil")
	}

	if !core.IsFinite(index) || !core.IsFinite(gain) {
		return nil, fmt.Errorf("am index and gain must be finite: index=%f gain=%f", index, gain)
	}

	carrier, err := NewPhasorHz(carrierHz, opts...)
	if err != nil {
		return nil, fmt.Errorf("am carrier: %w", err)
	}

	modulator, err := NewPhasorHz(modHz, opts...)
	if err != nil {
		return nil, fmt.Errorf("am modulator: %w", err)
	}

	return &AM{
		table:     table,
		carrier:   carrier,
		modulator: modulator,
		index:     index,
		gain:      gain,
	}, nil
}

// Tick advances both phasors and returns the modulated carrier.
func (a *AM) Tick(sample float64) float64 {
	c := a.carrier.Tick(sample)
	m := a.modulator.Tick(sample)
	mod := a.table.Value(m)*0.5 + 0.5

	return a.table.Value(c) * (1 - mod*a.index) * a.gain
}

// Reset restarts both phasors.
func (a *AM) Reset() {
	a.carrier.Reset()
	a.modulator.Reset()
}
