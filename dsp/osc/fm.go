package osc

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

// FM is a two-operator frequency-modulated sine. Every tick the carrier
// frequency is set to carrierHz + modulator*index.
type FM struct {
	table      *SineTable
	carrier    *Phasor
	modulator  *Phasor
	carrierHz  float64
	index      float64
	gain       float64
	sampleRate float64
}

// NewFM returns an FM oscillator. index is the peak frequency deviation in Hz.
func NewFM(table *SineTable, carrierHz, modHz, index, gain float64, opts ...core.ProcessorOption) (*FM, error) {
	if table == nil {
		return nil, errors.New("fm sine table must not be nil")
	}

	if !core.IsFinite(carrierHz) || !core.IsFinite(index) || !core.IsFinite(gain) {
		return nil, fmt.Errorf("fm carrier, index and gain must be finite: carrier=%f index=%f gain=%f",
			carrierHz, index, gain)
	}

	cfg := core.ApplyProcessorOptions(opts...)

	carrier, err := NewPhasorHz(carrierHz, opts...)
	if err != nil {
		return nil, fmt.Errorf("fm carrier: %w", err)
	}

	modulator, err := NewPhasorHz(modHz, opts...)
	if err != nil {
		return nil, fmt.Errorf("fm modulator: %w", err)
	}

	return &FM{
		table:      table,
		carrier:    carrier,
		modulator:  modulator,
		carrierHz:  carrierHz,
		index:      index,
		gain:       gain,
		sampleRate: cfg.SampleRate,
	}, nil
}

// Tick advances the modulator, retunes the carrier and returns its value.
func (f *FM) Tick(sample float64) float64 {
	mod := f.table.Value(f.modulator.Tick(sample))
	f.carrier.increment = (f.carrierHz + mod*f.index) / f.sampleRate

	return f.table.Value(f.carrier.Tick(sample)) * f.gain
}

// Reset restarts both phasors and restores the unmodulated carrier increment.
func (f *FM) Reset() {
	f.carrier.Reset()
	f.modulator.Reset()
	f.carrier.increment = f.carrierHz / f.sampleRate
}
