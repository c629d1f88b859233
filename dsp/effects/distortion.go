package effects

import (
	"fmt"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

const (
	defaultDistortionDrive  = 0.0
	defaultDistortionOffset = 0.0
	defaultDistortionGain   = 1.0

	minDistortionDrive = -2.0
	maxDistortionDrive = 2.0
)

// DistortionOption mutates construction-time parameters.
type DistortionOption func(*distortionConfig) error

type distortionConfig struct {
	drive  float64
	offset float64
	gain   float64
}

func defaultDistortionConfig() distortionConfig {
	return distortionConfig{
		drive:  defaultDistortionDrive,
		offset: defaultDistortionOffset,
		gain:   defaultDistortionGain,
	}
}

// WithDistortionDrive sets the drive in [-2, 2]. The input is scaled by
// 10^(2*drive) before clipping.
func WithDistortionDrive(drive float64) DistortionOption {
	return func(cfg *distortionConfig) error {
		if err := validateDrive(drive); err != nil {
			return err
		}

		cfg.drive = drive

		return nil
	}
}

// WithDistortionOffset sets the DC offset added after the drive stage.
func WithDistortionOffset(offset float64) DistortionOption {
	return func(cfg *distortionConfig) error {
		if !core.IsFinite(offset) {
			return fmt.Errorf("distortion offset must be finite: %f", offset)
		}

		cfg.offset = offset

		return nil
	}
}

// WithDistortionGain sets the output gain.
func WithDistortionGain(gain float64) DistortionOption {
	return func(cfg *distortionConfig) error {
		if !core.IsFinite(gain) {
			return fmt.Errorf("distortion gain must be finite: %f", gain)
		}

		cfg.gain = gain

		return nil
	}
}

// Distortion is a cubic soft clipper:
//
//	x' = clamp(x*10^(2*drive) + offset, -1, 1)
//	y  = (x' - x'^3/3) * gain
//
// The output is bounded by ±2/3*gain.
type Distortion struct {
	drive  float64
	offset float64
	gain   float64

	preGain float64
}

// NewDistortion creates a distortion with unity drive and gain.
func NewDistortion(opts ...DistortionOption) (*Distortion, error) {
	cfg := defaultDistortionConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	d := &Distortion{
		offset: cfg.offset,
		gain:   cfg.gain,
	}
	d.setDrive(cfg.drive)

	return d, nil
}

// SetDrive sets the drive in [-2, 2].
func (d *Distortion) SetDrive(drive float64) error {
	if err := validateDrive(drive); err != nil {
		return err
	}

	d.setDrive(drive)

	return nil
}

// SetOffset sets the DC offset added after the drive stage.
func (d *Distortion) SetOffset(offset float64) error {
	if !core.IsFinite(offset) {
		return fmt.Errorf("distortion offset must be finite: %f", offset)
	}

	d.offset = offset

	return nil
}

// SetGain sets the output gain.
func (d *Distortion) SetGain(gain float64) error {
	if !core.IsFinite(gain) {
		return fmt.Errorf("distortion gain must be finite: %f", gain)
	}

	d.gain = gain

	return nil
}

// Tick processes one sample.
func (d *Distortion) Tick(sample float64) float64 {
	x := core.Clamp(sample*d.preGain+d.offset, -1, 1)
	return cubic(x) * d.gain
}

// ProcessInPlace applies distortion to buf in place.
func (d *Distortion) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = d.Tick(buf[i])
	}
}

// Drive returns the drive setting.
func (d *Distortion) Drive() float64 { return d.drive }

// Offset returns the DC offset.
func (d *Distortion) Offset() float64 { return d.offset }

// Gain returns the output gain.
func (d *Distortion) Gain() float64 { return d.gain }

func (d *Distortion) setDrive(drive float64) {
	d.drive = drive
	d.preGain = mathPower10(2 * drive)
}

func cubic(x float64) float64 {
	return x - x*x*x/3
}

func validateDrive(drive float64) error {
	if drive < minDistortionDrive || drive > maxDistortionDrive || !core.IsFinite(drive) {
		return fmt.Errorf("distortion drive must be in [%g, %g]: %f", minDistortionDrive, maxDistortionDrive, drive)
	}

	return nil
}
