package modulation

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/effects"
)

const (
	defaultFlangerLFOIndex = 0.5
	defaultFlangerDepth    = 1.0
	defaultFlangerFeedback = 0.0
	defaultFlangerDry      = 0.5
)

// FlangerOption mutates flanger construction parameters.
type FlangerOption func(*flangerConfig) error

type flangerConfig struct {
	lfoIndex float64
	depth    float64
	echoOpts []effects.EchoOption
}

func defaultFlangerConfig() flangerConfig {
	return flangerConfig{
		lfoIndex: defaultFlangerLFOIndex,
		depth:    defaultFlangerDepth,
		echoOpts: []effects.EchoOption{
			effects.WithEchoFeedback(defaultFlangerFeedback),
			effects.WithEchoDry(defaultFlangerDry),
		},
	}
}

// WithFlangerLFOIndex sets how far the LFO pulls the delay below the base
// delay, in [0, 1]. At 1 the delay sweeps the whole range [0, baseDelay].
func WithFlangerLFOIndex(index float64) FlangerOption {
	return func(cfg *flangerConfig) error {
		if err := validateLFOIndex(index); err != nil {
			return err
		}

		cfg.lfoIndex = index

		return nil
	}
}

// WithFlangerDepth sets the output gain applied to the echo.
func WithFlangerDepth(depth float64) FlangerOption {
	return func(cfg *flangerConfig) error {
		if !core.IsFinite(depth) {
			return fmt.Errorf("flanger depth must be finite: %f", depth)
		}

		cfg.depth = depth

		return nil
	}
}

// WithFlangerFeedback sets the echo feedback amount in [0, 1].
func WithFlangerFeedback(feedback float64) FlangerOption {
	return func(cfg *flangerConfig) error {
		cfg.echoOpts = append(cfg.echoOpts, effects.WithEchoFeedback(feedback))
		return nil
	}
}

// WithFlangerMix sets the echo dry and wet coefficients, which must sum to 1.
func WithFlangerMix(dry, wet float64) FlangerOption {
	return func(cfg *flangerConfig) error {
		cfg.echoOpts = append(cfg.echoOpts, effects.WithEchoMix(dry, wet))
		return nil
	}
}

// Flanger is an echo whose delay is retuned on every tick from an LFO.
//
// Per sample:
//
//	lfo    = osc.Tick(x)*0.5 + 0.5          // bipolar -> unipolar
//	delay  = floor(baseDelay * (1 - lfo*lfoIndex))
//	output = echo.Tick(x) * depth
//
// The delay is clamped to [0, baseDelay] whatever the LFO returns.
type Flanger struct {
	lfo  core.Ticker
	echo *effects.Echo

	baseDelay int
	lfoIndex  float64
	depth     float64
}

// NewFlanger creates a flanger modulated by lfo, which should produce values
// in [-1, 1]. baseDelay is the longest delay in samples.
func NewFlanger(lfo core.Ticker, baseDelay int, opts ...FlangerOption) (*Flanger, error) {
	if lfo == nil {
		return nil, errors.New("flanger lfo must not be nil")
	}

	if baseDelay < 0 {
		return nil, fmt.Errorf("flanger base delay must be >= 0: %d", baseDelay)
	}

	cfg := defaultFlangerConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	echo, err := effects.NewVariableEcho(baseDelay+1, baseDelay, cfg.echoOpts...)
	if err != nil {
		return nil, fmt.Errorf("flanger: %w", err)
	}

	return &Flanger{
		lfo:       lfo,
		echo:      echo,
		baseDelay: baseDelay,
		lfoIndex:  cfg.lfoIndex,
		depth:     cfg.depth,
	}, nil
}

// SetLFOIndex sets the modulation index in [0, 1].
func (f *Flanger) SetLFOIndex(index float64) error {
	if err := validateLFOIndex(index); err != nil {
		return err
	}

	f.lfoIndex = index

	return nil
}

// SetDepth sets the output gain.
func (f *Flanger) SetDepth(depth float64) error {
	if !core.IsFinite(depth) {
		return fmt.Errorf("flanger depth must be finite: %f", depth)
	}

	f.depth = depth

	return nil
}

// SetFeedback sets the echo feedback amount in [0, 1].
func (f *Flanger) SetFeedback(feedback float64) error {
	if err := f.echo.SetFeedback(feedback); err != nil {
		return fmt.Errorf("flanger: %w", err)
	}

	return nil
}

// SetMix sets the echo dry and wet coefficients, which must sum to 1.
func (f *Flanger) SetMix(dry, wet float64) error {
	if err := f.echo.SetMix(dry, wet); err != nil {
		return fmt.Errorf("flanger: %w", err)
	}

	return nil
}

// Reset clears the echo, and the LFO if it can be reset.
func (f *Flanger) Reset() {
	f.echo.Reset()
	core.Reset(f.lfo)
}

// Tick processes one sample.
func (f *Flanger) Tick(sample float64) float64 {
	lfo := f.lfo.Tick(sample)*0.5 + 0.5

	length := math.Floor(float64(f.baseDelay) * (1 - lfo*f.lfoIndex))
	if !(length >= 0) {
		length = 0
	}
	if length > float64(f.baseDelay) {
		length = float64(f.baseDelay)
	}

	// The echo capacity is baseDelay+1, so the clamped length is always accepted.
	_ = f.echo.SetDelay(int(length))

	return f.echo.Tick(sample) * f.depth
}

// ProcessInPlace applies flanging to buf in place.
func (f *Flanger) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = f.Tick(buf[i])
	}
}

// BaseDelay returns the longest delay in samples.
func (f *Flanger) BaseDelay() int { return f.baseDelay }

// CurrentDelay returns the delay applied by the most recent Tick.
func (f *Flanger) CurrentDelay() int { return f.echo.Delay() }

// LFOIndex returns the modulation index in [0, 1].
func (f *Flanger) LFOIndex() float64 { return f.lfoIndex }

// Depth returns the output gain.
func (f *Flanger) Depth() float64 { return f.depth }

// Feedback returns the echo feedback amount.
func (f *Flanger) Feedback() float64 { return f.echo.Feedback() }

// Dry returns the echo dry coefficient.
func (f *Flanger) Dry() float64 { return f.echo.Dry() }

// Wet returns the echo wet coefficient.
func (f *Flanger) Wet() float64 { return f.echo.Wet() }

func validateLFOIndex(index float64) error {
	if index < 0 || index > 1 || math.IsNaN(index) {
		return fmt.Errorf("flanger lfo index must be in [0, 1]: %f", index)
	}

	return nil
}
