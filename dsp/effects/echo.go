package effects

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/delay"
)

const (
	defaultEchoFeedback = 0.0
	defaultEchoDry      = 0.5

	mixTolerance = 1e-9
)

// ErrFixedDelay is returned by [Echo.SetDelay] on an echo built with [NewEcho].
var ErrFixedDelay = errors.New("echo delay is fixed")

// EchoOption mutates echo construction parameters.
type EchoOption func(*echoConfig) error

type echoConfig struct {
	feedback float64
	dry      float64
	wet      float64
}

func defaultEchoConfig() echoConfig {
	return echoConfig{
		feedback: defaultEchoFeedback,
		dry:      defaultEchoDry,
		wet:      1 - defaultEchoDry,
	}
}

// WithEchoFeedback sets the feedback amount in [0, 1].
func WithEchoFeedback(feedback float64) EchoOption {
	return func(cfg *echoConfig) error {
		if err := validateFeedback(feedback); err != nil {
			return err
		}

		cfg.feedback = feedback

		return nil
	}
}

// WithEchoMix sets the dry and wet coefficients. Both must be >= 0 and sum to 1.
func WithEchoMix(dry, wet float64) EchoOption {
	return func(cfg *echoConfig) error {
		if err := validateMix(dry, wet); err != nil {
			return err
		}

		cfg.dry = dry
		cfg.wet = wet

		return nil
	}
}

// WithEchoDry sets the dry coefficient in [0, 1] and the wet coefficient to 1-dry.
func WithEchoDry(dry float64) EchoOption {
	return WithEchoMix(dry, 1-dry)
}

// echoLine is the delay storage behind an Echo.
type echoLine interface {
	Len() int
	Read() float64
	Tick(sample float64) float64
	Reset()
}

// Echo is a feedback echo with dry/wet mix:
//
//	fed     = input + feedback * line.Read()
//	delayed = line.Tick(fed)
//	output  = dry*input + wet*delayed
//
// A feedback of 1 is accepted; with wet > 0 the loop then never decays and
// keeping the signal bounded is up to the caller.
type Echo struct {
	line     echoLine
	variable *delay.VarLine

	feedback float64
	dry      float64
	wet      float64
}

// NewEcho creates an echo whose delay is exactly size samples for its whole
// lifetime.
func NewEcho(size int, opts ...EchoOption) (*Echo, error) {
	cfg, err := applyEchoOptions(opts)
	if err != nil {
		return nil, err
	}

	line, err := delay.New(size)
	if err != nil {
		return nil, fmt.Errorf("echo: %w", err)
	}

	return newEcho(line, nil, cfg), nil
}

// NewVariableEcho creates an echo backed by a variable delay line of capacity
// size, initially delayed by delaySamples. The delay can be retuned at any time
// with SetDelay within [0, size).
func NewVariableEcho(size, delaySamples int, opts ...EchoOption) (*Echo, error) {
	cfg, err := applyEchoOptions(opts)
	if err != nil {
		return nil, err
	}

	line, err := delay.NewVar(size, delaySamples)
	if err != nil {
		return nil, fmt.Errorf("echo: %w", err)
	}

	return newEcho(line, line, cfg), nil
}

func newEcho(line echoLine, variable *delay.VarLine, cfg echoConfig) *Echo {
	return &Echo{
		line:     line,
		variable: variable,
		feedback: cfg.feedback,
		dry:      cfg.dry,
		wet:      cfg.wet,
	}
}

func applyEchoOptions(opts []EchoOption) (echoConfig, error) {
	cfg := defaultEchoConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return echoConfig{}, err
		}
	}

	return cfg, nil
}

// SetDelay retunes the delay in samples, effective from the next Tick.
// It returns ErrFixedDelay for echoes created with NewEcho.
func (e *Echo) SetDelay(samples int) error {
	if e.variable == nil {
		return ErrFixedDelay
	}

	if err := e.variable.SetOffset(samples); err != nil {
		return fmt.Errorf("echo: %w", err)
	}

	return nil
}

// SetFeedback sets the feedback amount in [0, 1].
func (e *Echo) SetFeedback(feedback float64) error {
	if err := validateFeedback(feedback); err != nil {
		return err
	}

	e.feedback = feedback

	return nil
}

// SetMix sets the dry and wet coefficients. Both must be >= 0 and sum to 1.
func (e *Echo) SetMix(dry, wet float64) error {
	if err := validateMix(dry, wet); err != nil {
		return err
	}

	e.dry = dry
	e.wet = wet

	return nil
}

// Reset clears the delay line.
func (e *Echo) Reset() {
	e.line.Reset()
}

// Tick processes one sample.
func (e *Echo) Tick(sample float64) float64 {
	fed := core.FlushDenormals(sample + e.feedback*e.line.Read())
	delayed := e.line.Tick(fed)

	return e.dry*sample + e.wet*delayed
}

// ProcessInPlace applies the echo to buf in place.
func (e *Echo) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = e.Tick(buf[i])
	}
}

// Delay returns the current delay in samples.
func (e *Echo) Delay() int {
	if e.variable != nil {
		return e.variable.Offset()
	}

	return e.line.Len()
}

// Size returns the capacity of the underlying delay line.
func (e *Echo) Size() int { return e.line.Len() }

// Resizable reports whether SetDelay is supported.
func (e *Echo) Resizable() bool { return e.variable != nil }

// Feedback returns the feedback amount in [0, 1].
func (e *Echo) Feedback() float64 { return e.feedback }

// Dry returns the dry coefficient.
func (e *Echo) Dry() float64 { return e.dry }

// Wet returns the wet coefficient.
func (e *Echo) Wet() float64 { return e.wet }

func validateFeedback(feedback float64) error {
	if feedback < 0 || feedback > 1 || math.IsNaN(feedback) {
		return fmt.Errorf("echo feedback must be in [0, 1]: %f", feedback)
	}

	return nil
}

func validateMix(dry, wet float64) error {
	if dry < 0 || wet < 0 || !core.IsFinite(dry) || !core.IsFinite(wet) {
		return fmt.Errorf("echo dry and wet must be >= 0 and finite: dry=%f wet=%f", dry, wet)
	}

	if math.Abs(dry+wet-1) > mixTolerance {
		return fmt.Errorf("echo dry and wet must sum to 1: dry=%f wet=%f", dry, wet)
	}

	return nil
}
