package chain

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

// ErrNilStage is returned when a chain is built with a nil stage.
var ErrNilStage = errors.New("chain stage must not be nil")

// Serial runs a fixed list of stages in order.
type Serial struct {
	stages []core.Ticker
}

// NewSerial returns a serial chain of stages. The order is fixed at construction.
func NewSerial(stages ...core.Ticker) (*Serial, error) {
	checked, err := checkStages(stages)
	if err != nil {
		return nil, err
	}

	return &Serial{stages: checked}, nil
}

// Tick passes sample through every stage.
func (s *Serial) Tick(sample float64) float64 {
	for _, st := range s.stages {
		sample = st.Tick(sample)
	}

	return sample
}

// ProcessInPlace runs the chain over buf in place.
func (s *Serial) ProcessInPlace(buf []float64) {
	for i, x := range buf {
		buf[i] = s.Tick(x)
	}
}

// Reset resets every stage that implements core.Resetter.
func (s *Serial) Reset() {
	for _, st := range s.stages {
		core.Reset(st)
	}
}

// Len returns the number of stages.
func (s *Serial) Len() int { return len(s.stages) }

func checkStages(stages []core.Ticker) ([]core.Ticker, error) {
	for i, st := range stages {
		if st == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilStage, i)
		}
	}

	return append([]core.Ticker(nil), stages...), nil
}
