package osc

import (
	"fmt"
	"math"
)

// PWM outputs 1 for the first duty fraction of every period and 0 otherwise.
type PWM struct {
	frame  int
	on     int
	period int
}

// NewPWM returns a pulse generator with duty in [0, 1] and a period in samples.
func NewPWM(duty float64, period int) (*PWM, error) {
	if duty < 0 || duty > 1 || math.IsNaN(duty) {
		return nil, fmt.Errorf("pwm duty cycle must be in [0, 1]: %f", duty)
	}

	if period <= 0 {
		return nil, fmt.Errorf("pwm period must be > 0: %d", period)
	}

	return &PWM{
		on:     int(float64(period) * duty),
		period: period,
	}, nil
}

// Tick returns the current pulse level and advances one frame. The input is ignored.
func (p *PWM) Tick(float64) float64 {
	out := 0.0
	if p.frame < p.on {
		out = 1
	}

	p.frame++
	if p.frame >= p.period {
		p.frame = 0
	}

	return out
}

// Reset restarts the period.
func (p *PWM) Reset() {
	p.frame = 0
}

// OnFrames returns the number of high frames per period.
func (p *PWM) OnFrames() int { return p.on }

// Period returns the period in samples.
func (p *PWM) Period() int { return p.period }
