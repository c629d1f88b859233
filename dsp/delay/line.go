package delay

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

var (
	// ErrInvalidSize is returned when a delay buffer size is not positive.
	ErrInvalidSize = errors.New("delay size must be > 0")

	// ErrOffsetOutOfRange is returned when a read offset is outside [0, size).
	ErrOffsetOutOfRange = errors.New("delay offset out of range")
)

// Line is a fixed circular delay line with one cursor.
//
// Each tick reads the oldest stored sample and overwrites the same slot with
// the new one, so the output is the input delayed by Len samples.
type Line struct {
	buffer []float64
	pos    int
}

// New returns a zeroed delay line of fixed size.
func New(size int) (*Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return &Line{buffer: make([]float64, size)}, nil
}

// Len returns the buffer size, which is also the delay in samples.
func (d *Line) Len() int {
	return len(d.buffer)
}

// Read returns the sample that the next Tick will output and overwrite.
func (d *Line) Read() float64 {
	return d.buffer[d.pos]
}

// Tick reads the oldest sample, stores sample in its slot and advances.
func (d *Line) Tick(sample float64) float64 {
	delayed := d.buffer[d.pos]
	d.buffer[d.pos] = sample
	d.pos++
	if d.pos >= len(d.buffer) {
		d.pos = 0
	}
	return delayed
}

// ProcessInPlace delays buf in place.
func (d *Line) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = d.Tick(buf[i])
	}
}

// Reset clears line state.
func (d *Line) Reset() {
	core.Zero(d.buffer)
	d.pos = 0
}
