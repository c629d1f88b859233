package delay

import (
	"fmt"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

// VarLine is a circular delay line with a runtime-settable read offset.
//
// The read index is derived from the write index and the offset on every
// tick, so SetOffset never moves or resizes the buffer:
//
//	readPos = (writePos + size - offset) % size
//
// An offset of 0 passes the input straight through.
type VarLine struct {
	buffer   []float64
	writePos int
	readPos  int
	offset   int
}

// NewVar returns a zeroed variable delay line of the given size reading
// offset samples behind the write cursor.
func NewVar(size, offset int) (*VarLine, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if err := checkOffset(offset, size); err != nil {
		return nil, err
	}
	return &VarLine{
		buffer: make([]float64, size),
		offset: offset,
	}, nil
}

// Len returns the buffer size. The largest usable offset is Len()-1.
func (d *VarLine) Len() int {
	return len(d.buffer)
}

// Offset returns the current delay in samples.
func (d *VarLine) Offset() int {
	return d.offset
}

// SetOffset changes the delay, effective from the next Tick.
// The line is left unchanged if offset is outside [0, Len()).
func (d *VarLine) SetOffset(offset int) error {
	if err := checkOffset(offset, len(d.buffer)); err != nil {
		return err
	}
	d.offset = offset
	return nil
}

// Read returns the sample at the most recently computed read index.
func (d *VarLine) Read() float64 {
	return d.buffer[d.readPos]
}

// Tick writes sample, reads offset samples back and advances the write cursor.
func (d *VarLine) Tick(sample float64) float64 {
	size := len(d.buffer)
	d.buffer[d.writePos] = sample
	d.readPos = (d.writePos + size - d.offset) % size
	delayed := d.buffer[d.readPos]
	d.writePos++
	if d.writePos >= size {
		d.writePos = 0
	}
	return delayed
}

// ProcessInPlace delays buf in place at the current offset.
func (d *VarLine) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = d.Tick(buf[i])
	}
}

// Reset clears the buffer and cursors. The offset is kept.
func (d *VarLine) Reset() {
	core.Zero(d.buffer)
	d.writePos = 0
	d.readPos = 0
}

func checkOffset(offset, size int) error {
	if offset < 0 || offset >= size {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOffsetOutOfRange, offset, size)
	}
	return nil
}
