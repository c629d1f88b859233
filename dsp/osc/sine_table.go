package osc

import (
	"fmt"
	"math"
	"sync"
)

// DefaultSineTableSize is the length of the table returned by DefaultSineTable.
const DefaultSineTableSize = 16384

// SineTable holds one period of a sine wave. It is never modified after
// construction and may be shared by any number of oscillators.
type SineTable struct {
	table []float64
}

var defaultSineTable = sync.OnceValue(func() *SineTable {
	return newSineTable(DefaultSineTableSize)
})

// DefaultSineTable returns the shared table of DefaultSineTableSize entries.
func DefaultSineTable() *SineTable {
	return defaultSineTable()
}

// NewSineTable builds a table of size entries, sin(2*pi*i/size).
func NewSineTable(size int) (*SineTable, error) {
	if size <= 0 {
		return nil, fmt.Errorf("sine table size must be > 0: %d", size)
	}

	return newSineTable(size), nil
}

func newSineTable(size int) *SineTable {
	table := make([]float64, size)
	for i := range table {
		table[i] = math.Sin(2 * math.Pi * float64(i) / float64(size))
	}

	return &SineTable{table: table}
}

// Len returns the number of entries.
func (s *SineTable) Len() int {
	return len(s.table)
}

// Value returns the entry at floor(Len()*phase). Phases outside [0, 1) wrap.
func (s *SineTable) Value(phase float64) float64 {
	n := len(s.table)

	i := int(float64(n) * phase)
	if i < 0 || i >= n {
		i %= n
		if i < 0 {
			i += n
		}
	}

	return s.table[i]
}
