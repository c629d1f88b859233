package chain

import "github.com/cwbudde/algo-ugen/dsp/core"

// Product ticks every source with the same input and multiplies the outputs.
// An empty product is 1.
type Product struct {
	sources []core.Ticker
}

// NewProduct returns a product of sources.
func NewProduct(sources ...core.Ticker) (*Product, error) {
	checked, err := checkStages(sources)
	if err != nil {
		return nil, err
	}

	return &Product{sources: checked}, nil
}

// Tick returns the product of all source outputs for sample.
func (p *Product) Tick(sample float64) float64 {
	out := 1.0
	for _, src := range p.sources {
		out *= src.Tick(sample)
	}

	return out
}

// Reset resets every resettable source.
func (p *Product) Reset() {
	for _, src := range p.sources {
		core.Reset(src)
	}
}

// Len returns the number of sources.
func (p *Product) Len() int { return len(p.sources) }

// Sum ticks every source with the same input and adds the outputs.
type Sum struct {
	sources []core.Ticker
}

// NewSum returns a sum of sources.
func NewSum(sources ...core.Ticker) (*Sum, error) {
	checked, err := checkStages(sources)
	if err != nil {
		return nil, err
	}

	return &Sum{sources: checked}, nil
}

// Tick returns the sum of all source outputs for sample.
func (s *Sum) Tick(sample float64) float64 {
	out := 0.0
	for _, src := range s.sources {
		out += src.Tick(sample)
	}

	return out
}

// Reset resets every resettable source.
func (s *Sum) Reset() {
	for _, src := range s.sources {
		core.Reset(src)
	}
}

// Len returns the number of sources.
func (s *Sum) Len() int { return len(s.sources) }

// Multiply returns the product of values, 1 for an empty slice.
func Multiply(values []float64) float64 {
	out := 1.0
	for _, v := range values {
		out *= v
	}

	return out
}

// Add returns the sum of values.
func Add(values []float64) float64 {
	out := 0.0
	for _, v := range values {
		out += v
	}

	return out
}
