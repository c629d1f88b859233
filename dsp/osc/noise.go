package osc

import "math/rand/v2"

// WhiteNoise produces uniform noise in [-1, 1) from a seeded PCG generator.
type WhiteNoise struct {
	seed uint64
	src  *rand.PCG
	rng  *rand.Rand
}

// NewWhiteNoise returns a noise source. Equal seeds give equal sequences.
func NewWhiteNoise(seed uint64) *WhiteNoise {
	src := rand.NewPCG(seed, ^seed)
	return &WhiteNoise{
		seed: seed,
		src:  src,
		rng:  rand.New(src),
	}
}

// Tick returns the next noise sample. The input is ignored.
func (n *WhiteNoise) Tick(float64) float64 {
	return n.rng.Float64()*2 - 1
}

// Reset restarts the sequence from the seed.
func (n *WhiteNoise) Reset() {
	n.src.Seed(n.seed, ^n.seed)
}
