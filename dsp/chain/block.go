package chain

import (
	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// ApplyGain scales buf in place.
func ApplyGain(buf []float64, gain float64) {
	vecmath.ScaleBlock(buf, buf, gain)
}

// MixInto adds gain*src to dst over the shorter of the two lengths. scratch is
// reused when large enough and the possibly grown buffer is returned.
func MixInto(dst, src []float64, gain float64, scratch []float64) []float64 {
	n := min(len(dst), len(src))
	scratch = core.EnsureLen(scratch, n)

	vecmath.ScaleBlock(scratch[:n], src[:n], gain)
	vecmath.AddBlockInPlace(dst[:n], scratch[:n])

	return scratch
}

// Modulate writes carrier*modulator to dst element by element.
func Modulate(dst, carrier, modulator []float64) {
	n := min(len(dst), len(carrier), len(modulator))
	vecmath.MulBlock(dst[:n], carrier[:n], modulator[:n])
}
