// Package effects provides per-sample effect kernels built on the delay lines.
//
// Subpackages:
//   - github.com/cwbudde/algo-ugen/dsp/effects/modulation
//
// Effects in this package:
//   - Echo: Feedback delay with dry/wet mix, fixed or resizable length.
//   - Distortion: Pre-gain, offset and hard clip into a cubic soft curve.
//
// All effects are real-time safe with zero-allocation hot paths and support
// both single-sample and buffer-based processing.
package effects
