// Package modulation provides effects whose parameters are driven by a
// low-frequency oscillator.
//
// Included processors:
//   - Flanger: echo whose delay length is retuned every sample from an LFO.
package modulation
