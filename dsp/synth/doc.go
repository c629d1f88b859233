// Package synth provides self-contained synthesis voices built from the delay
// and filter primitives.
package synth
