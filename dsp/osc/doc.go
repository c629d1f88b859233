// Package osc provides per-sample signal sources: a phase accumulator,
// table-lookup sine oscillators, AM/FM pairs, a pulse-width generator, noise
// and a constant source.
//
// Sources implement core.Ticker. Their input sample is ignored, so they can
// sit anywhere in a chain or drive a modulated effect as an LFO.
//
// Sine-based sources share a read-only lookup table. DefaultSineTable returns
// a process-wide table built once on first use.
package osc
