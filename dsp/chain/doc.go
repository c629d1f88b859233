// Package chain composes unit generators.
//
// [Serial] feeds each stage's output into the next. [Product] and [Sum] tick
// several sources with the same input and multiply or add their outputs, which
// covers ring modulation with an oscillator and gain stages with an
// osc.Constant. The block helpers apply the same operations to whole buffers
// using algo-vecmath kernels.
package chain
