// Package delay provides circular delay buffers driven one sample at a time.
//
// Two variants share the same fixed-capacity storage model:
//
//   - Line: a single read/write cursor. The delay is exactly the buffer size
//     and never changes.
//   - VarLine: an independent write cursor and a read offset that can be
//     changed between any two ticks. Use it for every delay that is retuned
//     at runtime.
//
// Neither variant reallocates after construction, and Tick is O(1) and
// allocation free.
package delay
