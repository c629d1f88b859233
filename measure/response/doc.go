// Package response measures unit generators by their impulse response.
//
// [Impulse] records the output of a ticker for a unit impulse, [Magnitude]
// turns an impulse response into a magnitude spectrum and [Notches] locates the
// nulls of comb-like responses such as delay-and-add echoes.
package response
