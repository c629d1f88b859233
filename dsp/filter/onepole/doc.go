// Package onepole provides first-order smoothing and one-zero filters used
// inside unit generators, such as parameter smoothing and the Karplus-Strong
// loop filter.
package onepole
