// Package bitmatrix provides a dense n×n matrix over GF(2), packed as
// 64-bit words in row-major order. It plays the role the lvlath matrix
// package's Dense type plays for float64 linear algebra, specialized to a
// single bit per cell: row XOR and row swap are the only mutations the
// GF(2) solver needs, and both run as whole-word operations across a row's
// backing words rather than bit-by-bit.
//
// Bits within a word are LSB-first (bit c of a row lives in bit c mod 64 of
// word c/64), matching natural Go shift semantics and the packed-state
// convention used in the gf2 and mt19937 packages.
package bitmatrix
