// Package mt19937cracker recovers an MT19937 Mersenne Twister generator's
// internal state from its own observed outputs, then predicts the outputs
// that follow.
//
// The recovery works by treating MT19937's tempering/twist pipeline as a
// linear map over GF(2): every output bit is an XOR of a fixed subset of
// the 19968 state bits, so a big enough set of distinct observations turns
// state recovery into solving a linear system over GF(2) by Gauss-Jordan
// elimination. No brute force and no knowledge of the seed is required.
//
// Everything is organized under four subpackages:
//
//	mt19937/   — the generator itself: seeding, twist, tempered extraction
//	bitmatrix/ — a dense n×n matrix over GF(2), bit-packed into []uint64 rows
//	gf2/       — builds the transition matrix and solves it for the state
//	cracker/   — the facade: Solve(observations, granularity) then NextUint32
//
// The cracker package's tests exercise the pipeline end to end; the
// repository has no separate examples/ programs.
package mt19937cracker
