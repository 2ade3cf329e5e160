// Package mt19937 implements the MT19937 Mersenne Twister pseudorandom
// number generator: a 624-word state vector, the twist transition, and the
// four-step tempering output function.
//
// Engine is deliberately minimal: it supports the two seeding paths this
// module's recovery pipeline needs (a conventional integer seed, for
// generating test vectors, and SeedState, for loading a state recovered
// bit-by-bit by the gf2 package) plus single-word extraction. It does not
// attempt to be a general-purpose math/rand source.
package mt19937
