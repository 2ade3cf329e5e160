package gf2

import "github.com/katalvlaran/mt19937cracker/mt19937"

// ReconstructState packs the solved bit vector x (n bits, from
// BackSubstitute) into a 624-word MT19937 state array: bit j of x maps to
// bit j%32 of word j/32. Bits of x beyond the 624*32 = 19968 bits a
// standard MT19937 state holds are ignored; the recovery pipeline only
// ever calls this with n == 19968, so that never happens in practice.
func ReconstructState(x []uint64, n int) [mt19937.N]uint32 {
	var state [mt19937.N]uint32
	for j := 0; j < n; j++ {
		if (x[j/64]>>uint(j%64))&1 == 0 {
			continue
		}
		word := j / 32
		if word >= mt19937.N {
			continue
		}
		state[word] |= 1 << uint(j%32)
	}

	return state
}

// FastForward seeds a fresh engine from state and discards exactly steps
// extracts, the number of MT19937 outputs that produced the observations
// the state was recovered from. The returned engine is aligned to emit the
// first unseen output on its next Extract call.
func FastForward(state [mt19937.N]uint32, steps int) *mt19937.Engine {
	e := mt19937.New()
	e.SeedState(state)
	for i := 0; i < steps; i++ {
		e.Extract()
	}

	return e
}
