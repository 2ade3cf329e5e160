package gf2

import (
	"github.com/katalvlaran/mt19937cracker/bitmatrix"
	"github.com/katalvlaran/mt19937cracker/mt19937"
)

// BuildTransitionMatrix populates an n×n matrix over GF(2) such that row i,
// column j holds the coefficient of initial state bit j in the i-th
// observed bit of the output stream at the given granularity.
//
// For each column j it seeds a throwaway engine with a unit state vector (a
// single 1 bit at word j/32, bit j%32) and harvests bits from its tempered
// extracts, MSB-first, into column j's rows. G32 (full-word mode) is its own
// procedure, not the general grouped one: it observes exactly one bit (the
// MSB) per extract, over n extracts, so row i is the MSB of extract i.
// Every other granularity groups k bits per extract: extract o contributes
// rows [o*k, o*k+k), stopping once the row index reaches n.
// Complexity: O(n^2) single-bit writes (n columns, each requiring n
// extracts at G32 or ceil(n/k) extracts at the other granularities, with
// one bit written per row).
func BuildTransitionMatrix(n int, k Granularity) (*bitmatrix.Matrix, error) {
	m, err := bitmatrix.New(n)
	if err != nil {
		return nil, err
	}

	for j := 0; j < n; j++ {
		var state [mt19937.N]uint32
		state[j/32] = 1 << uint(j%32)

		e := mt19937.New()
		e.SeedState(state)

		if k == G32 {
			for row := 0; row < n; row++ {
				y := e.Extract()
				if (y>>31)&1 != 0 {
					m.Set(row, j, 1)
				}
			}
			continue
		}

		bits := int(k)
		row := 0
		for row < n {
			y := e.Extract()
			for b := 0; b < bits && row < n; b++ {
				if (y>>(31-b))&1 != 0 {
					m.Set(row, j, 1)
				}
				row++
			}
		}
	}

	return m, nil
}
