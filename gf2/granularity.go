package gf2

import "fmt"

// Granularity is the number of high bits of each MT19937 tempered output
// that an observation stream carries, one of {2, 4, 8, 16, 32}.
type Granularity int

// The enumerated set of permitted granularities.
const (
	G2  Granularity = 2
	G4  Granularity = 4
	G8  Granularity = 8
	G16 Granularity = 16
	G32 Granularity = 32
)

// ParseGranularity clamps a caller-requested bit count down to the nearest
// permitted granularity: k>=32 clamps to 32, 16<=k<32 clamps to 16, 8<=k<16
// clamps to 8, 4<=k<8 clamps to 4, 2<=k<4 clamps to 2. k < 2 has no smaller
// permitted value to clamp to and is rejected with ErrShape.
func ParseGranularity(k int) (Granularity, error) {
	switch {
	case k < 2:
		return 0, fmt.Errorf("gf2.ParseGranularity(%d): %w", k, ErrShape)
	case k >= 32:
		return G32, nil
	case k >= 16:
		return G16, nil
	case k >= 8:
		return G8, nil
	case k >= 4:
		return G4, nil
	default: // 2 or 3
		return G2, nil
	}
}

// Steps returns the number of MT19937 extracts needed to produce n
// observation bits at this granularity. G32 (full-word mode) observes
// exactly one bit per extract (the MSB), so it takes n extracts, not
// n/32: every other granularity groups k bits per extract, taking
// ceil(n/k).
func (g Granularity) Steps(n int) int {
	if g == G32 {
		return n
	}
	k := int(g)

	return (n + k - 1) / k
}
