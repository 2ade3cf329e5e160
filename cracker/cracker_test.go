package cracker_test

import (
	"testing"

	"github.com/katalvlaran/mt19937cracker/cracker"
	"github.com/katalvlaran/mt19937cracker/gf2"
	"github.com/katalvlaran/mt19937cracker/mt19937"
	"github.com/stretchr/testify/require"
)

func TestCracker_NotArmedBeforeSolve(t *testing.T) {
	t.Parallel()

	c := cracker.New()
	_, err := c.NextUint32()
	require.ErrorIs(t, err, cracker.ErrNotArmed)
	require.Equal(t, cracker.KindNotArmed, cracker.Kind(err))

	_, err = c.State()
	require.ErrorIs(t, err, cracker.ErrNotArmed)
}

func TestCracker_Solve_RejectsWrongObservationLength(t *testing.T) {
	t.Parallel()

	c := cracker.New()
	err := c.Solve(make([]byte, cracker.N-1), 32)
	require.ErrorIs(t, err, cracker.ErrShape)
	require.Equal(t, cracker.KindShape, cracker.Kind(err))
}

func TestCracker_Solve_RejectsGranularityBelowTwo(t *testing.T) {
	t.Parallel()

	c := cracker.New()
	err := c.Solve(make([]byte, cracker.N), 1)
	require.ErrorIs(t, err, cracker.ErrShape)
}

func TestCracker_Solve_FailureLeavesCrackerUnarmed(t *testing.T) {
	t.Parallel()

	c := cracker.New()
	err := c.Solve(make([]byte, cracker.N-1), 32)
	require.Error(t, err)

	_, err = c.NextUint32()
	require.ErrorIs(t, err, cracker.ErrNotArmed)
}

// observeTopBits extracts n bits at granularity k from e, the same
// convention gf2.BuildTransitionMatrix uses: k=32 (full-word mode) takes
// exactly one bit (the MSB) per extract over n extracts, while every other
// granularity groups k bits per extract, MSB-first.
func observeTopBits(e *mt19937.Engine, n int, k int) []byte {
	obs := make([]byte, n)
	if k == 32 {
		for row := 0; row < n; row++ {
			y := e.Extract()
			obs[row] = byte((y >> 31) & 1)
		}

		return obs
	}

	row := 0
	for row < n {
		y := e.Extract()
		for b := 0; b < k && row < n; b++ {
			obs[row] = byte((y >> uint(31-b)) & 1)
			row++
		}
	}

	return obs
}

func referenceSeed() [mt19937.N]uint32 {
	var s [mt19937.N]uint32
	for i := range s {
		s[i] = uint32(i + 1)
	}

	return s
}

// TestCracker_RoundTrip_FullWordMode is spec scenario 2: recover a state
// from n=19968 top-bit observations (k=32) and predict the next output.
// Building and eliminating the full n x n transition matrix is the module's
// O(n^3/W) worst-case path; it is correct but slow, so it is skipped under
// -short.
func TestCracker_RoundTrip_FullWordMode(t *testing.T) {
	if testing.Short() {
		t.Skip("full n=19968 Gauss-Jordan elimination is slow; see TestCracker_RoundTrip_FullWordMode")
	}

	seed := referenceSeed()
	victim := mt19937.New()
	victim.SeedState(seed)
	obs := observeTopBits(victim, cracker.N, 32)

	c := cracker.New()
	require.NoError(t, c.Solve(obs, 32))

	got, err := c.State()
	require.NoError(t, err)
	want := seed
	want[0] &^= 0x7fffffff // low 31 bits of state[0] are unobservable
	require.Equal(t, want, got)

	require.Equal(t, victim.Extract(), mustNext(t, c))
}

// TestCracker_RoundTrip_PartialWordMode is spec scenario 3: k=4.
func TestCracker_RoundTrip_PartialWordMode(t *testing.T) {
	if testing.Short() {
		t.Skip("full n=19968 Gauss-Jordan elimination is slow; see TestCracker_RoundTrip_PartialWordMode")
	}

	seed := referenceSeed()
	victim := mt19937.New()
	victim.SeedState(seed)
	obs := observeTopBits(victim, cracker.N, 4)

	c := cracker.New()
	require.NoError(t, c.Solve(obs, 4))

	got, err := c.State()
	require.NoError(t, err)
	want := seed
	want[0] &^= 0x7fffffff
	require.Equal(t, want, got)

	require.Equal(t, victim.Extract(), mustNext(t, c))
}

// TestCracker_RoundTrip_K16 is spec scenario 5.
func TestCracker_RoundTrip_K16(t *testing.T) {
	if testing.Short() {
		t.Skip("full n=19968 Gauss-Jordan elimination is slow; see TestCracker_RoundTrip_K16")
	}

	seed := referenceSeed()
	victim := mt19937.New()
	victim.SeedState(seed)
	obs := observeTopBits(victim, cracker.N, 16)

	c := cracker.New()
	require.NoError(t, c.Solve(obs, 16))

	got, err := c.State()
	require.NoError(t, err)
	want := seed
	want[0] &^= 0x7fffffff
	require.Equal(t, want, got)

	require.Equal(t, victim.Extract(), mustNext(t, c))
}

// TestCracker_AllZeroObservations is spec scenario 4.
func TestCracker_AllZeroObservations(t *testing.T) {
	if testing.Short() {
		t.Skip("full n=19968 Gauss-Jordan elimination is slow; see TestCracker_AllZeroObservations")
	}

	obs := make([]byte, cracker.N)
	c := cracker.New()
	require.NoError(t, c.Solve(obs, 32))

	state, err := c.State()
	require.NoError(t, err)

	e := mt19937.New()
	e.SeedState(state)
	for i := 0; i < cracker.N; i++ {
		y := e.Extract()
		require.Zerof(t, (y>>31)&1, "extract %d", i)
	}
}

// TestCracker_FlippedObservationBitIsInconsistent is spec scenario 6.
func TestCracker_FlippedObservationBitIsInconsistent(t *testing.T) {
	if testing.Short() {
		t.Skip("full n=19968 Gauss-Jordan elimination is slow; see TestCracker_FlippedObservationBitIsInconsistent")
	}

	seed := referenceSeed()
	victim := mt19937.New()
	victim.SeedState(seed)
	obs := observeTopBits(victim, cracker.N, 32)
	obs[0] ^= 1

	c := cracker.New()
	err := c.Solve(obs, 32)
	require.ErrorIs(t, err, cracker.ErrInconsistent)
	require.Equal(t, cracker.KindInconsistent, cracker.Kind(err))
}

// TestCracker_TooFewObservations_PaddedWithZeros is spec scenario 1: 624
// genuine observation bits padded out to n=19968 with zeros is not enough
// to pin down every observable state bit.
func TestCracker_TooFewObservations_PaddedWithZeros(t *testing.T) {
	if testing.Short() {
		t.Skip("full n=19968 Gauss-Jordan elimination is slow; see TestCracker_TooFewObservations_PaddedWithZeros")
	}

	var seed [mt19937.N]uint32
	for i := range seed {
		seed[i] = uint32(i + 1)
	}
	victim := mt19937.New()
	victim.SeedState(seed)

	obs := make([]byte, cracker.N)
	for i := 0; i < mt19937.N; i++ {
		y := victim.Extract()
		obs[i] = byte((y >> 31) & 1)
	}
	// obs[mt19937.N:] stays zero padding.

	c := cracker.New()
	err := c.Solve(obs, 32)
	require.ErrorIs(t, err, cracker.ErrUnderdetermined)
	require.Equal(t, cracker.KindUnderdetermined, cracker.Kind(err))
}

func mustNext(t *testing.T, c *cracker.Cracker) uint32 {
	t.Helper()
	y, err := c.NextUint32()
	require.NoError(t, err)

	return y
}

// sanity-check that cracker.N matches the package it is derived from, so a
// future edit to either constant can't silently desynchronize them.
func TestCracker_NMatchesGF2Dimension(t *testing.T) {
	t.Parallel()
	require.Equal(t, mt19937.N*32, cracker.N)
	require.Equal(t, cracker.N, gf2.G32.Steps(cracker.N)) // one extract per observed bit (the MSB) at full granularity
}
