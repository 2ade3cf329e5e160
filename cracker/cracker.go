package cracker

import (
	"fmt"

	"github.com/katalvlaran/mt19937cracker/gf2"
	"github.com/katalvlaran/mt19937cracker/mt19937"
)

// N is the number of observation bits (and transition-matrix rows/columns)
// a Solve call requires: 624*32, the full MT19937 state width rounded up to
// a multiple of 64.
const N = mt19937.N * 32

// Cracker recovers and then predicts an MT19937 generator's output stream.
// The zero value is not ready for use; construct with New.
type Cracker struct {
	state     [mt19937.N]uint32
	engine    *mt19937.Engine
	recovered bool
}

// New returns an empty, unarmed Cracker.
func New() *Cracker {
	return &Cracker{}
}

// Solve recovers the generator state from exactly N observation bits taken
// at granularity k (see gf2.ParseGranularity for the permitted set and its
// clamping rule) and arms the Cracker on success.
//
// Step order is fixed, matching spec.md §5: build the transition matrix,
// eliminate, check consistency, back-substitute, reconstruct, fast-forward.
// Solve is idempotent on failure: recovered stays false and the Cracker may
// be retried with different observations; the matrix built internally is
// never reused across calls.
func (c *Cracker) Solve(observations []byte, k int) error {
	if len(observations) != N {
		return fmt.Errorf("cracker: solve: observation length %d != %d: %w", len(observations), N, ErrShape)
	}
	granularity, err := gf2.ParseGranularity(k)
	if err != nil {
		return fmt.Errorf("cracker: solve: %w", err)
	}

	// Eliminate permutes the observation vector in place; work on a private
	// copy so Solve never mutates the caller's slice.
	obs := make([]byte, N)
	copy(obs, observations)

	matrix, err := gf2.BuildTransitionMatrix(N, granularity)
	if err != nil {
		return fmt.Errorf("cracker: solve: %w", err)
	}

	pivotCol, rank := gf2.Eliminate(matrix, obs)
	if err := gf2.CheckConsistency(obs, rank, N); err != nil {
		return fmt.Errorf("cracker: solve: %w", err)
	}

	x := gf2.BackSubstitute(matrix, obs, pivotCol, rank, N)
	state := gf2.ReconstructState(x, N)
	steps := granularity.Steps(N)

	c.state = state
	c.engine = gf2.FastForward(state, steps)
	c.recovered = true

	return nil
}

// NextUint32 returns the next 32-bit output the victim generator would
// produce. Returns ErrNotArmed if Solve has not yet succeeded.
func (c *Cracker) NextUint32() (uint32, error) {
	if !c.recovered {
		return 0, ErrNotArmed
	}

	return c.engine.Extract(), nil
}

// State returns a copy of the recovered 624-word pre-twist state. The low
// 31 bits of state[0] are always 0: they lie in the MT19937 output map's
// kernel and are unobservable, so back-substitution pins them to the
// canonical representative. Returns ErrNotArmed if Solve has not yet
// succeeded.
func (c *Cracker) State() ([mt19937.N]uint32, error) {
	if !c.recovered {
		return [mt19937.N]uint32{}, ErrNotArmed
	}

	return c.state, nil
}
