package gf2

import "errors"

// Sentinel errors for the gf2 package. Algorithms return these directly or
// wrapped with fmt.Errorf("%w", ...); compare with errors.Is.
var (
	// ErrShape is returned by ParseGranularity when k < 2 (no permitted
	// granularity is small enough to clamp down to).
	ErrShape = errors.New("gf2: invalid shape")

	// ErrInconsistent is returned by CheckConsistency when some row at or
	// beyond the elimination rank carries a nonzero observation: the
	// supplied observations cannot have come from any MT19937 state.
	ErrInconsistent = errors.New("gf2: inconsistent system")

	// ErrUnderdetermined is returned by CheckConsistency when the
	// elimination rank is below n-31 even though the system is consistent:
	// not enough independent observations were supplied.
	ErrUnderdetermined = errors.New("gf2: underdetermined system")
)
