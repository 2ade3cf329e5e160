package cracker

import (
	"errors"

	"github.com/katalvlaran/mt19937cracker/gf2"
)

// Sentinel errors for the cracker package. Solve, NextUint32, and State
// return these directly or wrapped with fmt.Errorf("%w", ...); compare
// with errors.Is.
var (
	// ErrAllocation marks an allocation failure while preparing to solve.
	// The Go solver has no catchable OOM path of its own (make panics, like
	// every other allocation in this module's teacher codebase); this
	// sentinel exists for a boundary adapter that wants to raise it
	// deliberately, e.g. a size guard before a foreign-function call.
	ErrAllocation = errors.New("cracker: allocation failed")

	// ErrShape is returned when observations has the wrong length, or when
	// the requested granularity is below 2 (see gf2.ParseGranularity).
	ErrShape = gf2.ErrShape

	// ErrInconsistent is returned when the observations cannot have come
	// from any MT19937 state.
	ErrInconsistent = gf2.ErrInconsistent

	// ErrUnderdetermined is returned when too few independent observations
	// were supplied to pin down every observable state bit.
	ErrUnderdetermined = gf2.ErrUnderdetermined

	// ErrNotArmed is returned by NextUint32 and State before a successful
	// Solve.
	ErrNotArmed = errors.New("cracker: state not recovered yet")
)

// ErrorKind is a closed classification of Solve/NextUint32/State failures,
// convenient for callers across a foreign-function boundary that want a
// plain enum rather than an errors.Is chain (spec.md §6's binding layer is
// exactly such a caller).
type ErrorKind int

// The enumerated error kinds, matching spec.md §7.
const (
	KindNone ErrorKind = iota
	KindAllocation
	KindShape
	KindInconsistent
	KindUnderdetermined
	KindNotArmed
)

// Kind classifies err into an ErrorKind. A nil error, or one this package
// did not produce, classifies as KindNone.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrAllocation):
		return KindAllocation
	case errors.Is(err, ErrShape):
		return KindShape
	case errors.Is(err, ErrInconsistent):
		return KindInconsistent
	case errors.Is(err, ErrUnderdetermined):
		return KindUnderdetermined
	case errors.Is(err, ErrNotArmed):
		return KindNotArmed
	default:
		return KindNone
	}
}
