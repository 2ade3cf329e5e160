package bitmatrix

import "errors"

// Sentinel errors for the bitmatrix package. Every algorithm in this
// package returns these directly or wrapped with fmt.Errorf("%w", ...);
// callers should compare with errors.Is.
var (
	// ErrBadShape is returned when a requested matrix dimension is <= 0.
	ErrBadShape = errors.New("bitmatrix: invalid shape")
)
