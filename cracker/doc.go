// Package cracker provides the facade the host-language binding layer
// drives: Cracker recovers an MT19937 generator's internal state from a
// stream of observed truncated outputs, then predicts subsequent outputs.
//
// A Cracker is created empty with New, armed exactly once by a successful
// Solve, and then answers NextUint32/State calls indefinitely. It owns no
// resources beyond its own fields: the n×n bitmatrix.Matrix Solve builds is
// local to that call and is released (garbage collected) as soon as Solve
// returns, matching spec.md's "matrix is a scoped acquisition within solve,
// released on return" design.
package cracker
