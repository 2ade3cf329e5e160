// Package gf2 implements the recovery pipeline's math: building the
// MT19937 output transition matrix as a linear map over GF(2), solving it
// with Gauss–Jordan elimination, and reconstructing + fast-forwarding an
// mt19937.Engine from the solved state.
//
// The four stages are split across separate files (transition.go, solve.go,
// reconstruct.go) but share one package because they operate on the same
// bitmatrix.Matrix and observation vector in a fixed pipeline order; splitting
// them into separate packages would only add import indirection without
// decoupling anything a caller could reasonably swap out.
package gf2
