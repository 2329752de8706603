// Package equation: sentinel error set.
// All messages are prefixed with "equation: ..." and matched via errors.Is.
package equation

import "errors"

var (
	// ErrContradiction indicates the accumulated system of equations has no
	// solution (including a uniquely determined non-positive measure).
	// SolveSystem returns it without modifying any state.
	ErrContradiction = errors.New("equation: system of equations is inconsistent")

	// ErrNilStore indicates that a nil *symbol.Store was supplied.
	ErrNilStore = errors.New("equation: nil symbol store")

	// ErrSolveFailed indicates the SVD factorization did not converge.
	// Distinct from ErrContradiction: the system was not shown inconsistent.
	ErrSolveFailed = errors.New("equation: factorization failed to converge")
)
