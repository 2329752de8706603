// Package symbol: sentinel error set.
// All messages are prefixed with "symbol: ..." and matched via errors.Is.
package symbol

import "errors"

var (
	// ErrUnknownVar indicates a Var that was not issued by this Store.
	ErrUnknownVar = errors.New("symbol: unknown variable")

	// ErrValueConflict indicates an attempt to bind a class to a value
	// different from the one it already carries, directly or via Union.
	ErrValueConflict = errors.New("symbol: conflicting values for one variable class")
)
