// Package geometry: sentinel error set.
// All messages are prefixed with "geometry: ..." and matched via errors.Is.
package geometry

import "errors"

var (
	// ErrIdentityConflict indicates a new declaration of a composite shape
	// contradicts an existing one for the same points: a mirror-image
	// polygon traversal, or collinear chains that cannot be aligned.
	ErrIdentityConflict = errors.New("geometry: declaration conflicts with registered object")

	// ErrMeasureConflict indicates an attempt to associate a Measure,
	// directly or via unification, with a value inconsistent with its
	// current bound value or its dimension's valid range.
	ErrMeasureConflict = errors.New("geometry: conflicting measure values")

	// ErrUnresolved reports that the accumulated equations do not
	// determine the queried value. A defined outcome, not a failure.
	ErrUnresolved = errors.New("geometry: measure not determined yet")

	// ErrMalformedConstruction indicates degenerate constructor input:
	// too few points, repeated points, or an invalid label.
	ErrMalformedConstruction = errors.New("geometry: malformed construction")
)
