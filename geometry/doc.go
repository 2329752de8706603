// Package geometry models Euclidean figures as networks of symbolic
// objects (Point, Line, Segment, Angle, Polygon/Triangle) whose measures
// may be unknown until theorem-generated equations determine them.
//
// 🚀 How it fits together
//
//	Everything lives in a Scene: an explicit context object owning the
//	identity registry, the variable store and the pending equation set.
//	Constructors canonicalize their input and route through the registry,
//	so two constructions denoting the same physical entity resolve to one
//	shared object:
//		• Segment(A,B) ≡ Segment(B,A)           (unordered endpoints)
//		• Angle(A,B,C) ≡ Angle(C,B,A)           (same vertex B)
//		• Polygon(A,B,C,D) ≡ Polygon(C,D,A,B)   (rotation of one traversal)
//	The mirror-image traversal of an existing polygon is not merged; it
//	is a conflicting declaration and fails with ErrIdentityConflict.
//
// ✨ Measures
//
//	Each Segment, Angle and Polygon owns one lazily created Measure: a
//	quantity that is either unbound (a fresh symbolic variable) or bound
//	to a value. Declaring two measures equal (SetEqualTo) merges their
//	variables' classes; binding propagates to every member. A Measure's
//	bound value never silently changes; conflicting binds fail with
//	ErrMeasureConflict.
//
// ⚙️ Solving
//
//	Theorems emit equations via Scene.Assert; Scene.SolveSystem (or any
//	object's Solve convenience) solves the accumulated system and binds
//	exactly the measures it uniquely determines. Unknown-but-unconstrained
//	queries report ErrUnresolved, a defined outcome rather than a failure.
//
// Construction never uses coordinates; all reasoning is symbolic.
//
// Errors:
//
//	ErrIdentityConflict      - declaration contradicts a registered object.
//	ErrMeasureConflict       - bind/unification inconsistent with a bound value.
//	ErrUnresolved            - queried value not determined yet.
//	ErrMalformedConstruction - degenerate constructor input.
package geometry
