// Package symbol provides the variable store behind euclid's measures: a
// disjoint-set (union-find) structure over unknown-variable identifiers,
// with an optional bound value per equivalence class.
//
// Declaring two measures equal unions their variables' classes; binding a
// value attaches it to the class representative, so the value is observed
// by every member past, present and future. Union uses path compression
// and union by rank, making unification transitive and idempotent by
// construction: Union(a,b); Union(b,c) is indistinguishable from
// Union(a,c); Union(b,c).
//
// Conflict rules:
//   - Bind on a class already bound to a different value → ErrValueConflict,
//     and the existing value is kept.
//   - Union of two classes bound to different values → ErrValueConflict,
//     and neither class is modified.
//
// Snapshot/Restore capture the full store state so callers (the equation
// engine) can apply a batch of bindings all-or-nothing.
//
// Errors:
//
//	ErrUnknownVar   - variable was not issued by this store.
//	ErrValueConflict - attempt to associate two different values with one class.
package symbol
