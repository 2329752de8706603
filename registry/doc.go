// Package registry provides the identity table behind euclid's
// deduplicating constructors: a kind→key mapping to the single live
// instance for each canonical key.
//
// The registry is an explicit, passable object (no package-level state);
// each geometry.Scene owns exactly one. Constructors canonicalize their
// input into a (Kind, key) pair and route through LookupOrCreate, which
// guarantees at most one instance per key and invokes the supplied
// factory only when the key is new.
//
// Beyond the primary table, the registry offers:
//   - a secondary point-set index (SearchByPointSet) for kinds whose
//     identity has a rotation-insensitive "same set of points" notion
//     (polygons);
//   - deterministic auto labels (AutoLabel) for implicitly created
//     objects, drawn from a reserved namespace that user labels cannot
//     enter;
//   - eviction (Remove) and a deep-copied Entries snapshot for
//     diagnostics and tests.
//
// All operations are serialized under a single sync.RWMutex; none is
// long-running, so coarse locking suffices.
//
// Errors:
//
//	ErrDuplicatePointSet - point-set index entry already present for the set.
package registry
