package symbol

// Var identifies an unknown variable within one Store. Vars are dense
// small integers; cross-references should store Vars, not pointers.
type Var int

// ValueEps is the tolerance under which two bound values are considered
// the same quantity. Solved values come out of floating-point elimination,
// so exact comparison would turn round-off into spurious conflicts.
const ValueEps = 1e-9

// sameValue reports whether two values agree within ValueEps.
func sameValue(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}

	return d <= ValueEps
}

// Store is a disjoint-set over variables with a bound value per class.
// Zero value is not usable; construct with NewStore. Not safe for
// concurrent use on its own; the owning Scene serializes access.
type Store struct {
	parent []Var     // parent[v] = v for roots
	rank   []int     // union-by-rank heights
	bound  []bool    // bound[root] = class has a value (valid at roots only)
	val    []float64 // val[root] = class value (valid at roots only)
}

// NewStore creates an empty variable store.
func NewStore() *Store {
	return &Store{}
}

// NewVar issues a fresh variable in its own singleton class.
// Complexity: amortized O(1).
func (s *Store) NewVar() Var {
	v := Var(len(s.parent))
	s.parent = append(s.parent, v)
	s.rank = append(s.rank, 0)
	s.bound = append(s.bound, false)
	s.val = append(s.val, 0)

	return v
}

// Len reports the number of issued variables.
func (s *Store) Len() int { return len(s.parent) }

// valid reports whether v was issued by this store.
func (s *Store) valid(v Var) bool { return v >= 0 && int(v) < len(s.parent) }

// Find returns the representative of v's equivalence class.
// Iterative path compression, same shape as a textbook DSU.
func (s *Store) Find(v Var) (Var, error) {
	if !s.valid(v) {
		return 0, ErrUnknownVar
	}
	for s.parent[v] != v {
		// Path compression: point v to its grandparent.
		s.parent[v] = s.parent[s.parent[v]]
		v = s.parent[v]
	}

	return v, nil
}

// Union merges the classes of a and b.
//
// If exactly one class is bound, the merged class keeps that value. If
// both are bound to different values, ErrValueConflict is returned and
// neither class changes. Union is commutative, associative in effect, and
// idempotent.
func (s *Store) Union(a, b Var) error {
	ra, err := s.Find(a)
	if err != nil {
		return err
	}
	rb, err := s.Find(b)
	if err != nil {
		return err
	}
	if ra == rb {
		// Already one class; nothing to do.
		return nil
	}
	if s.bound[ra] && s.bound[rb] && !sameValue(s.val[ra], s.val[rb]) {
		return ErrValueConflict
	}

	// Attach smaller-rank tree under larger-rank root.
	if s.rank[ra] < s.rank[rb] {
		ra, rb = rb, ra
	}
	s.parent[rb] = ra
	if s.rank[ra] == s.rank[rb] {
		s.rank[ra]++
	}
	// Propagate a value from the absorbed root, if the surviving root lacks one.
	if !s.bound[ra] && s.bound[rb] {
		s.bound[ra] = true
		s.val[ra] = s.val[rb]
	}

	return nil
}

// Bind attaches value to v's class. Rebinding to the same value (within
// ValueEps) is a no-op; a different value returns ErrValueConflict and
// the existing value is kept.
func (s *Store) Bind(v Var, value float64) error {
	r, err := s.Find(v)
	if err != nil {
		return err
	}
	if s.bound[r] {
		if sameValue(s.val[r], value) {
			return nil
		}

		return ErrValueConflict
	}
	s.bound[r] = true
	s.val[r] = value

	return nil
}

// Value returns the bound value of v's class, with ok=false when the
// class is still unknown.
func (s *Store) Value(v Var) (float64, bool) {
	r, err := s.Find(v)
	if err != nil {
		return 0, false
	}
	if !s.bound[r] {
		return 0, false
	}

	return s.val[r], true
}

// Bound reports whether v's class carries a value.
func (s *Store) Bound(v Var) bool {
	_, ok := s.Value(v)

	return ok
}

// Snapshot captures the complete store state. Used by the equation engine
// to make a batch of bindings all-or-nothing.
type Snapshot struct {
	parent []Var
	rank   []int
	bound  []bool
	val    []float64
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		parent: make([]Var, len(s.parent)),
		rank:   make([]int, len(s.rank)),
		bound:  make([]bool, len(s.bound)),
		val:    make([]float64, len(s.val)),
	}
	copy(snap.parent, s.parent)
	copy(snap.rank, s.rank)
	copy(snap.bound, s.bound)
	copy(snap.val, s.val)

	return snap
}

// Restore rolls the store back to a previously captured state. Variables
// issued after the snapshot are discarded.
func (s *Store) Restore(snap Snapshot) {
	s.parent = append(s.parent[:0], snap.parent...)
	s.rank = append(s.rank[:0], snap.rank...)
	s.bound = append(s.bound[:0], snap.bound...)
	s.val = append(s.val[:0], snap.val...)
}
