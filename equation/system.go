package equation

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/euclid/symbol"
)

// Tolerances for the SVD-based solve. Measures in this domain are small
// positive quantities (lengths, degree values < 360), so absolute
// thresholds are appropriate.
const (
	// RankTol is the relative singular-value cutoff below which a
	// direction is treated as part of the null space.
	RankTol = 1e-10

	// ResidualTol bounds |A·x − b| per row for the minimum-norm solution;
	// anything larger marks the system as inconsistent.
	ResidualTol = 1e-6

	// NullTol bounds a variable's entries across the null-space basis;
	// below it the variable is uniquely determined by the equations.
	NullTol = 1e-8
)

// sysEntry pairs a registered expression with the canonical key it was
// deduplicated under at registration time.
type sysEntry struct {
	expr *Expr
	key  string
}

// System accumulates pending expressions until SolveSystem consumes the
// satisfiable ones. Zero value is not usable; construct with NewSystem.
// Not safe for concurrent use on its own; the owning Scene serializes
// access.
type System struct {
	entries []sysEntry
	seen    map[string]struct{}
}

// NewSystem creates an empty pending set.
func NewSystem() *System {
	return &System{seen: make(map[string]struct{})}
}

// Pending reports the number of expressions awaiting a solve.
func (s *System) Pending() int { return len(s.entries) }

// Add registers an expression into the pending set. It returns false when
// the expression is structurally identical to one already pending, or is
// trivially true (0 = 0 after folding). An expression that folds to a
// false constant assertion (e.g. 5 = 0) returns ErrContradiction
// immediately: there is no solve that could ever satisfy it.
func (s *System) Add(store *symbol.Store, e *Expr) (bool, error) {
	if store == nil {
		return false, ErrNilStore
	}
	f, err := e.fold(store)
	if err != nil {
		return false, err
	}
	if f.trivial() {
		if f.satisfied() {
			return false, nil
		}

		return false, ErrContradiction
	}
	key := f.key()
	if _, dup := s.seen[key]; dup {
		return false, nil
	}
	s.seen[key] = struct{}{}
	s.entries = append(s.entries, sysEntry{expr: e, key: key})

	return true, nil
}

// SolveSystem solves the pending expressions together with trivial rows
// fixing already-bound variables, binds every variable the system
// uniquely determines, consumes satisfied expressions, and returns the
// newly bound class representatives in ascending order.
//
// Steps:
//  1. Fold each pending expression over current class representatives.
//     A variable-free fold that does not hold → ErrContradiction.
//  2. Assemble A·x = b over the remaining representatives, appending one
//     row per already-bound representative (x_i = value).
//  3. Full SVD: rank from singular values, minimum-norm solution from
//     U, Σ, V; per-row residual above ResidualTol → ErrContradiction.
//  4. A variable is uniquely determined iff its row of the null-space
//     basis (columns rank..n−1 of V) is numerically zero; under-determined
//     variables are never bound. Determined non-positive measures →
//     ErrContradiction.
//  5. Bind determined variables (snapshot first; any conflict rolls back),
//     then drop expressions whose variables are all bound.
//
// On any error the pending set and all bindings are left unchanged.
func (s *System) SolveSystem(store *symbol.Store) ([]symbol.Var, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	// 1. Fold pending expressions over current representatives.
	folds := make([]folded, len(s.entries))
	for i, ent := range s.entries {
		f, err := ent.expr.fold(store)
		if err != nil {
			return nil, err
		}
		if f.trivial() && !f.satisfied() {
			return nil, ErrContradiction
		}
		folds[i] = f
	}

	// 2. Collect the variable columns in deterministic (ascending) order.
	colSet := make(map[symbol.Var]struct{})
	for _, f := range folds {
		for _, v := range f.vars {
			colSet[v] = struct{}{}
		}
	}
	order := make([]symbol.Var, 0, len(colSet))
	for v := range colSet {
		order = append(order, v)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	n := len(order)
	if n == 0 {
		// Every pending expression already holds; consume them all.
		s.entries = nil
		s.seen = make(map[string]struct{})

		return nil, nil
	}
	col := make(map[symbol.Var]int, n)
	for i, v := range order {
		col[v] = i
	}

	// Count rows: one per non-trivial fold, one per bound representative.
	rows := 0
	for _, f := range folds {
		if !f.trivial() {
			rows++
		}
	}
	boundVals := make(map[symbol.Var]float64)
	for _, v := range order {
		if val, ok := store.Value(v); ok {
			boundVals[v] = val
			rows++
		}
	}

	// Assemble A and b. Σ c_i·x_i + k = 0 becomes the row (c..., −k).
	a := mat.NewDense(rows, n, nil)
	b := mat.NewVecDense(rows, nil)
	r := 0
	for _, f := range folds {
		if f.trivial() {
			continue
		}
		for i, v := range f.vars {
			a.Set(r, col[v], f.coeffs[i])
		}
		b.SetVec(r, -f.k)
		r++
	}
	for _, v := range order {
		if val, ok := boundVals[v]; ok {
			a.Set(r, col[v], 1)
			b.SetVec(r, val)
			r++
		}
	}

	// 3. Full SVD and minimum-norm solution.
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDFull) {
		return nil, ErrSolveFailed
	}
	sv := svd.Values(nil)
	rank := 0
	if len(sv) > 0 && sv[0] > 0 {
		cut := sv[0] * RankTol
		for _, v := range sv {
			if v > cut {
				rank++
			}
		}
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// x = Σ_{i<rank} (uᵢ·b / σᵢ) · vᵢ
	x := make([]float64, n)
	var dot, scale float64
	for i := 0; i < rank; i++ {
		dot = 0
		for ri := 0; ri < rows; ri++ {
			dot += u.At(ri, i) * b.AtVec(ri)
		}
		scale = dot / sv[i]
		for j := 0; j < n; j++ {
			x[j] += v.At(j, i) * scale
		}
	}

	// Per-row residual: the minimum-norm solution satisfies a consistent
	// system exactly (up to round-off); a larger residual is a contradiction.
	var acc float64
	for ri := 0; ri < rows; ri++ {
		acc = -b.AtVec(ri)
		for j := 0; j < n; j++ {
			acc += a.At(ri, j) * x[j]
		}
		if acc > ResidualTol || acc < -ResidualTol {
			return nil, ErrContradiction
		}
	}

	// 4. Unique determinacy via the null-space basis (columns rank..n−1 of V).
	determined := make([]bool, n)
	for j := 0; j < n; j++ {
		determined[j] = true
		for k := rank; k < n; k++ {
			e := v.At(j, k)
			if e > NullTol || e < -NullTol {
				determined[j] = false
				break
			}
		}
	}
	// Measures are positive quantities; a determined non-positive value
	// means the declarations cannot describe a real figure.
	for j := range order {
		if determined[j] && x[j] <= symbol.ValueEps {
			return nil, ErrContradiction
		}
	}

	// 5. Bind determined variables all-or-nothing.
	snap := store.Snapshot()
	var newly []symbol.Var
	for j, vr := range order {
		if !determined[j] {
			continue
		}
		if _, already := boundVals[vr]; already {
			continue
		}
		if err := store.Bind(vr, x[j]); err != nil {
			store.Restore(snap)

			return nil, ErrContradiction
		}
		newly = append(newly, vr)
	}

	// Consume expressions whose variables are now all bound; keep the rest
	// pending, re-keyed over the current representatives.
	retained := s.entries[:0]
	seen := make(map[string]struct{})
	for i, ent := range s.entries {
		open := false
		for _, vv := range folds[i].vars {
			if !store.Bound(vv) {
				open = true
				break
			}
		}
		if !open {
			continue
		}
		key := folds[i].key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		retained = append(retained, sysEntry{expr: ent.expr, key: key})
	}
	s.entries = retained
	s.seen = seen

	return newly, nil
}
