package equation_test

import (
	"testing"

	"github.com/katalvlaran/euclid/equation"
	"github.com/katalvlaran/euclid/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAdd_StructuralDedup verifies that structurally identical equations
// are stored once, regardless of construction order and scaling.
func TestAdd_StructuralDedup(t *testing.T) {
	store := symbol.NewStore()
	sys := equation.NewSystem()
	x, y := store.NewVar(), store.NewVar()

	added, err := sys.Add(store, equation.Equal(x, y))
	require.NoError(t, err)
	assert.True(t, added)

	// Same relation, built differently and scaled by −2.
	dup := equation.NewExpr().AddTerm(y, 2).AddTerm(x, -2)
	added, err = sys.Add(store, dup)
	require.NoError(t, err)
	assert.False(t, added, "scaled duplicate must be deduplicated")
	assert.Equal(t, 1, sys.Pending())
}

// TestAdd_TrivialExpressions covers 0=0 (ignored) and 5=0 (contradiction).
func TestAdd_TrivialExpressions(t *testing.T) {
	store := symbol.NewStore()
	sys := equation.NewSystem()
	x := store.NewVar()

	// x − x = 0 folds away entirely.
	added, err := sys.Add(store, equation.Equal(x, x))
	require.NoError(t, err)
	assert.False(t, added)

	// A variable-free false assertion can never be satisfied.
	_, err = sys.Add(store, equation.NewExpr().AddConst(5))
	assert.ErrorIs(t, err, equation.ErrContradiction)
	assert.Equal(t, 0, sys.Pending())
}

// TestSolveSystem_Determined solves x+y=10, x−y=4 for x=7, y=3.
func TestSolveSystem_Determined(t *testing.T) {
	store := symbol.NewStore()
	sys := equation.NewSystem()
	x, y := store.NewVar(), store.NewVar()

	_, err := sys.Add(store, equation.NewExpr().AddTerm(x, 1).AddTerm(y, 1).AddConst(-10))
	require.NoError(t, err)
	_, err = sys.Add(store, equation.NewExpr().AddTerm(x, 1).AddTerm(y, -1).AddConst(-4))
	require.NoError(t, err)

	newly, err := sys.SolveSystem(store)
	require.NoError(t, err)
	assert.Len(t, newly, 2)
	assert.Equal(t, 0, sys.Pending(), "satisfied expressions are consumed")

	xv, ok := store.Value(x)
	require.True(t, ok)
	assert.InDelta(t, 7, xv, 1e-9)
	yv, ok := store.Value(y)
	require.True(t, ok)
	assert.InDelta(t, 3, yv, 1e-9)
}

// TestSolveSystem_UnderDetermined verifies that no variable is bound when
// multiple solutions exist, and that the equation stays pending until a
// later solve can finish the job.
func TestSolveSystem_UnderDetermined(t *testing.T) {
	store := symbol.NewStore()
	sys := equation.NewSystem()
	x, y := store.NewVar(), store.NewVar()

	_, err := sys.Add(store, equation.NewExpr().AddTerm(x, 1).AddTerm(y, 1).AddConst(-10))
	require.NoError(t, err)

	newly, err := sys.SolveSystem(store)
	require.NoError(t, err)
	assert.Empty(t, newly, "under-determined variables must not be bound")
	assert.Equal(t, 1, sys.Pending(), "unsatisfied expression stays pending")
	assert.False(t, store.Bound(x))
	assert.False(t, store.Bound(y))

	// A second equation pins both variables down.
	_, err = sys.Add(store, equation.EqualConst(x, 4))
	require.NoError(t, err)
	newly, err = sys.SolveSystem(store)
	require.NoError(t, err)
	assert.Len(t, newly, 2)
	yv, ok := store.Value(y)
	require.True(t, ok)
	assert.InDelta(t, 6, yv, 1e-9)
	assert.Equal(t, 0, sys.Pending())
}

// TestSolveSystem_Contradiction verifies that an inconsistent system
// errors and leaves bindings and the pending set untouched.
func TestSolveSystem_Contradiction(t *testing.T) {
	store := symbol.NewStore()
	sys := equation.NewSystem()
	x := store.NewVar()

	_, err := sys.Add(store, equation.EqualConst(x, 5))
	require.NoError(t, err)
	_, err = sys.Add(store, equation.EqualConst(x, 7))
	require.NoError(t, err)

	newly, err := sys.SolveSystem(store)
	assert.ErrorIs(t, err, equation.ErrContradiction)
	assert.Empty(t, newly)
	assert.Equal(t, 2, sys.Pending(), "failed solve must leave the pending set unchanged")
	assert.False(t, store.Bound(x), "failed solve must not bind anything")
}

// TestSolveSystem_OverDeterminedConsistent verifies redundant but
// consistent equations succeed.
func TestSolveSystem_OverDeterminedConsistent(t *testing.T) {
	store := symbol.NewStore()
	sys := equation.NewSystem()
	x, y := store.NewVar(), store.NewVar()

	_, err := sys.Add(store, equation.EqualConst(x, 5))
	require.NoError(t, err)
	_, err = sys.Add(store, equation.NewExpr().AddTerm(x, 1).AddTerm(y, 1).AddConst(-8))
	require.NoError(t, err)
	// Redundant: 2x + y = 13 follows from the first two.
	_, err = sys.Add(store, equation.NewExpr().AddTerm(x, 2).AddTerm(y, 1).AddConst(-13))
	require.NoError(t, err)

	_, err = sys.SolveSystem(store)
	require.NoError(t, err)
	yv, ok := store.Value(y)
	require.True(t, ok)
	assert.InDelta(t, 3, yv, 1e-9)
}

// TestSolveSystem_PositivityGuard verifies that a determined non-positive
// measure is rejected as a contradiction.
func TestSolveSystem_PositivityGuard(t *testing.T) {
	store := symbol.NewStore()
	sys := equation.NewSystem()
	x := store.NewVar()

	// x + 5 = 0 ⇒ x = −5, impossible for a measure.
	_, err := sys.Add(store, equation.NewExpr().AddTerm(x, 1).AddConst(5))
	require.NoError(t, err)

	_, err = sys.SolveSystem(store)
	assert.ErrorIs(t, err, equation.ErrContradiction)
	assert.False(t, store.Bound(x))
	assert.Equal(t, 1, sys.Pending())
}

// TestSolveSystem_BoundVarsAsRows verifies already-bound variables enter
// the system as trivial equations.
func TestSolveSystem_BoundVarsAsRows(t *testing.T) {
	store := symbol.NewStore()
	sys := equation.NewSystem()
	x, y := store.NewVar(), store.NewVar()
	require.NoError(t, store.Bind(x, 2))

	_, err := sys.Add(store, equation.NewExpr().AddTerm(x, 1).AddTerm(y, 1).AddConst(-10))
	require.NoError(t, err)

	newly, err := sys.SolveSystem(store)
	require.NoError(t, err)
	assert.Len(t, newly, 1, "only y is newly bound")
	yv, ok := store.Value(y)
	require.True(t, ok)
	assert.InDelta(t, 8, yv, 1e-9)
}

// TestSolveSystem_UnifiedVariables verifies folding over union-find
// classes: with x≡y, z = x + y collapses to z = 2x.
func TestSolveSystem_UnifiedVariables(t *testing.T) {
	store := symbol.NewStore()
	sys := equation.NewSystem()
	x, y, z := store.NewVar(), store.NewVar(), store.NewVar()
	require.NoError(t, store.Union(x, y))

	_, err := sys.Add(store, equation.SumEquals(z, x, y))
	require.NoError(t, err)
	require.NoError(t, store.Bind(x, 3))

	_, err = sys.SolveSystem(store)
	require.NoError(t, err)
	zv, ok := store.Value(z)
	require.True(t, ok)
	assert.InDelta(t, 6, zv, 1e-9)
}

// TestSolveSystem_NoPending verifies an empty solve is a no-op.
func TestSolveSystem_NoPending(t *testing.T) {
	store := symbol.NewStore()
	sys := equation.NewSystem()

	newly, err := sys.SolveSystem(store)
	require.NoError(t, err)
	assert.Empty(t, newly)
}
