// Package equation accumulates the algebraic constraints produced by
// theorem application and solves them as one linear system.
//
// An Expr is a linear combination Σ coeff·Var + const, asserted equal to
// zero, the same convention the rest of euclid uses when a theorem says
// "m(AE) − m(AC) − m(CE) = 0". Expressions are registered into a System's
// pending set, which deduplicates structurally identical equations via a
// canonical form (terms folded per variable class, sorted, scaled to a
// unit leading coefficient).
//
// SolveSystem collects all pending expressions plus trivial rows fixing
// already-bound variables, and factorizes the stacked matrix with a full
// SVD (gonum/mat). From the factorization it derives:
//   - consistency: the residual of the minimum-norm solution; a
//     non-negligible residual means the accumulated equations contradict
//     each other (ErrContradiction, no state is modified);
//   - per-variable determinacy: a variable is uniquely determined iff its
//     row of the null-space basis is numerically zero. Only such
//     variables are bound; when multiple valid solutions exist the engine
//     never silently picks one.
//
// Solved measures must be positive quantities; a uniquely determined
// non-positive value is reported as a contradiction.
//
// The solve is all-or-nothing: on any error the pending set and every
// variable binding are left exactly as they were. Satisfied expressions
// are consumed; under-determined ones stay pending for future solves.
//
// Errors:
//
//	ErrContradiction - the accumulated equations are mutually inconsistent.
//	ErrNilStore      - a nil *symbol.Store was passed in.
package equation
