package equation

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/euclid/symbol"
)

// CoeffEps is the magnitude below which a coefficient or constant is
// treated as zero when folding and canonicalizing expressions.
const CoeffEps = 1e-12

// Expr is a linear combination Σ coeff·Var + const, asserted equal to
// zero. Build one with NewExpr and the chainable AddTerm/AddConst, or use
// the Equal/EqualConst/SumEquals helpers. Once registered in a System an
// Expr must not be mutated.
type Expr struct {
	terms map[symbol.Var]float64
	k     float64
}

// NewExpr returns the empty expression 0 = 0.
func NewExpr() *Expr {
	return &Expr{terms: make(map[symbol.Var]float64)}
}

// AddTerm adds coeff·v and returns the expression for chaining.
func (e *Expr) AddTerm(v symbol.Var, coeff float64) *Expr {
	e.terms[v] += coeff

	return e
}

// AddConst adds a constant term and returns the expression for chaining.
func (e *Expr) AddConst(c float64) *Expr {
	e.k += c

	return e
}

// Equal asserts a = b, i.e. the expression a − b = 0.
func Equal(a, b symbol.Var) *Expr {
	return NewExpr().AddTerm(a, 1).AddTerm(b, -1)
}

// EqualConst asserts v = c, i.e. the expression v − c = 0.
func EqualConst(v symbol.Var, c float64) *Expr {
	return NewExpr().AddTerm(v, 1).AddConst(-c)
}

// SumEquals asserts total = Σ parts.
func SumEquals(total symbol.Var, parts ...symbol.Var) *Expr {
	e := NewExpr().AddTerm(total, 1)
	for _, p := range parts {
		e.AddTerm(p, -1)
	}

	return e
}

// folded is an expression reduced over current class representatives:
// zero coefficients dropped, variables sorted ascending.
type folded struct {
	vars   []symbol.Var
	coeffs []float64
	k      float64
}

// fold rewrites e over the representatives currently assigned by store,
// merging aliased terms and dropping vanishing coefficients.
func (e *Expr) fold(store *symbol.Store) (folded, error) {
	merged := make(map[symbol.Var]float64, len(e.terms))
	for v, c := range e.terms {
		rep, err := store.Find(v)
		if err != nil {
			return folded{}, err
		}
		merged[rep] += c
	}

	f := folded{k: e.k}
	for v, c := range merged {
		if c > -CoeffEps && c < CoeffEps {
			continue
		}
		f.vars = append(f.vars, v)
	}
	sort.Slice(f.vars, func(i, j int) bool { return f.vars[i] < f.vars[j] })
	f.coeffs = make([]float64, len(f.vars))
	for i, v := range f.vars {
		f.coeffs[i] = merged[v]
	}

	return f, nil
}

// trivial reports whether the folded expression has no variable terms.
func (f folded) trivial() bool { return len(f.vars) == 0 }

// satisfied reports whether a trivial folded expression holds (0 ≈ 0).
func (f folded) satisfied() bool { return f.k > -symbol.ValueEps && f.k < symbol.ValueEps }

// key returns the canonical form used for structural deduplication:
// coefficients scaled so the leading one is 1, rendered with fixed
// precision so equal equations collide regardless of construction order.
func (f folded) key() string {
	if f.trivial() {
		return "const=" + strconv.FormatFloat(f.k, 'e', 9, 64)
	}
	lead := f.coeffs[0]
	var sb strings.Builder
	for i, v := range f.vars {
		sb.WriteString(strconv.Itoa(int(v)))
		sb.WriteByte('*')
		sb.WriteString(strconv.FormatFloat(f.coeffs[i]/lead, 'e', 9, 64))
		sb.WriteByte('+')
	}
	sb.WriteString(strconv.FormatFloat(f.k/lead, 'e', 9, 64))

	return sb.String()
}
