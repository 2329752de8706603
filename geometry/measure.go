package geometry

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/euclid/symbol"
)

// Measure wraps a quantity attached to a geometric object that may not be
// known yet. Internally it is a handle onto the scene's variable store:
// unbound measures are fresh symbolic variables, unification merges
// variable classes, and binding attaches a value to the whole class.
type Measure struct {
	sc  *Scene
	v   symbol.Var
	dim Dimension
}

// newMeasureLocked issues a fresh unbound measure. Scene lock held.
func (s *Scene) newMeasureLocked(dim Dimension) *Measure {
	m := &Measure{sc: s, v: s.vars.NewVar(), dim: dim}
	s.measures = append(s.measures, m)

	return m
}

// Measure returns the segment's length measure, created unbound on first
// access.
func (s *Segment) Measure() *Measure {
	s.sc.mu.Lock()
	defer s.sc.mu.Unlock()

	if s.m == nil {
		s.m = s.sc.newMeasureLocked(Length)
	}

	return s.m
}

// Solve triggers the scene solve and returns the segment's resolved
// length, or ErrUnresolved if the equations do not determine it.
func (s *Segment) Solve() (float64, error) { return s.Measure().Solve() }

// Measure returns the angle's measure in degrees, created unbound on
// first access.
func (a *Angle) Measure() *Measure {
	a.sc.mu.Lock()
	defer a.sc.mu.Unlock()

	if a.m == nil {
		a.m = a.sc.newMeasureLocked(Angular)
	}

	return a.m
}

// Solve triggers the scene solve and returns the angle's resolved
// measure, or ErrUnresolved if the equations do not determine it.
func (a *Angle) Solve() (float64, error) { return a.Measure().Solve() }

// Measure returns the polygon's area measure, created unbound on first
// access.
func (p *Polygon) Measure() *Measure {
	p.sc.mu.Lock()
	defer p.sc.mu.Unlock()

	if p.m == nil {
		p.m = p.sc.newMeasureLocked(Area)
	}

	return p.m
}

// Solve triggers the scene solve and returns the polygon's resolved area,
// or ErrUnresolved if the equations do not determine it.
func (p *Polygon) Solve() (float64, error) { return p.Measure().Solve() }

// Var exposes the underlying variable for theorem implementations that
// assemble equation.Expr terms.
func (m *Measure) Var() symbol.Var { return m.v }

// Dimension reports what the measure quantifies.
func (m *Measure) Dimension() Dimension { return m.dim }

// validValue reports whether v lies in the dimension's valid range:
// lengths and areas are positive, angular measures lie in (0, 360).
func (d Dimension) validValue(v float64) bool {
	if d == Angular {
		return v > 0 && v < 360
	}

	return v > 0
}

// Known reports whether the measure currently has a bound value.
func (m *Measure) Known() bool {
	m.sc.mu.Lock()
	defer m.sc.mu.Unlock()

	return m.sc.vars.Bound(m.v)
}

// Value returns the bound value, or ErrUnresolved while the underlying
// unknown has not been determined.
func (m *Measure) Value() (float64, error) {
	m.sc.mu.Lock()
	defer m.sc.mu.Unlock()

	v, ok := m.sc.vars.Value(m.v)
	if !ok {
		return 0, ErrUnresolved
	}

	return v, nil
}

// Bind attaches a concrete value to the measure and propagates it to
// every measure unified with it. Rebinding to the same value is a no-op;
// a different value, or a value outside the dimension's range, fails with
// ErrMeasureConflict and the existing state is kept.
func (m *Measure) Bind(value float64) error {
	m.sc.mu.Lock()
	defer m.sc.mu.Unlock()

	if !m.dim.validValue(value) {
		return fmt.Errorf("%w: %v out of range for %s measure", ErrMeasureConflict, value, m.dim)
	}
	if err := m.sc.vars.Bind(m.v, value); err != nil {
		if errors.Is(err, symbol.ErrValueConflict) {
			cur, _ := m.sc.vars.Value(m.v)

			return fmt.Errorf("%w: already %v, cannot bind %v", ErrMeasureConflict, cur, value)
		}

		return err
	}

	return nil
}

// SetEqualTo asserts the two measures are equal from now on, merging
// their equivalence classes. If exactly one side is bound the other side
// (and its whole class) becomes bound to that value; two different bound
// values fail with ErrMeasureConflict and neither class changes.
// Unification is transitive and idempotent.
func (m *Measure) SetEqualTo(other *Measure) error {
	if other == nil || other.sc != m.sc {
		return fmt.Errorf("measure from a different scene: %w", ErrMalformedConstruction)
	}
	if other.dim != m.dim {
		return fmt.Errorf("%w: cannot unify %s with %s", ErrMeasureConflict, m.dim, other.dim)
	}
	m.sc.mu.Lock()
	defer m.sc.mu.Unlock()

	if err := m.sc.vars.Union(m.v, other.v); err != nil {
		if errors.Is(err, symbol.ErrValueConflict) {
			return fmt.Errorf("%w: both measures already bound to different values", ErrMeasureConflict)
		}

		return err
	}

	return nil
}

// Solve runs the scene-wide system solve, then returns this measure's
// value, or ErrUnresolved if the accumulated equations are insufficient
// to pin it down. Contradictions surface as equation.ErrContradiction
// with all state left unchanged.
func (m *Measure) Solve() (float64, error) {
	m.sc.mu.Lock()
	defer m.sc.mu.Unlock()

	if _, err := m.sc.solveLocked(); err != nil {
		return 0, err
	}
	v, ok := m.sc.vars.Value(m.v)
	if !ok {
		return 0, ErrUnresolved
	}

	return v, nil
}
