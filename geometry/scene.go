package geometry

import (
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/euclid/equation"
	"github.com/katalvlaran/euclid/registry"
	"github.com/katalvlaran/euclid/symbol"
)

// Scene is the explicit context every construction happens in. It owns
// the identity registry, the symbolic variable store and the pending
// equation set. There is no package-level state, so tests and callers
// control lifecycle by owning Scenes.
//
// All exported entry points serialize under one mutex; internal helpers
// assume the lock is held and never re-enter an exported method, so the
// coarse locking cannot deadlock (no operation blocks or suspends).
type Scene struct {
	mu sync.Mutex

	reg      *registry.Registry
	vars     *symbol.Store
	sys      *equation.System
	measures []*Measure // issue order; used to report newly bound measures
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	sc := &Scene{}
	sc.resetLocked()

	return sc
}

// Reset discards every object, variable and pending equation, restoring
// the scene to its initial state. Intended for test isolation.
func (s *Scene) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Scene) resetLocked() {
	s.reg = registry.New()
	s.vars = symbol.NewStore()
	s.sys = equation.NewSystem()
	s.measures = nil
}

// Registry exposes the scene's identity table for diagnostics and tests.
func (s *Scene) Registry() *registry.Registry { return s.reg }

// Point returns the point with the given label, creating it on first
// reference. Labels must be non-empty, space-free and outside the
// reserved auto-label namespace.
func (s *Scene) Point(label string) (*Point, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pointLocked(label)
}

func (s *Scene) pointLocked(label string) (*Point, error) {
	if !validLabel(label) {
		return nil, fmt.Errorf("point label %q: %w", label, ErrMalformedConstruction)
	}
	obj, _, err := s.reg.LookupOrCreate(registry.KindPoint, label, func() (any, error) {
		return &Point{sc: s, label: label}, nil
	})
	if err != nil {
		return nil, err
	}

	return obj.(*Point), nil
}

// Points parses a space-delimited label list, e.g. "A B C", creating each
// point on first reference. The labels must be pairwise distinct.
func (s *Scene) Points(spec string) ([]*Point, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pointsLocked(spec)
}

func (s *Scene) pointsLocked(spec string) ([]*Point, error) {
	labels := strings.Fields(spec)
	if len(labels) == 0 {
		return nil, fmt.Errorf("empty point list: %w", ErrMalformedConstruction)
	}
	pts := make([]*Point, len(labels))
	var err error
	for i, label := range labels {
		if pts[i], err = s.pointLocked(label); err != nil {
			return nil, err
		}
	}
	if !distinctPoints(pts) {
		return nil, fmt.Errorf("points %q not distinct: %w", spec, ErrMalformedConstruction)
	}

	return pts, nil
}

// Segment returns the segment with the given endpoints, creating it on
// first reference. Endpoint order does not matter.
func (s *Scene) Segment(a, b *Point) (*Segment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ownsPoints(a, b); err != nil {
		return nil, err
	}

	return s.segmentLocked(a, b)
}

// SegmentByName is the two-token descriptor form, e.g. Segment("A B"),
// creating the endpoints on first reference.
func (s *Scene) SegmentByName(spec string) (*Segment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pts, err := s.pointsLocked(spec)
	if err != nil {
		return nil, err
	}
	if len(pts) != 2 {
		return nil, fmt.Errorf("segment needs exactly 2 points, got %d: %w", len(pts), ErrMalformedConstruction)
	}

	return s.segmentLocked(pts[0], pts[1])
}

func (s *Scene) segmentLocked(a, b *Point) (*Segment, error) {
	if a == nil || b == nil || a.label == b.label {
		return nil, fmt.Errorf("segment endpoints must be two distinct points: %w", ErrMalformedConstruction)
	}
	pts := canonicalSegment(a, b)
	key := pts[0].label + " " + pts[1].label
	obj, _, err := s.reg.LookupOrCreate(registry.KindSegment, key, func() (any, error) {
		return &Segment{sc: s, key: key, pts: pts}, nil
	})
	if err != nil {
		return nil, err
	}

	return obj.(*Segment), nil
}

// Angle returns the angle a-b-c with vertex b, creating it on first
// reference. Angle(A,B,C) and Angle(C,B,A) resolve to one object.
func (s *Scene) Angle(a, b, c *Point) (*Angle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ownsPoints(a, b, c); err != nil {
		return nil, err
	}

	return s.angleLocked(a, b, c)
}

// AngleByName is the three-token descriptor form, e.g. Angle("A B C") for
// the angle at B, creating the points on first reference.
func (s *Scene) AngleByName(spec string) (*Angle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pts, err := s.pointsLocked(spec)
	if err != nil {
		return nil, err
	}
	if len(pts) != 3 {
		return nil, fmt.Errorf("angle needs exactly 3 points, got %d: %w", len(pts), ErrMalformedConstruction)
	}

	return s.angleLocked(pts[0], pts[1], pts[2])
}

func (s *Scene) angleLocked(a, b, c *Point) (*Angle, error) {
	if a == nil || b == nil || c == nil || !distinctPoints([]*Point{a, b, c}) {
		return nil, fmt.Errorf("angle needs three distinct points: %w", ErrMalformedConstruction)
	}
	vertex, outer := canonicalAngle(a, b, c)
	key := angleKey(vertex, outer)
	obj, _, err := s.reg.LookupOrCreate(registry.KindAngle, key, func() (any, error) {
		return &Angle{sc: s, key: key, vertex: vertex, outer: outer}, nil
	})
	if err != nil {
		return nil, err
	}

	return obj.(*Angle), nil
}

// ownsPoints guards against points created by a different Scene; mixing
// scenes would silently corrupt identity.
func (s *Scene) ownsPoints(pts ...*Point) error {
	for _, p := range pts {
		if p == nil || p.sc != s {
			return fmt.Errorf("point from a different scene: %w", ErrMalformedConstruction)
		}
	}

	return nil
}

// Assert registers a theorem-emitted equation into the pending set. It
// returns false when the equation is structurally already pending or
// trivially holds; an equation that is false on its face (a variable-free
// non-zero residue) returns equation.ErrContradiction.
func (s *Scene) Assert(e *equation.Expr) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sys.Add(s.vars, e)
}

// PendingEquations reports the number of equations awaiting a solve.
func (s *Scene) PendingEquations() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sys.Pending()
}

// SolveSystem solves all pending equations together with already-bound
// measures and returns the measures newly bound by this call. On
// equation.ErrContradiction no measure and no pending equation changes.
func (s *Scene) SolveSystem() ([]*Measure, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.solveLocked()
}

func (s *Scene) solveLocked() ([]*Measure, error) {
	newly, err := s.sys.SolveSystem(s.vars)
	if err != nil {
		return nil, err
	}
	if len(newly) == 0 {
		return nil, nil
	}
	bound := make(map[symbol.Var]struct{}, len(newly))
	for _, v := range newly {
		bound[v] = struct{}{}
	}
	// Report in measure issue order for determinism; every measure whose
	// class representative was just bound became known through this solve.
	var out []*Measure
	for _, m := range s.measures {
		rep, ferr := s.vars.Find(m.v)
		if ferr != nil {
			continue
		}
		if _, ok := bound[rep]; ok {
			out = append(out, m)
		}
	}

	return out, nil
}
