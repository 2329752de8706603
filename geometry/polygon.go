package geometry

import (
	"fmt"

	"github.com/katalvlaran/euclid/registry"
)

// Polygon returns the polygon traversing the given points in order,
// creating it on first reference.
//
// Steps:
//  1. Validate ≥3 pairwise distinct points.
//  2. Canonicalize: rotate so the lexically smallest label comes first.
//  3. If a polygon over the same point set exists with a different
//     canonical rotation, the declarations describe mirror-image
//     traversals → ErrIdentityConflict. Same rotation → idempotent return.
//  4. Otherwise register the polygon, then create/deduplicate its
//     boundary Segments (consecutive pairs, wrapping) and interior
//     Angles (each vertex with its two neighbors). All conflict checks
//     happen before any implicit object is created, so a failed
//     construction registers nothing.
func (s *Scene) Polygon(pts ...*Point) (*Polygon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ownsPoints(pts...); err != nil {
		return nil, err
	}

	return s.polygonLocked(pts)
}

// PolygonByName is the descriptor form, e.g. Polygon("A B C D"), creating
// the points on first reference.
func (s *Scene) PolygonByName(spec string) (*Polygon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pts, err := s.pointsLocked(spec)
	if err != nil {
		return nil, err
	}

	return s.polygonLocked(pts)
}

// Triangle returns the triangle over exactly three points; otherwise it
// behaves exactly like Polygon.
func (s *Scene) Triangle(a, b, c *Point) (*Polygon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ownsPoints(a, b, c); err != nil {
		return nil, err
	}

	return s.polygonLocked([]*Point{a, b, c})
}

// TriangleByName is the descriptor form, e.g. Triangle("A B C").
func (s *Scene) TriangleByName(spec string) (*Polygon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pts, err := s.pointsLocked(spec)
	if err != nil {
		return nil, err
	}
	if len(pts) != 3 {
		return nil, fmt.Errorf("triangle needs exactly 3 points, got %d: %w", len(pts), ErrMalformedConstruction)
	}

	return s.polygonLocked(pts)
}

func (s *Scene) polygonLocked(pts []*Point) (*Polygon, error) {
	// 1. Validate arity and distinctness.
	if len(pts) < 3 {
		return nil, fmt.Errorf("polygon needs at least 3 points, got %d: %w", len(pts), ErrMalformedConstruction)
	}
	if !distinctPoints(pts) {
		return nil, fmt.Errorf("polygon points must be distinct: %w", ErrMalformedConstruction)
	}

	// 2. Canonical rotation and keys.
	rot := canonicalRotation(pts)
	key := joinLabels(rot)
	setKey := pointSetKey(rot)

	// 3. Idempotent re-declaration fast path.
	if obj, ok := s.reg.Lookup(registry.KindPolygon, key); ok {
		return obj.(*Polygon), nil
	}
	// Same point set under a different rotation: the two declarations are
	// mirror-image traversals and cannot both be valid.
	if existing, ok := s.reg.SearchByPointSet(registry.KindPolygon, setKey); ok {
		return nil, fmt.Errorf("polygon %q contradicts orientation of %q: %w",
			key, existing.(*Polygon).key, ErrIdentityConflict)
	}

	// 4. Register, then build the implicit boundary and interior objects.
	// Nothing below can fail: points are distinct and owned by this scene,
	// so segment/angle creation only deduplicates or allocates.
	poly := &Polygon{sc: s, key: key, pts: rot}
	if _, _, err := s.reg.LookupOrCreate(registry.KindPolygon, key, func() (any, error) {
		return poly, nil
	}); err != nil {
		return nil, err
	}
	if err := s.reg.IndexPointSet(registry.KindPolygon, setKey, key); err != nil {
		return nil, err
	}

	n := len(rot)
	poly.segments = make([]*Segment, 0, n)
	poly.angles = make([]*Angle, 0, n)
	for i := 0; i < n; i++ {
		next := rot[(i+1)%n]
		seg, err := s.segmentLocked(rot[i], next)
		if err != nil {
			return nil, err
		}
		poly.segments = append(poly.segments, seg)

		prev := rot[(i+n-1)%n]
		ang, err := s.angleLocked(prev, rot[i], next)
		if err != nil {
			return nil, err
		}
		poly.angles = append(poly.angles, ang)
	}

	return poly, nil
}
