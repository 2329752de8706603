package geometry

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/euclid/registry"
)

// Line declares the given points collinear, in the given order, and
// returns the chain they belong to.
//
// If registered lines share two or more points with the declaration, all
// of them describe the same physical line: they are merged into a single
// consistently ordered chain (order-preserving in both directions) and
// the surviving instance is returned. Chains that cannot be aligned
// consistently or unambiguously fail with ErrIdentityConflict.
func (s *Scene) Line(pts ...*Point) (*Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ownsPoints(pts...); err != nil {
		return nil, err
	}

	return s.lineLocked(pts)
}

// LineByName is the descriptor form, e.g. Line("A B C"), creating the
// points on first reference.
func (s *Scene) LineByName(spec string) (*Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pts, err := s.pointsLocked(spec)
	if err != nil {
		return nil, err
	}

	return s.lineLocked(pts)
}

func (s *Scene) lineLocked(pts []*Point) (*Line, error) {
	if len(pts) < 2 {
		return nil, fmt.Errorf("line needs at least 2 points, got %d: %w", len(pts), ErrMalformedConstruction)
	}
	if !distinctPoints(pts) {
		return nil, fmt.Errorf("line points must be distinct: %w", ErrMalformedConstruction)
	}

	// Fast path: the exact chain is already registered.
	oriented := canonicalLineOrientation(pts)
	if obj, ok := s.reg.Lookup(registry.KindLine, joinLabels(oriented)); ok {
		return obj.(*Line), nil
	}

	// Collect registered lines sharing ≥2 points, in deterministic order.
	candidates := s.linesSharingLocked(pts, 2)
	if len(candidates) == 0 {
		line := &Line{sc: s, key: joinLabels(oriented), pts: oriented}
		if _, _, err := s.reg.LookupOrCreate(registry.KindLine, line.key, func() (any, error) {
			return line, nil
		}); err != nil {
			return nil, err
		}

		return line, nil
	}

	// Merge every overlapping chain with the declaration; the first
	// candidate survives, the rest are evicted.
	merged := append([]*Point(nil), pts...)
	var err error
	for _, cand := range candidates {
		if merged, err = mergeChains(cand.pts, merged); err != nil {
			return nil, err
		}
	}
	merged = canonicalLineOrientation(merged)

	retain := candidates[0]
	for _, cand := range candidates {
		s.reg.Remove(registry.KindLine, cand.key)
	}
	retain.pts = merged
	retain.key = joinLabels(merged)
	if _, _, err = s.reg.LookupOrCreate(registry.KindLine, retain.key, func() (any, error) {
		return retain, nil
	}); err != nil {
		return nil, err
	}

	return retain, nil
}

// linesSharingLocked returns registered lines having at least min points
// in common with pts, sorted by key for determinism. Scene lock held.
func (s *Scene) linesSharingLocked(pts []*Point, min int) []*Line {
	want := make(map[*Point]struct{}, len(pts))
	for _, p := range pts {
		want[p] = struct{}{}
	}
	bucket := s.reg.Entries()[registry.KindLine]
	keys := make([]string, 0, len(bucket))
	for key := range bucket {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var out []*Line
	for _, key := range keys {
		line := bucket[key].(*Line)
		common := 0
		for _, p := range line.pts {
			if _, ok := want[p]; ok {
				common++
			}
		}
		if common >= min {
			out = append(out, line)
		}
	}

	return out
}

// mergeChains merges two point sequences known to lie on one line, in
// whichever direction aligns them; failure to align is an identity
// conflict between the two declarations.
func mergeChains(a, b []*Point) ([]*Point, error) {
	commonAsA := commonOrdered(a, b)
	commonAsB := commonOrdered(b, a)
	if samePoints(commonAsA, commonAsB) {
		return orderPreservingMerge(a, b)
	}
	if samePoints(commonAsA, reversed(commonAsB)) {
		return orderPreservingMerge(a, reversed(b))
	}

	return nil, fmt.Errorf("collinear chains %q and %q cannot be aligned: %w",
		joinLabels(a), joinLabels(b), ErrIdentityConflict)
}

// orderPreservingMerge interleaves two same-direction sequences into one
// sequence preserving both partial orders; ambiguous interleavings (no
// shared anchor between the heads) are an identity conflict.
func orderPreservingMerge(a, b []*Point) ([]*Point, error) {
	out := make([]*Point, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case containsPoint(b[j:], a[i]):
			out = append(out, b[j])
			j++
		case containsPoint(a[i:], b[j]):
			out = append(out, a[i])
			i++
		default:
			return nil, fmt.Errorf("order of collinear chains %q and %q is ambiguous: %w",
				joinLabels(a), joinLabels(b), ErrIdentityConflict)
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out, nil
}

func containsPoint(pts []*Point, p *Point) bool {
	for _, q := range pts {
		if q == p {
			return true
		}
	}

	return false
}

func commonOrdered(a, b []*Point) []*Point {
	var out []*Point
	for _, p := range a {
		if containsPoint(b, p) {
			out = append(out, p)
		}
	}

	return out
}

func samePoints(a, b []*Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func reversed(pts []*Point) []*Point {
	out := make([]*Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}

	return out
}

// SegmentsWithSubsegments returns every segment of the line that spans
// two or more atomic steps, creating/deduplicating each. These are the
// segments the subsegment-sum relation applies to.
func (l *Line) SegmentsWithSubsegments() ([]*Segment, error) {
	l.sc.mu.Lock()
	defer l.sc.mu.Unlock()

	n := len(l.pts)
	var segs []*Segment
	for span := 2; span < n; span++ {
		for i := 0; i+span < n; i++ {
			seg, err := l.sc.segmentLocked(l.pts[i], l.pts[i+span])
			if err != nil {
				return nil, err
			}
			segs = append(segs, seg)
		}
	}

	return segs, nil
}

// Line returns the registered line the segment lies on, creating the
// minimal two-point chain when no longer chain contains both endpoints.
func (s *Segment) Line() (*Line, error) {
	s.sc.mu.Lock()
	defer s.sc.mu.Unlock()

	for _, line := range s.sc.linesSharingLocked(s.pts[:], 2) {
		return line, nil
	}

	return s.sc.lineLocked(s.pts[:])
}

// ContainedPoints returns the points of the segment's line lying between
// its endpoints, endpoints included, in line order.
func (s *Segment) ContainedPoints() ([]*Point, error) {
	line, err := s.Line()
	if err != nil {
		return nil, err
	}
	i := indexOfPoint(line.pts, s.pts[0])
	j := indexOfPoint(line.pts, s.pts[1])
	if i < 0 || j < 0 {
		return nil, fmt.Errorf("segment %q endpoints missing from line %q: %w",
			s.key, line.key, ErrIdentityConflict)
	}
	if i > j {
		i, j = j, i
	}

	return line.pts[i : j+1], nil
}

// AtomicSubsegments returns the consecutive-point segments composing this
// segment on its line, the segment itself when it is already atomic.
func (s *Segment) AtomicSubsegments() ([]*Segment, error) {
	span, err := s.ContainedPoints()
	if err != nil {
		return nil, err
	}
	s.sc.mu.Lock()
	defer s.sc.mu.Unlock()

	out := make([]*Segment, 0, len(span)-1)
	for i := 0; i+1 < len(span); i++ {
		seg, err := s.sc.segmentLocked(span[i], span[i+1])
		if err != nil {
			return nil, err
		}
		out = append(out, seg)
	}

	return out, nil
}

// Subsegments returns every segment properly contained in this one on its
// line, excluding the segment itself.
func (s *Segment) Subsegments() ([]*Segment, error) {
	span, err := s.ContainedPoints()
	if err != nil {
		return nil, err
	}
	s.sc.mu.Lock()
	defer s.sc.mu.Unlock()

	var out []*Segment
	for i := 0; i < len(span)-1; i++ {
		for j := i + 1; j < len(span); j++ {
			if i == 0 && j == len(span)-1 {
				continue // the segment itself
			}
			seg, err := s.sc.segmentLocked(span[i], span[j])
			if err != nil {
				return nil, err
			}
			out = append(out, seg)
		}
	}

	return out, nil
}

func indexOfPoint(pts []*Point, p *Point) int {
	for i, q := range pts {
		if q == p {
			return i
		}
	}

	return -1
}
