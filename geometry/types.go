// This file declares the geometric object types and their read-only
// accessors. Construction happens exclusively through Scene (scene.go,
// polygon.go, line.go), which canonicalizes input and deduplicates
// through the registry; the types here hold canonical state only.
package geometry

import "strings"

// Dimension tags what a Measure quantifies. Measures differ only by the
// geometric dimension, not by algorithm.
type Dimension int

const (
	// Length is the dimension of Segment measures.
	Length Dimension = iota

	// Angular is the dimension of Angle measures, in degrees.
	Angular

	// Area is the dimension of Polygon measures.
	Area
)

// String returns the dimension name for diagnostics.
func (d Dimension) String() string {
	switch d {
	case Length:
		return "Length"
	case Angular:
		return "Angular"
	case Area:
		return "Area"
	default:
		return "Dimension(?)"
	}
}

// Point is a location on the Euclidean plane, identified solely by its
// label. Two Points with the same label are the same object.
type Point struct {
	sc    *Scene
	label string
}

// Label returns the point's identifying label.
func (p *Point) Label() string { return p.label }

// String implements fmt.Stringer, e.g. "Point(A)".
func (p *Point) String() string { return "Point(" + p.label + ")" }

// Segment is the portion of a line between two distinct Points. Identity
// is the unordered endpoint pair: Segment(A,B) and Segment(B,A) are one
// object.
type Segment struct {
	sc  *Scene
	key string
	pts [2]*Point // endpoints in canonical (lexical) order

	m *Measure // lazily created length measure
}

// Key returns the canonical registry key, e.g. "A B".
func (s *Segment) Key() string { return s.key }

// Points returns the endpoints in canonical order.
func (s *Segment) Points() [2]*Point { return s.pts }

// String implements fmt.Stringer, e.g. "Segment(A B)".
func (s *Segment) String() string { return "Segment(" + s.key + ")" }

// Angle is the figure formed at a vertex Point by rays through two outer
// Points. Identity is the vertex plus the unordered outer pair:
// Angle(A,B,C) and Angle(C,B,A) are one object, Angle(A,C,B) is another.
type Angle struct {
	sc     *Scene
	key    string
	vertex *Point
	outer  [2]*Point // outer points in canonical (lexical) order

	m *Measure // lazily created angular measure
}

// Key returns the canonical registry key with the vertex in the middle,
// e.g. "A B C" for the angle at B.
func (a *Angle) Key() string { return a.key }

// Vertex returns the angle's vertex.
func (a *Angle) Vertex() *Point { return a.vertex }

// Outer returns the two outer points in canonical order.
func (a *Angle) Outer() [2]*Point { return a.outer }

// String implements fmt.Stringer, e.g. "Angle(A B C)".
func (a *Angle) String() string { return "Angle(" + a.key + ")" }

// Polygon is an ordered cyclic sequence of ≥3 Points with a fixed
// orientation. Rotations of one traversal are the same polygon; the
// mirror-image traversal is a conflicting declaration. A Triangle is a
// Polygon over exactly three points.
type Polygon struct {
	sc  *Scene
	key string
	pts []*Point // canonical rotation: lexically smallest label first

	segments []*Segment // boundary, one per consecutive pair (wrapping)
	angles   []*Angle   // interior, one per vertex

	m *Measure // lazily created area measure
}

// Key returns the canonical registry key, e.g. "A B C".
func (p *Polygon) Key() string { return p.key }

// Points returns the vertices in canonical rotation.
func (p *Polygon) Points() []*Point { return p.pts }

// Segments returns the boundary segments, ordered along the traversal.
func (p *Polygon) Segments() []*Segment { return p.segments }

// Angles returns the interior angles, one per vertex in traversal order.
func (p *Polygon) Angles() []*Angle { return p.angles }

// IsTriangle reports whether the polygon has exactly three vertices.
func (p *Polygon) IsTriangle() bool { return len(p.pts) == 3 }

// String implements fmt.Stringer, e.g. "Triangle(A B C)".
func (p *Polygon) String() string {
	if p.IsTriangle() {
		return "Triangle(" + p.key + ")"
	}

	return "Polygon(" + p.key + ")"
}

// Line is an ordered chain of collinear Points. Lines with two or more
// points in common are merged into one consistently ordered chain at
// construction time; the chain grows as more collinear points appear.
type Line struct {
	sc  *Scene
	key string
	pts []*Point // collinear order, canonical orientation
}

// Key returns the canonical registry key, e.g. "A B C D E".
func (l *Line) Key() string { return l.key }

// Points returns the chain in canonical orientation. The slice is shared;
// callers must not mutate it.
func (l *Line) Points() []*Point { return l.pts }

// String implements fmt.Stringer, e.g. "Line(A B C)".
func (l *Line) String() string { return "Line(" + l.key + ")" }

// joinLabels renders points as a space-separated key, the registry's
// canonical string form.
func joinLabels(pts []*Point) string {
	labels := make([]string, len(pts))
	for i, p := range pts {
		labels[i] = p.label
	}

	return strings.Join(labels, " ")
}
