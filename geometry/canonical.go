// Canonicalization rules, one function per geometric kind: each maps raw
// constructor input to the canonical key consulted in the registry.
// Keeping them as plain functions (rather than methods on a hierarchy)
// keeps the closed set of kinds easy to audit.
package geometry

import (
	"sort"
	"strings"

	"github.com/katalvlaran/euclid/registry"
)

// validLabel reports whether a user-chosen point label is acceptable:
// non-empty, no spaces (labels are joined with spaces in canonical keys),
// and outside the reserved auto-label namespace.
func validLabel(label string) bool {
	return label != "" &&
		!strings.Contains(label, " ") &&
		!strings.Contains(label, registry.AutoLabelPrefix)
}

// distinctPoints reports whether all points carry pairwise distinct labels.
func distinctPoints(pts []*Point) bool {
	seen := make(map[string]struct{}, len(pts))
	for _, p := range pts {
		if _, dup := seen[p.label]; dup {
			return false
		}
		seen[p.label] = struct{}{}
	}

	return true
}

// canonicalSegment orders two endpoints lexically. Segment(A,B) and
// Segment(B,A) therefore share one canonical key.
func canonicalSegment(a, b *Point) [2]*Point {
	if a.label > b.label {
		a, b = b, a
	}

	return [2]*Point{a, b}
}

// canonicalAngle derives the identity of the angle A-B-C: vertex = middle
// point, outer pair ordered lexically. Angle(A,B,C) and Angle(C,B,A)
// share one key; Angle(A,C,B) has a different vertex and does not.
func canonicalAngle(a, b, c *Point) (vertex *Point, outer [2]*Point) {
	return b, canonicalSegment(a, c)
}

// angleKey renders the canonical angle key with the vertex in the middle,
// matching the familiar ∠ABC notation.
func angleKey(vertex *Point, outer [2]*Point) string {
	return outer[0].label + " " + vertex.label + " " + outer[1].label
}

// canonicalRotation rotates a cyclic point sequence so it begins with the
// lexically smallest label, preserving relative order. All rotations of
// one traversal share a key; the mirror-image traversal does not.
func canonicalRotation(pts []*Point) []*Point {
	minIdx := 0
	for i, p := range pts {
		if p.label < pts[minIdx].label {
			minIdx = i
		}
	}
	rot := make([]*Point, 0, len(pts))
	rot = append(rot, pts[minIdx:]...)
	rot = append(rot, pts[:minIdx]...)

	return rot
}

// pointSetKey renders the order-insensitive identity of a point set:
// sorted labels, space-joined. Used by the registry's secondary index.
func pointSetKey(pts []*Point) string {
	labels := make([]string, len(pts))
	for i, p := range pts {
		labels[i] = p.label
	}
	sort.Strings(labels)

	return strings.Join(labels, " ")
}

// canonicalLineOrientation fixes a chain's direction: the lexically
// smaller of the two end labels comes first. Both traversal directions of
// one chain therefore share a key.
func canonicalLineOrientation(pts []*Point) []*Point {
	if len(pts) > 1 && pts[0].label > pts[len(pts)-1].label {
		rev := make([]*Point, len(pts))
		for i, p := range pts {
			rev[len(pts)-1-i] = p
		}

		return rev
	}

	return pts
}
