// Package euclid is an in-memory engine for symbolic Euclidean geometry:
// figures are networks of named objects whose measures may be unknown, and
// unknowns are derived by accumulating theorem-generated equations and
// solving them as one system.
//
// 🚀 What is euclid?
//
//	A purely symbolic (no coordinates, no floating-point construction)
//	geometry core that brings together:
//		• Identity & canonicalization: Segment(A,B) ≡ Segment(B,A),
//		  Angle(A,B,C) ≡ Angle(C,B,A), Triangle(A,B,C) ≡ Triangle(B,C,A)
//		• A per-Scene registry: one live object per canonical key
//		• Measures: unknown quantities as shared symbolic variables,
//		  unified via union-find and bound by equation solving
//		• A linear equation engine: theorems emit equations, SolveSystem
//		  binds exactly the variables the system uniquely determines
//
// ✨ Why choose euclid?
//
//   - Deterministic: canonical keys, sorted traversals, no silent guesses
//   - Rock-solid guarantees: all-or-nothing solves, conflict detection
//   - Extensible: theorems are plain functions emitting equations
//
// Everything is organized under five subpackages:
//
//	registry/ - kind→key identity table, point-set index, auto labels
//	symbol/   - union-find variable store with value binding
//	equation/ - linear expressions, pending set, SVD-backed system solve
//	geometry/ - Scene, Point, Line, Segment, Angle, Polygon, Triangle, Measure
//	theorems/ - subsegment sums, angle sums, supplementary angles
//
// Quick ASCII example, collinear points with partly known lengths:
//
//	    A───B───C───────D───E
//	     AC=5, CE=12, BE=15  ⇒  solve ⇒  AB=2, AE=17
//
//	sc := geometry.NewScene()
//	pts, _ := sc.Points("A B C D E")
//	line, _ := sc.Line(pts...)
//	// bind AC=5, CE=12, BE=15 via Segment(...).Measure().Bind(...)
//	theorems.SubsegmentSums(sc, line)
//	ab, _ := sc.SegmentByName("A B")
//	v, err := ab.Solve() // v == 2
//
// See each subpackage's doc.go for details.
package euclid
