// Package theorems is the catalog of geometric facts that drive the
// solver: each theorem inspects already-constructed objects and asserts
// the linear equations (or measure unifications) those objects imply.
//
// 🚀 Protocol
//
//	A theorem never solves anything itself. It emits equations into the
//	scene's pending set via Scene.Assert and returns how many were newly
//	registered; re-applying a theorem is therefore harmless (structural
//	deduplication absorbs the repeats). The caller decides when to run
//	Scene.SolveSystem, typically after applying every relevant theorem.
//
// ⚙️ Catalog
//
//	SubsegmentSums      - on a line, every spanning segment equals the sum
//	                      of its atomic subsegments.
//	TriangleAngleSum    - interior angles of a triangle sum to 180.
//	PolygonAngleSum     - interior angles of an n-gon sum to (n-2)·180.
//	SupplementaryAngles - the given angles sum to 180.
//	AngleAddition       - adjacent angles sharing the vertex and one ray
//	                      compose: m∠ABC + m∠CBD = m∠ABD.
//	IsoscelesBaseAngles - unifies the leg and base-angle measures of an
//	                      isosceles triangle.
//
// Errors:
//
//	ErrInapplicable - the given objects do not satisfy the theorem's
//	                  premises (wrong arity, non-adjacent angles, apex not
//	                  a vertex).
package theorems
