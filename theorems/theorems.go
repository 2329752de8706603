package theorems

import (
	"fmt"

	"github.com/katalvlaran/euclid/equation"
	"github.com/katalvlaran/euclid/geometry"
)

// SubsegmentSums asserts, for every segment of the line spanning two or
// more atomic steps, that its length equals the sum of its atomic
// subsegment lengths. Returns the number of newly registered equations.
func SubsegmentSums(sc *geometry.Scene, line *geometry.Line) (int, error) {
	if line == nil {
		return 0, fmt.Errorf("nil line: %w", ErrInapplicable)
	}
	segs, err := line.SegmentsWithSubsegments()
	if err != nil {
		return 0, err
	}

	added := 0
	for _, seg := range segs {
		atoms, err := seg.AtomicSubsegments()
		if err != nil {
			return added, err
		}
		e := equation.NewExpr().AddTerm(seg.Measure().Var(), 1)
		for _, atom := range atoms {
			e.AddTerm(atom.Measure().Var(), -1)
		}
		ok, err := sc.Assert(e)
		if err != nil {
			return added, err
		}
		if ok {
			added++
		}
	}

	return added, nil
}

// TriangleAngleSum asserts that the triangle's interior angles sum
// to 180.
func TriangleAngleSum(sc *geometry.Scene, tri *geometry.Polygon) (int, error) {
	if tri == nil || !tri.IsTriangle() {
		return 0, fmt.Errorf("need a triangle: %w", ErrInapplicable)
	}

	return PolygonAngleSum(sc, tri)
}

// PolygonAngleSum asserts that the interior angles of the n-gon sum to
// (n-2)·180.
func PolygonAngleSum(sc *geometry.Scene, poly *geometry.Polygon) (int, error) {
	if poly == nil {
		return 0, fmt.Errorf("nil polygon: %w", ErrInapplicable)
	}

	e := equation.NewExpr()
	for _, ang := range poly.Angles() {
		e.AddTerm(ang.Measure().Var(), 1)
	}
	e.AddConst(-180 * float64(len(poly.Angles())-2))
	ok, err := sc.Assert(e)
	if err != nil {
		return 0, err
	}
	if ok {
		return 1, nil
	}

	return 0, nil
}

// SupplementaryAngles asserts that the given angles sum to 180, e.g. the
// two angles a transversal forms on one side of a line.
func SupplementaryAngles(sc *geometry.Scene, angles ...*geometry.Angle) (int, error) {
	if len(angles) < 2 {
		return 0, fmt.Errorf("need at least 2 angles, got %d: %w", len(angles), ErrInapplicable)
	}

	e := equation.NewExpr()
	for _, ang := range angles {
		if ang == nil {
			return 0, fmt.Errorf("nil angle: %w", ErrInapplicable)
		}
		e.AddTerm(ang.Measure().Var(), 1)
	}
	e.AddConst(-180)
	ok, err := sc.Assert(e)
	if err != nil {
		return 0, err
	}
	if ok {
		return 1, nil
	}

	return 0, nil
}

// AngleAddition asserts the composition of two adjacent angles sharing
// their vertex and exactly one ray: m∠ABC + m∠CBD = m∠ABD. The combined
// angle is created on demand.
func AngleAddition(sc *geometry.Scene, abc, cbd *geometry.Angle) (int, error) {
	if abc == nil || cbd == nil {
		return 0, fmt.Errorf("nil angle: %w", ErrInapplicable)
	}
	if abc == cbd {
		return 0, fmt.Errorf("angles %s and %s are the same angle: %w", abc, cbd, ErrInapplicable)
	}
	if abc.Vertex() != cbd.Vertex() {
		return 0, fmt.Errorf("angles %s and %s have different vertices: %w", abc, cbd, ErrInapplicable)
	}

	// The angles must share exactly one outer point (the common ray).
	var shared, leftA, leftB *geometry.Point
	oa, ob := abc.Outer(), cbd.Outer()
	for _, p := range oa {
		if p == ob[0] || p == ob[1] {
			if shared != nil {
				return 0, fmt.Errorf("angles %s and %s coincide: %w", abc, cbd, ErrInapplicable)
			}
			shared = p
		} else {
			leftA = p
		}
	}
	if shared == nil {
		return 0, fmt.Errorf("angles %s and %s share no ray: %w", abc, cbd, ErrInapplicable)
	}
	if ob[0] == shared {
		leftB = ob[1]
	} else {
		leftB = ob[0]
	}

	abd, err := sc.Angle(leftA, abc.Vertex(), leftB)
	if err != nil {
		return 0, err
	}
	e := equation.NewExpr().
		AddTerm(abc.Measure().Var(), 1).
		AddTerm(cbd.Measure().Var(), 1).
		AddTerm(abd.Measure().Var(), -1)
	ok, err := sc.Assert(e)
	if err != nil {
		return 0, err
	}
	if ok {
		return 1, nil
	}

	return 0, nil
}

// IsoscelesBaseAngles declares the triangle isosceles with the given
// apex: the two legs incident to the apex are unified, and so are the two
// base angles opposite them. Unification propagates immediately; no
// equations are queued.
func IsoscelesBaseAngles(sc *geometry.Scene, tri *geometry.Polygon, apex *geometry.Point) error {
	if tri == nil || !tri.IsTriangle() {
		return fmt.Errorf("need a triangle: %w", ErrInapplicable)
	}

	var base []*geometry.Point
	found := false
	for _, p := range tri.Points() {
		if p == apex {
			found = true
			continue
		}
		base = append(base, p)
	}
	if !found {
		return fmt.Errorf("apex %s is not a vertex of %s: %w", apex, tri, ErrInapplicable)
	}

	legA, err := sc.Segment(apex, base[0])
	if err != nil {
		return err
	}
	legB, err := sc.Segment(apex, base[1])
	if err != nil {
		return err
	}
	if err = legA.Measure().SetEqualTo(legB.Measure()); err != nil {
		return err
	}

	var baseAngles []*geometry.Angle
	for _, ang := range tri.Angles() {
		if ang.Vertex() == base[0] || ang.Vertex() == base[1] {
			baseAngles = append(baseAngles, ang)
		}
	}

	return baseAngles[0].Measure().SetEqualTo(baseAngles[1].Measure())
}
