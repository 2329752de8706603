package theorems_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/euclid/geometry"
	"github.com/katalvlaran/euclid/theorems"
)

// Five collinear points with three known spans. The subsegment sums pin
// down A-B and B-C exactly, and the full span A-E, while C-D and D-E
// individually stay free (only their sum is known).
func TestSubsegmentSums_EndToEnd(t *testing.T) {
	sc := geometry.NewScene()
	line, err := sc.LineByName("A B C D E")
	require.NoError(t, err)

	bind := func(spec string, v float64) {
		seg, err := sc.SegmentByName(spec)
		require.NoError(t, err)
		require.NoError(t, seg.Measure().Bind(v))
	}
	bind("A C", 5)
	bind("C E", 12)
	bind("B E", 15)

	added, err := theorems.SubsegmentSums(sc, line)
	require.NoError(t, err)
	assert.Equal(t, 6, added, "one equation per spanning segment of 5 points")

	// Re-application is absorbed by structural deduplication.
	added, err = theorems.SubsegmentSums(sc, line)
	require.NoError(t, err)
	assert.Zero(t, added)

	ab, err := sc.SegmentByName("A B")
	require.NoError(t, err)
	v, err := ab.Solve()
	require.NoError(t, err)
	assert.InDelta(t, 2, v, 1e-9)

	bc, err := sc.SegmentByName("B C")
	require.NoError(t, err)
	v, err = bc.Measure().Value()
	require.NoError(t, err)
	assert.InDelta(t, 3, v, 1e-9)

	ae, err := sc.SegmentByName("A E")
	require.NoError(t, err)
	v, err = ae.Measure().Value()
	require.NoError(t, err)
	assert.InDelta(t, 17, v, 1e-9)

	// C-D is constrained only through c+d = 12; never guessed.
	cd, err := sc.SegmentByName("C D")
	require.NoError(t, err)
	_, err = cd.Measure().Value()
	assert.ErrorIs(t, err, geometry.ErrUnresolved)
}

func TestTriangleAngleSum_DeterminesThird(t *testing.T) {
	sc := geometry.NewScene()
	tri, err := sc.TriangleByName("A B C")
	require.NoError(t, err)

	angleAt := func(spec string) *geometry.Angle {
		ang, err := sc.AngleByName(spec)
		require.NoError(t, err)
		return ang
	}
	require.NoError(t, angleAt("B A C").Measure().Bind(60))
	require.NoError(t, angleAt("A B C").Measure().Bind(90))

	added, err := theorems.TriangleAngleSum(sc, tri)
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	v, err := angleAt("A C B").Solve()
	require.NoError(t, err)
	assert.InDelta(t, 30, v, 1e-9)
}

func TestTriangleAngleSum_RejectsNonTriangle(t *testing.T) {
	sc := geometry.NewScene()
	quad, err := sc.PolygonByName("A B C D")
	require.NoError(t, err)

	_, err = theorems.TriangleAngleSum(sc, quad)
	assert.ErrorIs(t, err, theorems.ErrInapplicable)
}

func TestPolygonAngleSum_Quadrilateral(t *testing.T) {
	sc := geometry.NewScene()
	quad, err := sc.PolygonByName("A B C D")
	require.NoError(t, err)

	for _, ang := range quad.Angles()[:3] {
		require.NoError(t, ang.Measure().Bind(90))
	}

	added, err := theorems.PolygonAngleSum(sc, quad)
	require.NoError(t, err)
	require.Equal(t, 1, added)

	v, err := quad.Angles()[3].Solve()
	require.NoError(t, err)
	assert.InDelta(t, 90, v, 1e-9)
}

func TestSupplementaryAngles(t *testing.T) {
	sc := geometry.NewScene()
	abc, err := sc.AngleByName("A B C")
	require.NoError(t, err)
	cbd, err := sc.AngleByName("C B D")
	require.NoError(t, err)

	require.NoError(t, abc.Measure().Bind(110))

	added, err := theorems.SupplementaryAngles(sc, abc, cbd)
	require.NoError(t, err)
	require.Equal(t, 1, added)

	v, err := cbd.Solve()
	require.NoError(t, err)
	assert.InDelta(t, 70, v, 1e-9)

	_, err = theorems.SupplementaryAngles(sc, abc)
	assert.ErrorIs(t, err, theorems.ErrInapplicable)
}

func TestAngleAddition_ComposesAdjacentAngles(t *testing.T) {
	sc := geometry.NewScene()
	abc, err := sc.AngleByName("A B C")
	require.NoError(t, err)
	cbd, err := sc.AngleByName("C B D")
	require.NoError(t, err)

	require.NoError(t, abc.Measure().Bind(30))
	require.NoError(t, cbd.Measure().Bind(45))

	added, err := theorems.AngleAddition(sc, abc, cbd)
	require.NoError(t, err)
	require.Equal(t, 1, added)

	abd, err := sc.AngleByName("A B D")
	require.NoError(t, err)
	v, err := abd.Solve()
	require.NoError(t, err)
	assert.InDelta(t, 75, v, 1e-9)
}

func TestAngleAddition_Premises(t *testing.T) {
	sc := geometry.NewScene()
	abc, err := sc.AngleByName("A B C")
	require.NoError(t, err)
	xyz, err := sc.AngleByName("X Y Z")
	require.NoError(t, err)
	aec, err := sc.AngleByName("A E C")
	require.NoError(t, err)

	// Different vertices.
	_, err = theorems.AngleAddition(sc, abc, xyz)
	assert.ErrorIs(t, err, theorems.ErrInapplicable)
	// Same vertex but no shared ray.
	efg, err := sc.AngleByName("F E G")
	require.NoError(t, err)
	_, err = theorems.AngleAddition(sc, aec, efg)
	assert.ErrorIs(t, err, theorems.ErrInapplicable)
	// Same angle twice.
	_, err = theorems.AngleAddition(sc, abc, abc)
	assert.ErrorIs(t, err, theorems.ErrInapplicable)
}

func TestIsoscelesBaseAngles_Unifies(t *testing.T) {
	sc := geometry.NewScene()
	tri, err := sc.TriangleByName("A B C")
	require.NoError(t, err)
	apex, err := sc.Point("A")
	require.NoError(t, err)

	require.NoError(t, theorems.IsoscelesBaseAngles(sc, tri, apex))

	// Binding one leg propagates to the other through unification alone.
	ab, err := sc.SegmentByName("A B")
	require.NoError(t, err)
	ac, err := sc.SegmentByName("A C")
	require.NoError(t, err)
	require.NoError(t, ab.Measure().Bind(5))
	v, err := ac.Measure().Value()
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	// Base angle plus the angle-sum theorem determines the apex angle.
	abc, err := sc.AngleByName("A B C")
	require.NoError(t, err)
	require.NoError(t, abc.Measure().Bind(50))

	_, err = theorems.TriangleAngleSum(sc, tri)
	require.NoError(t, err)

	bac, err := sc.AngleByName("B A C")
	require.NoError(t, err)
	v, err = bac.Solve()
	require.NoError(t, err)
	assert.InDelta(t, 80, v, 1e-9)

	// The other base angle came along for free.
	bca, err := sc.AngleByName("B C A")
	require.NoError(t, err)
	v, err = bca.Measure().Value()
	require.NoError(t, err)
	assert.Equal(t, 50.0, v)
}

func TestIsoscelesBaseAngles_ApexMustBeVertex(t *testing.T) {
	sc := geometry.NewScene()
	tri, err := sc.TriangleByName("A B C")
	require.NoError(t, err)
	d, err := sc.Point("D")
	require.NoError(t, err)

	err = theorems.IsoscelesBaseAngles(sc, tri, d)
	assert.ErrorIs(t, err, theorems.ErrInapplicable)
}
