package registry_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/euclid/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLookupOrCreate_Dedup verifies that a second lookup for the same
// (kind, key) returns the identical instance without invoking the factory.
func TestLookupOrCreate_Dedup(t *testing.T) {
	r := registry.New()

	calls := 0
	factory := func() (any, error) {
		calls++
		return &struct{ n int }{n: calls}, nil
	}

	first, existed, err := r.LookupOrCreate(registry.KindPoint, "A", factory)
	require.NoError(t, err)
	assert.False(t, existed, "first create must report existed=false")

	second, existed, err := r.LookupOrCreate(registry.KindPoint, "A", factory)
	require.NoError(t, err)
	assert.True(t, existed, "second lookup must report existed=true")
	assert.Same(t, first, second, "dedup must return the identical instance")
	assert.Equal(t, 1, calls, "factory must run exactly once")
}

// TestLookupOrCreate_FactoryError verifies that a failing factory stores
// nothing, so a later create can still succeed.
func TestLookupOrCreate_FactoryError(t *testing.T) {
	r := registry.New()
	boom := errors.New("boom")

	_, _, err := r.LookupOrCreate(registry.KindSegment, "A B", func() (any, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	_, ok := r.Lookup(registry.KindSegment, "A B")
	assert.False(t, ok, "failed factory must not register anything")

	obj, existed, err := r.LookupOrCreate(registry.KindSegment, "A B", func() (any, error) {
		return "segment", nil
	})
	require.NoError(t, err)
	assert.False(t, existed)
	assert.Equal(t, "segment", obj)
}

// TestPointSetIndex covers SearchByPointSet and duplicate-set rejection.
func TestPointSetIndex(t *testing.T) {
	r := registry.New()

	_, _, err := r.LookupOrCreate(registry.KindPolygon, "A B C", func() (any, error) {
		return "poly", nil
	})
	require.NoError(t, err)
	require.NoError(t, r.IndexPointSet(registry.KindPolygon, "A B C", "A B C"))

	obj, ok := r.SearchByPointSet(registry.KindPolygon, "A B C")
	require.True(t, ok)
	assert.Equal(t, "poly", obj)

	_, ok = r.SearchByPointSet(registry.KindPolygon, "A B D")
	assert.False(t, ok, "unknown set must not resolve")

	err = r.IndexPointSet(registry.KindPolygon, "A B C", "A C B")
	assert.ErrorIs(t, err, registry.ErrDuplicatePointSet)
}

// TestAutoLabel verifies deterministic, per-kind, reserved-prefix labels.
func TestAutoLabel(t *testing.T) {
	r := registry.New()

	assert.Equal(t, "#Segment1", r.AutoLabel(registry.KindSegment))
	assert.Equal(t, "#Segment2", r.AutoLabel(registry.KindSegment))
	assert.Equal(t, "#Angle1", r.AutoLabel(registry.KindAngle), "sequences are per kind")
}

// TestRemove verifies eviction from both the table and the point-set index.
func TestRemove(t *testing.T) {
	r := registry.New()

	// The fixture struct needs a field: zero-size allocations share one
	// address in the Go runtime, which would defeat the NotSame check below.
	held, _, err := r.LookupOrCreate(registry.KindPolygon, "A B C", func() (any, error) {
		return &struct{ n int }{}, nil
	})
	require.NoError(t, err)
	require.NoError(t, r.IndexPointSet(registry.KindPolygon, "A B C", "A B C"))

	r.Remove(registry.KindPolygon, "A B C")

	_, ok := r.Lookup(registry.KindPolygon, "A B C")
	assert.False(t, ok, "removed key must not resolve")
	_, ok = r.SearchByPointSet(registry.KindPolygon, "A B C")
	assert.False(t, ok, "point-set index entry must be dropped with the key")
	assert.NotNil(t, held, "held reference remains usable")

	// Dedup does not persist after removal: a new create yields a new instance.
	fresh, existed, err := r.LookupOrCreate(registry.KindPolygon, "A B C", func() (any, error) {
		return &struct{ n int }{}, nil
	})
	require.NoError(t, err)
	assert.False(t, existed)
	assert.NotSame(t, held, fresh)
}

// TestEntries_Snapshot verifies the snapshot is a deep copy.
func TestEntries_Snapshot(t *testing.T) {
	r := registry.New()
	_, _, err := r.LookupOrCreate(registry.KindPoint, "A", func() (any, error) { return "a", nil })
	require.NoError(t, err)

	snap := r.Entries()
	require.Contains(t, snap, registry.KindPoint)
	assert.Equal(t, "a", snap[registry.KindPoint]["A"])

	delete(snap[registry.KindPoint], "A")
	_, ok := r.Lookup(registry.KindPoint, "A")
	assert.True(t, ok, "mutating the snapshot must not affect the registry")
}
