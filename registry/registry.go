package registry

import (
	"strconv"
	"sync"
)

// Kind partitions the registry into per-construct namespaces. Canonical
// keys are only required to be unique within their Kind.
type Kind string

// Registered kinds. The set is closed: geometry supplies canonicalization
// per kind as plain functions rather than virtual dispatch.
const (
	KindPoint   Kind = "Point"
	KindLine    Kind = "Line"
	KindSegment Kind = "Segment"
	KindAngle   Kind = "Angle"
	KindPolygon Kind = "Polygon"
)

// AutoLabelPrefix marks registry-generated labels. Geometry constructors
// reject user labels containing it, so auto labels can never collide with
// an existing or future user-chosen label.
const AutoLabelPrefix = "#"

// Registry is the identity table mapping (Kind, canonical key) to the
// single live instance for that key. Zero value is not usable; construct
// with New. Safe for concurrent use.
type Registry struct {
	mu sync.RWMutex

	// entries[kind][canonical key] = live instance
	entries map[Kind]map[string]any

	// pointSets[kind][sorted point-set key] = canonical key in entries
	pointSets map[Kind]map[string]string

	// autoSeq[kind] = last issued auto-label sequence number
	autoSeq map[Kind]uint64
}

// New creates an empty Registry.
// Complexity: O(1)
func New() *Registry {
	return &Registry{
		entries:   make(map[Kind]map[string]any),
		pointSets: make(map[Kind]map[string]string),
		autoSeq:   make(map[Kind]uint64),
	}
}

// LookupOrCreate returns the existing instance for (kind, key) if present;
// otherwise it invokes factory, stores the result, and returns it. The
// returned bool reports whether the instance already existed. A factory
// error is propagated unchanged and nothing is stored.
//
// Duplicate keys are not an error here; returning the existing instance
// is the dedup mechanism; inconsistency detection belongs to the object
// constructors.
func (r *Registry) LookupOrCreate(kind Kind, key string, factory func() (any, error)) (any, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bucket, ok := r.entries[kind]
	if !ok {
		bucket = make(map[string]any)
		r.entries[kind] = bucket
	}
	if existing, found := bucket[key]; found {
		return existing, true, nil
	}
	created, err := factory()
	if err != nil {
		return nil, false, err
	}
	bucket[key] = created

	return created, false, nil
}

// Lookup returns the instance registered under (kind, key), if any.
func (r *Registry) Lookup(kind Kind, key string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	obj, ok := r.entries[kind][key]

	return obj, ok
}

// SearchByPointSet returns the instance of kind covering the given point
// set regardless of its registered order, or (nil, false). The setKey is
// the caller's order-normalized representation of the set (geometry uses
// the sorted, space-joined point labels).
func (r *Registry) SearchByPointSet(kind Kind, setKey string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key, ok := r.pointSets[kind][setKey]
	if !ok {
		return nil, false
	}
	obj, ok := r.entries[kind][key]

	return obj, ok
}

// IndexPointSet records that the instance registered under (kind, key)
// covers the point set identified by setKey. Each set may be indexed at
// most once per kind; a second registration returns ErrDuplicatePointSet.
func (r *Registry) IndexPointSet(kind Kind, setKey, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.pointSets[kind]
	if !ok {
		idx = make(map[string]string)
		r.pointSets[kind] = idx
	}
	if _, dup := idx[setKey]; dup {
		return ErrDuplicatePointSet
	}
	idx[setKey] = key

	return nil
}

// AutoLabel deterministically generates a fresh, collision-free label for
// an implicitly created object of kind, e.g. "#Segment1", "#Segment2", …
// Labels live in the reserved AutoLabelPrefix namespace.
func (r *Registry) AutoLabel(kind Kind) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.autoSeq[kind]++

	return AutoLabelPrefix + string(kind) + strconv.FormatUint(r.autoSeq[kind], 10)
}

// Remove evicts the instance registered under (kind, key) together with
// any point-set index entries referring to it. References already held
// remain usable, but future lookups will no longer return the instance;
// callers must not assume deduplication persists after removal.
func (r *Registry) Remove(kind Kind, key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries[kind], key)
	for setKey, k := range r.pointSets[kind] {
		if k == key {
			delete(r.pointSets[kind], setKey)
		}
	}
}

// Entries exposes the full current object table (kind → key → object) as
// a deep-copied snapshot; mutating it does not affect the registry.
func (r *Registry) Entries() map[Kind]map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := make(map[Kind]map[string]any, len(r.entries))
	for kind, bucket := range r.entries {
		cp := make(map[string]any, len(bucket))
		for key, obj := range bucket {
			cp[key] = obj
		}
		snap[kind] = cp
	}

	return snap
}

// Len reports the number of registered instances of kind.
func (r *Registry) Len(kind Kind) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries[kind])
}
