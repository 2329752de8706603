// Package registry: sentinel error set.
// All messages are prefixed with "registry: ..." and matched via errors.Is.
package registry

import "errors"

// ErrDuplicatePointSet indicates that IndexPointSet was called for a point
// set that already has an entry under the given kind. Callers are expected
// to consult SearchByPointSet before indexing.
var ErrDuplicatePointSet = errors.New("registry: point set already indexed")
