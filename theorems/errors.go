// Package theorems: sentinel error set.
package theorems

import "errors"

// ErrInapplicable indicates the objects handed to a theorem do not
// satisfy its premises. The scene is left untouched.
var ErrInapplicable = errors.New("theorems: theorem premises not met")
