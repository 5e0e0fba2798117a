package profile

import "errors"

// ErrNotFound indicates that a requested class name matches nothing in
// the registry.
var ErrNotFound = errors.New("profile: unknown class")
