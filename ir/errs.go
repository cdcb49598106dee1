package ir

import "errors"

// ErrTypeMismatch reports that a node exists but its active variant is
// incompatible with the requested Go type. It is distinct from a node
// being absent, which is never an error.
var ErrTypeMismatch = errors.New("type mismatch")
