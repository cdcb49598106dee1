package proptree

import (
	"errors"

	"github.com/proptree/go-proptree/ir"
)

var (
	// ErrStructuralConflict reports a Set whose target is, or passes
	// through, a container of the wrong shape.
	ErrStructuralConflict = errors.New("structural conflict")

	ErrTypeMismatch = ir.ErrTypeMismatch
)
