package proptree

import (
	"fmt"

	"github.com/proptree/go-proptree/ir"
)

// Get extracts a value of type T from the node at path. The found
// result distinguishes the two non-value outcomes: a path that does
// not resolve yields (zero, false, nil), while a node whose variant is
// incompatible with T yields (zero, true, ErrTypeMismatch).
func Get[T ir.Value](t *Tree, path string) (T, bool, error) {
	var zero T
	node := t.resolve(path)
	if node == nil {
		return zero, false, nil
	}
	v, err := ir.As[T](node)
	if err != nil {
		return zero, true, pathErr(path, err)
	}
	return v, true, nil
}

// GetOr extracts T from the node at path, returning def when the path
// does not resolve. A node that resolves but holds an incompatible
// variant is still an error, never def.
func GetOr[T ir.Value](t *Tree, path string, def T) (T, error) {
	node := t.resolve(path)
	if node == nil {
		return def, nil
	}
	v, err := ir.As[T](node)
	if err != nil {
		return v, pathErr(path, err)
	}
	return v, nil
}

// As extracts T from the tree's own root.
func As[T ir.Value](t *Tree) (T, error) {
	return ir.As[T](t.root)
}

// AsOr extracts T from the tree's own root, returning def only when
// the root holds no value at all.
func AsOr[T ir.Value](t *Tree, def T) (T, error) {
	if t.root.IsEmpty() {
		return def, nil
	}
	return ir.As[T](t.root)
}

func pathErr(path string, err error) error {
	return fmt.Errorf("at %q: %w", path, err)
}
