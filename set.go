package proptree

import (
	"fmt"
	"strings"

	"github.com/proptree/go-proptree/debug"
	"github.com/proptree/go-proptree/ir"
)

// Set assigns the scalar v at path, creating intermediate objects for
// missing segments. It fails with ErrStructuralConflict when the final
// segment currently names an array or object, or when any node on the
// way is neither an object nor empty. A failed Set leaves the tree
// unchanged. The empty path is rejected.
func Set[T ir.Value](t *Tree, path string, v T) error {
	return setNode(t, path, ir.FromValue(v))
}

// SetNode assigns a deep copy of val at path with the same navigation
// and conflict rules as Set.
func SetNode(t *Tree, path string, val *ir.Node) error {
	return setNode(t, path, val.Clone())
}

func setNode(t *Tree, path string, val *ir.Node) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrStructuralConflict)
	}
	if debug.Set() {
		debug.Logf("set %q to %v\n", path, val)
	}
	segs := strings.Split(path, ".")
	node := t.root
	for i, seg := range segs {
		// Each visited node must be an object to carry the next
		// segment. Empty nodes become objects; anything else is a
		// conflict. A converted node always accepts the remaining
		// segments, keeping failed calls free of mutation.
		if !node.IsObject() {
			if !node.IsEmpty() {
				return fmt.Errorf("%w: failed to set value for key %q: target is not an object",
					ErrStructuralConflict, seg)
			}
			node.Type = ir.ObjectType
		}
		if i == len(segs)-1 {
			cur := ir.Get(node, seg)
			if cur != nil && !cur.Type.IsLeaf() {
				return fmt.Errorf("%w: cannot overwrite %s at %q",
					ErrStructuralConflict, cur.Type, seg)
			}
			ir.Set(node, seg, val)
			return nil
		}
		next := ir.Get(node, seg)
		if next == nil {
			ir.Set(node, seg, chainOf(segs[i+1:], val))
			return nil
		}
		node = next
	}
	return nil
}

// chainOf nests val under the given segments, innermost last.
func chainOf(segs []string, val *ir.Node) *ir.Node {
	res := val
	for i := len(segs) - 1; i >= 0; i-- {
		res = ir.FromKeyVals([]ir.KeyVal{{Key: segs[i], Val: res}})
	}
	return res
}
