package proptree

import (
	"strings"

	"github.com/proptree/go-proptree/debug"
	"github.com/proptree/go-proptree/encode"
	"github.com/proptree/go-proptree/ir"
)

// Tree is a path-addressed view over one ir.Node root. Paths are dot
// separated key segments; there is no escaping for literal dots within
// a key. Resolution only descends object fields, never array elements.
//
// Every Tree owns its root: construction from an existing node and all
// projections deep-copy, so no two Trees alias the same containers.
// Trees are not safe for concurrent mutation.
type Tree struct {
	root *ir.Node
}

// New returns a tree with an Empty root.
func New() *Tree {
	return &Tree{root: ir.Empty()}
}

// FromNode returns a tree rooted at a deep copy of node. A nil node
// yields an Empty root.
func FromNode(node *ir.Node) *Tree {
	if node == nil {
		return New()
	}
	return &Tree{root: node.Clone()}
}

// From returns a tree whose root holds the scalar v.
func From[T ir.Value](v T) *Tree {
	return &Tree{root: ir.FromValue(v)}
}

// FromMap returns a tree rooted at an object built from m. The given
// nodes are deep-copied.
func FromMap(m map[string]*ir.Node) *Tree {
	cp := make(map[string]*ir.Node, len(m))
	for k, v := range m {
		cp[k] = v.Clone()
	}
	return &Tree{root: ir.FromMap(cp)}
}

// Root returns a deep copy of the tree's root node.
func (t *Tree) Root() *ir.Node {
	return t.root.Clone()
}

// resolve walks path from the root, one object field per segment. It
// returns nil when any segment is missing or the walk hits a
// non-object node. The empty path resolves to the root itself.
// resolve never creates nodes.
func (t *Tree) resolve(path string) *ir.Node {
	node := t.root
	if path == "" {
		return node
	}
	for _, seg := range strings.Split(path, ".") {
		next := ir.Get(node, seg)
		if next == nil {
			if debug.Resolve() {
				debug.Logf("resolve %q: no %q under %s node\n", path, seg, node.Type)
			}
			return nil
		}
		node = next
	}
	return node
}

// Contains reports whether path resolves to a node.
func (t *Tree) Contains(path string) bool {
	return t.resolve(path) != nil
}

// Node returns a deep copy of the node at path, with ok false when the
// path does not resolve.
func (t *Tree) Node(path string) (*ir.Node, bool) {
	node := t.resolve(path)
	if node == nil {
		return nil, false
	}
	return node.Clone(), true
}

// Len returns the root's collection length: element count for an
// array, entry count for an object, byte length for a string and 0 for
// every other variant, Empty included.
func (t *Tree) Len() int {
	return t.root.Len()
}

// Equal reports whether two trees hold the same content. Object entry
// order is not significant.
func Equal(a, b *Tree) bool {
	return ir.Compare(a.root, b.root) == 0
}

func (t *Tree) String() string {
	return encode.MustString(t.root)
}
