package proptree

import (
	"github.com/proptree/go-proptree/ir"
)

// nameKey is the synthetic object key scalars are wrapped under when
// projected out of a collection, so downstream code can read a "name"
// field whether the source entry was structured or bare.
const nameKey = "name"

// AsArray projects the node at path as a sequence of trees. A path
// that does not resolve yields nil. A non-array node becomes a
// one-element result wrapping that node directly. Array elements that
// are themselves containers are wrapped directly; scalar elements are
// wrapped in a one-key object under "name". All returned trees are
// deep copies.
func (t *Tree) AsArray(path string) []*Tree {
	node := t.resolve(path)
	if node == nil {
		return nil
	}
	if !node.IsArray() {
		return []*Tree{FromNode(node)}
	}
	res := make([]*Tree, 0, len(node.Values))
	for _, el := range node.Values {
		res = append(res, wrapEntry(el))
	}
	return res
}

// AsObject projects the node at path as a mapping from key to tree,
// symmetric with AsArray: an unresolved path yields nil, a non-object
// node becomes a single entry under "name", and object entry values
// are wrapped like array elements. All returned trees are deep copies.
func (t *Tree) AsObject(path string) map[string]*Tree {
	node := t.resolve(path)
	if node == nil {
		return nil
	}
	if !node.IsObject() {
		return map[string]*Tree{nameKey: FromNode(node)}
	}
	res := make(map[string]*Tree, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = wrapEntry(node.Values[i])
	}
	return res
}

func wrapEntry(el *ir.Node) *Tree {
	if el.IsArray() || el.IsObject() {
		return FromNode(el)
	}
	return &Tree{root: ir.FromKeyVals([]ir.KeyVal{{Key: nameKey, Val: el.Clone()}})}
}
