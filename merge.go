package proptree

import (
	"github.com/proptree/go-proptree/debug"
	"github.com/proptree/go-proptree/ir"
)

// Merge merges src into t in place and returns t for chaining. Merge
// never fails: mismatched shapes keep the destination value.
//
// An Empty src leaves t unchanged; an Empty t adopts a deep copy of
// src's content. Otherwise the two trees are merged structurally:
// object pairs merge per key with missing keys inserted, an array
// destination appends src's node as one element (a source array is
// appended nested, not flattened), and every other pairing keeps the
// destination value, first write wins.
func (t *Tree) Merge(src *Tree) *Tree {
	if debug.Merge() {
		debug.Logf("merge %v\ninto %v\n", src.root, t.root)
	}
	if src.root.IsEmpty() {
		return t
	}
	if t.root.IsEmpty() {
		t.root = src.root.Clone()
		return t
	}
	mergeNodes(t.root, src.root)
	return t
}

func mergeNodes(dst, src *ir.Node) {
	switch {
	case dst.IsObject() && src.IsObject():
		for i := range src.Fields {
			key := src.Fields[i].String
			sv := src.Values[i]
			dv := ir.Get(dst, key)
			if dv == nil {
				ir.Set(dst, key, sv.Clone())
				continue
			}
			mergeNodes(dv, sv)
		}
	case dst.IsArray():
		// The whole source node becomes one trailing element, whatever
		// its variant. Array sources are not concatenated elementwise.
		dst.Values = append(dst.Values, src.Clone())
	default:
		// keep dst
	}
}
