// Package proptree provides typed, path-addressed access to a
// hierarchical value tree, plus structural merge of two such trees.
//
// A Tree wraps one ir.Node root. Dotted paths navigate object fields:
//
//	t := proptree.FromMap(map[string]*ir.Node{
//	    "db": ir.FromMap(map[string]*ir.Node{
//	        "host": ir.FromString("localhost"),
//	        "port": ir.FromLong(5432),
//	    }),
//	})
//	host, found, err := proptree.Get[string](t, "db.host")
//	port, err := proptree.GetOr[int64](t, "db.port", 5432)
//
// A missing path is never an error: Get reports it through its found
// result and GetOr falls back to the default. A node that exists but
// holds the wrong variant is a hard ErrTypeMismatch, so callers can
// always tell "absent" from "present but wrong shape".
//
// Set writes through the tree, creating intermediate objects on the
// way, and refuses to overwrite containers with ErrStructuralConflict:
//
//	err := proptree.Set(t, "db.pool.size", int64(10))
//
// Merge combines two trees in place with first-write-wins semantics;
// it never fails. AsArray and AsObject project any node into a
// uniform collection of sub-trees.
//
// Trees deep-copy on construction and on every projection, so no two
// Trees share containers. They are not safe for concurrent mutation.
package proptree
