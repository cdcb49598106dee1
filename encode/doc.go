// Package encode renders IR nodes as human-readable text.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromLong(30),
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// Single-line flow form
//	err := encode.Encode(node, os.Stdout, encode.Brackets(true))
//
//	// Colorized when stdout is a terminal
//	err := encode.Encode(node, os.Stdout, encode.EncodeColors(encode.AutoColors()))
//
// # Related Packages
//
//   - github.com/proptree/go-proptree/ir - IR representation
package encode
