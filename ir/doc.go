// Package ir provides the tagged-union value node underlying property
// trees.
//
// # Overview
//
// A Node represents a single configuration value. Exactly one variant
// is active at a time, selected by the Type field:
//
//   - EmptyType: no value (distinct from false, zero and "")
//   - BoolType: boolean
//   - IntType: 32-bit integer
//   - LongType: 64-bit integer
//   - FloatType: 64-bit IEEE float
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//
// The IR works as a recursive tagged union structure, where values are
// placed in fields depending on the node type.
//
// # IR Structure Constraints
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i],
// so there will always be the same number of fields as values. Keys are
// string typed and unique within one object. Entry order is preserved
// but carries no meaning; Compare treats objects with the same entries
// as equal regardless of order.
//
// For ArrayType nodes only Values is populated and element order is
// significant.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromLong(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromLong(1),
//	    ir.FromLong(2),
//	})
//
// # Typed Extraction
//
// As reads a scalar node as a Go value and fails with ErrTypeMismatch
// when the active variant is incompatible:
//
//	s, err := ir.As[string](node)
//
// # JSON Interoperability
//
// The IR is representable in JSON, making it self-describing. This
// allows node trees to be serialized and manipulated in contexts
// without configuration-format support.
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes from
// multiple goroutines, you must synchronize access yourself or clone
// nodes for each goroutine.
package ir
