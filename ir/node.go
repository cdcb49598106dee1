package ir

import (
	"fmt"
	"maps"
	"slices"
)

// Node is a recursive tagged union holding one configuration value. The
// Type field selects which payload field is active. For ObjectType,
// Fields[i] is the key node for the value at Values[i], so both slices
// always have the same length and keys are unique. For ArrayType only
// Values is populated, in element order.
type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String string
	Bool   bool
	Int    int32
	Long   int64
	Float  float64
}

// Empty returns a node holding no value. Empty is distinct from false,
// zero and "".
func Empty() *Node {
	return &Node{Type: EmptyType}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int32) *Node {
	return &Node{Type: IntType, Int: v}
}

func FromLong(v int64) *Node {
	return &Node{Type: LongType, Long: v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: FloatType, Float: v}
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

// FromMap builds an object node from a Go map. Entries are ordered by
// sorted key so the result is deterministic.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(m))
	res.Values = make([]*Node, len(m))
	keys := slices.Sorted(maps.Keys(m))
	for i, key := range keys {
		res.Fields[i] = FromString(key)
		res.Values[i] = m[key]
	}
	return res
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object node preserving the given entry order.
// A repeated key replaces the earlier entry in place.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	for i := range kvs {
		Set(res, kvs[i].Key, kvs[i].Val)
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(vs))
	copy(res.Values, vs)
	return res
}

// FromAny converts Go scalars, []any and map[string]any to nodes. nil
// becomes Empty. int and int64 map to LongType, int32 to IntType.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Empty(), nil
	case *Node:
		return x, nil
	case bool:
		return FromBool(x), nil
	case int32:
		return FromInt(x), nil
	case int:
		return FromLong(int64(x)), nil
	case int64:
		return FromLong(x), nil
	case float64:
		return FromFloat(x), nil
	case string:
		return FromString(x), nil
	case []any:
		vals := make([]*Node, 0, len(x))
		for _, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vals = append(vals, n)
		}
		return FromSlice(vals), nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return FromMap(m), nil
	default:
		return nil, fmt.Errorf("cannot build node from %T", v)
	}
}

// ToAny is the inverse of FromAny. Objects become map[string]any, arrays
// []any, Empty nil.
func ToAny(node *Node) any {
	switch node.Type {
	case EmptyType:
		return nil
	case BoolType:
		return node.Bool
	case IntType:
		return node.Int
	case LongType:
		return node.Long
	case FloatType:
		return node.Float
	case StringType:
		return node.String
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i := range node.Fields {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	}
	return nil
}

// IsEmpty reports whether the node holds no value. A nil node is empty.
func (y *Node) IsEmpty() bool {
	return y == nil || y.Type == EmptyType
}

func (y *Node) HasValue() bool {
	return !y.IsEmpty()
}

func (y *Node) IsArray() bool {
	return y != nil && y.Type == ArrayType
}

func (y *Node) IsObject() bool {
	return y != nil && y.Type == ObjectType
}

// Get returns the value under field on an object node, or nil when the
// node is not an object or has no such field.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// Set inserts or replaces the entry under field on an object node,
// preserving key uniqueness and existing entry order.
func Set(y *Node, field string, val *Node) {
	for i := range y.Fields {
		if y.Fields[i].String == field {
			y.Values[i] = val
			return
		}
	}
	y.Fields = append(y.Fields, FromString(field))
	y.Values = append(y.Values, val)
}

// Len returns the element count of an array, the entry count of an
// object, the byte length of a string, and 0 for every other variant.
func (y *Node) Len() int {
	if y == nil {
		return 0
	}
	switch y.Type {
	case ArrayType, ObjectType:
		return len(y.Values)
	case StringType:
		return len(y.String)
	default:
		return 0
	}
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Int = y.Int
	dst.Long = y.Long
	dst.Float = y.Float
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, yf := range y.Fields {
			dst.Fields[i] = yf.Clone()
		}
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

// Visit walks the node tree. f is called before and after descending
// into each node's values; returning false from the pre call skips the
// descent.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
