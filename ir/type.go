package ir

import "fmt"

// Type is the closed set of variants a Node can hold. Exactly one
// variant is active per node.
type Type int

const (
	EmptyType Type = iota
	BoolType
	IntType
	LongType
	FloatType
	StringType
	ArrayType
	ObjectType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		EmptyType:  "Empty",
		BoolType:   "Bool",
		IntType:    "Int",
		LongType:   "Long",
		FloatType:  "Float",
		StringType: "String",
		ArrayType:  "Array",
		ObjectType: "Object",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Empty":  EmptyType,
		"Bool":   BoolType,
		"Int":    IntType,
		"Long":   LongType,
		"Float":  FloatType,
		"String": StringType,
		"Array":  ArrayType,
		"Object": ObjectType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		EmptyType,
		BoolType,
		IntType,
		LongType,
		FloatType,
		StringType,
		ArrayType,
		ObjectType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, ObjectType:
		return false
	default:
		return true
	}
}
