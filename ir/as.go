package ir

import "fmt"

// Value enumerates the Go types a scalar node can be read as.
type Value interface {
	bool | int32 | int64 | float64 | string
}

// As extracts a value of type T from a node. The node's active variant
// must be compatible with T: the matching variant, or a lossless numeric
// widening (Int reads as int64, Int and Long read as float64). Any
// other variant, including Empty, yields ErrTypeMismatch.
func As[T Value](y *Node) (T, error) {
	var zero T
	switch p := any(&zero).(type) {
	case *bool:
		if y.Type != BoolType {
			return zero, mismatchErr(y, zero)
		}
		*p = y.Bool
	case *int32:
		if y.Type != IntType {
			return zero, mismatchErr(y, zero)
		}
		*p = y.Int
	case *int64:
		switch y.Type {
		case LongType:
			*p = y.Long
		case IntType:
			*p = int64(y.Int)
		default:
			return zero, mismatchErr(y, zero)
		}
	case *float64:
		switch y.Type {
		case FloatType:
			*p = y.Float
		case IntType:
			*p = float64(y.Int)
		case LongType:
			*p = float64(y.Long)
		default:
			return zero, mismatchErr(y, zero)
		}
	case *string:
		if y.Type != StringType {
			return zero, mismatchErr(y, zero)
		}
		*p = y.String
	}
	return zero, nil
}

// FromValue builds a scalar node from a Go value.
func FromValue[T Value](v T) *Node {
	switch x := any(v).(type) {
	case bool:
		return FromBool(x)
	case int32:
		return FromInt(x)
	case int64:
		return FromLong(x)
	case float64:
		return FromFloat(x)
	case string:
		return FromString(x)
	}
	panic("unreachable")
}

func mismatchErr[T Value](y *Node, zero T) error {
	return fmt.Errorf("%w: cannot read %s as %T", ErrTypeMismatch, y.Type, zero)
}
