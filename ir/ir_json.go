package ir

import (
	"encoding/json"
	"fmt"
)

// The IR itself is JSON-representable so node trees can be moved
// between processes without any configuration-format parser.

type irBase struct {
	Type   Type    `json:"type"`
	Fields []*Node `json:"fields,omitempty"`
	Values []*Node `json:"values,omitempty"`

	Int   *int32   `json:"int,omitempty"`
	Long  *int64   `json:"long,omitempty"`
	Float *float64 `json:"float,omitempty"`
}

func (y *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Type:   y.Type,
		Fields: y.Fields,
		Values: y.Values,
	}
	switch y.Type {
	case IntType:
		v := y.Int
		base.Int = &v
	case LongType:
		v := y.Long
		base.Long = &v
	case FloatType:
		v := y.Float
		base.Float = &v
	case StringType:
		type C struct {
			irBase
			String string `json:"string"`
		}
		return json.Marshal(C{irBase: *base, String: y.String})
	case BoolType:
		type C struct {
			irBase
			Bool bool `json:"bool"`
		}
		return json.Marshal(C{irBase: *base, Bool: y.Bool})
	}
	return json.Marshal(base)
}

func (y *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		irBase
		String string `json:"string"`
		Bool   bool   `json:"bool"`
	}
	tmp := &C{irBase: irBase{}}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	y.Type = tmp.Type
	y.Fields = tmp.Fields
	y.Values = tmp.Values
	y.String = tmp.String
	y.Bool = tmp.Bool
	if tmp.Int != nil {
		y.Int = *tmp.Int
	}
	if tmp.Long != nil {
		y.Long = *tmp.Long
	}
	if tmp.Float != nil {
		y.Float = *tmp.Float
	}

	switch y.Type {
	case ObjectType:
		if len(y.Fields) != len(y.Values) {
			return fmt.Errorf("object with %d fields and %d values", len(y.Fields), len(y.Values))
		}
		seen := make(map[string]bool, len(y.Fields))
		for _, f := range y.Fields {
			if f.Type != StringType {
				return fmt.Errorf("invalid field type %s", f.Type)
			}
			if seen[f.String] {
				return fmt.Errorf("duplicate field %q", f.String)
			}
			seen[f.String] = true
		}
	case ArrayType:
		if len(y.Fields) != 0 {
			return fmt.Errorf("array with %d fields", len(y.Fields))
		}
	}
	return nil
}
