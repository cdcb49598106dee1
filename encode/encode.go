package encode

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/proptree/go-proptree/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int
	brackets      bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes a human-readable rendering of node to w. The default
// is a block form with one object entry or array element per line;
// Brackets selects a single-line flow form. Container elements inside
// arrays always render in flow form.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.brackets {
		if err := encodeFlow(node, w, es); err != nil {
			return err
		}
	} else if err := encodeBlock(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encodeBlock(y *ir.Node, w io.Writer, es *EncState) error {
	switch y.Type {
	case ir.ObjectType:
		if len(y.Fields) == 0 {
			return writeColored(w, es, y.Type, SepColor, "{}")
		}
		for i := range y.Fields {
			if i > 0 {
				if err := writeNL(w, es); err != nil {
					return err
				}
			}
			if err := writeColored(w, es, y.Type, FieldColor, fieldString(y.Fields[i].String)); err != nil {
				return err
			}
			if err := writeColored(w, es, y.Type, SepColor, ":"); err != nil {
				return err
			}
			val := y.Values[i]
			if val.Type.IsLeaf() || val.Len() == 0 {
				if err := writeString(w, " "); err != nil {
					return err
				}
				if err := encodeBlock(val, w, es); err != nil {
					return err
				}
				continue
			}
			es.depth++
			if err := writeNL(w, es); err != nil {
				return err
			}
			if err := encodeBlock(val, w, es); err != nil {
				return err
			}
			es.depth--
		}
		return nil

	case ir.ArrayType:
		if len(y.Values) == 0 {
			return writeColored(w, es, y.Type, SepColor, "[]")
		}
		for i, el := range y.Values {
			if i > 0 {
				if err := writeNL(w, es); err != nil {
					return err
				}
			}
			if err := writeColored(w, es, y.Type, SepColor, "- "); err != nil {
				return err
			}
			if el.Type.IsLeaf() {
				if err := encodeBlock(el, w, es); err != nil {
					return err
				}
				continue
			}
			if err := encodeFlow(el, w, es); err != nil {
				return err
			}
		}
		return nil

	default:
		return writeColored(w, es, y.Type, ValueColor, scalarString(y))
	}
}

func encodeFlow(y *ir.Node, w io.Writer, es *EncState) error {
	switch y.Type {
	case ir.ObjectType:
		if err := writeColored(w, es, y.Type, SepColor, "{"); err != nil {
			return err
		}
		for i := range y.Fields {
			if i > 0 {
				if err := writeColored(w, es, y.Type, SepColor, ", "); err != nil {
					return err
				}
			}
			if err := writeColored(w, es, y.Type, FieldColor, fieldString(y.Fields[i].String)); err != nil {
				return err
			}
			if err := writeColored(w, es, y.Type, SepColor, ": "); err != nil {
				return err
			}
			if err := encodeFlow(y.Values[i], w, es); err != nil {
				return err
			}
		}
		return writeColored(w, es, y.Type, SepColor, "}")

	case ir.ArrayType:
		if err := writeColored(w, es, y.Type, SepColor, "["); err != nil {
			return err
		}
		for i, el := range y.Values {
			if i > 0 {
				if err := writeColored(w, es, y.Type, SepColor, ", "); err != nil {
					return err
				}
			}
			if err := encodeFlow(el, w, es); err != nil {
				return err
			}
		}
		return writeColored(w, es, y.Type, SepColor, "]")

	default:
		return writeColored(w, es, y.Type, ValueColor, scalarString(y))
	}
}

func scalarString(y *ir.Node) string {
	switch y.Type {
	case ir.EmptyType:
		return "null"
	case ir.BoolType:
		return strconv.FormatBool(y.Bool)
	case ir.IntType:
		return strconv.FormatInt(int64(y.Int), 10)
	case ir.LongType:
		return strconv.FormatInt(y.Long, 10)
	case ir.FloatType:
		return strconv.FormatFloat(y.Float, 'g', -1, 64)
	case ir.StringType:
		if quoteString(y.String) {
			return strconv.Quote(y.String)
		}
		return y.String
	}
	return ""
}

func fieldString(f string) string {
	if quoteString(f) {
		return strconv.Quote(f)
	}
	return f
}

// quoteString reports whether s would be ambiguous unquoted: empty,
// readable as another scalar, carrying surrounding space, or
// containing syntax characters.
func quoteString(s string) bool {
	if s == "" {
		return true
	}
	switch s {
	case "null", "true", "false":
		return true
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}
	if strings.TrimSpace(s) != s {
		return true
	}
	return strings.ContainsAny(s, ":#{}[],\"\n")
}

func writeNL(w io.Writer, es *EncState) error {
	return writeString(w, "\n"+strings.Repeat(strings.Repeat(" ", es.indent), es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeColored(w io.Writer, es *EncState, t ir.Type, a ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(t, a, s)
	}
	return writeString(w, s)
}
