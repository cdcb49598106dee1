package encode

import (
	"testing"

	"github.com/proptree/go-proptree/ir"
)

func TestScalars(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{"empty", ir.Empty(), "null"},
		{"true", ir.FromBool(true), "true"},
		{"int", ir.FromInt(7), "7"},
		{"long", ir.FromLong(-12), "-12"},
		{"float", ir.FromFloat(2.5), "2.5"},
		{"string", ir.FromString("web"), "web"},
		{"string needing quotes", ir.FromString("a: b"), `"a: b"`},
		{"numeric string", ir.FromString("123"), `"123"`},
		{"boolish string", ir.FromString("true"), `"true"`},
		{"empty string", ir.FromString(""), `""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MustString(tt.node); got != tt.want {
				t.Errorf("MustString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBlock(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromLong(1)},
		{Key: "b", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "x", Val: ir.FromString("y")},
		})},
		{Key: "c", Val: ir.FromSlice([]*ir.Node{
			ir.FromLong(1),
			ir.FromLong(2),
		})},
		{Key: "d", Val: ir.FromMap(nil)},
		{Key: "e", Val: ir.FromSlice(nil)},
	})
	want := `a: 1
b:
  x: y
c:
  - 1
  - 2
d: {}
e: []`
	if got := MustString(node); got != want {
		t.Errorf("MustString() =\n%s\nwant\n%s", got, want)
	}
}

func TestBlockArray(t *testing.T) {
	node := ir.FromSlice([]*ir.Node{
		ir.FromString("web"),
		ir.FromKeyVals([]ir.KeyVal{{Key: "name", Val: ir.FromString("db")}}),
	})
	want := `- web
- {name: db}`
	if got := MustString(node); got != want {
		t.Errorf("MustString() =\n%s\nwant\n%s", got, want)
	}
}

func TestFlow(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromLong(1)},
		{Key: "b", Val: ir.FromSlice([]*ir.Node{ir.FromLong(2), ir.FromLong(3)})},
	})
	want := `{a: 1, b: [2, 3]}`
	if got := MustString(node, Brackets(true)); got != want {
		t.Errorf("MustString(Brackets) = %q, want %q", got, want)
	}
}

func TestIndent(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "b", Val: ir.FromLong(1)},
		})},
	})
	want := "a:\n    b: 1"
	if got := MustString(node, Indent(4)); got != want {
		t.Errorf("MustString(Indent(4)) = %q, want %q", got, want)
	}
}

func TestColorsNoop(t *testing.T) {
	// a scheme must not change content length semantics when default
	node := ir.FromString("x")
	c := &Colors{Default: colorDefault, Map: map[Colorable]func(string, ...any) string{}}
	if got := MustString(node, EncodeColors(c)); got != "x" {
		t.Errorf("MustString with default colors = %q", got)
	}
	// EncodeColors(nil) is a no-op so AutoColors works off a terminal
	if got := MustString(node, EncodeColors(nil)); got != "x" {
		t.Errorf("MustString with nil colors = %q", got)
	}
}
