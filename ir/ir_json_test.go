package ir

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestJSONRoundTrip(t *testing.T) {
	node := FromKeyVals([]KeyVal{
		{Key: "name", Val: FromString("db")},
		{Key: "port", Val: FromLong(5432)},
		{Key: "weight", Val: FromFloat(0.5)},
		{Key: "replicas", Val: FromInt(3)},
		{Key: "primary", Val: FromBool(true)},
		{Key: "comment", Val: Empty()},
		{Key: "tags", Val: FromSlice([]*Node{FromString("a"), FromString("b")})},
	})
	d, err := json.Marshal(node)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back := &Node{}
	if err := json.Unmarshal(d, back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if Compare(node, back) != 0 {
		t.Errorf("round trip mismatch (-want +got):\n%s",
			cmp.Diff(ToAny(node), ToAny(back)))
	}
}

func TestJSONInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"mismatched fields and values",
			`{"type":"Object","fields":[{"type":"String","string":"a"}],"values":[]}`},
		{"duplicate field",
			`{"type":"Object","fields":[{"type":"String","string":"a"},{"type":"String","string":"a"}],"values":[{"type":"Empty"},{"type":"Empty"}]}`},
		{"non-string field",
			`{"type":"Object","fields":[{"type":"Long","long":1}],"values":[{"type":"Empty"}]}`},
		{"array with fields",
			`{"type":"Array","fields":[{"type":"String","string":"a"}]}`},
		{"unknown type",
			`{"type":"Widget"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			back := &Node{}
			if err := json.Unmarshal([]byte(tt.doc), back); err == nil {
				t.Errorf("expected unmarshal error")
			}
		})
	}
}
