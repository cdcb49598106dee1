package proptree

import (
	"testing"
)

func TestAsArray(t *testing.T) {
	tr := fromAny(t, map[string]any{
		"services": []any{
			"web",
			map[string]any{"name": "db", "port": int64(5432)},
			[]any{int64(1), int64(2)},
		},
	})

	got := tr.AsArray("services")
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	// scalar elements are wrapped under the synthetic "name" key
	if v, _, err := Get[string](got[0], "name"); err != nil || v != "web" {
		t.Errorf("element 0 name = %q, %v", v, err)
	}
	// structured elements are wrapped directly
	if v, _, err := Get[string](got[1], "name"); err != nil || v != "db" {
		t.Errorf("element 1 name = %q, %v", v, err)
	}
	if v, _, err := Get[int64](got[1], "port"); err != nil || v != 5432 {
		t.Errorf("element 1 port = %d, %v", v, err)
	}
	if got[2].Len() != 2 {
		t.Errorf("element 2 len = %d, want 2", got[2].Len())
	}
}

// A scalar is treated as a one-element array holding it directly.
func TestAsArrayScalar(t *testing.T) {
	tr := fromAny(t, map[string]any{"services": "web"})
	got := tr.AsArray("services")
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if v, err := As[string](got[0]); err != nil || v != "web" {
		t.Errorf("element value = %q, %v", v, err)
	}
}

func TestAsArrayMissing(t *testing.T) {
	tr := fromAny(t, map[string]any{"a": int64(1)})
	if got := tr.AsArray("missing"); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestAsArrayViewIndependence(t *testing.T) {
	tr := fromAny(t, map[string]any{"list": []any{map[string]any{"k": "v"}}})
	got := tr.AsArray("list")
	if err := Set(got[0], "k", "changed"); err != nil {
		t.Fatal(err)
	}
	again := tr.AsArray("list")
	if v, _, _ := Get[string](again[0], "k"); v != "v" {
		t.Errorf("projection aliases the tree: k = %q", v)
	}
}

func TestAsObject(t *testing.T) {
	tr := fromAny(t, map[string]any{
		"backends": map[string]any{
			"db":    map[string]any{"host": "x"},
			"cache": "redis",
			"ports": []any{int64(1)},
		},
	})
	got := tr.AsObject("backends")
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if v, _, err := Get[string](got["db"], "host"); err != nil || v != "x" {
		t.Errorf("db.host = %q, %v", v, err)
	}
	// scalar entry values wrap under "name" like array elements
	if v, _, err := Get[string](got["cache"], "name"); err != nil || v != "redis" {
		t.Errorf("cache name = %q, %v", v, err)
	}
	if got["ports"].Len() != 1 {
		t.Errorf("ports len = %d, want 1", got["ports"].Len())
	}
}

// A non-object node projects as a single entry under "name".
func TestAsObjectScalar(t *testing.T) {
	tr := fromAny(t, map[string]any{"timeout": int64(30)})
	got := tr.AsObject("timeout")
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if v, err := As[int64](got["name"]); err != nil || v != 30 {
		t.Errorf("name entry = %d, %v", v, err)
	}
}

func TestAsObjectMissing(t *testing.T) {
	tr := fromAny(t, map[string]any{"a": int64(1)})
	if got := tr.AsObject("missing"); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
