package level

import "testing"

func TestTypes(t *testing.T) {
	types := Types()
	if len(types) != len(allTypes) {
		t.Fatalf("expected %d types, got %d", len(allTypes), len(types))
	}
	concrete := 0
	for _, typ := range types {
		if !typ.Valid() {
			t.Fatalf("Types returned invalid type %q", typ)
		}
		if !typ.IsFuse() {
			concrete++
		}
	}
	if concrete != 7 {
		t.Fatalf("expected 7 concrete palette types, got %d", concrete)
	}

	// callers may reorder their copy without touching the canonical order
	types[0] = TypePortal
	if Types()[0] != TypeDefault {
		t.Fatalf("Types must return a copy")
	}
}
