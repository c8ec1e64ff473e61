package level

import (
	"math"
	"reflect"
	"testing"
)

func TestCleanBricks(t *testing.T) {
	cases := []struct {
		name  string
		brick Brick
		kept  bool
	}{
		{"valid", Brick{Type: TypeDefault, Col: 2, Row: 3}, true},
		{"negative_col", Brick{Type: TypeDefault, Col: -1, Row: 0}, false},
		{"col_past_width", Brick{Type: TypeDefault, Col: 10, Row: 0}, false},
		{"row_past_height", Brick{Type: TypeDefault, Col: 0, Row: 8}, false},
		{"nan_x", Brick{Type: TypeDefault, Col: 1, Row: 1, X: math.NaN()}, false},
		{"inf_y", Brick{Type: TypeDefault, Col: 1, Row: 1, Y: math.Inf(1)}, false},
		{"portal_without_id", Brick{Type: TypePortal, Col: 1, Row: 1}, false},
		{"portal_with_id", Brick{Type: TypePortal, Col: 1, Row: 1, ID: "portal-aa"}, true},
		{"portal_id_on_default", Brick{Type: TypeDefault, Col: 1, Row: 1, ID: "portal-aa"}, false},
		{"plain_id_on_default", Brick{Type: TypeDefault, Col: 1, Row: 1, ID: "b12"}, true},
		{"unpaired_portal_kept", Brick{Type: TypePortal, Col: 5, Row: 5, ID: "portal-solo"}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := CleanBricks([]Brick{c.brick}, 10, 8)
			if kept := len(out) == 1; kept != c.kept {
				t.Fatalf("kept=%v, want %v", kept, c.kept)
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	bricks := []Brick{
		{Type: TypeDefault, Col: 2, Row: 3},
		{Type: TypePortal, Col: 0, Row: 0, ID: "portal-aa"},
		{Type: TypePortal, Col: 9, Row: 7, ID: "portal-aa"},
		{Type: TypeDefault, Col: 12, Row: 1},
		{Type: TypeGold, Col: 1, Row: 1, ID: "portal-ghost"},
	}
	once := CleanBricks(bricks, 10, 8)
	twice := CleanBricks(once, 10, 8)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("clean is not idempotent:\nonce:  %v\ntwice: %v", once, twice)
	}
}
