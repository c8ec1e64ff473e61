package level

import (
	"reflect"
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	l := New("Castle Wall", 10, 8)
	placed(l, Brick{Type: TypeDefault, Col: 2, Row: 3, Color: RGB{R: 0xff, G: 0x50, B: 0x50}, DropChance: 0.25, CoinValue: 3})
	placed(l, Brick{Type: TypePortal, Col: 0, Row: 0, ID: "portal-aa"})
	placed(l, Brick{Type: TypeGold, Col: 4, Row: 4, HalfSize: true, HalfAlign: HalfRight})

	data, err := Encode(l)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(string(data), `"#ff5050"`) {
		t.Fatalf("colors should serialize as hex strings:\n%s", data)
	}

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(l, got) {
		t.Fatalf("round trip mismatch:\nin:  %+v\nout: %+v", l, got)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not_json", "not a level"},
		{"no_grid", `{"name":"x"}`},
		{"zero_width", `{"name":"x","width":0,"height":5}`},
		{"bad_type", `{"name":"x","width":5,"height":5,"bricks":[{"type":"lava","col":0,"row":0}]}`},
		{"bad_color", `{"name":"x","width":5,"height":5,"backgroundColor":"red"}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Decode([]byte(c.data)); err == nil {
				t.Fatalf("expected decode error")
			}
		})
	}
}

func TestDecodeAppliesDefaults(t *testing.T) {
	got, err := Decode([]byte(`{"name":"x","width":5,"height":5}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.BrickWidth != DefaultBrickWidth || got.BrickHeight != DefaultBrickHeight {
		t.Fatalf("cell metrics not defaulted: %+v", got)
	}
	if got.Bricks == nil {
		t.Fatalf("bricks should default to an empty slice")
	}
}

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Castle Wall", "Castle_Wall"},
		{"  lvl/..\\01  ", "lvl01"},
		{"###", "level"},
		{"plain-name_9", "plain-name_9"},
	}
	for _, c := range cases {
		if got := SanitizeName(c.in); got != c.want {
			t.Fatalf("SanitizeName(%q)=%q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseHex(t *testing.T) {
	if c, ok := ParseHex("#3c78ff"); !ok || c != (RGB{R: 0x3c, G: 0x78, B: 0xff}) {
		t.Fatalf("ParseHex failed: %v %v", c, ok)
	}
	for _, bad := range []string{"", "#fff", "3c78ff", "#gggggg"} {
		if _, ok := ParseHex(bad); ok {
			t.Fatalf("ParseHex(%q) should fail", bad)
		}
	}
}
