package level

import (
	"encoding/json"
	"fmt"
	"image/color"
)

// RGB is an opaque color stored as "#rrggbb" in level files so they stay
// hand-editable.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses a "#rrggbb" color. Returns ok=false on malformed input.
func ParseHex(s string) (RGB, bool) {
	var r, g, b uint32
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, false
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, false
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, true
}

func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// typeColors fixes the display color of every type whose color the author
// does not pick. Only default bricks use the per-brick color.
var typeColors = map[BrickType]RGB{
	TypeMetal:       {R: 0x9a, G: 0x9a, B: 0xa4},
	TypeUnbreakable: {R: 0x44, G: 0x44, B: 0x4c},
	TypeTNT:         {R: 0xd0, G: 0x30, B: 0x20},
	TypeGold:        {R: 0xe8, G: 0xc0, B: 0x20},
	TypeBoost:       {R: 0x30, G: 0xc0, B: 0x50},
	TypePortal:      {R: 0x90, G: 0x30, B: 0xd0},
}

// DisplayColor returns the color a brick renders with.
func (b *Brick) DisplayColor() RGB {
	if c, ok := typeColors[b.Type]; ok {
		return c
	}
	if b.Type.IsFuse() {
		return RGB{R: 0xe0, G: 0x80, B: 0x20}
	}
	return b.Color
}

func (c RGB) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Hex())
}

func (c *RGB) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, ok := ParseHex(s)
	if !ok {
		return fmt.Errorf("level: invalid color %q", s)
	}
	*c = parsed
	return nil
}
