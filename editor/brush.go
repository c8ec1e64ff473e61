package editor

import "github.com/tcarls/brickbreaker/level"

// Tool selects between painting bricks and erasing them.
type Tool int

const (
	ToolPaint Tool = iota
	ToolErase
)

func (t Tool) String() string {
	switch t {
	case ToolPaint:
		return "Paint"
	case ToolErase:
		return "Erase"
	default:
		return "Unknown"
	}
}

// Brush is the active editing state: what a paint gesture produces.
// FuseMode is mutually exclusive with a concrete type selection; while set,
// drags lay directional fuse bricks and single clicks are ignored.
type Brush struct {
	Tool       Tool
	Type       level.BrickType
	Color      level.RGB
	HalfSize   bool
	HalfAlign  level.HalfAlign
	FuseMode   bool
	DropChance float64
	CoinValue  int
}

// DefaultBrush returns the brush state the editor starts with.
func DefaultBrush() Brush {
	return Brush{
		Tool:      ToolPaint,
		Type:      level.TypeDefault,
		Color:     level.RGB{R: 0x3c, G: 0x78, B: 0xff},
		HalfAlign: level.HalfLeft,
	}
}

// SetType selects a concrete brick type, leaving fuse mode.
func (b *Brush) SetType(t level.BrickType) {
	b.Type = t
	b.FuseMode = false
}

// SetFuseMode enters or leaves fuse drawing.
func (b *Brush) SetFuseMode(on bool) {
	b.FuseMode = on
}
