package level

import "strings"

// BrickType identifies the gameplay behavior of a brick.
type BrickType string

const (
	TypeDefault     BrickType = "default"
	TypeMetal       BrickType = "metal"
	TypeUnbreakable BrickType = "unbreakable"
	TypeTNT         BrickType = "tnt"
	TypeGold        BrickType = "gold"
	TypeBoost       BrickType = "boost"
	TypePortal      BrickType = "portal"

	FuseHorizontal BrickType = "fuse-horizontal"
	FuseVertical   BrickType = "fuse-vertical"
	FuseLeftUp     BrickType = "fuse-left-up"
	FuseRightUp    BrickType = "fuse-right-up"
	FuseLeftDown   BrickType = "fuse-left-down"
	FuseRightDown  BrickType = "fuse-right-down"
)

var allTypes = []BrickType{
	TypeDefault, TypeMetal, TypeUnbreakable, TypeTNT, TypeGold, TypeBoost, TypePortal,
	FuseHorizontal, FuseVertical, FuseLeftUp, FuseRightUp, FuseLeftDown, FuseRightDown,
}

// Types returns all brick types in palette order.
func Types() []BrickType {
	out := make([]BrickType, len(allTypes))
	copy(out, allTypes)
	return out
}

func (t BrickType) Valid() bool {
	for _, v := range allTypes {
		if t == v {
			return true
		}
	}
	return false
}

// IsFuse reports whether t is one of the six directional fuse variants.
func (t BrickType) IsFuse() bool {
	return strings.HasPrefix(string(t), "fuse-")
}

// HalfAlign selects which half of a cell a half-size brick occupies.
type HalfAlign string

const (
	HalfNone  HalfAlign = ""
	HalfLeft  HalfAlign = "left"
	HalfRight HalfAlign = "right"
)

// Brick is one placed brick. Col/Row are the authoritative grid position;
// X/Y are the derived top-left pixel position kept in sync at creation time.
// Levels written before Col/Row existed carry only X/Y (see Level.At).
type Brick struct {
	ID         string    `json:"id,omitempty"`
	Type       BrickType `json:"type"`
	Col        int       `json:"col"`
	Row        int       `json:"row"`
	X          float64   `json:"x"`
	Y          float64   `json:"y"`
	Color      RGB       `json:"color"`
	DropChance float64   `json:"dropChance"`
	CoinValue  int       `json:"coinValue"`
	HalfSize   bool      `json:"isHalfSize,omitempty"`
	HalfAlign  HalfAlign `json:"halfSizeAlign,omitempty"`
}

// Level is one editable brick-breaker level document.
type Level struct {
	Name            string  `json:"name"`
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	Bricks          []Brick `json:"bricks"`
	BackgroundColor RGB     `json:"backgroundColor"`
	BrickWidth      float64 `json:"brickWidth"`
	BrickHeight     float64 `json:"brickHeight"`
	Padding         float64 `json:"padding"`
}

const (
	DefaultBrickWidth  = 64
	DefaultBrickHeight = 32
	DefaultPadding     = 2
)

// New creates an empty level with default cell metrics.
func New(name string, width, height int) *Level {
	return &Level{
		Name:            name,
		Width:           width,
		Height:          height,
		Bricks:          []Brick{},
		BackgroundColor: RGB{R: 0x10, G: 0x10, B: 0x18},
		BrickWidth:      DefaultBrickWidth,
		BrickHeight:     DefaultBrickHeight,
		Padding:         DefaultPadding,
	}
}

// Clone returns a deep copy; history snapshots must not alias live bricks.
func (l *Level) Clone() *Level {
	if l == nil {
		return nil
	}
	c := *l
	c.Bricks = make([]Brick, len(l.Bricks))
	copy(c.Bricks, l.Bricks)
	return &c
}

// PixelPos returns the derived top-left pixel position of a cell. Half-size
// bricks in the right slot sit half a cell further along x.
func (l *Level) PixelPos(col, row int, align HalfAlign) (float64, float64) {
	x := float64(col) * (l.BrickWidth + l.Padding)
	y := float64(row) * (l.BrickHeight + l.Padding)
	if align == HalfRight {
		x += l.BrickWidth / 2
	}
	return x, y
}

// CellCenter returns the pixel center of a cell coordinate along one axis.
func CellCenter(coord int, cell, padding float64) float64 {
	return (float64(coord)-1)*(cell+padding) + cell/2
}

// InBounds reports whether a cell lies inside the grid.
func (l *Level) InBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < l.Width && row < l.Height
}

// Resize changes the grid extents. Bricks whose derived pixel center falls
// outside the new bounds are dropped.
func (l *Level) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	maxX := CellCenter(width-1, l.BrickWidth, l.Padding)
	maxY := CellCenter(height-1, l.BrickHeight, l.Padding)
	minX := CellCenter(0, l.BrickWidth, l.Padding)
	minY := CellCenter(0, l.BrickHeight, l.Padding)

	kept := l.Bricks[:0]
	for _, b := range l.Bricks {
		cx := CellCenter(b.Col, l.BrickWidth, l.Padding)
		cy := CellCenter(b.Row, l.BrickHeight, l.Padding)
		if cx < minX || cx > maxX || cy < minY || cy > maxY {
			continue
		}
		kept = append(kept, b)
	}
	l.Bricks = kept
	l.Width = width
	l.Height = height
}

// Remove deletes the brick at index i, preserving insertion order.
func (l *Level) Remove(i int) {
	if i < 0 || i >= len(l.Bricks) {
		return
	}
	l.Bricks = append(l.Bricks[:i], l.Bricks[i+1:]...)
}

// RemoveByID deletes every brick carrying the given id. Used when erasing a
// portal, which takes its paired partner with it.
func (l *Level) RemoveByID(id string) {
	if id == "" {
		return
	}
	kept := l.Bricks[:0]
	for _, b := range l.Bricks {
		if b.ID == id {
			continue
		}
		kept = append(kept, b)
	}
	l.Bricks = kept
}
