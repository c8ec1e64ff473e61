package level

import "math"

// legacyBrick reports whether b predates explicit grid coordinates: its
// Col/Row decoded to zero while its stored pixel position buckets to some
// other cell. Such bricks are only findable through the pixel fallback.
func (l *Level) legacyBrick(b *Brick) bool {
	if b.HalfSize || b.Col != 0 || b.Row != 0 {
		return false
	}
	c, r, ok := l.bucket(b.X, b.Y)
	return ok && (c != 0 || r != 0)
}

// bucket maps a stored pixel position to a cell under the current cell size.
func (l *Level) bucket(x, y float64) (int, int, bool) {
	cw := l.BrickWidth + l.Padding
	ch := l.BrickHeight + l.Padding
	if cw <= 0 || ch <= 0 {
		return 0, 0, false
	}
	return int(math.Floor(x / cw)), int(math.Floor(y / ch)), true
}

// At returns the full-size brick occupying (col,row), or nil. When no brick
// carries an explicit matching Col/Row, it falls back to bucketing stored
// pixel positions with the current cell size, for levels written before
// Col/Row existed. The fallback is a secondary path; it never shadows an
// explicit match.
func (l *Level) At(col, row int) *Brick {
	for i := range l.Bricks {
		b := &l.Bricks[i]
		if !b.HalfSize && b.Col == col && b.Row == row && !l.legacyBrick(b) {
			return b
		}
	}
	for i := range l.Bricks {
		b := &l.Bricks[i]
		if !l.legacyBrick(b) {
			continue
		}
		if c, r, ok := l.bucket(b.X, b.Y); ok && c == col && r == row {
			return b
		}
	}
	return nil
}

// AtHalf returns the half-size brick occupying the given slot of (col,row),
// or nil. Full-size bricks are never returned here.
func (l *Level) AtHalf(col, row int, align HalfAlign) *Brick {
	for i := range l.Bricks {
		b := &l.Bricks[i]
		if b.HalfSize && b.Col == col && b.Row == row && b.HalfAlign == align {
			return b
		}
	}
	return nil
}
