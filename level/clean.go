package level

import "math"

// CleanBricks filters out structurally invalid bricks: out-of-grid cells,
// non-finite pixel positions, portal-shaped ids on non-portal bricks, and
// portal bricks without an id. It is a filter, not a repair, and running it
// twice is a no-op. Runs on load and before every save.
func CleanBricks(bricks []Brick, width, height int) []Brick {
	out := make([]Brick, 0, len(bricks))
	for _, b := range bricks {
		if b.Col < 0 || b.Row < 0 || b.Col >= width || b.Row >= height {
			continue
		}
		if !finite(b.X) || !finite(b.Y) {
			continue
		}
		if b.Type != TypePortal && IsPortalID(b.ID) {
			continue
		}
		if b.Type == TypePortal && b.ID == "" {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Clean runs CleanBricks over the level in place.
func (l *Level) Clean() {
	l.Bricks = CleanBricks(l.Bricks, l.Width, l.Height)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
