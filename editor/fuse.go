package editor

import "github.com/tcarls/brickbreaker/level"

// PathPoint is one cell (or half-slot) visited by a gesture.
type PathPoint struct {
	Col  int
	Row  int
	Half level.HalfAlign // HalfNone for a full cell
}

type moveKind int

const (
	moveNone moveKind = iota
	moveHorizontal
	moveVertical
	moveOther
)

// movement classifies the step from one path point to the next. Rows grow
// downward, so a negative row delta is "up". A hop between the two half
// slots of the same cell counts as a horizontal step of ±1.
func movement(from, to PathPoint) (moveKind, int) {
	dc := to.Col - from.Col
	dr := to.Row - from.Row
	if dc == 0 && dr == 0 {
		if from.Half == level.HalfLeft && to.Half == level.HalfRight {
			return moveHorizontal, 1
		}
		if from.Half == level.HalfRight && to.Half == level.HalfLeft {
			return moveHorizontal, -1
		}
		return moveNone, 0
	}
	if dr == 0 {
		return moveHorizontal, sign(dc)
	}
	if dc == 0 {
		return moveVertical, sign(dr)
	}
	return moveOther, 0
}

func sign(d int) int {
	if d < 0 {
		return -1
	}
	return 1
}

// corner maps a horizontal sign (+1 right, -1 left) and a vertical sign
// (+1 down, -1 up) to the fuse corner variant. The labeling is fixed; do
// not re-derive it from corner geometry, both orientations of each bend
// must agree with the drawn artwork.
func corner(hsign, vsign int) level.BrickType {
	switch {
	case hsign > 0 && vsign < 0:
		return level.FuseLeftUp
	case hsign > 0 && vsign > 0:
		return level.FuseLeftDown
	case hsign < 0 && vsign < 0:
		return level.FuseRightUp
	default:
		return level.FuseRightDown
	}
}

// ClassifyFuse assigns the fuse variant for one visited path point given its
// immediate neighbors. Pure function of local path geometry; identical
// inputs always classify identically.
func ClassifyFuse(cur PathPoint, prev, next *PathPoint) level.BrickType {
	var inKind, outKind moveKind
	var inSign, outSign int
	if prev != nil {
		inKind, inSign = movement(*prev, cur)
	}
	if next != nil {
		outKind, outSign = movement(cur, *next)
	}

	switch {
	case prev == nil && next == nil:
		return level.FuseHorizontal
	case prev == nil:
		return endpoint(outKind)
	case next == nil:
		return endpoint(inKind)
	}

	switch {
	case inKind == moveHorizontal && outKind == moveHorizontal:
		return level.FuseHorizontal
	case inKind == moveVertical && outKind == moveVertical:
		return level.FuseVertical
	case inKind == moveHorizontal && outKind == moveVertical:
		return corner(inSign, outSign)
	case inKind == moveVertical && outKind == moveHorizontal:
		// mirrored table: horizontal sign comes from the outgoing step
		return corner(outSign, inSign)
	}
	return level.FuseHorizontal
}

func endpoint(k moveKind) level.BrickType {
	switch k {
	case moveVertical:
		return level.FuseVertical
	default:
		return level.FuseHorizontal
	}
}
