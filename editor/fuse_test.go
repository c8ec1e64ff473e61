package editor

import (
	"testing"

	"github.com/tcarls/brickbreaker/level"
)

func pt(col, row int) PathPoint {
	return PathPoint{Col: col, Row: row}
}

func half(col, row int, a level.HalfAlign) PathPoint {
	return PathPoint{Col: col, Row: row, Half: a}
}

func TestClassifyFuseEndpoints(t *testing.T) {
	cases := []struct {
		name string
		cur  PathPoint
		prev *PathPoint
		next *PathPoint
		want level.BrickType
	}{
		{"isolated", pt(3, 3), nil, nil, level.FuseHorizontal},
		{"start_of_horizontal", pt(0, 0), nil, ptr(pt(1, 0)), level.FuseHorizontal},
		{"end_of_horizontal", pt(2, 0), ptr(pt(1, 0)), nil, level.FuseHorizontal},
		{"start_of_vertical", pt(0, 0), nil, ptr(pt(0, 1)), level.FuseVertical},
		{"end_of_vertical", pt(0, 2), ptr(pt(0, 1)), nil, level.FuseVertical},
		{"diagonal_neighbor_defaults", pt(1, 1), ptr(pt(0, 0)), nil, level.FuseHorizontal},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ClassifyFuse(c.cur, c.prev, c.next); got != c.want {
				t.Fatalf("got %s, want %s", got, c.want)
			}
		})
	}
}

// All eight corner transitions. Rows grow downward, so "up" decreases row.
func TestClassifyFuseCorners(t *testing.T) {
	cases := []struct {
		name string
		prev PathPoint
		cur  PathPoint
		next PathPoint
		want level.BrickType
	}{
		{"right_then_up", pt(0, 1), pt(1, 1), pt(1, 0), level.FuseLeftUp},
		{"right_then_down", pt(0, 0), pt(1, 0), pt(1, 1), level.FuseLeftDown},
		{"left_then_up", pt(2, 1), pt(1, 1), pt(1, 0), level.FuseRightUp},
		{"left_then_down", pt(2, 0), pt(1, 0), pt(1, 1), level.FuseRightDown},
		{"down_then_right", pt(1, 0), pt(1, 1), pt(2, 1), level.FuseLeftDown},
		{"down_then_left", pt(1, 0), pt(1, 1), pt(0, 1), level.FuseRightDown},
		{"up_then_right", pt(1, 2), pt(1, 1), pt(2, 1), level.FuseLeftUp},
		{"up_then_left", pt(1, 2), pt(1, 1), pt(0, 1), level.FuseRightUp},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ClassifyFuse(c.cur, &c.prev, &c.next); got != c.want {
				t.Fatalf("got %s, want %s", got, c.want)
			}
		})
	}
}

func TestClassifyFuseStraightAndDiagonal(t *testing.T) {
	cases := []struct {
		name string
		prev PathPoint
		cur  PathPoint
		next PathPoint
		want level.BrickType
	}{
		{"horizontal_run", pt(0, 0), pt(1, 0), pt(2, 0), level.FuseHorizontal},
		{"vertical_run", pt(0, 0), pt(0, 1), pt(0, 2), level.FuseVertical},
		{"diagonal_jump_defaults", pt(0, 0), pt(1, 1), pt(2, 2), level.FuseHorizontal},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ClassifyFuse(c.cur, &c.prev, &c.next); got != c.want {
				t.Fatalf("got %s, want %s", got, c.want)
			}
		})
	}
}

// A hop between the two half slots of one cell is a horizontal movement.
func TestClassifyFuseHalfSlotTransition(t *testing.T) {
	prev := half(1, 0, level.HalfLeft)
	cur := half(1, 0, level.HalfRight)
	next := pt(1, 1)
	// left→right is +1 horizontal, then down: left-down corner
	if got := ClassifyFuse(cur, &prev, &next); got != level.FuseLeftDown {
		t.Fatalf("got %s, want %s", got, level.FuseLeftDown)
	}

	prevR := half(1, 0, level.HalfRight)
	curL := half(1, 0, level.HalfLeft)
	if got := ClassifyFuse(curL, &prevR, nil); got != level.FuseHorizontal {
		t.Fatalf("got %s, want %s", got, level.FuseHorizontal)
	}
}

func TestClassifyFuseIsPure(t *testing.T) {
	prev, next := pt(0, 0), pt(1, 1)
	cur := pt(1, 0)
	first := ClassifyFuse(cur, &prev, &next)
	for i := 0; i < 10; i++ {
		if got := ClassifyFuse(cur, &prev, &next); got != first {
			t.Fatalf("classification changed across calls: %s then %s", first, got)
		}
	}
}

func TestClassifyFuseReversedStraightPath(t *testing.T) {
	path := []PathPoint{pt(0, 0), pt(1, 0), pt(2, 0)}
	forward := classifyPath(path)
	reversed := classifyPath([]PathPoint{path[2], path[1], path[0]})
	for i := range forward {
		if forward[i] != reversed[len(reversed)-1-i] {
			t.Fatalf("reversed straight path should mirror: %v vs %v", forward, reversed)
		}
	}
}

func classifyPath(path []PathPoint) []level.BrickType {
	out := make([]level.BrickType, len(path))
	for i := range path {
		var prev, next *PathPoint
		if i > 0 {
			prev = &path[i-1]
		}
		if i < len(path)-1 {
			next = &path[i+1]
		}
		out[i] = ClassifyFuse(path[i], prev, next)
	}
	return out
}

func ptr(p PathPoint) *PathPoint {
	return &p
}
