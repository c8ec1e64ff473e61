package store

import (
	"testing"

	"github.com/tcarls/brickbreaker/level"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := OpenInMemory()
	if err != nil {
		t.Fatalf("open in-memory store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestLoadMissing(t *testing.T) {
	st := openTestStore(t)
	if _, ok := st.Load(); ok {
		t.Fatalf("fresh store should report no stored document")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := openTestStore(t)

	lvl := level.New("wip", 10, 8)
	x, y := lvl.PixelPos(3, 2, level.HalfNone)
	lvl.Bricks = append(lvl.Bricks, level.Brick{
		Type: level.TypeMetal, Col: 3, Row: 2, X: x, Y: y,
		Color: level.RGB{R: 0xff, G: 0x50, B: 0x50},
	})
	st.Save(lvl)

	got, ok := st.Load()
	if !ok {
		t.Fatalf("saved document should load")
	}
	if got.Name != "wip" || got.Width != 10 || got.Height != 8 {
		t.Fatalf("metadata lost: %+v", got)
	}
	if len(got.Bricks) != 1 || got.Bricks[0].Type != level.TypeMetal {
		t.Fatalf("bricks lost: %+v", got.Bricks)
	}
}

func TestSaveCleansGhostBricks(t *testing.T) {
	st := openTestStore(t)

	lvl := level.New("wip", 10, 8)
	x, y := lvl.PixelPos(0, 0, level.HalfNone)
	lvl.Bricks = append(lvl.Bricks,
		level.Brick{Type: level.TypeDefault, Col: 0, Row: 0, X: x, Y: y},
		level.Brick{Type: level.TypeDefault, Col: 40, Row: 40}, // outside the grid
		level.Brick{Type: level.TypeDefault, Col: 1, Row: 0, ID: "portal-stray"},
	)
	st.Save(lvl)

	got, ok := st.Load()
	if !ok {
		t.Fatalf("saved document should load")
	}
	if len(got.Bricks) != 1 {
		t.Fatalf("expected ghost bricks dropped, got %d", len(got.Bricks))
	}
	if got.Bricks[0].Col != 0 || got.Bricks[0].Row != 0 {
		t.Fatalf("wrong survivor: %+v", got.Bricks[0])
	}
}

func TestSaveOverwrites(t *testing.T) {
	st := openTestStore(t)

	st.Save(level.New("first", 10, 8))
	st.Save(level.New("second", 5, 4))

	got, ok := st.Load()
	if !ok {
		t.Fatalf("saved document should load")
	}
	if got.Name != "second" || got.Width != 5 {
		t.Fatalf("latest save should win, got %+v", got)
	}
}
