package editor

import (
	"fmt"
	"testing"

	"github.com/tcarls/brickbreaker/level"
)

func docNamed(name string) *level.Level {
	return level.New(name, 10, 8)
}

func TestHistoryUndoRedo(t *testing.T) {
	h := NewHistory(docNamed("start"))
	a := docNamed("a")
	b := docNamed("b")

	h.Commit(a)
	h.Commit(b)

	if got := h.Undo(); got.Name != "a" {
		t.Fatalf("undo should restore a, got %q", got.Name)
	}
	if got := h.Redo(); got.Name != "b" {
		t.Fatalf("redo should restore b, got %q", got.Name)
	}
}

func TestHistoryCommitClearsFuture(t *testing.T) {
	h := NewHistory(docNamed("start"))
	h.Commit(docNamed("a"))
	h.Commit(docNamed("b"))
	h.Undo()

	h.Commit(docNamed("x"))
	if h.CanRedo() {
		t.Fatalf("commit after undo must clear the redo stack")
	}
	if got := h.Redo(); got.Name != "x" {
		t.Fatalf("redo should be a no-op, got %q", got.Name)
	}
}

func TestHistoryCoalescesIdenticalCommits(t *testing.T) {
	h := NewHistory(docNamed("start"))
	a := docNamed("a")
	h.Commit(a)
	h.Commit(a.Clone())

	if got := h.Undo(); got.Name != "start" {
		t.Fatalf("identical commit grew the stack; undo gave %q", got.Name)
	}
}

func TestHistoryUndoOnEmptyPast(t *testing.T) {
	h := NewHistory(docNamed("only"))
	if got := h.Undo(); got.Name != "only" {
		t.Fatalf("undo with empty past must keep present, got %q", got.Name)
	}
	if got := h.Redo(); got.Name != "only" {
		t.Fatalf("redo with empty future must keep present, got %q", got.Name)
	}
}

func TestHistoryCapsPast(t *testing.T) {
	h := NewHistory(docNamed("start"))
	for i := 0; i < 60; i++ {
		h.Commit(docNamed(fmt.Sprintf("doc-%d", i)))
	}

	steps := 0
	for h.CanUndo() {
		h.Undo()
		steps++
	}
	if steps != maxHistory {
		t.Fatalf("expected %d undo steps, got %d", maxHistory, steps)
	}
	// oldest surviving snapshot is the 10th commit, not the start document
	if got := h.Present(); got.Name != "doc-9" {
		t.Fatalf("oldest snapshot should be doc-9, got %q", got.Name)
	}
}

func TestHistorySnapshotsAreIsolated(t *testing.T) {
	h := NewHistory(docNamed("start"))
	a := docNamed("a")
	a.Bricks = append(a.Bricks, level.Brick{Type: level.TypeDefault, Col: 1, Row: 1})
	h.Commit(a)

	// mutating the committed document must not reach the snapshot
	a.Bricks[0].Col = 9
	if h.Present().Bricks[0].Col != 1 {
		t.Fatalf("history snapshot aliases the committed document")
	}
}
