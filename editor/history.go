package editor

import (
	"reflect"

	"github.com/tcarls/brickbreaker/level"
)

// maxHistory bounds the undo stack to the most recent snapshots.
const maxHistory = 50

// History is a whole-document snapshot stack. Small documents make full
// snapshots cheaper than an operation log, and the cap bounds memory.
type History struct {
	past    []*level.Level
	present *level.Level
	future  []*level.Level
}

func NewHistory(initial *level.Level) *History {
	return &History{present: initial.Clone()}
}

func (h *History) Present() *level.Level {
	return h.present
}

func (h *History) CanUndo() bool { return len(h.past) > 0 }
func (h *History) CanRedo() bool { return len(h.future) > 0 }

// Commit records doc as the new present. A document deep-equal to the
// current present only replaces it, so repeated identical commits do not
// grow the stack. Otherwise the old present is pushed (oldest entries
// beyond the cap are discarded) and any redo entries are cleared.
func (h *History) Commit(doc *level.Level) {
	snap := doc.Clone()
	if reflect.DeepEqual(h.present, snap) {
		h.present = snap
		return
	}
	h.past = append(h.past, h.present)
	if len(h.past) > maxHistory {
		h.past = h.past[len(h.past)-maxHistory:]
	}
	h.present = snap
	h.future = h.future[:0]
}

// Undo steps back one snapshot and returns the new present. The assignment
// bypasses Commit; undo must not itself be recorded as a forward edit.
func (h *History) Undo() *level.Level {
	n := len(h.past)
	if n == 0 {
		return h.present
	}
	h.future = append([]*level.Level{h.present}, h.future...)
	h.present = h.past[n-1]
	h.past = h.past[:n-1]
	return h.present
}

// Redo steps forward one snapshot and returns the new present.
func (h *History) Redo() *level.Level {
	if len(h.future) == 0 {
		return h.present
	}
	h.past = append(h.past, h.present)
	h.present = h.future[0]
	h.future = h.future[1:]
	return h.present
}
