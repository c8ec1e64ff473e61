package editor

import "github.com/tcarls/brickbreaker/level"

// Engine turns pointer gestures into document edits. Every mutation clones
// the current document, applies the whole gesture, and hands the result to
// the commit callback; intermediate drag positions never partially commit.
type Engine struct {
	Brush Brush

	doc    *level.Level
	commit func(*level.Level)

	stroke []PathPoint
}

// NewEngine creates an engine over doc. commit receives each edited
// document; the caller routes it through history and persistence.
func NewEngine(doc *level.Level, commit func(*level.Level)) *Engine {
	return &Engine{
		Brush:  DefaultBrush(),
		doc:    doc,
		commit: commit,
	}
}

func (e *Engine) Document() *level.Level {
	return e.doc
}

// SetDocument replaces the working document, e.g. after undo/redo or import.
func (e *Engine) SetDocument(doc *level.Level) {
	e.doc = doc
	e.stroke = nil
}

func (e *Engine) publish(doc *level.Level) {
	e.doc = doc
	if e.commit != nil {
		e.commit(doc)
	}
}

// normalize applies the brush's half-size slot to points the caller left
// unresolved.
func (e *Engine) normalize(pt PathPoint) PathPoint {
	if pt.Half == level.HalfNone && e.Brush.HalfSize {
		pt.Half = e.Brush.HalfAlign
	}
	return pt
}

// Click handles a single press-and-release on one cell. In paint mode a
// click on an occupied position selects the brick instead of overwriting it;
// the returned copy is what the attribute panel edits. Fuse bricks are
// drag-only, so fuse mode ignores clicks entirely.
func (e *Engine) Click(pt PathPoint) *level.Brick {
	pt = e.normalize(pt)
	if !e.doc.InBounds(pt.Col, pt.Row) {
		return nil
	}

	if e.Brush.Tool == ToolErase {
		e.eraseClick(pt)
		return nil
	}

	if e.Brush.FuseMode {
		return nil
	}

	if b := resolve(e.doc, pt); b != nil {
		sel := *b
		return &sel
	}

	doc := e.doc.Clone()
	nb := e.newBrick(doc, pt, e.Brush.Type)
	if nb.Type == level.TypePortal {
		nb.ID = e.doc.NextPortalID()
	}
	if !place(doc, nb) {
		return nil
	}
	e.publish(doc)
	return nil
}

func (e *Engine) eraseClick(pt PathPoint) {
	b := resolve(e.doc, pt)
	if b == nil {
		return
	}
	doc := e.doc.Clone()
	eraseAt(doc, pt)
	e.publish(doc)
}

// StrokeStart begins accumulating a drag gesture.
func (e *Engine) StrokeStart(pt PathPoint) {
	e.stroke = e.stroke[:0]
	e.StrokeMove(pt)
}

// StrokeMove records another visited position. Consecutive duplicates are
// collapsed so hovering inside one cell does not inflate the path.
func (e *Engine) StrokeMove(pt PathPoint) {
	pt = e.normalize(pt)
	if n := len(e.stroke); n > 0 && e.stroke[n-1] == pt {
		return
	}
	e.stroke = append(e.stroke, pt)
}

// StrokeEnd commits the accumulated gesture as one batch. A single-point
// stroke degrades to Click semantics and may return a selection. A gesture
// that produces no bricks commits nothing.
func (e *Engine) StrokeEnd() *level.Brick {
	path := e.stroke
	e.stroke = nil
	switch len(path) {
	case 0:
		return nil
	case 1:
		return e.Click(path[0])
	}

	doc := e.doc.Clone()
	changed := false
	placedPortal := false

	for i, pt := range path {
		if !doc.InBounds(pt.Col, pt.Row) {
			continue // clamp: out-of-grid points simply produce nothing
		}

		if e.Brush.Tool == ToolErase {
			if eraseAt(doc, pt) {
				changed = true
			}
			continue
		}

		typ := e.Brush.Type
		if e.Brush.FuseMode {
			var prev, next *PathPoint
			if i > 0 {
				prev = &path[i-1]
			}
			if i < len(path)-1 {
				next = &path[i+1]
			}
			typ = ClassifyFuse(pt, prev, next)
		}

		nb := e.newBrick(doc, pt, typ)
		if !place(doc, nb) {
			continue
		}
		changed = true
		if typ == level.TypePortal {
			placedPortal = true
		}
	}

	if placedPortal {
		// ids go on after the whole batch: replacements shift brick indices
		// mid-stroke, so the new portals are the ones still without an id.
		// Allocation runs against the edited document, so a portal removed
		// by this stroke no longer pins its id.
		var fresh []int
		for i := range doc.Bricks {
			if doc.Bricks[i].Type == level.TypePortal && doc.Bricks[i].ID == "" {
				fresh = append(fresh, i)
			}
		}
		ids := doc.GeneratePairIDs(len(fresh))
		for i, idx := range fresh {
			doc.Bricks[idx].ID = ids[i]
		}
	}

	if changed {
		e.publish(doc)
	}
	return nil
}

// UpdateBrick edits attributes of the brick at pt through the commit path.
// Reports whether a brick was found.
func (e *Engine) UpdateBrick(pt PathPoint, apply func(*level.Brick)) bool {
	if resolve(e.doc, pt) == nil {
		return false
	}
	doc := e.doc.Clone()
	b := resolve(doc, pt)
	if b == nil {
		return false
	}
	apply(b)
	e.publish(doc)
	return true
}

// Rename sets the level name.
func (e *Engine) Rename(name string) {
	doc := e.doc.Clone()
	doc.Name = name
	e.publish(doc)
}

// ResizeGrid changes the grid extents, dropping out-of-bounds bricks.
func (e *Engine) ResizeGrid(w, h int) {
	doc := e.doc.Clone()
	doc.Resize(w, h)
	e.publish(doc)
}

// SetBackground sets the level background color.
func (e *Engine) SetBackground(c level.RGB) {
	doc := e.doc.Clone()
	doc.BackgroundColor = c
	e.publish(doc)
}

func (e *Engine) newBrick(doc *level.Level, pt PathPoint, typ level.BrickType) level.Brick {
	x, y := doc.PixelPos(pt.Col, pt.Row, pt.Half)
	return level.Brick{
		Type:       typ,
		Col:        pt.Col,
		Row:        pt.Row,
		X:          x,
		Y:          y,
		Color:      e.Brush.Color,
		DropChance: e.Brush.DropChance,
		CoinValue:  e.Brush.CoinValue,
		HalfSize:   pt.Half != level.HalfNone,
		HalfAlign:  pt.Half,
	}
}

func resolve(doc *level.Level, pt PathPoint) *level.Brick {
	if pt.Half != level.HalfNone {
		return doc.AtHalf(pt.Col, pt.Row, pt.Half)
	}
	return doc.At(pt.Col, pt.Row)
}

// place appends b after clearing the exact position-and-slot it occupies.
// A half-size brick must not be attempted over an occupying full-size brick;
// such placements are dropped and place reports false. A full-size brick
// clears both half slots, keeping the occupancy invariant.
func place(doc *level.Level, b level.Brick) bool {
	if b.HalfSize {
		if doc.At(b.Col, b.Row) != nil {
			return false
		}
		removeAt(doc, b.Col, b.Row, true, b.HalfAlign)
	} else {
		removeAt(doc, b.Col, b.Row, false, level.HalfNone)
		removeAt(doc, b.Col, b.Row, true, level.HalfLeft)
		removeAt(doc, b.Col, b.Row, true, level.HalfRight)
	}
	doc.Bricks = append(doc.Bricks, b)
	return true
}

// eraseAt removes the occupant of pt. Erasing a full-size portal removes its
// paired partner too; the id relation would otherwise dangle.
func eraseAt(doc *level.Level, pt PathPoint) bool {
	b := resolve(doc, pt)
	if b == nil {
		return false
	}
	if !b.HalfSize && b.Type == level.TypePortal && b.ID != "" {
		doc.RemoveByID(b.ID)
		return true
	}
	// remove by identity so legacy bricks found via the pixel fallback
	// (whose Col/Row may be zero) erase correctly
	for i := range doc.Bricks {
		if &doc.Bricks[i] == b {
			doc.Remove(i)
			return true
		}
	}
	return false
}

func removeAt(doc *level.Level, col, row int, half bool, align level.HalfAlign) {
	for i := range doc.Bricks {
		b := &doc.Bricks[i]
		if b.Col == col && b.Row == row && b.HalfSize == half && (!half || b.HalfAlign == align) {
			doc.Remove(i)
			return
		}
	}
}
