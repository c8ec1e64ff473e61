package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tcarls/brickbreaker/editor"
	"github.com/tcarls/brickbreaker/level"
)

var (
	whiteImg *ebiten.Image
	hoverImg *ebiten.Image
)

func canvasImages() (*ebiten.Image, *ebiten.Image) {
	if whiteImg == nil {
		whiteImg = ebiten.NewImage(1, 1)
		whiteImg.Fill(color.White)
		hoverImg = ebiten.NewImage(1, 1)
		hoverImg.Fill(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x50})
	}
	return whiteImg, hoverImg
}

// cellAt maps a cursor position to a grid point. The half slot is resolved
// from the brush: a half-size brush picks the half of the cell under the
// cursor, so painting feels like pointing at the slot itself.
func (a *App) cellAt(mx, my int) (editor.PathPoint, bool) {
	doc := a.engine.Document()
	cw := doc.BrickWidth + doc.Padding
	ch := doc.BrickHeight + doc.Padding
	if mx < 0 || my < 0 || mx >= a.canvasWidth() || my >= a.canvasHeight() {
		return editor.PathPoint{}, false
	}
	col := int(float64(mx) / cw)
	row := int(float64(my) / ch)
	if !doc.InBounds(col, row) {
		return editor.PathPoint{}, false
	}
	pt := editor.PathPoint{Col: col, Row: row}
	if a.engine.Brush.HalfSize {
		within := float64(mx) - float64(col)*cw
		if within < cw/2 {
			pt.Half = level.HalfLeft
		} else {
			pt.Half = level.HalfRight
		}
	}
	return pt, true
}

func (a *App) updateCanvas() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	pt, ok := a.cellAt(mx, my)

	// right-click erases regardless of the active tool
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && ok {
		tool := a.engine.Brush.Tool
		a.engine.Brush.Tool = editor.ToolErase
		a.engine.Click(pt)
		a.engine.Brush.Tool = tool
	}

	switch {
	case pressed && !a.prevMouse:
		if ok {
			a.stroking = true
			a.engine.StrokeStart(pt)
		}
	case pressed && a.prevMouse && a.stroking:
		if ok {
			a.engine.StrokeMove(pt)
		}
	case !pressed && a.prevMouse && a.stroking:
		a.stroking = false
		if sel := a.engine.StrokeEnd(); sel != nil {
			a.select_(editor.PathPoint{Col: sel.Col, Row: sel.Row, Half: sel.HalfAlign})
		}
	}
	a.prevMouse = pressed
}

func (a *App) drawCanvas(screen *ebiten.Image) {
	doc := a.engine.Document()
	white, hover := canvasImages()

	screen.Fill(doc.BackgroundColor.RGBA())

	// faint cell backing so the grid reads even when empty
	cellBg := level.RGB{R: 0x20, G: 0x20, B: 0x2a}
	for row := 0; row < doc.Height; row++ {
		for col := 0; col < doc.Width; col++ {
			x, y := doc.PixelPos(col, row, level.HalfNone)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(doc.BrickWidth, doc.BrickHeight)
			op.GeoM.Translate(x+doc.Padding, y+doc.Padding)
			op.ColorScale.ScaleWithColor(cellBg.RGBA())
			screen.DrawImage(white, op)
		}
	}

	for i := range doc.Bricks {
		b := &doc.Bricks[i]
		w := doc.BrickWidth
		if b.HalfSize {
			w /= 2
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w, doc.BrickHeight)
		op.GeoM.Translate(b.X+doc.Padding, b.Y+doc.Padding)
		op.ColorScale.ScaleWithColor(b.DisplayColor().RGBA())
		screen.DrawImage(white, op)
	}

	if a.selection != nil {
		if b := a.resolveSelection(); b != nil {
			w := doc.BrickWidth
			if b.HalfSize {
				w /= 2
			}
			drawBorder(screen, white, b.X+doc.Padding, b.Y+doc.Padding, w, doc.BrickHeight)
		}
	}

	mx, my := ebiten.CursorPosition()
	if pt, ok := a.cellAt(mx, my); ok {
		x, y := doc.PixelPos(pt.Col, pt.Row, pt.Half)
		w := doc.BrickWidth
		if pt.Half != level.HalfNone {
			w /= 2
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w, doc.BrickHeight)
		op.GeoM.Translate(x+doc.Padding, y+doc.Padding)
		screen.DrawImage(hover, op)
	}
}

func (a *App) resolveSelection() *level.Brick {
	doc := a.engine.Document()
	if a.selection == nil {
		return nil
	}
	if a.selection.Half != level.HalfNone {
		return doc.AtHalf(a.selection.Col, a.selection.Row, a.selection.Half)
	}
	return doc.At(a.selection.Col, a.selection.Row)
}

func drawBorder(screen, img *ebiten.Image, x, y, w, h float64) {
	gold := color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	edges := [][4]float64{
		{x, y, w, 1},
		{x, y + h - 1, w, 1},
		{x, y, 1, h},
		{x + w - 1, y, 1, h},
	}
	for _, e := range edges {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(e[2], e[3])
		op.GeoM.Translate(e[0], e[1])
		op.ColorScale.ScaleWithColor(gold)
		screen.DrawImage(img, op)
	}
}
