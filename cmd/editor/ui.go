package main

import (
	"bytes"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/tcarls/brickbreaker/editor"
	"github.com/tcarls/brickbreaker/level"
)

// swatches is the preset palette for default bricks.
var swatches = []level.RGB{
	{R: 0x3c, G: 0x78, B: 0xff},
	{R: 0xff, G: 0x50, B: 0x50},
	{R: 0x50, G: 0xc8, B: 0x50},
	{R: 0xff, G: 0xc8, B: 0x30},
	{R: 0xb0, G: 0x50, B: 0xe0},
	{R: 0x30, G: 0xc8, B: 0xc8},
	{R: 0xff, G: 0x90, B: 0x40},
	{R: 0xe8, G: 0xe8, B: 0xe8},
}

// Panel keeps references to the widgets the app pushes state into.
type Panel struct {
	toolGroup   *widget.RadioGroup
	toolButtons []*widget.Button
	nameInput   *widget.TextInput
}

func buildUI(a *App) (*ebitenui.UI, *Panel) {
	ui := &ebitenui.UI{}
	panel := &Panel{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}
	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	theme := newEditorTheme(&fontFace)
	ui.PrimaryTheme = theme

	side := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(theme.PanelTheme.BackgroundImage),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(sidebarWidth, 0)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(6),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 8, Right: 8}),
			),
		),
	)

	addToolSection(side, theme, &fontFace, a, panel)
	addTypeSection(side, theme, &fontFace, a)
	addColorSection(side, &fontFace, a)
	addHalfSection(side, theme, &fontFace, a)
	addAttrSection(side, theme, &fontFace, a)
	addLevelSection(side, theme, &fontFace, a, panel)
	addActionSection(side, theme, &fontFace, a)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	side.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	root.AddChild(side)
	ui.Container = root

	return ui, panel
}

func addToolSection(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, a *App, panel *Panel) {
	parent.AddChild(widget.NewLabel(widget.LabelOpts.Text("Tool", fontFace, labelColor())))
	row := newRow(6)
	for _, tool := range []editor.Tool{editor.ToolPaint, editor.ToolErase} {
		tool := tool
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(tool.String(), fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(64, 32)),
		)
		panel.toolButtons = append(panel.toolButtons, btn)
		row.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(panel.toolButtons))
	for _, b := range panel.toolButtons {
		elements = append(elements, b)
	}
	panel.toolGroup = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			for idx, b := range panel.toolButtons {
				if args.Active == b {
					a.engine.Brush.Tool = editor.Tool(idx)
					return
				}
			}
		}),
	)
	panel.toolGroup.SetActive(panel.toolButtons[0])
	parent.AddChild(row)
}

func addTypeSection(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, a *App) {
	parent.AddChild(widget.NewLabel(widget.LabelOpts.Text("Brick", fontFace, labelColor())))
	row := newRow(4)
	count := 0
	for _, t := range level.Types() {
		if t.IsFuse() {
			continue // fuse bricks are drag-drawn, not selected directly
		}
		t := t
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(string(t), fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				a.engine.Brush.SetType(t)
			}),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(74, 28)),
		)
		row.AddChild(btn)
		count++
		if count%3 == 0 {
			parent.AddChild(row)
			row = newRow(4)
		}
	}
	fuseBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("fuse", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			a.engine.Brush.SetFuseMode(!a.engine.Brush.FuseMode)
		}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(74, 28)),
	)
	row.AddChild(fuseBtn)
	parent.AddChild(row)
}

func addColorSection(parent *widget.Container, fontFace *text.Face, a *App) {
	parent.AddChild(widget.NewLabel(widget.LabelOpts.Text("Color", fontFace, labelColor())))
	row := newRow(4)
	for _, c := range swatches {
		c := c
		img := solidNineSlice(c.RGBA())
		btn := widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: img, Hover: img, Pressed: img}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				a.engine.Brush.Color = c
				if sel := a.resolveSelection(); sel != nil && sel.Type == level.TypeDefault {
					a.engine.UpdateBrick(*a.selection, func(b *level.Brick) { b.Color = c })
				}
			}),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(24, 24)),
		)
		row.AddChild(btn)
	}
	parent.AddChild(row)
}

func addHalfSection(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, a *App) {
	parent.AddChild(widget.NewLabel(widget.LabelOpts.Text("Half size", fontFace, labelColor())))
	row := newRow(4)
	row.AddChild(simpleButton(theme, fontFace, "toggle", func() {
		a.engine.Brush.HalfSize = !a.engine.Brush.HalfSize
	}))
	row.AddChild(simpleButton(theme, fontFace, "left", func() {
		a.engine.Brush.HalfAlign = level.HalfLeft
	}))
	row.AddChild(simpleButton(theme, fontFace, "right", func() {
		a.engine.Brush.HalfAlign = level.HalfRight
	}))
	parent.AddChild(row)
}

// addAttrSection adjusts drop chance and coin value: for the selected brick
// when there is one, otherwise for the brush defaults.
func addAttrSection(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, a *App) {
	parent.AddChild(widget.NewLabel(widget.LabelOpts.Text("Drop chance / coins", fontFace, labelColor())))
	row := newRow(4)
	row.AddChild(simpleButton(theme, fontFace, "drop -", func() { a.adjustDrop(-0.05) }))
	row.AddChild(simpleButton(theme, fontFace, "drop +", func() { a.adjustDrop(0.05) }))
	row.AddChild(simpleButton(theme, fontFace, "coin -", func() { a.adjustCoin(-1) }))
	row.AddChild(simpleButton(theme, fontFace, "coin +", func() { a.adjustCoin(1) }))
	parent.AddChild(row)
}

func addLevelSection(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, a *App, panel *Panel) {
	parent.AddChild(widget.NewLabel(widget.LabelOpts.Text("Level name (Enter applies)", fontFace, labelColor())))
	panel.nameInput = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 28)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     solidNineSlice(colorNRGBA(245, 245, 245)),
			Disabled: solidNineSlice(colorNRGBA(200, 200, 200)),
		}),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:     colorNRGBA(0, 0, 0),
			Disabled: colorNRGBA(120, 120, 120),
			Caret:    colorNRGBA(0, 0, 0),
		}),
		widget.TextInputOpts.Face(fontFace),
		widget.TextInputOpts.SubmitOnEnter(true),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			a.engine.Rename(args.InputText)
		}),
	)
	parent.AddChild(panel.nameInput)

	parent.AddChild(widget.NewLabel(widget.LabelOpts.Text("Grid", fontFace, labelColor())))
	row := newRow(4)
	row.AddChild(simpleButton(theme, fontFace, "W-", func() { a.resizeBy(-1, 0) }))
	row.AddChild(simpleButton(theme, fontFace, "W+", func() { a.resizeBy(1, 0) }))
	row.AddChild(simpleButton(theme, fontFace, "H-", func() { a.resizeBy(0, -1) }))
	row.AddChild(simpleButton(theme, fontFace, "H+", func() { a.resizeBy(0, 1) }))
	parent.AddChild(row)
}

func addActionSection(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, a *App) {
	parent.AddChild(widget.NewLabel(widget.LabelOpts.Text("Actions", fontFace, labelColor())))
	row := newRow(4)
	row.AddChild(simpleButton(theme, fontFace, "Export", func() {
		if err := a.exportLevel(); err != nil {
			log.Printf("editor: export: %v", err)
			a.status = "export failed"
		}
	}))
	row.AddChild(simpleButton(theme, fontFace, "Playtest", func() { a.startPlaytest() }))
	row.AddChild(simpleButton(theme, fontFace, "Undo", func() { a.undo() }))
	row.AddChild(simpleButton(theme, fontFace, "Redo", func() { a.redo() }))
	parent.AddChild(row)
}

func (a *App) adjustDrop(delta float64) {
	if a.selection != nil && a.resolveSelection() != nil {
		a.engine.UpdateBrick(*a.selection, func(b *level.Brick) {
			b.DropChance = clamp01(b.DropChance + delta)
		})
		return
	}
	a.engine.Brush.DropChance = clamp01(a.engine.Brush.DropChance + delta)
}

func (a *App) adjustCoin(delta int) {
	if a.selection != nil && a.resolveSelection() != nil {
		a.engine.UpdateBrick(*a.selection, func(b *level.Brick) {
			if b.CoinValue+delta >= 0 {
				b.CoinValue += delta
			}
		})
		return
	}
	if a.engine.Brush.CoinValue+delta >= 0 {
		a.engine.Brush.CoinValue += delta
	}
}

func (a *App) resizeBy(dw, dh int) {
	doc := a.engine.Document()
	a.engine.ResizeGrid(doc.Width+dw, doc.Height+dh)
}

// syncPanel pushes brush state back into widgets after keyboard shortcuts.
func (a *App) syncPanel() {
	if a.panel == nil || a.panel.toolGroup == nil {
		return
	}
	idx := int(a.engine.Brush.Tool)
	if idx >= 0 && idx < len(a.panel.toolButtons) {
		a.panel.toolGroup.SetActive(a.panel.toolButtons[idx])
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func newRow(spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(spacing),
			),
		),
	)
}

func simpleButton(theme *widget.Theme, fontFace *text.Face, label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(label, fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) { onClick() }),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(56, 28)),
	)
}
