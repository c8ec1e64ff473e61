package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tcarls/brickbreaker/config"
	"github.com/tcarls/brickbreaker/editor"
	"github.com/tcarls/brickbreaker/level"
	"github.com/tcarls/brickbreaker/play"
	"github.com/tcarls/brickbreaker/store"
)

const sidebarWidth = 260

type appMode int

const (
	modeEdit appMode = iota
	modePlay
)

// App is the editor application: the thin shell around the editing engine.
// All document mutation flows engine → onCommit → history → store.
type App struct {
	cfg        config.Config
	cfgEvents  <-chan config.Config
	cfgErrors  <-chan error
	st         *store.Store
	engine     *editor.Engine
	history    *editor.History
	ui         *ebitenui.UI
	panel      *Panel
	session    *play.Session
	mode       appMode
	importPath string

	selection *editor.PathPoint

	// canvas pointer state, edge-detected across frames
	prevMouse bool
	stroking  bool

	status      string
	clipboardOK bool
}

func newApp(cfg config.Config, levelPath string, clipboardOK bool) (*App, error) {
	st, err := store.Open(cfg.AutosaveDir)
	if err != nil {
		return nil, err
	}

	doc, ok := st.Load()
	if !ok {
		doc = newDocument(cfg)
	}

	a := &App{
		cfg:         cfg,
		st:          st,
		importPath:  levelPath,
		clipboardOK: clipboardOK,
	}
	a.history = editor.NewHistory(doc)
	a.engine = editor.NewEngine(a.history.Present(), a.onCommit)
	if c, parsed := level.ParseHex(cfg.DefaultColor); parsed {
		a.engine.Brush.Color = c
	}
	a.ui, a.panel = buildUI(a)
	a.syncPanel()

	if levelPath != "" {
		if err := a.importLevel(levelPath); err != nil {
			log.Printf("editor: %v", err)
		}
	}
	return a, nil
}

func newDocument(cfg config.Config) *level.Level {
	doc := level.New("untitled", cfg.GridWidth, cfg.GridHeight)
	doc.BrickWidth = cfg.BrickWidth
	doc.BrickHeight = cfg.BrickHeight
	doc.Padding = cfg.Padding
	return doc
}

func (a *App) Close() {
	a.st.Save(a.engine.Document())
	if err := a.st.Close(); err != nil {
		log.Printf("editor: close store: %v", err)
	}
}

// onCommit receives every document the engine produces. The cleanup pass
// runs before the document counts as durable.
func (a *App) onCommit(doc *level.Level) {
	doc.Clean()
	a.history.Commit(doc)
	a.engine.SetDocument(a.history.Present())
	a.st.Save(a.history.Present())
	a.syncPanel()
}

func (a *App) undo() {
	doc := a.history.Undo()
	a.engine.SetDocument(doc)
	a.st.Save(doc)
	a.clearSelection()
	a.syncPanel()
}

func (a *App) redo() {
	doc := a.history.Redo()
	a.engine.SetDocument(doc)
	a.st.Save(doc)
	a.clearSelection()
	a.syncPanel()
}

func (a *App) clearSelection() {
	a.selection = nil
}

func (a *App) select_(pt editor.PathPoint) {
	a.selection = &pt
}

func (a *App) watchConfig(w *config.Watcher) {
	a.cfgEvents = w.Configs
	a.cfgErrors = w.Errors
}

func (a *App) drainConfigEvents() {
	for {
		select {
		case cfg, ok := <-a.cfgEvents:
			if !ok {
				a.cfgEvents = nil
				return
			}
			a.cfg = cfg
			a.status = "config reloaded"
		case err, ok := <-a.cfgErrors:
			if !ok {
				a.cfgErrors = nil
				return
			}
			log.Printf("editor: config reload: %v", err)
			a.status = "config reload failed"
		default:
			return
		}
	}
}

func (a *App) startPlaytest() {
	doc := a.engine.Document().Clone()
	doc.Clean()
	a.session = play.New(doc, func() {
		a.mode = modeEdit
		a.session = nil
	})
	a.mode = modePlay
}

func (a *App) Update() error {
	if a.cfgEvents != nil {
		a.drainConfigEvents()
	}

	if a.mode == modePlay {
		if a.session != nil {
			a.session.Update()
		}
		return nil
	}

	a.ui.Update()
	a.handleKeys()
	a.updateCanvas()
	return nil
}

func (a *App) handleKeys() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) ||
		ebiten.IsKeyPressed(ebiten.KeyControlLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyControlRight)

	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		a.undo()
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyY) {
		a.redo()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := a.exportLevel(); err != nil {
			log.Printf("editor: export: %v", err)
			a.status = "export failed"
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		if a.importPath == "" {
			a.status = "no import file (start with -level)"
		} else if err := a.importLevel(a.importPath); err != nil {
			log.Printf("editor: %v", err)
			a.status = "invalid level file"
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		a.startPlaytest()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		a.engine.Brush.SetFuseMode(!a.engine.Brush.FuseMode)
		a.syncPanel()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		if a.engine.Brush.Tool == editor.ToolPaint {
			a.engine.Brush.Tool = editor.ToolErase
		} else {
			a.engine.Brush.Tool = editor.ToolPaint
		}
		a.syncPanel()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		a.engine.Brush.HalfSize = !a.engine.Brush.HalfSize
		a.syncPanel()
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	if a.mode == modePlay && a.session != nil {
		a.session.Draw(screen)
		return
	}

	a.drawCanvas(screen)
	a.ui.Draw(screen)

	doc := a.engine.Document()
	info := fmt.Sprintf(
		"%s  %dx%d  bricks=%d  tool=%s type=%s fuse=%v half=%v  undo=%v redo=%v\nCtrl+Z undo  Ctrl+Y redo  S export  I import  T playtest  F fuse  X tool  H half  %s",
		doc.Name, doc.Width, doc.Height, len(doc.Bricks),
		a.engine.Brush.Tool, a.engine.Brush.Type, a.engine.Brush.FuseMode, a.engine.Brush.HalfSize,
		a.history.CanUndo(), a.history.CanRedo(), a.status,
	)
	ebitenutil.DebugPrintAt(screen, info, 4, a.canvasHeight()+4)
}

func (a *App) canvasWidth() int {
	doc := a.engine.Document()
	return int(float64(doc.Width)*(doc.BrickWidth+doc.Padding) + doc.Padding)
}

func (a *App) canvasHeight() int {
	doc := a.engine.Document()
	return int(float64(doc.Height)*(doc.BrickHeight+doc.Padding) + doc.Padding)
}

func (a *App) windowSize() (int, int) {
	w, h := a.logicalSize()
	return int(w), int(h)
}

func (a *App) logicalSize() (float64, float64) {
	if a.mode == modePlay && a.session != nil {
		return a.session.Bounds()
	}
	w := float64(a.canvasWidth() + sidebarWidth)
	h := float64(a.canvasHeight() + 48)
	if h < 640 {
		h = 640
	}
	return w, h
}

func (a *App) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return a.logicalSize()
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("Layout called; use LayoutF instead")
}
