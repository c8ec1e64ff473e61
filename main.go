package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tcarls/brickbreaker/level"
	"github.com/tcarls/brickbreaker/play"
)

type game struct {
	session *play.Session
	quit    bool
}

func (g *game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.session.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.session.Draw(screen)
}

func (g *game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.session.Bounds()
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func main() {
	levelPath := flag.String("level", "", "level file to play")
	flag.Parse()

	if *levelPath == "" {
		log.Fatal("usage: brickbreaker -level levels/<name>.json")
	}

	data, err := os.ReadFile(*levelPath)
	if err != nil {
		log.Fatal(err)
	}
	lvl, err := level.Decode(data)
	if err != nil {
		log.Fatalf("failed to load level %s: %v", *levelPath, err)
	}
	lvl.Clean()

	g := &game{}
	g.session = play.New(lvl, func() { g.quit = true })

	w, h := g.session.Bounds()
	ebiten.SetWindowSize(int(w), int(h))
	ebiten.SetWindowTitle("brickbreaker")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
