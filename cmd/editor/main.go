package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"

	"github.com/tcarls/brickbreaker/config"
)

func main() {
	configPath := flag.String("config", "editor.yaml", "editor config file")
	levelPath := flag.String("level", "", "level file to import at startup")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("editor: %v, using defaults", err)
	}

	clipboardOK := true
	if err := clipboard.Init(); err != nil {
		log.Printf("editor: clipboard unavailable: %v", err)
		clipboardOK = false
	}

	app, err := newApp(cfg, *levelPath, clipboardOK)
	if err != nil {
		log.Fatal(err)
	}
	defer app.Close()

	// live-reload the config when it changes on disk
	if watcher, err := config.Watch(*configPath); err == nil {
		app.watchConfig(watcher)
		defer watcher.Close()
	} else {
		log.Printf("editor: config watch disabled: %v", err)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(app.windowSize())
	ebiten.SetWindowTitle("brickbreaker editor")

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
