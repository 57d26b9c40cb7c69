//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"life-canvas/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	life, err := app.NewUniverse(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(life, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(fmt.Sprintf("life — %dx%d", life.Width(), life.Height()))
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}
	ebiten.SetWindowSize(w, h)

	log.Printf("starting %dx%d universe, %s renderer", life.Width(), life.Height(), cfg.Mode)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
