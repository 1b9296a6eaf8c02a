//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"badge-life/internal/badge"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := badge.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	app, err := badge.NewApp(cfg)
	if err != nil {
		log.Fatalf("badge: %v", err)
	}

	ebiten.SetWindowTitle("badge-life")
	ebiten.SetWindowSize(badge.PanelW*cfg.Scale, badge.PanelH*cfg.Scale)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
