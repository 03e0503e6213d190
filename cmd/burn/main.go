//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/manzt/burn/internal/app"
	"github.com/manzt/burn/internal/config"
	"github.com/manzt/burn/internal/core"
	"github.com/manzt/burn/internal/effect"
	"github.com/manzt/burn/internal/fire"
	"github.com/manzt/burn/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	palette := fire.Default()
	if cfg.Palette != "" {
		p, err := config.LoadPalette(cfg.Palette)
		if err != nil {
			log.Fatalf("load palette: %v", err)
		}
		palette = p
	}

	surface := render.NewImageSurface(cfg.Width, cfg.Height)
	ctrl, err := effect.New(surface, effect.Options{
		Scale:    cfg.Scale,
		Interval: time.Duration(cfg.Interval) * time.Millisecond,
		Palette:  palette,
		Rand:     core.NewRNG(cfg.Seed),
	})
	if err != nil {
		log.Fatalf("build effect: %v", err)
	}

	game := app.New(ctrl, surface, cfg.Width, cfg.Height)

	ebiten.SetWindowTitle("burn")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	ctrl.Start()
	defer ctrl.Stop()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
