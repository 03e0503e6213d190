package main

import (
	"flag"
	"log"
	"time"

	"github.com/manzt/burn/internal/app"
	"github.com/manzt/burn/internal/config"
	"github.com/manzt/burn/internal/core"
	"github.com/manzt/burn/internal/effect"
	"github.com/manzt/burn/internal/fire"
	"github.com/manzt/burn/internal/tty"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Scale = 1 // terminal cells are coarse enough already
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	build := func() *effect.Controller {
		ctrl, err := effect.New(tty.NewSurface(screen), effect.Options{
			Scale:    cfg.Scale,
			Interval: time.Duration(cfg.Interval) * time.Millisecond,
			Palette:  palette,
			Rand:     core.NewRNG(cfg.Seed),
		})
		if err != nil {
			screen.Fini()
			log.Fatalf("build effect: %v", err)
		}
		return ctrl
	}

	ctrl := build()
	ctrl.Start()
	defer func() { ctrl.Stop() }()

	presets := config.PresetNames()
	presetIdx := 0

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			// Scale is fixed at construction; a new terminal size means a
			// fresh grid, so the controller is rebuilt.
			screen.Sync()
			screen.Clear()
			wasRunning := ctrl.Running()
			ctrl.Stop()
			ctrl = build()
			ctrl.Reset()
			if wasRunning {
				ctrl.Start()
			}
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
				return
			case ev.Rune() == ' ':
				if ctrl.Running() {
					ctrl.Stop()
				} else {
					ctrl.Start()
				}
			case ev.Rune() == 'r':
				ctrl.Reset()
			case ev.Rune() == '-':
				ctrl.SetInterval(ctrl.Interval() + 5*time.Millisecond)
			case ev.Rune() == '+', ev.Rune() == '=':
				if d := ctrl.Interval() - 5*time.Millisecond; d >= 5*time.Millisecond {
					ctrl.SetInterval(d)
				}
			case ev.Rune() == 'p':
				presetIdx = (presetIdx + 1) % len(presets)
				if err := ctrl.SetPalette(config.Presets()[presets[presetIdx]]); err != nil {
					screen.Fini()
					log.Fatalf("swap palette: %v", err)
				}
			}
		}
	}
}
