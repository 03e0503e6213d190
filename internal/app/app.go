//go:build ebiten

package app

import (
	"time"

	"github.com/manzt/burn/internal/config"
	"github.com/manzt/burn/internal/effect"
	"github.com/manzt/burn/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a fire controller to the ebiten.Game interface. The controller
// ticks on its own timer into a software surface; the game merely uploads
// that surface every frame and maps keys onto the control contract.
type Game struct {
	ctrl    *effect.Controller
	surface *render.ImageSurface

	img *ebiten.Image
	buf []byte

	presets   []string
	presetIdx int
	w, h      int
}

// New constructs a Game displaying the controller's surface at w by h pixels.
func New(ctrl *effect.Controller, surface *render.ImageSurface, w, h int) *Game {
	return &Game{
		ctrl:    ctrl,
		surface: surface,
		img:     ebiten.NewImage(w, h),
		buf:     make([]byte, 4*w*h),
		presets: config.PresetNames(),
		w:       w,
		h:       h,
	}
}

// Update handles per-frame input. The simulation itself advances on the
// controller's timer, not the frame clock.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.ctrl.Running() {
			g.ctrl.Stop()
		} else {
			g.ctrl.Start()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		if d := g.ctrl.Interval() - 5*time.Millisecond; d >= 5*time.Millisecond {
			g.ctrl.SetInterval(d)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.ctrl.SetInterval(g.ctrl.Interval() + 5*time.Millisecond)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.presetIdx = (g.presetIdx + 1) % len(g.presets)
		g.ctrl.SetPalette(config.Presets()[g.presets[g.presetIdx]])
	}
	return nil
}

// Draw uploads the controller's latest frame to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.ReadPixels(g.buf)
	g.img.WritePixels(g.buf)
	screen.DrawImage(g.img, nil)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
