// Package effect composes a fire grid with a rasterizer and drives the
// update/render tick on its own timer.
package effect

import (
	"sync"
	"time"

	"github.com/manzt/burn/internal/core"
	"github.com/manzt/burn/internal/fire"
	"github.com/manzt/burn/internal/render"
)

const (
	// DefaultScale maps output pixels to grid cells.
	DefaultScale = 3.5
	// DefaultInterval is the delay between ticks while running.
	DefaultInterval = 30 * time.Millisecond
)

// Options configures a Controller at construction. Zero values select the
// defaults. Scale is fixed for the controller's lifetime; changing it means
// building a new controller.
type Options struct {
	Scale    float64
	Interval time.Duration
	Palette  fire.Palette
	// Height overrides the grid height derived from the surface.
	Height int
	// Rand overrides the grid's random source, for deterministic runs.
	Rand fire.Rand
}

// Controller binds one grid and one rasterizer to one output surface and
// exposes the start/stop/reset control contract. Ticks are serialized: the
// mutex covers every update+render pass, so the grid and surface never see
// concurrent writers. Distinct controllers are fully independent.
type Controller struct {
	mu       sync.Mutex
	grid     *fire.Grid
	ras      *render.Rasterizer
	surface  render.Surface
	palette  fire.Palette
	interval time.Duration
	running  bool
	stop     chan struct{}
}

// New constructs a stopped controller bound to surface. The grid dimensions
// are the surface dimensions divided by the scale factor, floored. A palette
// of the wrong length is rejected and nothing is built.
func New(surface render.Surface, opts Options) (*Controller, error) {
	scale := opts.Scale
	if scale <= 0 {
		scale = DefaultScale
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	palette := opts.Palette
	if palette == nil {
		palette = fire.Default()
	}
	if err := palette.Validate(); err != nil {
		return nil, err
	}
	rng := opts.Rand
	if rng == nil {
		rng = core.NewRNG(time.Now().UnixNano())
	}

	sw, sh := surface.Size()
	gw := int(float64(sw) / scale)
	gh := opts.Height
	if gh <= 0 {
		gh = int(float64(sh) / scale)
	}

	return &Controller{
		grid:     fire.NewGrid(gw, gh, rng),
		ras:      render.NewRasterizer(gw, gh, scale),
		surface:  surface,
		palette:  palette,
		interval: interval,
	}, nil
}

// Start begins the repeating tick. The first tick runs synchronously before
// Start returns; subsequent ticks fire every interval on the controller's
// goroutine. No-op while already running.
func (c *Controller) Start() {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return
	}
	c.running = true
	stop := make(chan struct{})
	c.stop = stop
	c.mu.Unlock()

	c.tick(stop)
	go c.loop(stop)
}

// Stop cancels the pending tick. The frame currently on the surface stays.
// A tick already executing finishes, but no tick begins after Stop returns.
// No-op while already stopped.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return
	}
	c.running = false
	close(c.stop)
}

// Reset reseeds the grid and renders the cleared state immediately. It works
// in either state and leaves the tick schedule alone.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grid.Reset()
	c.ras.Render(c.grid.Cells(), c.palette, c.surface)
}

// Running reports whether the tick schedule is active.
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Palette returns the active palette.
func (c *Controller) Palette() fire.Palette {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.palette
}

// SetPalette swaps the palette wholesale. A palette that is not exactly
// fire.PaletteLen entries is rejected and the active palette is untouched.
// The swap shows up on the next tick's render.
func (c *Controller) SetPalette(p fire.Palette) error {
	if err := p.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.palette = p
	return nil
}

// Interval returns the delay between ticks.
func (c *Controller) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.interval
}

// SetInterval changes the tick delay. The in-flight wait keeps its original
// length; the new value applies when the next tick is scheduled.
// Non-positive values are ignored.
func (c *Controller) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.interval = d
}

// loop schedules ticks until stop closes. The interval is read fresh each
// time the next delay is armed.
func (c *Controller) loop(stop chan struct{}) {
	for {
		c.mu.Lock()
		d := c.interval
		c.mu.Unlock()

		t := time.NewTimer(d)
		select {
		case <-stop:
			t.Stop()
			return
		case <-t.C:
			c.tick(stop)
		}
	}
}

// tick runs one update+render pass under the mutex. Re-checking stop under
// the lock guarantees no tick begins after Stop has returned.
func (c *Controller) tick(stop chan struct{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	select {
	case <-stop:
		return
	default:
	}
	c.grid.Update()
	c.ras.Render(c.grid.Cells(), c.palette, c.surface)
}
