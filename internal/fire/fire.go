// Package fire implements the Doom PSX fire automaton: a grid of heat
// intensities decayed and drifted upward by a randomized per-cell rule.
package fire

import "github.com/manzt/burn/internal/core"

// MaxHeat is the hottest intensity a cell can hold. It doubles as the last
// valid index into a Palette.
const MaxHeat = 36

// Rand is the source of randomness consulted by the spread rule, two draws
// per eligible cell. *core.RNG satisfies it; tests may script one.
type Rand interface {
	IntN(n int) int
}

// Grid holds the 2D heat buffer and the spread rule. It knows nothing about
// rendering; cells are intensities in [0, MaxHeat].
type Grid struct {
	w, h  int
	cells []uint8
	rng   Rand
}

// NewGrid allocates a zeroed grid, seeds the bottom row at MaxHeat, and binds
// the random source used by Update. Zero or negative dimensions yield an
// empty grid whose Update is a no-op.
func NewGrid(w, h int, rng Rand) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g := &Grid{w: w, h: h, cells: make([]uint8, w*h), rng: rng}
	g.seed()
	return g
}

// Name identifies the simulation.
func (g *Grid) Name() string { return "fire" }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Cells exposes the current intensity buffer in row-major order.
func (g *Grid) Cells() []uint8 { return g.cells }

// Reset zeroes every cell and reseeds the bottom row at MaxHeat. It is
// idempotent and safe to call mid-animation; it does not start or stop
// anything by itself.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = 0
	}
	g.seed()
}

func (g *Grid) seed() {
	if g.h == 0 {
		return
	}
	for x := 0; x < g.w; x++ {
		g.cells[(g.h-1)*g.w+x] = MaxHeat
	}
}

// Update advances the automaton by one tick. Traversal is column-major,
// skipping row 0. Each cell pushes its value, decayed by a uniform draw from
// {0,1,2}, into the cell one row up and one column left or right (uniform).
//
// The column offset is deliberately not clamped: with flat indexing, column
// -1 lands in the previous row's last column and column w lands in the same
// row's column 0. The wraparound flicker is part of the original effect's
// look and is kept, not fixed. The update is in-place, so a cell written
// earlier in the pass may be re-read as a source later in the same pass.
func (g *Grid) Update() {
	w := g.w
	for x := 0; x < w; x++ {
		for y := 1; y < g.h; y++ {
			src := y*w + x
			decay := g.rng.IntN(3)
			dir := -1
			if g.rng.IntN(2) == 1 {
				dir = 1
			}
			dst := src - w + dir
			if dst < 0 {
				continue
			}
			v := int(g.cells[src]) - decay
			if v < 0 {
				v = 0
			}
			g.cells[dst] = uint8(v)
		}
	}
}
