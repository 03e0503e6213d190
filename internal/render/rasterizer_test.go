package render

import (
	"image/color"
	"testing"

	"github.com/manzt/burn/internal/fire"
)

func grayRamp() fire.Palette {
	p := make(fire.Palette, fire.PaletteLen)
	for i := range p {
		v := uint8(i * 255 / fire.MaxHeat)
		p[i] = color.RGBA{v, v, v, 0xFF}
	}
	return p
}

func TestRenderTransparencyRule(t *testing.T) {
	// Palette entry 0 is loud red with full alpha; it must still come out
	// fully transparent.
	pal := grayRamp()
	pal[0] = color.RGBA{0xFF, 0, 0, 0xFF}

	surf := NewImageSurface(2, 2)
	ras := NewRasterizer(2, 2, 1)
	cells := []uint8{0, 5, 0, fire.MaxHeat}
	if err := ras.Render(cells, pal, surf); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if _, _, _, a := surf.At(0, 0); a != 0 {
		t.Fatalf("intensity 0 rendered with alpha %d, want 0", a)
	}
	if _, _, _, a := surf.At(0, 1); a != 0 {
		t.Fatalf("intensity 0 rendered with alpha %d, want 0", a)
	}
	if _, _, _, a := surf.At(1, 0); a != 0xFF {
		t.Fatalf("intensity 5 rendered with alpha %d, want 255", a)
	}
	if r, g, b, a := surf.At(1, 1); r != 0xFF || g != 0xFF || b != 0xFF || a != 0xFF {
		t.Fatalf("max intensity rendered as (%d,%d,%d,%d), want opaque white", r, g, b, a)
	}
}

func TestRenderPaletteLookup(t *testing.T) {
	pal := grayRamp()
	surf := NewImageSurface(1, 1)
	ras := NewRasterizer(1, 1, 1)
	if err := ras.Render([]uint8{18}, pal, surf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	want := pal[18]
	if r, g, b, a := surf.At(0, 0); r != want.R || g != want.G || b != want.B || a != 0xFF {
		t.Fatalf("intensity 18 rendered as (%d,%d,%d,%d), want (%d,%d,%d,255)",
			r, g, b, a, want.R, want.G, want.B)
	}
}

func TestRenderRejectsBadPaletteWithoutTouchingSurface(t *testing.T) {
	surf := NewImageSurface(1, 1)
	ras := NewRasterizer(1, 1, 1)
	if err := ras.Render([]uint8{fire.MaxHeat}, grayRamp(), surf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	before := [4]uint8{}
	before[0], before[1], before[2], before[3] = surf.At(0, 0)

	for _, n := range []int{fire.PaletteLen - 1, fire.PaletteLen + 1} {
		if err := ras.Render([]uint8{fire.MaxHeat}, make(fire.Palette, n), surf); err == nil {
			t.Fatalf("palette of length %d accepted", n)
		}
	}
	after := [4]uint8{}
	after[0], after[1], after[2], after[3] = surf.At(0, 0)
	if before != after {
		t.Fatalf("failed render modified the surface: %v -> %v", before, after)
	}
}

func TestRenderBottomAnchorAndFullWidth(t *testing.T) {
	// 2x2 grid at scale 2 on a 4x6 surface: output occupies rows 2..5 across
	// the full width; rows 0..1 stay untouched.
	surf := NewImageSurface(4, 6)
	ras := NewRasterizer(2, 2, 2)
	cells := []uint8{fire.MaxHeat, fire.MaxHeat, fire.MaxHeat, fire.MaxHeat}
	if err := ras.Render(cells, grayRamp(), surf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	for x := 0; x < 4; x++ {
		for y := 0; y < 2; y++ {
			if _, _, _, a := surf.At(x, y); a != 0 {
				t.Fatalf("pixel (%d,%d) above the flame was written", x, y)
			}
		}
		for y := 2; y < 6; y++ {
			if r, _, _, a := surf.At(x, y); r != 0xFF || a != 0xFF {
				t.Fatalf("pixel (%d,%d) inside the flame not white-hot", x, y)
			}
		}
	}
}

func TestRenderNearestNeighbor(t *testing.T) {
	// Two distinct intensities stretched 2x must form crisp 2x2 blocks with
	// no intermediate colors.
	pal := grayRamp()
	surf := NewImageSurface(4, 2)
	ras := NewRasterizer(2, 1, 2)
	if err := ras.Render([]uint8{9, fire.MaxHeat}, pal, surf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	left, right := pal[9], pal[fire.MaxHeat]
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if r, _, _, _ := surf.At(x, y); r != left.R {
				t.Fatalf("pixel (%d,%d) = %d, want left block %d", x, y, r, left.R)
			}
		}
		for x := 2; x < 4; x++ {
			if r, _, _, _ := surf.At(x, y); r != right.R {
				t.Fatalf("pixel (%d,%d) = %d, want right block %d", x, y, r, right.R)
			}
		}
	}
}

func TestRenderEmptyGrid(t *testing.T) {
	surf := NewImageSurface(4, 4)
	ras := NewRasterizer(0, 0, 3.5)
	if err := ras.Render(nil, grayRamp(), surf); err != nil {
		t.Fatalf("empty grid render errored: %v", err)
	}
}
