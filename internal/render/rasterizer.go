// Package render turns fire intensities into pixels on an output surface.
package render

import (
	"fmt"
	"image"

	"github.com/manzt/burn/internal/fire"
)

// Rasterizer converts a grid snapshot into an RGBA raster at the grid's
// native resolution and blits it, scaled, onto a destination surface. The
// scaled raster spans the surface's full width and is anchored to its bottom
// edge so the flame rises from the bottom regardless of surface height.
type Rasterizer struct {
	w, h  int
	scale float64
	img   *image.RGBA
}

// NewRasterizer allocates a rasterizer for a grid of w by h cells drawn at
// the given scale factor.
func NewRasterizer(w, h int, scale float64) *Rasterizer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Rasterizer{w: w, h: h, scale: scale, img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Render draws the cells through the palette onto dst. The palette is
// checked before any pixel is touched; an invalid palette leaves dst exactly
// as it was. An empty grid renders nothing and is not an error.
func (r *Rasterizer) Render(cells []uint8, palette fire.Palette, dst Surface) error {
	if err := palette.Validate(); err != nil {
		return err
	}
	if r.w == 0 || r.h == 0 {
		return nil
	}
	if len(cells) != r.w*r.h {
		return fmt.Errorf("grid has %d cells, rasterizer expects %d", len(cells), r.w*r.h)
	}
	fillFireRGBA(r.img.Pix, cells, palette)

	sw, sh := dst.Size()
	dh := int(float64(r.h)*r.scale + 0.5)
	dst.Blit(r.img, image.Rect(0, sh-dh, sw, sh))
	return nil
}
