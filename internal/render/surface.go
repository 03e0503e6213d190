package render

import (
	"image"
	"sync"
)

// Surface is a drawable 2D output target. Blit stretches the whole source
// raster into dst using nearest-neighbor sampling, replacing destination
// pixels (alpha included) inside dst; pixels outside dst are untouched.
type Surface interface {
	Size() (w, h int)
	Blit(src *image.RGBA, dst image.Rectangle)
}

// ImageSurface is a software Surface backed by an image.RGBA. It is safe for
// one writer and concurrent readers: the effect tick goroutine blits while a
// display loop copies pixels out.
type ImageSurface struct {
	mu  sync.Mutex
	img *image.RGBA
}

// NewImageSurface allocates a transparent surface of the given size.
func NewImageSurface(w, h int) *ImageSurface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Size returns the surface dimensions in pixels.
func (s *ImageSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Blit stretches src into dst with nearest-neighbor sampling, clipped to the
// surface bounds.
func (s *ImageSurface) Blit(src *image.RGBA, dst image.Rectangle) {
	srcW, srcH := src.Bounds().Dx(), src.Bounds().Dy()
	if srcW == 0 || srcH == 0 || dst.Dx() <= 0 || dst.Dy() <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	clip := dst.Intersect(s.img.Bounds())
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		sy := (y - dst.Min.Y) * srcH / dst.Dy()
		for x := clip.Min.X; x < clip.Max.X; x++ {
			sx := (x - dst.Min.X) * srcW / dst.Dx()
			so := src.PixOffset(sx, sy)
			do := s.img.PixOffset(x, y)
			copy(s.img.Pix[do:do+4], src.Pix[so:so+4])
		}
	}
}

// ReadPixels copies the surface's RGBA bytes into buf, which must be at
// least 4*w*h long.
func (s *ImageSurface) ReadPixels(buf []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(buf, s.img.Pix)
}

// At reports the RGBA bytes of one pixel. Intended for tests and probes.
func (s *ImageSurface) At(x, y int) (r, g, b, a uint8) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.img.PixOffset(x, y)
	return s.img.Pix[o], s.img.Pix[o+1], s.img.Pix[o+2], s.img.Pix[o+3]
}
