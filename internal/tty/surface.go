// Package tty adapts a tcell screen into an output surface for the effect.
package tty

import (
	"image"

	"github.com/gdamore/tcell/v2"
)

// Surface draws fire pixels as colored terminal cells, one grid pixel per
// cell. Transparent pixels leave the terminal background alone, so the flame
// composites over whatever is already on screen.
type Surface struct {
	screen tcell.Screen
}

// NewSurface wraps an initialized tcell screen.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

// Size returns the terminal dimensions in cells.
func (s *Surface) Size() (int, int) { return s.screen.Size() }

// Blit stretches src into dst with nearest-neighbor sampling and shows the
// frame. Cells covered by a transparent pixel are cleared back to the
// terminal default.
func (s *Surface) Blit(src *image.RGBA, dst image.Rectangle) {
	srcW, srcH := src.Bounds().Dx(), src.Bounds().Dy()
	if srcW == 0 || srcH == 0 || dst.Dx() <= 0 || dst.Dy() <= 0 {
		return
	}
	w, h := s.screen.Size()
	clip := dst.Intersect(image.Rect(0, 0, w, h))
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		sy := (y - dst.Min.Y) * srcH / dst.Dy()
		for x := clip.Min.X; x < clip.Max.X; x++ {
			sx := (x - dst.Min.X) * srcW / dst.Dx()
			o := src.PixOffset(sx, sy)
			style := tcell.StyleDefault
			if src.Pix[o+3] != 0 {
				c := tcell.NewRGBColor(int32(src.Pix[o]), int32(src.Pix[o+1]), int32(src.Pix[o+2]))
				style = style.Background(c)
			}
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	s.screen.Show()
}
