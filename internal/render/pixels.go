package render

import "github.com/manzt/burn/internal/fire"

// fillFireRGBA converts intensities into RGBA pixels in buf. Intensity 0 is
// always fully transparent no matter what the palette holds at index 0, and
// every other intensity is fully opaque no matter what alpha the palette
// entry carries. That rule is what lets the flame composite over arbitrary
// backgrounds without a matte.
func fillFireRGBA(buf []byte, cells []uint8, palette fire.Palette) {
	for i, c := range cells {
		base := i * 4
		if c == 0 {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		col := palette[c]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = 0xFF
	}
}
