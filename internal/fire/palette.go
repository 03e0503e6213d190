package fire

import (
	"fmt"
	"image/color"
)

// PaletteLen is the required number of palette entries, one per intensity.
const PaletteLen = MaxHeat + 1

// Palette maps intensities to display colors. A valid palette has exactly
// PaletteLen entries; entry 0 is rendered transparent regardless of its RGB,
// entry MaxHeat is the hottest color.
type Palette []color.RGBA

// Validate reports whether the palette can be used for rendering. A short or
// long palette is a configuration error, never padded or truncated.
func (p Palette) Validate() error {
	if len(p) != PaletteLen {
		return fmt.Errorf("palette must have exactly %d colors, got %d", PaletteLen, len(p))
	}
	return nil
}

// Default returns the classic warm-to-white fire ramp.
func Default() Palette {
	p := make(Palette, len(defaultRamp))
	copy(p, defaultRamp)
	return p
}

// The original 37-step Doom fire ramp, near-black through orange to white.
var defaultRamp = Palette{
	{0x07, 0x07, 0x07, 0xFF},
	{0x1F, 0x07, 0x07, 0xFF},
	{0x2F, 0x0F, 0x07, 0xFF},
	{0x47, 0x0F, 0x07, 0xFF},
	{0x57, 0x17, 0x07, 0xFF},
	{0x67, 0x1F, 0x07, 0xFF},
	{0x77, 0x1F, 0x07, 0xFF},
	{0x8F, 0x27, 0x07, 0xFF},
	{0x9F, 0x2F, 0x07, 0xFF},
	{0xAF, 0x3F, 0x07, 0xFF},
	{0xBF, 0x47, 0x07, 0xFF},
	{0xC7, 0x47, 0x07, 0xFF},
	{0xDF, 0x4F, 0x07, 0xFF},
	{0xDF, 0x57, 0x07, 0xFF},
	{0xDF, 0x57, 0x07, 0xFF},
	{0xD7, 0x5F, 0x07, 0xFF},
	{0xD7, 0x5F, 0x07, 0xFF},
	{0xD7, 0x67, 0x0F, 0xFF},
	{0xCF, 0x6F, 0x0F, 0xFF},
	{0xCF, 0x77, 0x0F, 0xFF},
	{0xCF, 0x7F, 0x0F, 0xFF},
	{0xCF, 0x87, 0x17, 0xFF},
	{0xC7, 0x87, 0x17, 0xFF},
	{0xC7, 0x8F, 0x17, 0xFF},
	{0xC7, 0x97, 0x1F, 0xFF},
	{0xBF, 0x9F, 0x1F, 0xFF},
	{0xBF, 0x9F, 0x1F, 0xFF},
	{0xBF, 0xA7, 0x27, 0xFF},
	{0xBF, 0xA7, 0x27, 0xFF},
	{0xBF, 0xAF, 0x2F, 0xFF},
	{0xB7, 0xAF, 0x2F, 0xFF},
	{0xB7, 0xB7, 0x2F, 0xFF},
	{0xB7, 0xB7, 0x37, 0xFF},
	{0xCF, 0xCF, 0x6F, 0xFF},
	{0xDF, 0xDF, 0x9F, 0xFF},
	{0xEF, 0xEF, 0xC7, 0xFF},
	{0xFF, 0xFF, 0xFF, 0xFF},
}
