// Package config loads palettes from YAML files and holds the built-in
// presets the demos cycle through.
package config

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/manzt/burn/internal/fire"
)

type paletteFile struct {
	Colors []string `yaml:"colors"`
}

// LoadPalette reads a YAML palette file with a colors list of exactly
// fire.PaletteLen "#RRGGBB" entries, index 0 coldest.
func LoadPalette(path string) (fire.Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette file: %w", err)
	}
	var pf paletteFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse palette file %s: %w", path, err)
	}
	p := make(fire.Palette, 0, len(pf.Colors))
	for i, s := range pf.Colors {
		c, err := parseHexColor(s)
		if err != nil {
			return nil, fmt.Errorf("palette file %s color %d: %w", path, i, err)
		}
		p = append(p, c)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("palette file %s: %w", path, err)
	}
	return p, nil
}

func parseHexColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil || len(s) != 7 {
		return color.RGBA{}, fmt.Errorf("want #RRGGBB, got %q", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

// Presets returns the built-in palettes by name, for UI cycling. "doom" is
// the classic ramp the effect defaults to.
func Presets() map[string]fire.Palette {
	return map[string]fire.Palette{
		"doom": fire.Default(),
		"ice":  iceRamp(),
	}
}

// PresetNames returns the preset names in cycle order.
func PresetNames() []string { return []string{"doom", "ice"} }

// iceRamp mirrors the warm ramp with channels rotated toward blue.
func iceRamp() fire.Palette {
	warm := fire.Default()
	p := make(fire.Palette, len(warm))
	for i, c := range warm {
		p[i] = color.RGBA{R: c.B, G: c.G, B: c.R, A: c.A}
	}
	return p
}
