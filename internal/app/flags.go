package app

import "flag"

// Config represents the command-line parameters for the demos.
type Config struct {
	Scale    float64
	Interval int
	Seed     int64
	Palette  string
	Width    int
	Height   int
}

// NewConfig returns a Config populated with the effect defaults.
func NewConfig() *Config {
	return &Config{Scale: 3.5, Interval: 30, Seed: 42, Width: 640, Height: 320}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Float64Var(&c.Scale, "scale", c.Scale, "output pixels per fire cell")
	fs.IntVar(&c.Interval, "interval", c.Interval, "milliseconds between ticks")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the fire's random source")
	fs.StringVar(&c.Palette, "palette", c.Palette, "YAML palette file (default: built-in ramp)")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
}
