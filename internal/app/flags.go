package app

import "github.com/spf13/pflag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Scale    int
	TPS      int
	PassRate int

	// Random selects a generated board instead of an input file.
	Random  bool
	Width   int
	Height  int
	Density float64
	Seed    int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 8, TPS: 60, PassRate: 4, Width: 96, Height: 64, Density: 0.65, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.PassRate, "pass-rate", c.PassRate, "elimination passes per second")
	fs.BoolVar(&c.Random, "random", c.Random, "view a generated board instead of an input file")
	fs.IntVar(&c.Width, "width", c.Width, "generated board width")
	fs.IntVar(&c.Height, "height", c.Height, "generated board height")
	fs.Float64Var(&c.Density, "density", c.Density, "probability that a generated cell is active")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for generated boards")
}
