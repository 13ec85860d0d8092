package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Input      string
	Iterations int
	Scale      int
	HUDWidth   int
	Seed       int64
	Size       int
	Species    int
	Density    float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Iterations: 100, Scale: 6, HUDWidth: 200, Seed: 42, Size: 96, Species: 3, Density: 0.3}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Input, "in", c.Input, "world file to view (.xml or .json); random world when empty")
	fs.IntVar(&c.Iterations, "iterations", c.Iterations, "generations for random worlds; files use their own count")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the info panel in pixels, 0 hides it")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random worlds")
	fs.IntVar(&c.Size, "size", c.Size, "grid dimension for random worlds")
	fs.IntVar(&c.Species, "species", c.Species, "species count for random worlds")
	fs.Float64Var(&c.Density, "density", c.Density, "initial density for random worlds")
}
