package app

import "flag"

// Config represents the command-line parameters for the preview binary.
type Config struct {
	PipelinePath string
	Width        int
	Height       int
	Scale        int
	TPS          int
	Seed         int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 256, Height: 256, Scale: 2, TPS: 60, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.PipelinePath, "config", "", "path to a pipeline configuration document")
	fs.IntVar(&c.Width, "width", c.Width, "heightmap width")
	fs.IntVar(&c.Height, "height", c.Height, "heightmap height")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second while auto-playing")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "droplet RNG seed")
}
