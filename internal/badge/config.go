package badge

import "flag"

// Panel dimensions of the emulated badge display, in device pixels.
const (
	PanelW = 320
	PanelH = 240
)

// Config represents the command-line parameters for the badge app.
type Config struct {
	Pics  string
	Name  string
	Scale int
	TPS   int
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() Config {
	return Config{Pics: "pics", Name: "Steve", Scale: 3, TPS: 30}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pics, "pics", c.Pics, "directory scanned for slideshow PNGs")
	fs.StringVar(&c.Name, "name", c.Name, "name shown on the badge screen")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "life generations per second")
}
