package app

import (
	"errors"
	"flag"
	"fmt"

	"life-canvas/internal/render"
	"life-canvas/pkg/patterns"
)

// ErrConfig is wrapped by every validation error.
var ErrConfig = errors.New("invalid config")

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int
	Height  int
	Mode    string
	Scale   int
	TPS     int
	Seed    int64
	Pattern string
	HUD     bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 256, Height: 256, Mode: string(render.ModePixels), Scale: 3, HUD: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.StringVar(&c.Mode, "mode", c.Mode, "renderer: pixels or rects")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale (pixels) or cell size (rects)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second; 0 advances once per frame")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed; 0 uses the index pattern")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "start from an empty grid with this pattern centred")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the fps/generation panel")
}

// Validate reports the first problem with c.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d must be positive", ErrConfig, c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: scale %d must be positive", ErrConfig, c.Scale)
	}
	if c.TPS < 0 {
		return fmt.Errorf("%w: tps %d must not be negative", ErrConfig, c.TPS)
	}
	if _, err := render.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if c.Pattern != "" {
		if _, err := patterns.Lookup(c.Pattern); err != nil {
			return fmt.Errorf("%w: %v", ErrConfig, err)
		}
	}
	return nil
}
