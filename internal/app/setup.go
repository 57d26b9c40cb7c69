package app

import (
	"life-canvas/pkg/patterns"
	"life-canvas/pkg/universe"
)

// NewUniverse builds the starting universe described by cfg. A pattern
// replaces the seeded cells with an empty grid holding only that pattern.
func NewUniverse(cfg *Config) (*universe.Universe, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	u, err := universe.NewFromConfig(universe.Config{Width: cfg.Width, Height: cfg.Height, Seed: cfg.Seed})
	if err != nil {
		return nil, err
	}
	if cfg.Pattern != "" {
		p, err := patterns.Lookup(cfg.Pattern)
		if err != nil {
			return nil, err
		}
		u.Clear()
		patterns.PlaceCentered(u, p)
	}
	return u, nil
}
