package universe

import "strconv"

// Config holds the parameters used to build a Universe.
type Config struct {
	Width  int
	Height int

	// Seed selects the starting pattern; 0 means the index pattern.
	Seed int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256}
}

// FromMap populates a Config from a string map. Malformed or out-of-range
// values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// NewFromConfig builds a universe from cfg and applies its seed.
func NewFromConfig(cfg Config) (*Universe, error) {
	u, err := New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if cfg.Seed != 0 {
		u.Reset(cfg.Seed)
	}
	return u, nil
}
