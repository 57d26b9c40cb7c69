package app

import (
	"errors"
	"flag"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-w", "1024", "-h", "768", "-mode", "rects", "-scale", "4", "-seed", "9", "-pattern", "glider", "-hud=false"}
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 1024 || cfg.Height != 768 || cfg.Mode != "rects" || cfg.Scale != 4 || cfg.Seed != 9 || cfg.Pattern != "glider" || cfg.HUD {
		t.Fatalf("parsed config %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestConfigDefaultsValid(t *testing.T) {
	if err := NewConfig().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"width":   func(c *Config) { c.Width = 0 },
		"height":  func(c *Config) { c.Height = -3 },
		"scale":   func(c *Config) { c.Scale = 0 },
		"tps":     func(c *Config) { c.TPS = -1 },
		"mode":    func(c *Config) { c.Mode = "webgl" },
		"pattern": func(c *Config) { c.Pattern = "nope" },
	} {
		cfg := NewConfig()
		mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrConfig) {
			t.Fatalf("%s: err = %v, want ErrConfig", name, err)
		}
	}
}
