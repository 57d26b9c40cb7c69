package app

import (
	"errors"
	"slices"
	"testing"

	"life-canvas/pkg/universe"
)

func TestNewUniverseDefaultSeed(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 16, 8
	u, err := NewUniverse(cfg)
	if err != nil {
		t.Fatal(err)
	}
	ref, err := universe.New(16, 8)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(u.Cells(), ref.Cells()) {
		t.Fatal("default config should use the index seed")
	}
}

func TestNewUniversePattern(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 5, 5
	cfg.Seed = 42
	cfg.Pattern = "blinker"
	u, err := NewUniverse(cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := []universe.Coord{{Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3}}
	if got := u.Alive(); !slices.Equal(got, want) {
		t.Fatalf("alive = %v, want %v", got, want)
	}
}

func TestNewUniverseInvalid(t *testing.T) {
	cfg := NewConfig()
	cfg.Mode = "ascii"
	if _, err := NewUniverse(cfg); !errors.Is(err, ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig", err)
	}
}
