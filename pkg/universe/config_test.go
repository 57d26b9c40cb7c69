package universe

import (
	"errors"
	"testing"
)

func TestFromMap(t *testing.T) {
	c := FromMap(nil)
	if c != DefaultConfig() {
		t.Fatalf("FromMap(nil) = %+v", c)
	}

	c = FromMap(map[string]string{"w": "64", "h": "48", "seed": "-9"})
	if c.Width != 64 || c.Height != 48 || c.Seed != -9 {
		t.Fatalf("FromMap parsed %+v", c)
	}

	c = FromMap(map[string]string{"w": "0", "h": "tall", "seed": "1.5"})
	if c != DefaultConfig() {
		t.Fatalf("malformed values should keep defaults, got %+v", c)
	}
}

func TestNewFromConfig(t *testing.T) {
	u, err := NewFromConfig(Config{Width: 10, Height: 10, Seed: 3})
	if err != nil {
		t.Fatal(err)
	}
	ref, err := New(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	ref.Reset(3)
	for i, c := range ref.Cells() {
		if u.Cells()[i] != c {
			t.Fatalf("cell %d differs from Reset(3)", i)
		}
	}

	if _, err := NewFromConfig(Config{Width: -1, Height: 4}); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("err = %v, want ErrInvalidSize", err)
	}
}
