package render

import (
	"bytes"
	"image/color"
	"testing"
)

func TestFillCellsRGBA(t *testing.T) {
	cells := []uint8{1, 0, 1}
	buf := make([]byte, 4*len(cells))
	fillCellsRGBA(buf, cells, AliveColor, DeadColor)
	want := []byte{
		0, 0, 0, 255,
		255, 255, 255, 255,
		0, 0, 0, 255,
	}
	if !bytes.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}

	fillCellsRGBA(buf, []uint8{0, 0, 0}, AliveColor, color.RGBA{R: 1, G: 2, B: 3, A: 4})
	if !bytes.Equal(buf[8:], []byte{1, 2, 3, 4}) {
		t.Fatalf("refill did not overwrite previous frame: %v", buf)
	}
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"pixels", "rects"} {
		m, err := ParseMode(s)
		if err != nil || string(m) != s {
			t.Fatalf("ParseMode(%q) = %q, %v", s, m, err)
		}
	}
	if _, err := ParseMode("svg"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestRectLayout(t *testing.T) {
	l := NewLayout(ModeRects, 64, 32, 4)
	w, h := l.ScreenSize()
	if w != 5*64+1 || h != 5*32+1 {
		t.Fatalf("screen = %dx%d, want %dx%d", w, h, 5*64+1, 5*32+1)
	}
	if x, y := l.CellOrigin(2, 3); x != 16 || y != 11 {
		t.Fatalf("origin(2,3) = (%d,%d), want (16,11)", x, y)
	}
	for _, tc := range []struct {
		x, y     int
		row, col int
		ok       bool
	}{
		{1, 1, 0, 0, true},
		{4, 4, 0, 0, true},
		{5, 1, 0, 0, false}, // gap column
		{0, 3, 0, 0, false}, // border
		{16, 11, 2, 3, true},
		{19, 14, 2, 3, true},
		{w - 2, h - 2, 31, 63, true},
		{w, 3, 0, 0, false},
	} {
		row, col, ok := l.CellAt(tc.x, tc.y)
		if ok != tc.ok || (ok && (row != tc.row || col != tc.col)) {
			t.Fatalf("CellAt(%d,%d) = (%d,%d,%v), want (%d,%d,%v)", tc.x, tc.y, row, col, ok, tc.row, tc.col, tc.ok)
		}
	}
}

func TestPixelLayout(t *testing.T) {
	l := NewLayout(ModePixels, 10, 6, 3)
	if w, h := l.ScreenSize(); w != 30 || h != 18 {
		t.Fatalf("screen = %dx%d, want 30x18", w, h)
	}
	if row, col, ok := l.CellAt(29, 17); !ok || row != 5 || col != 9 {
		t.Fatalf("CellAt(29,17) = (%d,%d,%v)", row, col, ok)
	}
	if _, _, ok := l.CellAt(-1, 0); ok {
		t.Fatal("negative position should miss")
	}
	if l := NewLayout(ModePixels, 4, 4, 0); l.Cell != 1 {
		t.Fatalf("non-positive scale should clamp to 1, got %d", l.Cell)
	}
}
