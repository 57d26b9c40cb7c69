package render

import (
	"fmt"
	"image/color"
)

// Mode selects how cells are drawn.
type Mode string

const (
	// ModePixels uploads one pixel per cell and scales the image up.
	ModePixels Mode = "pixels"
	// ModeRects fills one rectangle per cell on a grid with 1px gaps.
	ModeRects Mode = "rects"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModePixels, ModeRects:
		return Mode(s), nil
	}
	return "", fmt.Errorf("render: unknown mode %q (want %q or %q)", s, ModePixels, ModeRects)
}

// Colours used by both painters.
var (
	AliveColor = color.RGBA{A: 0xff}
	DeadColor  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	GridColor  = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
)

// Layout maps grid cells to screen pixels. Cells are Cell pixels wide and
// separated (and surrounded) by Gap pixels.
type Layout struct {
	Cols, Rows int
	Cell       int
	Gap        int
}

// NewLayout returns the layout used by mode for a cols*rows grid. scale is
// the pixel multiplier for ModePixels and the cell size for ModeRects.
func NewLayout(mode Mode, cols, rows, scale int) Layout {
	if scale <= 0 {
		scale = 1
	}
	l := Layout{Cols: cols, Rows: rows, Cell: scale}
	if mode == ModeRects {
		l.Gap = 1
	}
	return l
}

// Pitch is the distance between the origins of adjacent cells.
func (l Layout) Pitch() int { return l.Cell + l.Gap }

// ScreenSize returns the logical screen dimensions.
func (l Layout) ScreenSize() (int, int) {
	return l.Cols*l.Pitch() + l.Gap, l.Rows*l.Pitch() + l.Gap
}

// CellOrigin returns the top-left pixel of cell (row, col).
func (l Layout) CellOrigin(row, col int) (int, int) {
	return l.Gap + col*l.Pitch(), l.Gap + row*l.Pitch()
}

// CellAt maps a screen position to a cell. ok is false for positions outside
// the grid or on a gap line.
func (l Layout) CellAt(x, y int) (row, col int, ok bool) {
	x -= l.Gap
	y -= l.Gap
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	p := l.Pitch()
	col, row = x/p, y/p
	if col >= l.Cols || row >= l.Rows || x%p >= l.Cell || y%p >= l.Cell {
		return 0, 0, false
	}
	return row, col, true
}
