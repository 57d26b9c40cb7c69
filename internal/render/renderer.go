//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Painter draws a frame of binary cells onto the screen. Painters only read
// cells.
type Painter interface {
	Paint(dst *ebiten.Image, cells []uint8)
	Layout() Layout
}

// NewPainter returns the painter for mode.
func NewPainter(mode Mode, cols, rows, scale int) Painter {
	l := NewLayout(mode, cols, rows, scale)
	if mode == ModeRects {
		return &RectPainter{layout: l}
	}
	return NewGridPainter(l)
}

// GridPainter updates a single RGBA image based on binary cell data.
type GridPainter struct {
	layout Layout
	img    *ebiten.Image
	buf    []byte
}

// NewGridPainter allocates a painter for the grid described by l.
func NewGridPainter(l Layout) *GridPainter {
	gp := &GridPainter{layout: l, buf: make([]byte, 4*l.Cols*l.Rows)}
	gp.img = ebiten.NewImage(l.Cols, l.Rows)
	return gp
}

// Paint uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Paint(dst *ebiten.Image, cells []uint8) {
	if len(cells) != gp.layout.Cols*gp.layout.Rows {
		return
	}
	fillCellsRGBA(gp.buf, cells, AliveColor, DeadColor)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(gp.layout.Cell), float64(gp.layout.Cell))
	dst.DrawImage(gp.img, op)
}

// Layout returns the screen layout.
func (gp *GridPainter) Layout() Layout { return gp.layout }

// RectPainter fills one rectangle per cell over a grid-coloured background.
type RectPainter struct {
	layout Layout
}

// Paint draws every cell as a filled square.
func (rp *RectPainter) Paint(dst *ebiten.Image, cells []uint8) {
	l := rp.layout
	if len(cells) != l.Cols*l.Rows {
		return
	}
	dst.Fill(GridColor)
	size := float32(l.Cell)
	for i, c := range cells {
		x, y := l.CellOrigin(i/l.Cols, i%l.Cols)
		clr := DeadColor
		if c != 0 {
			clr = AliveColor
		}
		vector.DrawFilledRect(dst, float32(x), float32(y), size, size, clr, false)
	}
}

// Layout returns the screen layout.
func (rp *RectPainter) Layout() Layout { return rp.layout }
