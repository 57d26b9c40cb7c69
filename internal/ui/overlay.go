//go:build ebiten

package ui

import (
	"life-canvas/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws grid lines between cells on top of the pixel painter.
type Overlay struct {
	layout   render.Layout
	showGrid bool
}

// NewOverlay constructs an overlay for the given layout. Grid lines are only
// useful once cells are a few pixels wide, and the rectangle painter already
// leaves gaps, so the grid starts hidden.
func NewOverlay(l render.Layout) *Overlay {
	return &Overlay{layout: l}
}

// ToggleGrid shows or hides the grid lines.
func (o *Overlay) ToggleGrid() { o.showGrid = !o.showGrid }

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showGrid || o.layout.Gap > 0 || o.layout.Cell < 2 {
		return
	}
	w, h := o.layout.ScreenSize()
	pitch := o.layout.Pitch()
	for x := 0; x <= w; x += pitch {
		vector.StrokeLine(screen, float32(x)+0.5, 0, float32(x)+0.5, float32(h), 1, render.GridColor, false)
	}
	for y := 0; y <= h; y += pitch {
		vector.StrokeLine(screen, 0, float32(y)+0.5, float32(w), float32(y)+0.5, 1, render.GridColor, false)
	}
}
