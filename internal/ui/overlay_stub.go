//go:build !ebiten

package ui

import "life-canvas/internal/render"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(render.Layout) *Overlay { return &Overlay{} }

// ToggleGrid is a no-op in headless builds.
func (o *Overlay) ToggleGrid() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
