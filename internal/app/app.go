//go:build ebiten

package app

import (
	"time"

	"life-canvas/internal/render"
	"life-canvas/internal/ui"
	"life-canvas/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface. It is the only
// owner of the sim: Update advances it, Draw reads it.
type Game struct {
	sim     core.Sim
	painter render.Painter
	overlay *ui.Overlay
	hud     *ui.HUD
	fps     *core.FPS

	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	mode, err := render.ParseMode(cfg.Mode)
	if err != nil {
		mode = render.ModePixels
	}
	painter := render.NewPainter(mode, size.W, size.H, cfg.Scale)
	g := &Game{
		sim:     sim,
		painter: painter,
		overlay: ui.NewOverlay(painter.Layout()),
		fps:     core.NewFPS(core.DefaultFPSWindow),
		seed:    cfg.Seed,
	}
	if cfg.HUD {
		g.hud = ui.NewHUD(sim)
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles input and advances the simulation by one generation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if c, ok := g.sim.(core.Clearer); ok {
			c.Clear()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.overlay.ToggleGrid()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) && g.hud != nil {
		g.hud.Toggle()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.toggleUnderCursor()
	}

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) toggleUnderCursor() {
	t, ok := g.sim.(core.Toggler)
	if !ok {
		return
	}
	x, y := ebiten.CursorPosition()
	if row, col, ok := g.painter.Layout().CellAt(x, y); ok {
		t.Toggle(row, col)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.fps.Frame(time.Now())
	g.painter.Paint(screen, g.sim.Cells())
	g.overlay.Draw(screen)
	g.hud.Draw(screen, ui.Status{FPS: g.fps.Stats(), Paused: g.paused})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.painter.Layout().ScreenSize()
}
