package ui

import (
	"slices"
	"testing"

	"life-canvas/pkg/core"
	"life-canvas/pkg/universe"
)

type bareSim struct{}

func (bareSim) Name() string { return "bare" }
func (bareSim) Size() core.Size { return core.Size{W: 3, H: 2} }
func (bareSim) Reset(int64) {}
func (bareSim) Step() {}
func (bareSim) Cells() []uint8 { return make([]uint8, 6) }

func TestLinesWithUniverse(t *testing.T) {
	u, err := universe.New(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	u.Clear()
	u.SetAlive(universe.Coord{Row: 1, Col: 1})
	u.Tick()

	got := Lines(u, Status{Paused: true})
	want := []string{"life 4x4", "fps --", "Generation 1", "Population 0", "paused"}
	if !slices.Equal(got, want) {
		t.Fatalf("Lines = %q, want %q", got, want)
	}
}

func TestLinesWithoutParameters(t *testing.T) {
	st := Status{FPS: core.FPSStats{Latest: 60, Mean: 59.5, Min: 58, Max: 61, Frames: 10}}
	got := Lines(bareSim{}, st)
	want := []string{"bare 3x2", "fps 60.0  avg 59.5  min 58.0  max 61.0"}
	if !slices.Equal(got, want) {
		t.Fatalf("Lines = %q, want %q", got, want)
	}
}
