package ui

import (
	"fmt"

	"life-canvas/pkg/core"
)

// Status is the per-frame state the HUD reports besides sim parameters.
type Status struct {
	FPS    core.FPSStats
	Paused bool
}

// Lines renders the HUD text, one entry per line.
func Lines(sim core.Sim, st Status) []string {
	size := sim.Size()
	lines := []string{fmt.Sprintf("%s %dx%d", sim.Name(), size.W, size.H)}
	if st.FPS.Frames > 0 {
		lines = append(lines, st.FPS.String())
	} else {
		lines = append(lines, "fps --")
	}
	if provider, ok := sim.(core.ParameterProvider); ok {
		snap := provider.Parameters()
		for _, key := range []string{"generation", "population"} {
			if p, ok := snap.Lookup(key); ok {
				lines = append(lines, fmt.Sprintf("%s %s", p.Label, p.Value))
			}
		}
	}
	if st.Paused {
		lines = append(lines, "paused")
	}
	return lines
}
