package core

import (
	"fmt"
	"time"
)

// DefaultFPSWindow is the number of frames averaged by NewFPS when the
// requested window is not positive.
const DefaultFPSWindow = 100

// FPS tracks frame rate over a rolling window of recent frames.
type FPS struct {
	last   time.Time
	rates  []float64
	next   int
	filled int
}

// FPSStats summarises the frame rates currently held by an FPS meter.
type FPSStats struct {
	Latest float64
	Mean   float64
	Min    float64
	Max    float64
	Frames int
}

// NewFPS returns a meter averaging over the given number of frames.
func NewFPS(window int) *FPS {
	if window <= 0 {
		window = DefaultFPSWindow
	}
	return &FPS{rates: make([]float64, window)}
}

// Frame records a frame presented at now. The first call only establishes the
// reference time; non-increasing timestamps are ignored.
func (f *FPS) Frame(now time.Time) {
	if f.last.IsZero() {
		f.last = now
		return
	}
	delta := now.Sub(f.last)
	if delta <= 0 {
		return
	}
	f.last = now
	f.rates[f.next] = float64(time.Second) / float64(delta)
	f.next = (f.next + 1) % len(f.rates)
	if f.filled < len(f.rates) {
		f.filled++
	}
}

// Stats reports latest, mean, min and max rates. All fields are zero until two
// frames have been recorded.
func (f *FPS) Stats() FPSStats {
	if f.filled == 0 {
		return FPSStats{}
	}
	latest := f.rates[(f.next-1+len(f.rates))%len(f.rates)]
	st := FPSStats{Latest: latest, Min: latest, Max: latest, Frames: f.filled}
	sum := 0.0
	for _, r := range f.rates[:f.filled] {
		sum += r
		if r < st.Min {
			st.Min = r
		}
		if r > st.Max {
			st.Max = r
		}
	}
	st.Mean = sum / float64(f.filled)
	return st
}

// String formats the stats the way the HUD prints them.
func (s FPSStats) String() string {
	return fmt.Sprintf("fps %.1f  avg %.1f  min %.1f  max %.1f", s.Latest, s.Mean, s.Min, s.Max)
}
