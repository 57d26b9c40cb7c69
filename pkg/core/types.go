package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement to be
// driven by the frame loop.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Toggler is implemented by sims that support editing single cells.
type Toggler interface {
	Toggle(row, col int)
}

// Clearer is implemented by sims that can be wiped to an empty state.
type Clearer interface {
	Clear()
}
