// Package universe implements Conway's Game of Life on a toroidal grid.
package universe

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"life-canvas/pkg/core"
)

// Cell is the state of a single grid position. Alive counts as one when
// summing neighbours.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

var (
	// ErrInvalidSize is returned when a dimension is not positive.
	ErrInvalidSize = errors.New("universe: width and height must be positive")
	// ErrTooLarge is returned when width*height does not fit in an int.
	ErrTooLarge = errors.New("universe: grid too large")
)

// Universe holds the current generation of a Life grid. Cells are stored
// row-major; the back buffer receives the next generation during Tick.
type Universe struct {
	w, h       int
	cur        []uint8
	nxt        []uint8
	generation uint64
}

// New allocates a w*h universe seeded with the index pattern.
func New(w, h int) (*Universe, error) {
	if err := checkSize(w, h); err != nil {
		return nil, err
	}
	u := &Universe{w: w, h: h}
	u.alloc()
	u.seedIndexPattern()
	return u, nil
}

func checkSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	if w > math.MaxInt/h {
		return fmt.Errorf("%w: %dx%d", ErrTooLarge, w, h)
	}
	return nil
}

func (u *Universe) alloc() {
	u.cur = make([]uint8, u.w*u.h)
	u.nxt = make([]uint8, len(u.cur))
	u.generation = 0
}

// seedIndexPattern marks every cell whose index is even or a multiple of
// seven alive.
func (u *Universe) seedIndexPattern() {
	for i := range u.cur {
		if i%2 == 0 || i%7 == 0 {
			u.cur[i] = uint8(Alive)
		} else {
			u.cur[i] = uint8(Dead)
		}
	}
}

// Name returns the simulation identifier.
func (u *Universe) Name() string { return "life" }

// Size returns the grid dimensions.
func (u *Universe) Size() core.Size { return core.Size{W: u.w, H: u.h} }

// Width returns the number of columns.
func (u *Universe) Width() int { return u.w }

// Height returns the number of rows.
func (u *Universe) Height() int { return u.h }

// Cells exposes the current generation. The slice is owned by the universe
// and is only valid until the next Tick; callers must not modify it.
func (u *Universe) Cells() []uint8 { return u.cur }

// Generation reports how many ticks have run since the last reset.
func (u *Universe) Generation() uint64 { return u.generation }

func (u *Universe) index(row, col int) int {
	if row < 0 || row >= u.h || col < 0 || col >= u.w {
		panic(fmt.Sprintf("universe: cell (%d,%d) outside %dx%d grid", row, col, u.w, u.h))
	}
	return row*u.w + col
}

// CellAt returns the state of the cell at (row, col). It panics when the
// position lies outside the grid.
func (u *Universe) CellAt(row, col int) Cell {
	return Cell(u.cur[u.index(row, col)])
}

// SetAlive marks each given position alive.
func (u *Universe) SetAlive(cells ...Coord) {
	for _, c := range cells {
		u.cur[u.index(c.Row, c.Col)] = uint8(Alive)
	}
}

// Toggle flips the state of one cell.
func (u *Universe) Toggle(row, col int) {
	u.cur[u.index(row, col)] ^= 1
}

// Clear kills every cell and resets the generation counter.
func (u *Universe) Clear() {
	clear(u.cur)
	u.generation = 0
}

// Reset reseeds the grid. Seed 0 restores the index pattern used by New;
// any other seed fills the grid with a deterministic random pattern.
func (u *Universe) Reset(seed int64) {
	u.generation = 0
	if seed == 0 {
		u.seedIndexPattern()
		return
	}
	core.FillBinary(core.NewRNG(seed).Source(), u.cur)
}

// SetWidth resizes the grid to w columns. All cells become dead.
func (u *Universe) SetWidth(w int) error {
	if err := checkSize(w, u.h); err != nil {
		return err
	}
	u.w = w
	u.alloc()
	return nil
}

// SetHeight resizes the grid to h rows. All cells become dead.
func (u *Universe) SetHeight(h int) error {
	if err := checkSize(u.w, h); err != nil {
		return err
	}
	u.h = h
	u.alloc()
	return nil
}

// LiveNeighborCount counts the live cells among the eight neighbours of
// (row, col), wrapping around the grid edges.
func (u *Universe) LiveNeighborCount(row, col int) int {
	u.index(row, col)
	return u.neighbors(row, col)
}

func (u *Universe) neighbors(row, col int) int {
	w, h := u.w, u.h
	north := row - 1
	if row == 0 {
		north = h - 1
	}
	south := row + 1
	if row == h-1 {
		south = 0
	}
	west := col - 1
	if col == 0 {
		west = w - 1
	}
	east := col + 1
	if col == w-1 {
		east = 0
	}

	c := u.cur
	n, r, s := north*w, row*w, south*w
	return int(c[n+west]) + int(c[n+col]) + int(c[n+east]) +
		int(c[r+west]) + int(c[r+east]) +
		int(c[s+west]) + int(c[s+col]) + int(c[s+east])
}

// next applies the Life rules to a cell given its live neighbour count.
func next(cell Cell, live int) Cell {
	switch {
	case cell == Alive && live < 2:
		return Dead
	case cell == Alive && (live == 2 || live == 3):
		return Alive
	case cell == Alive && live > 3:
		return Dead
	case cell == Dead && live == 3:
		return Alive
	default:
		return cell
	}
}

// Tick advances the universe by one generation. The next generation is
// computed entirely from the current one and then swapped in.
func (u *Universe) Tick() {
	for row := 0; row < u.h; row++ {
		base := row * u.w
		for col := 0; col < u.w; col++ {
			idx := base + col
			u.nxt[idx] = uint8(next(Cell(u.cur[idx]), u.neighbors(row, col)))
		}
	}
	u.cur, u.nxt = u.nxt, u.cur
	u.generation++
}

// Step advances the simulation by one generation.
func (u *Universe) Step() { u.Tick() }

// Population counts live cells.
func (u *Universe) Population() int {
	n := 0
	for _, c := range u.cur {
		n += int(c)
	}
	return n
}

// Alive lists the live cells in row-major order.
func (u *Universe) Alive() []Coord {
	var out []Coord
	for i, c := range u.cur {
		if c == uint8(Alive) {
			out = append(out, Coord{Row: i / u.w, Col: i % u.w})
		}
	}
	return out
}

// Parameters reports the values shown on the HUD.
func (u *Universe) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Universe",
				Params: []core.Parameter{
					core.IntParam("w", "Width", u.w),
					core.IntParam("h", "Height", u.h),
				},
			},
			{
				Name: "Run",
				Params: []core.Parameter{
					core.Uint64Param("generation", "Generation", u.generation),
					core.IntParam("population", "Population", u.Population()),
				},
			},
		},
	}
}

// String renders the grid one row per line, ◼ for alive and ◻ for dead.
func (u *Universe) String() string {
	var b strings.Builder
	b.Grow(len(u.cur)*3 + u.h)
	for row := 0; row < u.h; row++ {
		for _, c := range u.cur[row*u.w : (row+1)*u.w] {
			if c == uint8(Dead) {
				b.WriteRune('◻')
			} else {
				b.WriteRune('◼')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
