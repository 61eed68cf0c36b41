package grid

import (
	"errors"
	"fmt"
	"image"
)

// DefaultSize is the number of cells along each axis of the editor world.
const DefaultSize = 1000

var (
	ErrOutOfBounds  = errors.New("grid: coordinate out of bounds")
	ErrInvalidState = errors.New("grid: invalid tile state")
)

// Grid is a square, fixed-size store of tile states in row-major order.
// It is not safe for concurrent use.
type Grid struct {
	size  int
	cells []TileState
}

// New allocates a size x size grid with every cell Empty.
func New(size int) *Grid {
	if size <= 0 {
		size = DefaultSize
	}
	return &Grid{size: size, cells: make([]TileState, size*size)}
}

// Size returns the number of cells per axis.
func (g *Grid) Size() int {
	return g.size
}

// Bounds returns the grid rectangle [0,size)x[0,size).
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.size, g.size)
}

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.size && y < g.size
}

// Reset sets every cell back to Empty.
func (g *Grid) Reset() {
	clear(g.cells)
}

func (g *Grid) index(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("cell (%d,%d) in %dx%d grid: %w", x, y, g.size, g.size, ErrOutOfBounds)
	}
	return y*g.size + x, nil
}

// Get returns the state of cell (x, y).
func (g *Grid) Get(x, y int) (TileState, error) {
	idx, err := g.index(x, y)
	if err != nil {
		return Empty, err
	}
	return g.cells[idx], nil
}

// Set overwrites cell (x, y) with s.
func (g *Grid) Set(x, y int, s TileState) error {
	if !s.Valid() {
		return fmt.Errorf("set (%d,%d) to %d: %w", x, y, uint8(s), ErrInvalidState)
	}
	idx, err := g.index(x, y)
	if err != nil {
		return err
	}
	g.cells[idx] = s
	return nil
}

// Cycle advances cell (x, y) to the next state and returns it.
func (g *Grid) Cycle(x, y int) (TileState, error) {
	idx, err := g.index(x, y)
	if err != nil {
		return Empty, err
	}
	next := g.cells[idx].Next()
	g.cells[idx] = next
	return next, nil
}

// Each calls fn for every non-empty cell inside r, clipped to the grid bounds,
// walking rows top to bottom.
func (g *Grid) Each(r image.Rectangle, fn func(x, y int, s TileState)) {
	r = r.Intersect(g.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := g.cells[y*g.size : (y+1)*g.size]
		for x := r.Min.X; x < r.Max.X; x++ {
			if s := row[x]; s != Empty {
				fn(x, y, s)
			}
		}
	}
}

// Count returns how many cells currently hold s.
func (g *Grid) Count(s TileState) int {
	n := 0
	for _, c := range g.cells {
		if c == s {
			n++
		}
	}
	return n
}
