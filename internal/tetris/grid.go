package tetris

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Grid is the fixed-size storage of placed blocks.
// Occupied cells live in a sparse map keyed by row*W + col; a missing key is
// an empty cell. Dimensions never change after construction.
type Grid struct {
	w     int
	h     int
	cells *intmap.Map[int, core.Color]
}

// NewGrid creates an empty grid. Width and height must be positive.
func NewGrid(width, height int) *Grid {
	return &Grid{
		w:     width,
		h:     height,
		cells: intmap.New[int, core.Color](width * height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

func (g *Grid) index(row, col int) int {
	return row*g.w + col
}

// InBounds reports whether (row, col) lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.h && col >= 0 && col < g.w
}

// IsOccupied reports whether the cell holds a block.
// Coordinates off the grid count as occupied.
func (g *Grid) IsOccupied(row, col int) bool {
	if !g.InBounds(row, col) {
		return true
	}
	_, ok := g.cells.Get(g.index(row, col))
	return ok
}

// At returns the color stored at (row, col) and whether the cell is filled.
func (g *Grid) At(row, col int) (core.Color, bool) {
	if !g.InBounds(row, col) {
		return core.ColorDefault, false
	}
	return g.cells.Get(g.index(row, col))
}

// Place writes a block color into a cell.
// Out-of-bounds writes are rejected and reported as false.
func (g *Grid) Place(row, col int, c core.Color) bool {
	if !g.InBounds(row, col) {
		return false
	}
	g.cells.Put(g.index(row, col), c)
	return true
}

// Filled returns the number of occupied cells.
func (g *Grid) Filled() int {
	return g.cells.Len()
}

func (g *Grid) rowFull(row int) bool {
	for col := 0; col < g.w; col++ {
		if _, ok := g.cells.Get(g.index(row, col)); !ok {
			return false
		}
	}
	return true
}

// ClearFullRows removes every fully occupied row and compacts the rows above
// it downward, leaving empty rows at the top. Surviving rows keep their
// relative order. Returns the number of rows removed.
func (g *Grid) ClearFullRows() int {
	cleared := 0
	compacted := intmap.New[int, core.Color](g.cells.Len())

	// Walk bottom-up so every surviving row drops by the number of full rows
	// found beneath it.
	for row := g.h - 1; row >= 0; row-- {
		if g.rowFull(row) {
			cleared++
			continue
		}
		for col := 0; col < g.w; col++ {
			if c, ok := g.cells.Get(g.index(row, col)); ok {
				compacted.Put(g.index(row+cleared, col), c)
			}
		}
	}

	if cleared > 0 {
		g.cells = compacted
	}
	return cleared
}

// Rows returns a dense copy of the grid, indexed [row][col].
func (g *Grid) Rows() [][]Block {
	rows := make([][]Block, g.h)
	for row := range rows {
		rows[row] = make([]Block, g.w)
		for col := range rows[row] {
			if c, ok := g.cells.Get(g.index(row, col)); ok {
				rows[row][col] = Block{Filled: true, Color: c}
			}
		}
	}
	return rows
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := NewGrid(g.w, g.h)
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			if c, ok := g.cells.Get(g.index(row, col)); ok {
				clone.cells.Put(g.index(row, col), c)
			}
		}
	}
	return clone
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.w != other.w || g.h != other.h || g.Filled() != other.Filled() {
		return false
	}
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			a, okA := g.At(row, col)
			b, okB := other.At(row, col)
			if okA != okB || a != b {
				return false
			}
		}
	}
	return true
}

// Block is one cell of a grid snapshot.
type Block struct {
	Filled bool
	Color  core.Color // Valid only when Filled is true
}
