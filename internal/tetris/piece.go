package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Shape is a piece's occupancy matrix inside its bounding box, indexed
// [row][col]. A true entry is a block.
type Shape [][]bool

// ParseShape builds a shape from text rows where '#' marks a block and any
// other rune is empty. Rows are padded to the widest row.
func ParseShape(rows ...string) Shape {
	width := 0
	for _, r := range rows {
		width = core.Max(width, len([]rune(r)))
	}
	shape := make(Shape, len(rows))
	for i, r := range rows {
		shape[i] = make([]bool, width)
		for j, ch := range []rune(r) {
			shape[i][j] = ch == '#'
		}
	}
	return shape
}

// Rows returns the bounding-box height.
func (s Shape) Rows() int { return len(s) }

// Cols returns the bounding-box width.
func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Count returns the number of blocks in the shape.
func (s Shape) Count() int {
	n := 0
	for _, row := range s {
		for _, on := range row {
			if on {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i, row := range s {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

// Equal reports whether two shapes are the same matrix.
func (s Shape) Equal(other Shape) bool {
	if s.Rows() != other.Rows() || s.Cols() != other.Cols() {
		return false
	}
	for i := range s {
		for j := range s[i] {
			if s[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// String renders the shape with '#' and '.'.
func (s Shape) String() string {
	out := make([]rune, 0, s.Rows()*(s.Cols()+1))
	for i, row := range s {
		if i > 0 {
			out = append(out, '\n')
		}
		for _, on := range row {
			if on {
				out = append(out, '#')
			} else {
				out = append(out, '.')
			}
		}
	}
	return string(out)
}

// RotateCW returns the shape turned 90° clockwise: the row order is reversed
// and the result transposed, so out[i][j] = in[rows-1-j][i]. The input is not
// modified. Four applications give back the original matrix.
func RotateCW(s Shape) Shape {
	rows, cols := s.Rows(), s.Cols()
	out := make(Shape, cols)
	for i := range out {
		out[i] = make([]bool, rows)
		for j := range out[i] {
			out[i][j] = s[rows-1-j][i]
		}
	}
	return out
}

// Pos is an absolute grid coordinate.
type Pos struct {
	Row, Col int
}

// Piece is a shape placed on the grid. X and Y are the bounding box's
// top-left column and row; they may point off the grid transiently and are
// only validated through Collides.
type Piece struct {
	Shape Shape
	Color core.Color
	X, Y  int
}

// Rotate replaces the shape with its clockwise rotation. Origin and color
// stay put.
func (p *Piece) Rotate() {
	p.Shape = RotateCW(p.Shape)
}

// Cells returns the absolute coordinates of every block of the piece.
func (p Piece) Cells() []Pos {
	cells := make([]Pos, 0, 4)
	for i, row := range p.Shape {
		for j, on := range row {
			if on {
				cells = append(cells, Pos{Row: p.Y + i, Col: p.X + j})
			}
		}
	}
	return cells
}

// Clone returns a copy that shares nothing with p.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}
