// Package tetris implements the falling-block game: an occupancy grid, the
// polyomino pieces that fall into it and the engine that drives both.
// The engine has no knowledge of terminals, timers or key codes; the Game
// adapter in this package connects it to the arcade platform.
package tetris

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Shape construction errors.
var (
	ErrEmptyShape  = errors.New("tetris: shape has no cells")
	ErrRaggedShape = errors.New("tetris: shape rows differ in length")
)

// Point is a grid coordinate. X is the column, Y is the row.
// Y may be negative while a piece is still above the visible board.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Shape is an immutable occupancy matrix. The zero value is an empty 0x0
// shape; valid shapes come from NewShape or ParseShape.
type Shape struct {
	rows  int
	cols  int
	cells []bool // row-major
}

// NewShape builds a shape from a rectangular matrix. Nonzero entries are
// occupied. The matrix must have at least one row and one column, and every
// row must have the same length.
func NewShape(matrix [][]int) (Shape, error) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return Shape{}, ErrEmptyShape
	}

	rows, cols := len(matrix), len(matrix[0])
	cells := make([]bool, 0, rows*cols)
	for r, row := range matrix {
		if len(row) != cols {
			return Shape{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedShape, r, len(row), cols)
		}
		for _, v := range row {
			cells = append(cells, v != 0)
		}
	}

	return Shape{rows: rows, cols: cols, cells: cells}, nil
}

// ParseShape builds a shape from text rows where '#' marks an occupied cell
// and '.' or ' ' an empty one.
func ParseShape(rows []string) (Shape, error) {
	matrix := make([][]int, len(rows))
	for r, line := range rows {
		row := make([]int, 0, len(line))
		for _, ch := range line {
			switch ch {
			case '#':
				row = append(row, 1)
			case '.', ' ':
				row = append(row, 0)
			default:
				return Shape{}, fmt.Errorf("tetris: row %d: unexpected character %q", r, ch)
			}
		}
		matrix[r] = row
	}
	return NewShape(matrix)
}

// MustShape is like NewShape but panics on invalid input.
// Intended for compiled-in catalogs.
func MustShape(matrix [][]int) Shape {
	s, err := NewShape(matrix)
	if err != nil {
		panic(err)
	}
	return s
}

// Rows returns the matrix height.
func (s Shape) Rows() int {
	return s.rows
}

// Cols returns the matrix width.
func (s Shape) Cols() int {
	return s.cols
}

// At reports whether the cell at (row, col) is occupied.
// Out-of-range coordinates are empty.
func (s Shape) At(row, col int) bool {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return false
	}
	return s.cells[row*s.cols+col]
}

// Rotate returns the shape turned 90 degrees clockwise.
// Cell (r, c) of an R x C shape lands on (c, R-1-r) of the C x R result.
func (s Shape) Rotate() Shape {
	out := Shape{
		rows:  s.cols,
		cols:  s.rows,
		cells: make([]bool, len(s.cells)),
	}
	for r := range s.rows {
		for c := range s.cols {
			out.cells[c*out.cols+(s.rows-1-r)] = s.cells[r*s.cols+c]
		}
	}
	return out
}

// Cells yields the offset of every occupied cell in row-major order.
// Each range over the sequence starts again from the first cell.
func (s Shape) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for r := range s.rows {
			for c := range s.cols {
				if s.cells[r*s.cols+c] && !yield(Point{X: c, Y: r}) {
					return
				}
			}
		}
	}
}

// Size returns the number of occupied cells.
func (s Shape) Size() int {
	n := 0
	for _, v := range s.cells {
		if v {
			n++
		}
	}
	return n
}

// Matrix returns a fresh 0/1 matrix copy of the shape.
func (s Shape) Matrix() [][]int {
	m := make([][]int, s.rows)
	for r := range s.rows {
		m[r] = make([]int, s.cols)
		for c := range s.cols {
			if s.cells[r*s.cols+c] {
				m[r][c] = 1
			}
		}
	}
	return m
}

// Equal reports whether two shapes have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if s.rows != other.rows || s.cols != other.cols {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the shape with '#' and '.' rows separated by newlines.
func (s Shape) String() string {
	var b strings.Builder
	for r := range s.rows {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := range s.cols {
			if s.cells[r*s.cols+c] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// Piece is a catalog entry: a named shape and the tag it leaves on the board
// when locked. Pieces are values; rotating one yields a new Piece.
type Piece struct {
	Name  string
	Tag   Cell
	Shape Shape
}

// NewPiece creates a piece. The tag must be nonzero because zero marks an
// empty board cell.
func NewPiece(name string, tag Cell, shape Shape) (Piece, error) {
	if tag == Empty {
		return Piece{}, fmt.Errorf("tetris: piece %q: tag must be nonzero", name)
	}
	if shape.Size() == 0 {
		return Piece{}, fmt.Errorf("tetris: piece %q: %w", name, ErrEmptyShape)
	}
	return Piece{Name: name, Tag: tag, Shape: shape}, nil
}

// Rotate returns a copy of the piece with its shape turned clockwise.
func (p Piece) Rotate() Piece {
	p.Shape = p.Shape.Rotate()
	return p
}
