package tetris

import (
	"errors"
	"strings"
)

// Cell is a single board value. Empty is zero; any other value is the tag of
// the piece that was locked there.
type Cell uint8

// Empty marks an unoccupied board cell.
const Empty Cell = 0

// ErrBoardSize is returned for boards without at least one row and column.
var ErrBoardSize = errors.New("tetris: board dimensions must be positive")

// Board is the fixed-size grid that locked pieces are written into.
// It never holds a reference to a Piece; all mutation goes through explicit
// shape, position and tag arguments.
type Board struct {
	rows  int
	cols  int
	cells [][]Cell
}

// NewBoard creates an empty board.
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBoardSize
	}
	b := &Board{rows: rows, cols: cols}
	b.cells = newGrid(rows, cols)
	return b, nil
}

func newGrid(rows, cols int) [][]Cell {
	grid := make([][]Cell, rows)
	for r := range grid {
		grid[r] = make([]Cell, cols)
	}
	return grid
}

// Rows returns the board height.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the board width.
func (b *Board) Cols() int {
	return b.cols
}

// At returns the cell at (row, col). Out-of-range coordinates read as Empty.
func (b *Board) At(row, col int) Cell {
	if !b.inBounds(row, col) {
		return Empty
	}
	return b.cells[row][col]
}

// Set writes a single cell. Out-of-range coordinates are ignored.
func (b *Board) Set(row, col int, v Cell) {
	if !b.inBounds(row, col) {
		return
	}
	b.cells[row][col] = v
}

// Row returns a copy of the given row, or nil if it is out of range.
func (b *Board) Row(row int) []Cell {
	if row < 0 || row >= b.rows {
		return nil
	}
	out := make([]Cell, b.cols)
	copy(out, b.cells[row])
	return out
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// CanPlace reports whether every occupied cell of s, anchored at at, lies
// inside the side and bottom walls and on an empty cell. Cells above the top
// row are always allowed so pieces can enter from above.
func (b *Board) CanPlace(s Shape, at Point) bool {
	for off := range s.Cells() {
		p := at.Add(off)
		if p.X < 0 || p.X >= b.cols || p.Y >= b.rows {
			return false
		}
		if p.Y >= 0 && b.cells[p.Y][p.X] != Empty {
			return false
		}
	}
	return true
}

// Lock writes tag into every occupied cell of s anchored at at.
// Cells above the top row are dropped. The caller must have checked CanPlace.
func (b *Board) Lock(s Shape, at Point, tag Cell) {
	for off := range s.Cells() {
		p := at.Add(off)
		if p.Y < 0 {
			continue
		}
		b.cells[p.Y][p.X] = tag
	}
}

// ClearFullLines removes every completely filled row, moves the remaining
// rows down to close the gaps and fills the vacated top rows with Empty.
// Returns the number of rows removed.
func (b *Board) ClearFullLines() int {
	next := make([][]Cell, b.rows)
	dst := b.rows - 1
	for src := b.rows - 1; src >= 0; src-- {
		if b.rowFull(src) {
			continue
		}
		next[dst] = b.cells[src]
		dst--
	}

	cleared := dst + 1
	if cleared == 0 {
		return 0
	}
	for r := 0; r <= dst; r++ {
		next[r] = make([]Cell, b.cols)
	}
	b.cells = next
	return cleared
}

func (b *Board) rowFull(row int) bool {
	for _, v := range b.cells[row] {
		if v == Empty {
			return false
		}
	}
	return true
}

// Reset empties every cell.
func (b *Board) Reset() {
	for r := range b.cells {
		clear(b.cells[r])
	}
}

// String dumps the board one row per line: '.' for empty cells and the tag
// digit (or '#' for tags above 9) for occupied ones.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.rows * (b.cols + 1))
	for r := range b.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range b.cells[r] {
			switch {
			case v == Empty:
				sb.WriteByte('.')
			case v <= 9:
				sb.WriteByte('0' + byte(v))
			default:
				sb.WriteByte('#')
			}
		}
	}
	return sb.String()
}
