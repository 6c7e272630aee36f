package tetris

import (
	"errors"
	"iter"
)

// ErrEmptyCatalog is returned when an engine is created without pieces.
var ErrEmptyCatalog = errors.New("tetris: piece catalog is empty")

// Randomizer picks spawn pieces. *rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// RunState is the engine's lifecycle state.
type RunState int

const (
	Running RunState = iota
	GameOver
)

func (s RunState) String() string {
	switch s {
	case Running:
		return "running"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Command is one of the logical player commands.
type Command int

const (
	CommandMoveLeft Command = iota
	CommandMoveRight
	CommandSoftDrop
	CommandRotate
)

func (c Command) String() string {
	switch c {
	case CommandMoveLeft:
		return "move_left"
	case CommandMoveRight:
		return "move_right"
	case CommandSoftDrop:
		return "soft_drop"
	case CommandRotate:
		return "rotate"
	default:
		return "unknown"
	}
}

// TickResult describes what a single gravity tick did.
type TickResult struct {
	Moved    bool // piece moved down one row
	Locked   bool // piece was locked and a new one was spawned (or spawning failed)
	Cleared  int  // rows removed by the lock
	GameOver bool // the spawn after the lock collided
}

// Engine owns the board, the falling piece and the run state.
// It is not safe for concurrent use; callers deliver ticks and commands
// one at a time.
type Engine struct {
	board   *Board
	catalog []Piece
	rng     Randomizer

	current Piece
	pos     Point
	state   RunState
}

// NewEngine creates an engine with an empty rows x cols board and spawns the
// first piece.
func NewEngine(rows, cols int, catalog []Piece, rng Randomizer) (*Engine, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}
	if rng == nil {
		return nil, errors.New("tetris: randomizer is nil")
	}
	board, err := NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		board:   board,
		catalog: append([]Piece(nil), catalog...),
		rng:     rng,
	}
	e.Start()
	return e, nil
}

// Start empties the board and spawns a fresh piece. This is the only way to
// leave GameOver.
func (e *Engine) Start() {
	e.board.Reset()
	e.state = Running
	e.spawn()
}

// spawn picks a random catalog piece and places it centered on the top row.
// If it does not fit the engine transitions to GameOver.
func (e *Engine) spawn() {
	p := e.catalog[e.rng.Intn(len(e.catalog))]
	at := Point{X: e.board.Cols()/2 - p.Shape.Cols()/2, Y: 0}

	e.current = p
	e.pos = at
	if !e.board.CanPlace(p.Shape, at) {
		e.state = GameOver
	}
}

// Tick applies gravity: the piece moves down one row if it can; otherwise it
// is locked, full rows are cleared and the next piece is spawned.
// Does nothing after GameOver.
func (e *Engine) Tick() TickResult {
	if e.state != Running {
		return TickResult{GameOver: true}
	}

	if e.shift(0, 1) {
		return TickResult{Moved: true}
	}

	e.board.Lock(e.current.Shape, e.pos, e.current.Tag)
	cleared := e.board.ClearFullLines()
	e.spawn()

	return TickResult{
		Locked:   true,
		Cleared:  cleared,
		GameOver: e.state == GameOver,
	}
}

// MoveLeft shifts the piece one column left if the target is free.
func (e *Engine) MoveLeft() bool {
	return e.shift(-1, 0)
}

// MoveRight shifts the piece one column right if the target is free.
func (e *Engine) MoveRight() bool {
	return e.shift(1, 0)
}

// SoftDrop moves the piece one row down if the target is free.
// Unlike Tick it never locks.
func (e *Engine) SoftDrop() bool {
	return e.shift(0, 1)
}

// Rotate turns the piece clockwise in place. The rotation is rejected if the
// rotated shape collides; no alternative positions are tried.
func (e *Engine) Rotate() bool {
	if e.state != Running {
		return false
	}
	rotated := e.current.Rotate()
	if !e.board.CanPlace(rotated.Shape, e.pos) {
		return false
	}
	e.current = rotated
	return true
}

// Apply dispatches a logical command. Returns whether the state changed.
func (e *Engine) Apply(cmd Command) bool {
	switch cmd {
	case CommandMoveLeft:
		return e.MoveLeft()
	case CommandMoveRight:
		return e.MoveRight()
	case CommandSoftDrop:
		return e.SoftDrop()
	case CommandRotate:
		return e.Rotate()
	default:
		return false
	}
}

func (e *Engine) shift(dx, dy int) bool {
	if e.state != Running {
		return false
	}
	next := e.pos.Add(Point{X: dx, Y: dy})
	if !e.board.CanPlace(e.current.Shape, next) {
		return false
	}
	e.pos = next
	return true
}

// State returns Running or GameOver.
func (e *Engine) State() RunState {
	return e.state
}

// Rows returns the board height.
func (e *Engine) Rows() int {
	return e.board.Rows()
}

// Cols returns the board width.
func (e *Engine) Cols() int {
	return e.board.Cols()
}

// CellAt returns the locked cell at (row, col).
func (e *Engine) CellAt(row, col int) Cell {
	return e.board.At(row, col)
}

// Current returns the falling piece in its current rotation.
func (e *Engine) Current() Piece {
	return e.current
}

// Position returns the top-left anchor of the falling piece.
func (e *Engine) Position() Point {
	return e.pos
}

// CurrentCells yields the absolute board coordinates of the falling piece,
// including any rows still above the board.
func (e *Engine) CurrentCells() iter.Seq[Point] {
	shape, at := e.current.Shape, e.pos
	return func(yield func(Point) bool) {
		for off := range shape.Cells() {
			if !yield(at.Add(off)) {
				return
			}
		}
	}
}

// Catalog returns a copy of the pieces the engine spawns from.
func (e *Engine) Catalog() []Piece {
	return append([]Piece(nil), e.catalog...)
}
