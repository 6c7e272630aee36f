// Package config provides YAML-based game configuration loading for the
// blockfall variants: board size, gravity timing and the piece catalog.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Variant identifiers with an embedded default configuration.
const (
	VariantClassic   = "classic"
	VariantTetromino = "tetromino"
)

// Limits accepted by Validate.
const (
	MinBoardRows    = 4
	MinBoardCols    = 4
	MaxBoardRows    = 60
	MaxBoardCols    = 40
	MinDropInterval = 10 * time.Millisecond
	MaxPieces       = 250
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// GameConfig contains all configuration for one blockfall variant.
type GameConfig struct {
	Title  string        `yaml:"title"`
	Board  BoardConfig   `yaml:"board"`
	Timing TimingConfig  `yaml:"timing"`
	Pieces []PieceConfig `yaml:"pieces"`

	// Source records where the config was loaded from. Not part of the file.
	Source string `yaml:"-"`
}

// BoardConfig defines the well dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TimingConfig defines the gravity cadence.
type TimingConfig struct {
	DropIntervalMS int `yaml:"drop_interval_ms"`
}

// DropInterval returns the gravity period as a duration.
func (t TimingConfig) DropInterval() time.Duration {
	return time.Duration(t.DropIntervalMS) * time.Millisecond
}

// PieceConfig defines a single catalog piece.
// Shape rows use '#' for occupied cells and '.' for empty ones.
type PieceConfig struct {
	Name  string   `yaml:"name"`
	Color string   `yaml:"color"`
	Shape []string `yaml:"shape"`
}

// Validate checks dimensions, timing and piece definitions.
// Shape contents are checked for rectangularity here; parsing into engine
// shapes happens in the game package.
func (c GameConfig) Validate() error {
	if c.Board.Rows < MinBoardRows || c.Board.Rows > MaxBoardRows {
		return fmt.Errorf("%w: board rows %d outside [%d, %d]", ErrInvalid, c.Board.Rows, MinBoardRows, MaxBoardRows)
	}
	if c.Board.Cols < MinBoardCols || c.Board.Cols > MaxBoardCols {
		return fmt.Errorf("%w: board cols %d outside [%d, %d]", ErrInvalid, c.Board.Cols, MinBoardCols, MaxBoardCols)
	}
	if c.Timing.DropInterval() < MinDropInterval {
		return fmt.Errorf("%w: drop interval %v below %v", ErrInvalid, c.Timing.DropInterval(), MinDropInterval)
	}
	if len(c.Pieces) == 0 {
		return fmt.Errorf("%w: no pieces defined", ErrInvalid)
	}
	if len(c.Pieces) > MaxPieces {
		return fmt.Errorf("%w: %d pieces, at most %d allowed", ErrInvalid, len(c.Pieces), MaxPieces)
	}

	seen := make(map[string]bool, len(c.Pieces))
	for i, p := range c.Pieces {
		if p.Name == "" {
			return fmt.Errorf("%w: piece %d has no name", ErrInvalid, i)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: duplicate piece %q", ErrInvalid, p.Name)
		}
		seen[p.Name] = true

		if len(p.Shape) == 0 {
			return fmt.Errorf("%w: piece %q has an empty shape", ErrInvalid, p.Name)
		}
		width := len(p.Shape[0])
		for r, row := range p.Shape {
			if len(row) != width {
				return fmt.Errorf("%w: piece %q row %d is %d wide, want %d", ErrInvalid, p.Name, r, len(row), width)
			}
		}
		if width > c.Board.Cols {
			return fmt.Errorf("%w: piece %q is wider than the board", ErrInvalid, p.Name)
		}
		if len(p.Shape) > c.Board.Rows {
			return fmt.Errorf("%w: piece %q is taller than the board", ErrInvalid, p.Name)
		}
	}
	return nil
}
