package tetris

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// Palette maps board tags to screen colors. Index 0 (Empty) is unused.
type Palette []core.Color

// Color returns the color for a tag, falling back to white for unknown tags.
func (p Palette) Color(tag Cell) core.Color {
	if int(tag) < len(p) && tag != Empty {
		return p[tag]
	}
	return core.ColorWhite
}

// BuildCatalog turns piece definitions into engine pieces. Tags are assigned
// in definition order starting at 1; the palette holds each tag's color.
func BuildCatalog(defs []config.PieceConfig) ([]Piece, Palette, error) {
	if len(defs) == 0 {
		return nil, nil, ErrEmptyCatalog
	}
	if len(defs) > 255 {
		return nil, nil, fmt.Errorf("tetris: %d pieces exceed the tag range", len(defs))
	}

	pieces := make([]Piece, 0, len(defs))
	palette := make(Palette, len(defs)+1)
	for i, def := range defs {
		shape, err := ParseShape(def.Shape)
		if err != nil {
			return nil, nil, fmt.Errorf("tetris: piece %q: %w", def.Name, err)
		}

		tag := Cell(i + 1)
		p, err := NewPiece(def.Name, tag, shape)
		if err != nil {
			return nil, nil, err
		}
		pieces = append(pieces, p)

		color, ok := core.ParseColor(def.Color)
		if !ok {
			color = core.ColorWhite
		}
		palette[tag] = color
	}
	return pieces, palette, nil
}

// ClassicCatalog returns the four original pieces: O, T, Z and line.
func ClassicCatalog() []Piece {
	return mustCatalog(config.DefaultClassicConfig().Pieces)
}

// TetrominoCatalog returns the seven standard tetrominoes.
func TetrominoCatalog() []Piece {
	return mustCatalog(config.DefaultTetrominoConfig().Pieces)
}

func mustCatalog(defs []config.PieceConfig) []Piece {
	pieces, _, err := BuildCatalog(defs)
	if err != nil {
		panic(err)
	}
	return pieces
}
