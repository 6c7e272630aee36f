package config

import (
	_ "embed"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/tetromino.yaml
var defaultTetrominoYAML []byte

// DefaultClassicConfig returns the built-in classic configuration: the four
// original pieces on a 20x10 board with a 500ms drop interval.
func DefaultClassicConfig() GameConfig {
	return GameConfig{
		Title: "Blockfall",
		Board: BoardConfig{
			Rows: 20,
			Cols: 10,
		},
		Timing: TimingConfig{
			DropIntervalMS: 500,
		},
		Pieces: []PieceConfig{
			{Name: "O", Color: "yellow", Shape: []string{"##", "##"}},
			{Name: "T", Color: "magenta", Shape: []string{".#.", "###"}},
			{Name: "Z", Color: "red", Shape: []string{"##.", ".##"}},
			{Name: "line", Color: "cyan", Shape: []string{"...", "###"}},
		},
		Source: "builtin",
	}
}

// DefaultTetrominoConfig returns the built-in seven-piece configuration.
func DefaultTetrominoConfig() GameConfig {
	return GameConfig{
		Title: "Blockfall Tetromino",
		Board: BoardConfig{
			Rows: 20,
			Cols: 10,
		},
		Timing: TimingConfig{
			DropIntervalMS: 500,
		},
		Pieces: []PieceConfig{
			{Name: "I", Color: "cyan", Shape: []string{"....", "####", "....", "...."}},
			{Name: "O", Color: "yellow", Shape: []string{"##", "##"}},
			{Name: "T", Color: "magenta", Shape: []string{".#.", "###", "..."}},
			{Name: "S", Color: "green", Shape: []string{".##", "##.", "..."}},
			{Name: "Z", Color: "red", Shape: []string{"##.", ".##", "..."}},
			{Name: "J", Color: "blue", Shape: []string{"#..", "###", "..."}},
			{Name: "L", Color: "orange", Shape: []string{"..#", "###", "..."}},
		},
		Source: "builtin",
	}
}

// DefaultConfig returns the built-in configuration for a variant.
// Unknown variants get the classic configuration.
func DefaultConfig(variant string) GameConfig {
	if variant == VariantTetromino {
		return DefaultTetrominoConfig()
	}
	return DefaultClassicConfig()
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case VariantClassic:
		return defaultClassicYAML
	case VariantTetromino:
		return defaultTetrominoYAML
	default:
		return nil
	}
}

// Variants returns the identifiers that have embedded defaults.
func Variants() []string {
	return []string{VariantClassic, VariantTetromino}
}
