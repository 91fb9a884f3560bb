package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default game configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Gravity: GravityConfig{
			IntervalMS: 500,
		},
		Palette: []string{"cyan", "red", "green", "yellow", "orange", "blue", "purple"},
		Shapes: []ShapeConfig{
			{Name: "I", Rows: []string{"####"}},
			{Name: "O", Rows: []string{"##", "##"}},
			{Name: "T", Rows: []string{".#.", "###"}},
			{Name: "L", Rows: []string{"#..", "###"}},
			{Name: "J", Rows: []string{"..#", "###"}},
			{Name: "S", Rows: []string{".##", "##."}},
			{Name: "Z", Rows: []string{"##.", ".##"}},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
