// Package config provides YAML-based configuration loading for the game:
// board size, gravity timing, block palette and the piece catalog.
package config

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Gravity GravityConfig `yaml:"gravity"`
	Palette []string      `yaml:"palette"` // Color names, see core.ParseColor
	Shapes  []ShapeConfig `yaml:"shapes"`
}

// BoardConfig defines the grid dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GravityConfig defines the fixed gravity interval.
type GravityConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// ShapeConfig is one entry of the piece catalog. Rows use '#' for a block and
// '.' for an empty cell, top row first, in spawn orientation.
type ShapeConfig struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}
