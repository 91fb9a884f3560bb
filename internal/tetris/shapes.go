package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Standard tetromino shapes in their spawn orientation.
var (
	ShapeI = ParseShape("####")
	ShapeO = ParseShape("##", "##")
	ShapeT = ParseShape(".#.", "###")
	ShapeL = ParseShape("#..", "###")
	ShapeJ = ParseShape("..#", "###")
	ShapeS = ParseShape(".##", "##.")
	ShapeZ = ParseShape("##.", ".##")
)

// StandardShapes returns fresh copies of the seven tetrominoes.
func StandardShapes() []Shape {
	return []Shape{
		ShapeI.Clone(),
		ShapeO.Clone(),
		ShapeT.Clone(),
		ShapeL.Clone(),
		ShapeJ.Clone(),
		ShapeS.Clone(),
		ShapeZ.Clone(),
	}
}

// StandardColors is the block palette. Colors are drawn independently of
// shapes.
func StandardColors() []core.Color {
	return []core.Color{
		core.ColorCyan,
		core.ColorRed,
		core.ColorGreen,
		core.ColorYellow,
		core.ColorOrange,
		core.ColorBlue,
		core.ColorPurple,
	}
}

// Rules is the immutable configuration an engine is built from.
type Rules struct {
	Width           int           // Grid columns
	Height          int           // Grid rows
	GravityInterval time.Duration // Time between gravity ticks
	Shapes          []Shape       // Spawn catalog
	Colors          []core.Color  // Spawn palette
}

// DefaultRules returns a 10x20 board with 500ms gravity and the standard
// catalog.
func DefaultRules() Rules {
	return Rules{
		Width:           10,
		Height:          20,
		GravityInterval: 500 * time.Millisecond,
		Shapes:          StandardShapes(),
		Colors:          StandardColors(),
	}
}
