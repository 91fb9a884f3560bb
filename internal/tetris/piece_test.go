package tetris

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestParseShape(t *testing.T) {
	s := ParseShape(".#.", "###")

	assert.Equal(t, 2, s.Rows())
	assert.Equal(t, 3, s.Cols())
	assert.Equal(t, 4, s.Count())
	assert.Equal(t, ".#.\n###", s.String())
}

func TestParseShapePadsShortRows(t *testing.T) {
	s := ParseShape("#", "##")
	assert.Equal(t, 2, s.Cols())
	assert.Equal(t, "#.\n##", s.String())
}

func TestRotateCW(t *testing.T) {
	tests := []struct {
		name     string
		in       Shape
		expected string
	}{
		{"I horizontal to vertical", ShapeI, "#\n#\n#\n#"},
		{"T points right", ShapeT, "#.\n##\n#."},
		{"L", ShapeL, "##\n#.\n#."},
		{"S", ShapeS, "#.\n##\n.#"},
		{"O unchanged", ShapeO, "##\n##"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RotateCW(tc.in).String())
		})
	}
}

func TestRotateCWDoesNotModifyInput(t *testing.T) {
	in := ShapeJ.Clone()
	_ = RotateCW(in)
	assert.True(t, in.Equal(ShapeJ))
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for i, shape := range StandardShapes() {
		t.Run(fmt.Sprintf("standard-%d", i), func(t *testing.T) {
			got := shape
			for range 4 {
				got = RotateCW(got)
			}
			assert.True(t, got.Equal(shape), "got\n%s\nwant\n%s", got, shape)
		})
	}

	rng := rand.New(rand.NewSource(7))
	for i := range 50 {
		rows, cols := 1+rng.Intn(4), 1+rng.Intn(4)
		shape := make(Shape, rows)
		for r := range shape {
			shape[r] = make([]bool, cols)
			for c := range shape[r] {
				shape[r][c] = rng.Intn(2) == 1
			}
		}

		got := shape
		for range 4 {
			got = RotateCW(got)
		}
		require.True(t, got.Equal(shape), "random shape %d\n%s", i, shape)
	}
}

func TestRotatePreservesCount(t *testing.T) {
	for _, shape := range StandardShapes() {
		p := Piece{Shape: shape}
		for range 4 {
			p.Rotate()
			assert.Equal(t, 4, p.Shape.Count())
		}
	}
}

func TestPieceRotateKeepsOriginAndColor(t *testing.T) {
	p := Piece{Shape: ShapeL.Clone(), Color: core.ColorOrange, X: 4, Y: 7}
	p.Rotate()

	assert.Equal(t, 4, p.X)
	assert.Equal(t, 7, p.Y)
	assert.Equal(t, core.ColorOrange, p.Color)
	assert.Equal(t, 3, p.Shape.Rows())
	assert.Equal(t, 2, p.Shape.Cols())
}

func TestPieceCells(t *testing.T) {
	p := Piece{Shape: ShapeT, X: 3, Y: 5}

	assert.ElementsMatch(t, []Pos{
		{Row: 5, Col: 4},
		{Row: 6, Col: 3},
		{Row: 6, Col: 4},
		{Row: 6, Col: 5},
	}, p.Cells())
}

func TestPieceCloneIsDeep(t *testing.T) {
	p := Piece{Shape: ShapeO.Clone(), Color: core.ColorYellow}
	clone := p.Clone()

	p.Shape[0][0] = false
	assert.True(t, clone.Shape[0][0])
}

func TestStandardCatalog(t *testing.T) {
	shapes := StandardShapes()
	require.Len(t, shapes, 7)
	for _, s := range shapes {
		assert.Equal(t, 4, s.Count())
	}
	assert.Len(t, StandardColors(), 7)

	// The catalog hands out copies
	shapes[0][0][0] = false
	assert.True(t, ShapeI[0][0])
}
