package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// blocksPerShape is the cell count of every catalog entry.
const blocksPerShape = 4

// Validate checks the configuration and returns every problem found, joined.
func (c TetrisConfig) Validate() error {
	var errs []error

	if c.Board.Width <= 0 {
		errs = append(errs, fmt.Errorf("board.width must be positive, got %d", c.Board.Width))
	}
	if c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("board.height must be positive, got %d", c.Board.Height))
	}
	if c.Gravity.IntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("gravity.interval_ms must be positive, got %d", c.Gravity.IntervalMS))
	}

	if len(c.Palette) == 0 {
		errs = append(errs, errors.New("palette must not be empty"))
	}
	for i, name := range c.Palette {
		if _, ok := core.ParseColor(name); !ok {
			errs = append(errs, fmt.Errorf("palette[%d]: unknown color %q", i, name))
		}
	}

	if len(c.Shapes) == 0 {
		errs = append(errs, errors.New("shapes must not be empty"))
	}
	for i, s := range c.Shapes {
		if err := c.validateShape(s); err != nil {
			errs = append(errs, fmt.Errorf("shapes[%d] (%s): %w", i, s.Name, err))
		}
	}

	return errors.Join(errs...)
}

func (c TetrisConfig) validateShape(s ShapeConfig) error {
	if len(s.Rows) == 0 {
		return errors.New("no rows")
	}

	width := len(s.Rows[0])
	blocks := 0
	for i, row := range s.Rows {
		if len(row) != width {
			return fmt.Errorf("row %d has width %d, expected %d", i, len(row), width)
		}
		if strings.Trim(row, "#.") != "" {
			return fmt.Errorf("row %d: only '#' and '.' are allowed, got %q", i, row)
		}
		blocks += strings.Count(row, "#")
	}

	if blocks != blocksPerShape {
		return fmt.Errorf("has %d blocks, expected %d", blocks, blocksPerShape)
	}
	// Every orientation has to fit across the board
	longest := core.Max(width, len(s.Rows))
	if c.Board.Width > 0 && longest > c.Board.Width {
		return fmt.Errorf("does not fit a board %d cells wide", c.Board.Width)
	}
	return nil
}

// Rules validates the configuration and converts it to engine rules.
func (c TetrisConfig) Rules() (tetris.Rules, error) {
	if err := c.Validate(); err != nil {
		return tetris.Rules{}, fmt.Errorf("invalid config: %w", err)
	}

	rules := tetris.Rules{
		Width:           c.Board.Width,
		Height:          c.Board.Height,
		GravityInterval: time.Duration(c.Gravity.IntervalMS) * time.Millisecond,
		Shapes:          make([]tetris.Shape, 0, len(c.Shapes)),
		Colors:          make([]core.Color, 0, len(c.Palette)),
	}
	for _, s := range c.Shapes {
		rules.Shapes = append(rules.Shapes, tetris.ParseShape(s.Rows...))
	}
	for _, name := range c.Palette {
		color, _ := core.ParseColor(name)
		rules.Colors = append(rules.Colors, color)
	}
	return rules, nil
}
