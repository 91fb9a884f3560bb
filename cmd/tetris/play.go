package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/H/A    - Move left
  Right/L/D   - Move right
  Down/J/S    - Soft drop
  Up/K/W/X    - Rotate clockwise
  P/Esc       - Pause
  R           - Restart (after game over)
  Ctrl+S      - Save a text screenshot to ~/.tetris/screenshots
  Q/Ctrl+C    - Quit

Examples:
  tetris play
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml --log ./tetris.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	rules, err := loadRules()
	if err != nil {
		return err
	}

	logger, closer, err := openLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	// Initial size; WindowSizeMsg keeps it current
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Info("starting game",
		"board", fmt.Sprintf("%dx%d", rules.Width, rules.Height),
		"gravity", rules.GravityInterval,
		"fps", flagFPS,
	)

	if err := tui.Run(tetris.New(rules), cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
