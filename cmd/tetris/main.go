// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris play              - Play in the local terminal
//	tetris serve             - Start SSH server for remote play
//	tetris config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set frame rate (default: 30)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--config <path>  - Use a custom YAML config
//	--log <path>     - Write a debug log (play only)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - Falling blocks in your terminal",
	Long: `A falling-block puzzle game for the terminal.

Move and rotate the falling piece, complete rows to clear them, and keep
the stack below the top of the board.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  tetris play
  tetris play --seed 42 --config ./narrow.yaml
  tetris serve --ssh :2222
  tetris config > ~/.tetris/configs/tetris.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write a debug log to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration from the --config path or the search path.
func loadConfig() (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return config.TetrisConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.TetrisConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadRules loads and validates the configuration and builds engine rules.
func loadRules() (tetris.Rules, error) {
	cfg, err := loadConfig()
	if err != nil {
		return tetris.Rules{}, err
	}
	return cfg.Rules()
}

// openLogger returns a debug logger writing to the --log file, or a logger
// that discards everything when no file was given. The alternate screen owns
// stdout, so logs never go to the terminal during play.
func openLogger() (*log.Logger, io.Closer, error) {
	if flagLogPath == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "tetris",
	})
	return logger, f, nil
}
