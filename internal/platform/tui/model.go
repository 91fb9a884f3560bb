package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// helpHeight is the number of terminal rows reserved below the game screen.
const helpHeight = 1

// Model is the Bubble Tea model for running a game session.
type Model struct {
	game          *tetris.Game
	screen        *core.Screen
	config        core.RuntimeConfig
	inputFrame    core.InputFrame
	gameState     core.GameState
	keys          KeyMap
	help          help.Model
	logger        *log.Logger
	screenshotDir string
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg carries the full terminal size; one row is kept for the help line.
func NewModel(game *tetris.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	cfg.ScreenH = core.Max(cfg.ScreenH-helpHeight, 0)
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:        cfg,
		inputFrame:    core.NewInputFrame(),
		keys:          DefaultKeyMap(),
		help:          h,
		logger:        logger,
		screenshotDir: defaultScreenshotDir(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config, time.Now())
	m.logger.Debug("game started",
		"seed", m.config.Seed,
		"screen", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH),
	)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the key's action for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.game.Quit()
		m.logger.Debug("quit", "frames", m.game.Frame())
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Screenshot) {
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
	}

	return m, nil
}

// handleResize keeps the board state and lets the game decide whether it
// still fits.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = core.Max(msg.Height-helpHeight, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick runs one game frame with the input collected since the last one.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame, now)
	m.gameState = result.State
	m.logStep(result, wasOver)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// logStep reports the notable events of a frame.
func (m Model) logStep(result core.StepResult, wasOver bool) {
	switch {
	case result.Restarted:
		m.logger.Info("game restarted")
		return
	case result.State.GameOver && !wasOver:
		m.logger.Info("game over",
			"pieces", m.game.Snapshot().Spawned,
			"frames", m.game.Frame(),
		)
	}

	if result.Locked {
		m.logger.Debug("piece locked", "lines", result.LinesCleared)
	}
	if result.LinesCleared > 0 {
		m.logger.Info("lines cleared", "count", result.LinesCleared)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// defaultScreenshotDir returns ~/.tetris/screenshots, or a relative
// directory when the home directory is unknown.
func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".tetris", "screenshots")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return renderView(m.screen, m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(game *tetris.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
