package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game adapts the engine and its loop to the terminal platform: it maps
// platform actions to intents and adds pause, restart and screen-size
// handling on top of the engine's own rules.
type Game struct {
	rules  Rules
	rng    *rand.Rand
	engine *Engine
	loop   *Loop
	frame  uint64

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// New creates a game for the given rules. Call Reset before stepping it.
func New(rules Rules) *Game {
	return &Game{rules: rules}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset starts a new session: fresh grid, fresh first piece, gravity clock
// starting at now.
func (g *Game) Reset(cfg core.RuntimeConfig, now time.Time) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.engine = NewEngine(g.rules, g.rng)
	g.loop = NewLoop(g.engine, now)
	g.frame = 0
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize records new screen dimensions. The board keeps its state; play is
// suspended while the screen cannot fit it.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	bw, bh := g.boardSize()
	g.tooSmall = w < bw || h < bh+hudHeight
}

// Step advances the game by one frame. Actions are applied in arrival order,
// then gravity fires if its interval has elapsed.
func (g *Game) Step(in core.InputFrame, now time.Time) core.StepResult {
	g.frame++

	// Handle restart
	if in.Has(core.ActionRestart) && g.engine.IsGameOver() {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		}, now)
		return core.StepResult{State: g.State(), Restarted: true}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.engine.IsGameOver() {
		g.paused = !g.paused
		if !g.paused {
			g.loop.ResetClock(now)
		}
	}

	if g.engine.IsGameOver() || g.paused {
		return core.StepResult{State: g.State()}
	}
	if g.tooSmall {
		g.loop.ResetClock(now)
		return core.StepResult{State: g.State()}
	}

	intents := make([]Intent, 0, in.Len())
	for _, a := range in.Actions {
		if it := intentFor(a); it != IntentNone {
			intents = append(intents, it)
		}
	}

	fr := g.loop.Frame(now, intents...)
	return core.StepResult{
		State:        g.State(),
		Locked:       fr.Locked > 0,
		LinesCleared: fr.LinesCleared,
	}
}

// intentFor maps a platform action to an engine intent.
func intentFor(a core.Action) Intent {
	switch a {
	case core.ActionLeft:
		return IntentMoveLeft
	case core.ActionRight:
		return IntentMoveRight
	case core.ActionSoftDrop:
		return IntentSoftDrop
	case core.ActionRotate:
		return IntentRotate
	default:
		return IntentNone
	}
}

// Quit stops the loop; subsequent steps do nothing.
func (g *Game) Quit() {
	g.loop.Quit()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.engine.IsGameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Snapshot returns a read-only copy of the board and active piece.
func (g *Game) Snapshot() Snapshot {
	return g.engine.Snapshot()
}

// Frame returns the number of frames stepped since the last reset.
func (g *Game) Frame() uint64 {
	return g.frame
}
