// Package tetris implements the falling-block game: board storage, pieces and
// rotation, collision rules, locking and line clears, and the gravity loop.
// This package is UI-agnostic and deterministic for a given Randomizer.
package tetris

// State is the engine's lifecycle state.
type State int

const (
	StateActive   State = iota // A piece is falling and accepts input
	StateGameOver              // Terminal; nothing leaves this state
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Randomizer picks spawn shapes and colors. *rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// TickResult describes what a gravity tick did.
type TickResult struct {
	Moved        bool // The piece fell one row
	Locked       bool // The piece could not fall and was locked
	LinesCleared int  // Rows removed by the lock
	GameOver     bool // The spawn after the lock collided
}

// Engine owns the grid and the active piece and is their only mutator.
type Engine struct {
	rules   Rules
	rng     Randomizer
	grid    *Grid
	active  Piece
	state   State
	spawned int // Pieces spawned so far, including a rejected final spawn
}

// NewEngine creates an engine with an empty grid and spawns the first piece.
// Rules must describe a positive grid and a non-empty catalog and palette.
func NewEngine(rules Rules, rng Randomizer) *Engine {
	e := &Engine{
		rules: rules,
		rng:   rng,
		grid:  NewGrid(rules.Width, rules.Height),
		state: StateActive,
	}
	e.spawn()
	return e
}

// Rules returns the configuration the engine was built with.
func (e *Engine) Rules() Rules {
	return e.rules
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// IsGameOver reports whether the engine reached its terminal state.
func (e *Engine) IsGameOver() bool {
	return e.state == StateGameOver
}

// Spawned returns how many pieces have been spawned.
func (e *Engine) Spawned() int {
	return e.spawned
}

// TryMove shifts the active piece by (dx, dy) if the destination is free.
func (e *Engine) TryMove(dx, dy int) bool {
	if e.state != StateActive {
		return false
	}
	if Collides(e.grid, e.active, dx, dy) {
		return false
	}
	e.active.X += dx
	e.active.Y += dy
	return true
}

// TryRotate turns the active piece clockwise. When the rotated shape
// collides it is turned three more times, which restores the original
// orientation. There is no wall-kick search.
func (e *Engine) TryRotate() bool {
	if e.state != StateActive {
		return false
	}
	e.active.Rotate()
	if !Collides(e.grid, e.active, 0, 0) {
		return true
	}
	for range 3 {
		e.active.Rotate()
	}
	return false
}

// Tick applies one gravity step: the piece falls one row, or locks when it
// cannot.
func (e *Engine) Tick() TickResult {
	if e.state != StateActive {
		return TickResult{GameOver: true}
	}
	if e.TryMove(0, 1) {
		return TickResult{Moved: true}
	}
	cleared := e.lock()
	return TickResult{
		Locked:       true,
		LinesCleared: cleared,
		GameOver:     e.state == StateGameOver,
	}
}

// lock writes the active piece into the grid, clears full rows and spawns the
// next piece. The caller has already seen the downward move fail, so every
// cell is on the grid.
func (e *Engine) lock() int {
	for _, c := range e.active.Cells() {
		e.grid.Place(c.Row, c.Col, e.active.Color)
	}
	cleared := e.grid.ClearFullRows()
	e.spawn()
	return cleared
}

// spawn replaces the active piece with a random shape and color at the top
// center. A spawn that collides ends the game; the grid is left untouched.
func (e *Engine) spawn() {
	shape := e.rules.Shapes[e.rng.Intn(len(e.rules.Shapes))].Clone()
	color := e.rules.Colors[e.rng.Intn(len(e.rules.Colors))]

	e.active = Piece{
		Shape: shape,
		Color: color,
		X:     e.rules.Width/2 - shape.Cols()/2,
		Y:     0,
	}
	e.spawned++

	if Collides(e.grid, e.active, 0, 0) {
		e.state = StateGameOver
	}
}
