package tetris

// Snapshot is a read-only copy of the engine state for rendering and tests.
// Mutating it never affects the engine.
type Snapshot struct {
	Width   int
	Height  int
	Rows    [][]Block // Placed blocks, indexed [row][col]
	Piece   Piece     // Active piece (the rejected spawn after game over)
	State   State
	Spawned int
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Width:   e.grid.Width(),
		Height:  e.grid.Height(),
		Rows:    e.grid.Rows(),
		Piece:   e.active.Clone(),
		State:   e.state,
		Spawned: e.spawned,
	}
}

// PieceAt reports whether the active piece covers (row, col).
func (s Snapshot) PieceAt(row, col int) bool {
	for _, c := range s.Piece.Cells() {
		if c.Row == row && c.Col == col {
			return true
		}
	}
	return false
}
