package tetris

// Collides reports whether piece p, shifted by (dx, dy), would overlap a wall,
// the floor or a placed block. Cells above the top edge (row < 0) are free:
// they are never looked up in the grid, so a tall piece may poke out of the
// top while it spawns.
func Collides(g *Grid, p Piece, dx, dy int) bool {
	for _, c := range p.Cells() {
		row, col := c.Row+dy, c.Col+dx
		if col < 0 || col >= g.Width() || row >= g.Height() {
			return true
		}
		if row < 0 {
			continue
		}
		if g.IsOccupied(row, col) {
			return true
		}
	}
	return false
}
