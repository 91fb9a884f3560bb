package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellWidth = 2 // Screen columns per board cell
	hudHeight = 1 // Title line above the board
)

// boardSize returns the framed board size in screen cells.
func (g *Game) boardSize() (int, int) {
	return g.rules.Width*cellWidth + 2, g.rules.Height + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	bw, bh := g.boardSize()
	frame := core.NewRect(core.Clamp((dst.Width()-bw)/2, 0, dst.Width()), hudHeight, bw, bh)

	g.renderHUD(dst, frame)
	dst.DrawBox(frame, core.ColorGray)
	g.renderBoard(dst, frame)

	switch {
	case g.engine.IsGameOver():
		renderOverlay(dst, frame, "Game Over", "R restart  Q quit")
	case g.paused:
		renderOverlay(dst, frame, "Paused", "P to continue")
	}
}

// renderHUD draws the title line above the board.
func (g *Game) renderHUD(dst *core.Screen, frame core.Rect) {
	dst.DrawText(frame.X, 0, g.Title())

	status := fmt.Sprintf("%dx%d", g.rules.Width, g.rules.Height)
	dst.DrawText(frame.Right()-len(status), 0, status)
}

// renderBoard draws placed blocks, the active piece and empty cells inside
// the frame.
func (g *Game) renderBoard(dst *core.Screen, frame core.Rect) {
	snap := g.engine.Snapshot()
	originX, originY := frame.X+1, frame.Y+1

	for row := 0; row < snap.Height; row++ {
		for col := 0; col < snap.Width; col++ {
			x := originX + col*cellWidth
			y := originY + row

			block := snap.Rows[row][col]
			switch {
			case block.Filled:
				drawBlock(dst, x, y, block.Color)
			default:
				dst.SetCell(x, y, ' ', core.ColorDefault)
				dst.SetCell(x+1, y, '·', core.ColorGray)
			}
		}
	}

	for _, c := range snap.Piece.Cells() {
		if c.Row < 0 || c.Row >= snap.Height {
			continue
		}
		drawBlock(dst, originX+c.Col*cellWidth, originY+c.Row, snap.Piece.Color)
	}
}

func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	for i := range cellWidth {
		dst.SetCell(x+i, y, '█', c)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	bw, bh := g.boardSize()
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", bw, bh+hudHeight))
}

// renderOverlay draws a centered two-line message box over the board.
func renderOverlay(dst *core.Screen, frame core.Rect, line1, line2 string) {
	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	cx, cy := frame.Center()
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawText(box.X+(boxW-len(line1))/2, box.Y+1, line1)
	dst.DrawText(box.X+(boxW-len(line2))/2, box.Y+3, line2)
}
