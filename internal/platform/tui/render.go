package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// palette maps core.Color to ANSI 256-color codes. Blocks use the bright
// codes so they stand out against the gray frame.
var palette = map[core.Color]string{
	core.ColorRed:           "196",
	core.ColorGreen:         "46",
	core.ColorYellow:        "226",
	core.ColorBlue:          "27",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "51",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "240",
	core.ColorPurple:        "129",
}

var (
	plainStyle = lipgloss.NewStyle()
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingLeft(1)
)

// styleFor returns the lipgloss style for a cell color.
func styleFor(c core.Color) lipgloss.Style {
	code, ok := palette[c]
	if !ok {
		return plainStyle
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color are rendered as one run to keep the
// number of ANSI escape sequences down.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() && s.GetCell(x, y).Color == color {
				run.WriteRune(s.GetCell(x, y).Rune)
				x++
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}

// renderView stacks the game screen above the help line.
func renderView(s *core.Screen, help string) string {
	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(s), helpStyle.Render(help))
}
