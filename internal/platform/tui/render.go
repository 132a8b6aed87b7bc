package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pipelab/pipeworks/internal/puzzle"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	pipeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	solvedPipeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	cursorStyle = lipgloss.NewStyle().
			Reverse(true).
			Bold(true)

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	solvedBannerStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// tileRunes maps an oriented tile kind to its box-drawing glyphs, indexed by
// direction: up, right, down, left.
var tileRunes = map[puzzle.TileKind][4]rune{
	puzzle.TileEndpoint: {'╵', '╶', '╷', '╴'},
	puzzle.TileElbow:    {'└', '┌', '┐', '┘'},
	puzzle.TileTee:      {'┬', '┤', '┴', '├'},
}

// TileRune returns the box-drawing glyph for a tile. The glyph's open stubs
// match the tile's open sides exactly.
func TileRune(t puzzle.Tile) rune {
	switch t.Kind {
	case puzzle.TileEmpty:
		return ' '
	case puzzle.TileStraight:
		if t.Dir.Vertical() {
			return '│'
		}
		return '─'
	case puzzle.TileCross:
		return '┼'
	default:
		return tileRunes[t.Kind][t.Dir]
	}
}

// RenderWorld draws the grid one glyph per tile. The cursor cell is rendered
// reversed; a solved grid is recolored wholesale. A negative cursor row hides
// the cursor.
func RenderWorld(w *puzzle.World, cursorRow, cursorCol int, solved bool) string {
	cell := pipeStyle
	if solved {
		cell = solvedPipeStyle
	}

	var b strings.Builder
	for r := 0; r < w.Height(); r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < w.Width(); c++ {
			glyph := string(TileRune(w.At(r, c)))
			if r == cursorRow && c == cursorCol {
				b.WriteString(cursorStyle.Render(glyph))
			} else {
				b.WriteString(cell.Render(glyph))
			}
		}
	}
	return b.String()
}
