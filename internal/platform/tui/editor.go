package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pipelab/pipeworks/internal/puzzle"
)

// EditorModel is the interactive level editor. Typing a tile code places
// that tile at the cursor; structural keys insert and remove rows and
// columns; ctrl+s writes the serialized grid to the output path.
type EditorModel struct {
	game *puzzle.Game
	keys EditorKeyMap
	help help.Model
	path string

	dirty  bool
	status string
	errMsg string

	width  int
	height int
}

// NewEditorModel edits the given world and saves to path.
func NewEditorModel(world puzzle.World, path string) *EditorModel {
	return &EditorModel{
		game: puzzle.New(world),
		keys: DefaultEditorKeyMap(),
		help: help.New(),
		path: path,
	}
}

func (m *EditorModel) save() {
	if err := os.WriteFile(m.path, []byte(m.game.World().String()), 0o644); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.dirty = false
	m.errMsg = ""
	m.status = "saved to " + m.path
}

// Init implements tea.Model.
func (m *EditorModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		row, col := m.game.Cursor()

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Save):
			m.save()
		case key.Matches(msg, m.keys.Up):
			_ = m.game.Apply(puzzle.MoveCursor{Dir: puzzle.DirUp})
		case key.Matches(msg, m.keys.Down):
			_ = m.game.Apply(puzzle.MoveCursor{Dir: puzzle.DirDown})
		case key.Matches(msg, m.keys.Left):
			_ = m.game.Apply(puzzle.MoveCursor{Dir: puzzle.DirLeft})
		case key.Matches(msg, m.keys.Right):
			_ = m.game.Apply(puzzle.MoveCursor{Dir: puzzle.DirRight})
		case key.Matches(msg, m.keys.Rotate):
			_ = m.game.Apply(puzzle.RotateCursorTile{})
			m.touch()
		case key.Matches(msg, m.keys.InsertRow):
			_ = m.game.Apply(puzzle.InsertRow{Index: row})
			m.touch()
		case key.Matches(msg, m.keys.RemoveRow):
			_ = m.game.Apply(puzzle.RemoveRow{Index: row})
			m.touch()
		case key.Matches(msg, m.keys.InsertColumn):
			_ = m.game.Apply(puzzle.InsertColumn{Index: col})
			m.touch()
		case key.Matches(msg, m.keys.RemoveColumn):
			_ = m.game.Apply(puzzle.RemoveColumn{Index: col})
			m.touch()
		default:
			s := msg.String()
			if len(s) != 1 {
				break
			}
			tile, err := puzzle.ParseTile(s[0])
			if err != nil {
				break
			}
			_ = m.game.Apply(puzzle.ReplaceCursorTile{Tile: tile})
			m.touch()
		}
	}
	return m, nil
}

func (m *EditorModel) touch() {
	m.dirty = true
	m.status = ""
}

// View implements tea.Model.
func (m *EditorModel) View() string {
	world := m.game.World()
	row, col := m.game.Cursor()
	board := boardStyle.Render(RenderWorld(world, row, col, false))

	name := m.path
	if m.dirty {
		name += " *"
	}
	title := titleStyle.Render("pipeworks editor") + statusStyle.Render("  "+name)

	line := statusStyle.Render(fmt.Sprintf("%d×%d  cursor %d,%d", world.Height(), world.Width(), row, col))
	if m.game.Solved() {
		line += "  " + solvedBannerStyle.Render("solvable as placed")
	}
	if m.status != "" {
		line += "  " + statusStyle.Render(m.status)
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(board)
	b.WriteString("\n")
	b.WriteString(line)
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	content := b.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// RunEditor runs the editor in the local terminal.
func RunEditor(world puzzle.World, path string) error {
	p := tea.NewProgram(NewEditorModel(world, path), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
