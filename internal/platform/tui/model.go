package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pipelab/pipeworks/internal/config"
	"github.com/pipelab/pipeworks/internal/levels"
	"github.com/pipelab/pipeworks/internal/puzzle"
	"github.com/pipelab/pipeworks/internal/storage"
)

// PlayModel is the interactive play session over a level catalog. The store
// may be nil, in which case clears are not recorded.
type PlayModel struct {
	catalog *levels.Catalog
	store   *storage.Store
	cfg     config.Config
	keys    KeyMap
	help    help.Model

	index int
	game  *puzzle.Game
	moves int
	best  int
	found bool
	saved bool

	width  int
	height int
	status string
	errMsg string
}

// NewPlayModel starts a session at the given catalog index.
func NewPlayModel(catalog *levels.Catalog, store *storage.Store, cfg config.Config, start int) (*PlayModel, error) {
	if catalog.Len() == 0 {
		return nil, fmt.Errorf("level catalog is empty")
	}
	if start < 0 || start >= catalog.Len() {
		start = 0
	}

	seed := cfg.Shuffle.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	world, err := catalog.World(start)
	if err != nil {
		return nil, err
	}

	m := &PlayModel{
		catalog: catalog,
		store:   store,
		cfg:     cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		index:   start,
		game:    puzzle.New(world, puzzle.WithSeed(seed), puzzle.WithPolicy(cfg.Solve.Policy())),
	}
	m.startLevel(start)
	return m, nil
}

// startLevel resets the game onto the catalog entry at index i, shuffling
// per config, and reloads the recorded best for that level.
func (m *PlayModel) startLevel(i int) {
	world, err := m.catalog.World(i)
	if err != nil {
		m.errMsg = err.Error()
		return
	}

	m.index = i
	m.moves = 0
	m.saved = false
	m.errMsg = ""
	m.status = ""

	_ = m.game.Apply(puzzle.Reset{World: world})
	if m.cfg.Shuffle.Enabled {
		_ = m.game.Apply(puzzle.Shuffle{})
	}

	m.best, m.found = 0, false
	if m.store != nil {
		best, ok, err := m.store.BestMoves(m.levelID())
		if err != nil {
			m.errMsg = err.Error()
			return
		}
		m.best, m.found = best, ok
	}
}

func (m *PlayModel) levelID() string {
	return m.catalog.Entry(m.index).ID
}

// recordClear persists the solve once per level start.
func (m *PlayModel) recordClear() {
	if m.saved {
		return
	}
	m.saved = true
	m.status = "solved!"
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveClear(m.levelID(), m.moves); err != nil {
		m.errMsg = err.Error()
		return
	}
	if !m.found || m.moves < m.best {
		m.best, m.found = m.moves, true
	}
}

// Init implements tea.Model.
func (m *PlayModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Up):
			_ = m.game.Apply(puzzle.MoveCursor{Dir: puzzle.DirUp})
		case key.Matches(msg, m.keys.Down):
			_ = m.game.Apply(puzzle.MoveCursor{Dir: puzzle.DirDown})
		case key.Matches(msg, m.keys.Left):
			_ = m.game.Apply(puzzle.MoveCursor{Dir: puzzle.DirLeft})
		case key.Matches(msg, m.keys.Right):
			_ = m.game.Apply(puzzle.MoveCursor{Dir: puzzle.DirRight})
		case key.Matches(msg, m.keys.Rotate):
			if m.game.Solved() {
				break
			}
			_ = m.game.Apply(puzzle.RotateCursorTile{})
			m.moves++
			if m.game.Solved() {
				m.recordClear()
			}
		case key.Matches(msg, m.keys.Restart):
			m.startLevel(m.index)
		case key.Matches(msg, m.keys.NextLevel):
			if m.index+1 < m.catalog.Len() {
				m.startLevel(m.index + 1)
			}
		case key.Matches(msg, m.keys.PrevLevel):
			if m.index > 0 {
				m.startLevel(m.index - 1)
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *PlayModel) View() string {
	row, col := m.game.Cursor()
	if m.game.Solved() {
		row, col = -1, -1
	}
	board := boardStyle.Render(RenderWorld(m.game.World(), row, col, m.game.Solved()))

	title := titleStyle.Render("pipeworks") + statusStyle.Render(
		fmt.Sprintf("  %s (%d/%d)", m.levelID(), m.index+1, m.catalog.Len()))

	status := fmt.Sprintf("moves: %d", m.moves)
	if m.found {
		status += fmt.Sprintf("  best: %d", m.best)
	}
	line := statusStyle.Render(status)
	if m.game.Solved() {
		line += "  " + solvedBannerStyle.Render("SOLVED - press ] for next level")
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

// RunPlay runs a play session in the local terminal.
func RunPlay(m *PlayModel) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
