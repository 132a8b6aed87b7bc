package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pipelab/pipeworks/internal/levels"
	"github.com/pipelab/pipeworks/internal/storage"
)

var (
	pickerItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	pickerSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212"))

	pickerClearedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42"))
)

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Quit   key.Binding
}

func defaultPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Quit}
}

func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// LevelPickerModel lets the player choose a catalog entry. Cleared levels
// carry a check mark and the recorded best.
type LevelPickerModel struct {
	catalog *levels.Catalog
	store   *storage.Store
	keys    pickerKeyMap
	help    help.Model

	cursor int
	choice int

	width  int
	height int
}

// NewLevelPickerModel builds a picker over the catalog. The store may be nil.
func NewLevelPickerModel(catalog *levels.Catalog, store *storage.Store) *LevelPickerModel {
	return &LevelPickerModel{
		catalog: catalog,
		store:   store,
		keys:    defaultPickerKeyMap(),
		help:    help.New(),
		choice:  -1,
	}
}

// Choice returns the selected catalog index, or -1 when the picker was
// dismissed without choosing.
func (m *LevelPickerModel) Choice() int {
	return m.choice
}

// Init implements tea.Model.
func (m *LevelPickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *LevelPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor+1 < m.catalog.Len() {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Choose):
			m.choice = m.cursor
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *LevelPickerModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("pipeworks - choose a level"))
	b.WriteString("\n\n")

	for i := 0; i < m.catalog.Len(); i++ {
		id := m.catalog.Entry(i).ID

		mark := "  "
		extra := ""
		if m.store != nil {
			if best, ok, err := m.store.BestMoves(id); err == nil && ok {
				mark = pickerClearedStyle.Render("✓ ")
				extra = statusStyle.Render(fmt.Sprintf("  best %d", best))
			}
		}

		line := id
		if i == m.cursor {
			line = pickerSelectedStyle.Render("> " + line)
		} else {
			line = pickerItemStyle.Render("  " + line)
		}
		b.WriteString(mark + line + extra + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	content := b.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// RunLevelPicker runs the picker in the local terminal and returns the
// chosen catalog index, or -1 when dismissed.
func RunLevelPicker(catalog *levels.Catalog, store *storage.Store) (int, error) {
	m := NewLevelPickerModel(catalog, store)
	p := tea.NewProgram(m, tea.WithAltScreen())
	out, err := p.Run()
	if err != nil {
		return -1, err
	}
	if final, ok := out.(*LevelPickerModel); ok {
		return final.Choice(), nil
	}
	return m.Choice(), nil
}
