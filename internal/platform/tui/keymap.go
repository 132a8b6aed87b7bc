// Package tui provides the Bubble Tea terminal frontend: the play session,
// the level picker, the level editor, and SSH serving via Wish.
package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings for a play session.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Rotate    key.Binding
	Restart   key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default play bindings: arrows, wasd and hjkl
// move, space or enter rotates.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s/j", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d/l", "move right"),
		),
		Rotate: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space/enter", "rotate tile"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart level"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous level"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rotate, k.Restart, k.NextLevel, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Rotate, k.Restart},
		{k.NextLevel, k.PrevLevel, k.Quit},
	}
}

// EditorKeyMap extends the play bindings with structural edit keys. Letters
// that double as tile codes stay free for tile entry.
type EditorKeyMap struct {
	KeyMap
	InsertRow    key.Binding
	RemoveRow    key.Binding
	InsertColumn key.Binding
	RemoveColumn key.Binding
	Save         key.Binding
}

// DefaultEditorKeyMap returns the default editor bindings.
func DefaultEditorKeyMap() EditorKeyMap {
	km := DefaultKeyMap()
	// Space is the empty-tile code, so rotation is enter-only here.
	km.Rotate = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "rotate tile"),
	)

	return EditorKeyMap{
		KeyMap: km,
		InsertRow: key.NewBinding(
			key.WithKeys("I"),
			key.WithHelp("I", "insert row"),
		),
		RemoveRow: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "remove row"),
		),
		InsertColumn: key.NewBinding(
			key.WithKeys("O"),
			key.WithHelp("O", "insert column"),
		),
		RemoveColumn: key.NewBinding(
			key.WithKeys("Z"),
			key.WithHelp("Z", "remove column"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k EditorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rotate, k.InsertRow, k.InsertColumn, k.Save, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k EditorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Rotate, k.InsertRow, k.RemoveRow},
		{k.InsertColumn, k.RemoveColumn},
		{k.Save, k.Quit},
	}
}
