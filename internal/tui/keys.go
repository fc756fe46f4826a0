package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	PrevDay  key.Binding
	NextDay  key.Binding
	Today    key.Binding
	Up       key.Binding
	Down     key.Binding
	Refresh  key.Binding
	Complete key.Binding
	Skip     key.Binding
	Delete   key.Binding
	Dup      key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	PrevDay: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h", "prev day"),
	),
	NextDay: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l", "next day"),
	),
	Today: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "today"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j", "down"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Complete: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "complete"),
	),
	Skip: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "skip"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Dup: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "duplicate"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay, k.Refresh, k.Complete, k.Skip, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDay, k.NextDay, k.Today, k.Up, k.Down},
		{k.Refresh, k.Complete, k.Skip, k.Delete, k.Dup},
		{k.Help, k.Quit},
	}
}
