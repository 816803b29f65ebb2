package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Inc      key.Binding
	Dec      key.Binding
	IncLarge key.Binding
	DecLarge key.Binding
	Reset    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down", "j"),
			key.WithHelp("tab/↓", "next control"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up", "k"),
			key.WithHelp("shift+tab/↑", "previous control"),
		),
		Inc: key.NewBinding(
			key.WithKeys("right", "l", "+"),
			key.WithHelp("→", "increase / next option"),
		),
		Dec: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←", "decrease / previous option"),
		),
		IncLarge: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("shift+→", "+1.0"),
		),
		DecLarge: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("shift+←", "-1.0"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Inc, k.Dec, k.Reset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Inc, k.Dec, k.IncLarge, k.DecLarge},
		{k.Reset, k.Help, k.Quit},
	}
}
