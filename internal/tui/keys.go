package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Quit     key.Binding
	Help     key.Binding
	Up       key.Binding
	Down     key.Binding
	More     key.Binding
	Less     key.Binding
	Log      key.Binding
	Dismiss  key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Quit, k.Help},
		{k.Up, k.Down, k.More, k.Less, k.Log, k.Dismiss},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		More: key.NewBinding(
			key.WithKeys("+", "=", "right", "l"),
			key.WithHelp("+", "more hours"),
		),
		Less: key.NewBinding(
			key.WithKeys("-", "_", "left", "h"),
			key.WithHelp("-", "fewer hours"),
		),
		Log: key.NewBinding(
			key.WithKeys("enter", "a"),
			key.WithHelp("enter", "log session"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc", "x", "enter", " "),
			key.WithHelp("x", "dismiss"),
		),
	}
}
