package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keyboard shortcuts of the immediate-mode shell.
type KeyMap struct {
	ToggleDemo    key.Binding
	ToggleAnother key.Binding
	CloseAnother  key.Binding
	SliderDown    key.Binding
	SliderUp      key.Binding
	NextChannel   key.Binding
	ChannelUp     key.Binding
	ChannelDown   key.Binding
	Click         key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ToggleDemo: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "demo window"),
		),
		ToggleAnother: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "another window"),
		),
		CloseAnother: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "close me"),
		),
		SliderDown: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "slider down"),
		),
		SliderUp: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "slider up"),
		),
		NextChannel: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next color channel"),
		),
		ChannelUp: key.NewBinding(
			key.WithKeys("+", "=", "up", "k"),
			key.WithHelp("+/↑", "channel up"),
		),
		ChannelDown: key.NewBinding(
			key.WithKeys("-", "down", "j"),
			key.WithHelp("-/↓", "channel down"),
		),
		Click: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "button"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns abbreviated help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleDemo, k.ToggleAnother, k.Click, k.Help, k.Quit}
}

// FullHelp returns complete help.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleDemo, k.ToggleAnother, k.CloseAnother},
		{k.SliderDown, k.SliderUp, k.Click},
		{k.NextChannel, k.ChannelUp, k.ChannelDown},
		{k.Help, k.Quit},
	}
}
