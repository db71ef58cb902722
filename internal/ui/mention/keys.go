package mention

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings the widget reacts to while the list is open
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Dismiss   key.Binding
	FocusList key.Binding
}

// DefaultKeyMap returns the stock bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "mention"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		FocusList: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus list"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Select, k.Dismiss}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up},
		{k.Select, k.Dismiss, k.FocusList},
	}
}
