package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"mentionbox/internal/ui/mention"
)

// pageKeyMap holds the page-level bindings. Printable keys belong to the
// mention input, so the page only uses function and control keys.
type pageKeyMap struct {
	Quit      key.Binding
	Help      key.Binding
	Directory key.Binding
}

func defaultPageKeyMap() pageKeyMap {
	return pageKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Directory: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "directory"),
		),
	}
}

// footerKeys combines the widget and page bindings for the help footer
type footerKeys struct {
	page    pageKeyMap
	mention mention.KeyMap
}

func (k footerKeys) ShortHelp() []key.Binding {
	return append(k.mention.ShortHelp(), k.page.Help, k.page.Directory, k.page.Quit)
}

func (k footerKeys) FullHelp() [][]key.Binding {
	return append(k.mention.FullHelp(), []key.Binding{k.page.Help, k.page.Directory, k.page.Quit})
}
