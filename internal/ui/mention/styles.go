package mention

import "github.com/charmbracelet/lipgloss"

// Styles contains the style definitions for the widget
type Styles struct {
	Prompt      lipgloss.Style
	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Box         lipgloss.Style
	BoxFocused  lipgloss.Style
	Item        lipgloss.Style
	Selected    lipgloss.Style
	Empty       lipgloss.Style
}

// Marker prefixes the highlighted row
const (
	selectedMarker   = "› "
	unselectedMarker = "  "
)

// DefaultStyles returns the stock widget styles
func DefaultStyles() Styles {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241"))

	return Styles{
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Text:        lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Faint(true),
		Box:         box,
		BoxFocused:  box.BorderForeground(lipgloss.Color("39")),
		Item:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Background(lipgloss.Color("238")).
			Bold(true),
		Empty: lipgloss.NewStyle().Faint(true).Italic(true),
	}
}
