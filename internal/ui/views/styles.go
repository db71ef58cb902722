package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the style definitions for the host page
type Styles struct {
	Title   lipgloss.Style
	Section lipgloss.Style
	Key     lipgloss.Style
	Desc    lipgloss.Style
	Dim     lipgloss.Style
	Status  lipgloss.Style
	Mention lipgloss.Style
	Header  lipgloss.Style
	Help    lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		Key:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Desc: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:  lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Mention: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true), // green
		Header:  lipgloss.NewStyle().Bold(true).Underline(true),
		Help:    lipgloss.NewStyle().Faint(true).MarginTop(1),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
	}
}
