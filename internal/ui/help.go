package ui

import (
	"fmt"
	"strings"

	"mentionbox/internal/ui/views"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	styles *views.Styles
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(styles *views.Styles) *HelpRenderer {
	return &HelpRenderer{styles: styles}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	s := r.styles
	line := func(k, desc string) string {
		return fmt.Sprintf("  %s  %s\n", s.Key.Render(fmt.Sprintf("%-12s", k)), s.Desc.Render(desc))
	}

	var help strings.Builder

	help.WriteString(s.Title.Render("mentionbox Help"))
	help.WriteString("\n")

	help.WriteString(s.Section.Render("Mentions"))
	help.WriteString("\n")
	help.WriteString(line("@", "Start a mention; the text after it filters users"))
	help.WriteString(line("↓, ctrl+n", "Highlight next user (wraps)"))
	help.WriteString(line("↑, ctrl+p", "Highlight previous user (wraps)"))
	help.WriteString(line("enter", "Insert the highlighted user"))
	help.WriteString(line("click", "Insert the clicked user"))
	help.WriteString(line("tab", "Move focus into the list"))
	help.WriteString(line("esc", "Close the list"))
	help.WriteString("\n")

	help.WriteString(s.Section.Render("Other"))
	help.WriteString("\n")
	help.WriteString(line("f1", "Show this help"))
	help.WriteString(line("f2", "Browse the user directory"))
	help.WriteString(line("ctrl+c", "Quit"))

	help.WriteString("\n")
	help.WriteString(s.Dim.Render("  Only the first \"@\" in the input is tracked."))

	return help.String()
}
