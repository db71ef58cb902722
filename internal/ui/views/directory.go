package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mentionbox/internal/domain"
)

// DirectoryRenderer renders the candidate dataset as a table for the pager
type DirectoryRenderer struct {
	styles *Styles
}

// NewDirectoryRenderer creates a new directory renderer
func NewDirectoryRenderer(styles *Styles) *DirectoryRenderer {
	return &DirectoryRenderer{styles: styles}
}

// Render returns one header line plus one line per candidate, in dataset order
func (r *DirectoryRenderer) Render(cands []domain.Candidate) string {
	idW, nameW, emailW := len("ID"), len("Mention"), len("Email")
	for _, c := range cands {
		idW = max(idW, len(fmt.Sprint(c.ID)))
		nameW = max(nameW, lipgloss.Width("@"+c.DisplayName()))
		emailW = max(emailW, lipgloss.Width(c.Email))
	}

	row := func(id, name, email, gender string) string {
		return fmt.Sprintf("%-*s  %s  %s  %s",
			idW, id,
			pad(name, nameW),
			pad(email, emailW),
			gender)
	}

	var b strings.Builder
	b.WriteString(r.styles.Title.Render(fmt.Sprintf("Directory (%d users)", len(cands))))
	b.WriteString("\n")
	b.WriteString(r.styles.Header.Render(row("ID", "Mention", "Email", "Gender")))
	for _, c := range cands {
		b.WriteString("\n")
		b.WriteString(row(fmt.Sprint(c.ID), "@"+c.DisplayName(), c.Email, r.styles.Dim.Render(c.Gender)))
	}
	return b.String()
}

// pad right-pads s to display width w
func pad(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
