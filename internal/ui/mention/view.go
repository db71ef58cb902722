package mention

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const emptyListText = "no matches"

// View renders the input and, while open, the dropdown below it
func (m Model) View() string {
	in := m.input.View()
	if !m.state.Open {
		return in
	}
	return lipgloss.JoinVertical(lipgloss.Left, in, m.listView())
}

// visibleRange returns the [start, end) slice of Filtered that is on screen
func (m Model) visibleRange() (int, int) {
	start := m.offset
	end := min(start+m.maxVisible, len(m.state.Filtered))
	return start, end
}

func (m Model) listView() string {
	box := m.styles.Box
	if m.focus == FocusList {
		box = m.styles.BoxFocused
	}

	if len(m.state.Filtered) == 0 {
		return box.Render(m.styles.Empty.Render(emptyListText))
	}

	start, end := m.visibleRange()
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		label := MentionText(m.state.Filtered[i])
		if i == m.state.ActiveIndex {
			rows = append(rows, m.styles.Selected.Render(selectedMarker+label))
		} else {
			rows = append(rows, m.styles.Item.Render(unselectedMarker+label))
		}
	}
	return box.Render(strings.Join(rows, "\n"))
}
