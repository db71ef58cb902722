package mention

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type hitArea int

const (
	hitOutside hitArea = iota
	hitInput
	hitList // border or empty space of the dropdown
	hitItem
)

type hit struct {
	area  hitArea
	index int // index into Filtered for hitItem
}

// hitTest maps a screen cell to the part of the widget under it
func (m Model) hitTest(x, y int) hit {
	relX, relY := x-m.originX, y-m.originY
	if relX < 0 || relY < 0 {
		return hit{area: hitOutside}
	}

	if relY == 0 {
		if relX < m.inputWidth() {
			return hit{area: hitInput}
		}
		return hit{area: hitOutside}
	}

	if !m.state.Open {
		return hit{area: hitOutside}
	}

	list := m.listView()
	listY := relY - 1
	if relX >= lipgloss.Width(list) || listY >= lipgloss.Height(list) {
		return hit{area: hitOutside}
	}

	// first row is the top border
	row := listY - 1
	start, end := m.visibleRange()
	if row >= 0 && start+row < end {
		return hit{area: hitItem, index: start + row}
	}
	return hit{area: hitList}
}

// inputWidth is the width of the input row: prompt, text area and cursor
func (m Model) inputWidth() int {
	w := lipgloss.Width(m.input.Prompt) + m.input.Width + 1
	return max(w, lipgloss.Width(m.input.View()))
}

// handleMouse implements click-to-commit and outside-click dismissal
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.mounted || !m.mouse {
		return m, nil
	}

	h := m.hitTest(msg.X, msg.Y)

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if h.area == hitItem || h.area == hitList {
			m.scroll(-1)
		}
		return m, nil
	case tea.MouseButtonWheelDown:
		if h.area == hitItem || h.area == hitList {
			m.scroll(1)
		}
		return m, nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch h.area {
	case hitItem:
		return m.apply(CommitCandidate{Candidate: m.state.Filtered[h.index]})
	case hitList:
		m.focus = FocusList
		m.input.Blur()
		return m, nil
	case hitInput:
		return m, m.Focus()
	default:
		if m.state.Open {
			return m.apply(Dismiss{})
		}
		return m, nil
	}
}
