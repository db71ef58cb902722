// Package mention implements an "@" mention input for Bubble Tea programs.
//
// Typing "@" opens a dropdown of candidates whose first or last name
// contains the text after the "@". Arrow keys move the highlight with
// wraparound, Enter or a mouse click commits the highlighted candidate, and
// the input text is rewritten to end in "@First Last ".
package mention

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"mentionbox/internal/domain"
)

// Focus identifies which part of the widget receives keys
type Focus int

const (
	FocusInput Focus = iota
	FocusList
)

// CommittedMsg is returned as a command after every commit
type CommittedMsg struct {
	Mention string
}

// Item is a rendered dropdown row
type Item struct {
	Candidate domain.Candidate
	Label     string
	Selected  bool
}

// Model is the mention widget
type Model struct {
	state      State
	candidates []domain.Candidate
	onCommit   func(string)

	input  textinput.Model
	keys   KeyMap
	styles Styles
	focus  Focus

	mouse   bool
	mounted bool

	maxVisible int
	offset     int // first visible dropdown row

	originX int
	originY int
}

// Option configures a Model
type Option func(*Model)

// WithPlaceholder sets the input placeholder
func WithPlaceholder(s string) Option {
	return func(m *Model) { m.input.Placeholder = s }
}

// WithWidth sets the visible width of the input
func WithWidth(w int) Option {
	return func(m *Model) {
		if w > 0 {
			m.input.Width = w
		}
	}
}

// WithMaxVisible limits how many rows the dropdown shows before scrolling
func WithMaxVisible(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.maxVisible = n
		}
	}
}

// WithKeyMap replaces the default bindings
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

// WithStyles replaces the default styles
func WithStyles(s Styles) Option {
	return func(m *Model) { m.styles = s }
}

// WithMouse turns pointer handling on or off
func WithMouse(enabled bool) Option {
	return func(m *Model) { m.mouse = enabled }
}

// New creates the widget. onCommit receives "@First Last" once per commit.
func New(candidates []domain.Candidate, onCommit func(string), opts ...Option) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type here..."
	ti.Width = 40

	m := Model{
		state:      NewState(),
		candidates: candidates,
		onCommit:   onCommit,
		input:      ti,
		keys:       DefaultKeyMap(),
		styles:     DefaultStyles(),
		focus:      FocusInput,
		mouse:      true,
		maxVisible: 6,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.input.PromptStyle = m.styles.Prompt
	m.input.TextStyle = m.styles.Text
	m.input.PlaceholderStyle = m.styles.Placeholder
	m.input.Focus()

	return m
}

// Init starts the cursor blinking
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Mount acquires the pointer listener used for outside-click dismissal.
// Every Mount must be paired with Unmount.
func (m *Model) Mount() tea.Cmd {
	m.mounted = true
	if !m.mouse {
		return nil
	}
	return tea.EnableMouseCellMotion
}

// Unmount releases the pointer listener. It is a no-op when not mounted.
func (m *Model) Unmount() tea.Cmd {
	if !m.mounted {
		return nil
	}
	m.mounted = false
	if !m.mouse {
		return nil
	}
	return tea.DisableMouse
}

// Mounted reports whether the pointer listener is held
func (m Model) Mounted() bool {
	return m.mounted
}

// SetOrigin tells the widget where its top-left cell is on screen
func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

// Focus gives keyboard focus to the input
func (m *Model) Focus() tea.Cmd {
	m.focus = FocusInput
	return m.input.Focus()
}

// Blur removes keyboard focus from the widget
func (m *Model) Blur() {
	m.input.Blur()
}

// SetValue replaces the input text as if the user had typed it
func (m *Model) SetValue(s string) {
	m.input.SetValue(s)
	*m, _ = m.apply(TextChanged{Text: m.input.Value()})
}

// Value returns the input text
func (m Model) Value() string {
	return m.state.Text
}

// State returns a copy of the engine state
func (m Model) State() State {
	s := m.state
	s.Filtered = append([]domain.Candidate(nil), m.state.Filtered...)
	return s
}

// IsOpen reports whether the dropdown is visible
func (m Model) IsOpen() bool { return m.state.Open }

// ActiveIndex returns the highlighted row, or -1
func (m Model) ActiveIndex() int { return m.state.ActiveIndex }

func (m Model) FocusTarget() Focus { return m.focus }

func (m Model) KeyMap() KeyMap { return m.keys }

func (m Model) InputFocused() bool { return m.input.Focused() }

// Items returns the dropdown rows, or nil while the dropdown is closed
func (m Model) Items() []Item {
	if !m.state.Open {
		return nil
	}
	items := make([]Item, len(m.state.Filtered))
	for i, c := range m.state.Filtered {
		items[i] = Item{
			Candidate: c,
			Label:     MentionText(c),
			Selected:  i == m.state.ActiveIndex,
		}
	}
	return items
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.state.Open {
		switch {
		case key.Matches(msg, m.keys.Down):
			return m.apply(Navigate{Direction: Down})
		case key.Matches(msg, m.keys.Up):
			return m.apply(Navigate{Direction: Up})
		case key.Matches(msg, m.keys.Select):
			return m.apply(CommitActive{})
		case key.Matches(msg, m.keys.Dismiss):
			return m.apply(Dismiss{})
		case key.Matches(msg, m.keys.FocusList):
			if m.focus == FocusList {
				return m, m.Focus()
			}
			m.focus = FocusList
			m.input.Blur()
			return m, nil
		}
	}

	var cmds []tea.Cmd
	if m.focus == FocusList {
		cmds = append(cmds, m.Focus())
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	if after := m.input.Value(); after != before {
		var applyCmd tea.Cmd
		m, applyCmd = m.apply(TextChanged{Text: after})
		cmds = append(cmds, applyCmd)
	}

	return m, tea.Batch(cmds...)
}

// apply runs one engine transition and carries out its effect
func (m Model) apply(ev Event) (Model, tea.Cmd) {
	next, eff := Transition(m.state, m.candidates, ev)
	m.state = next

	if _, ok := ev.(TextChanged); ok {
		m.offset = 0
	}
	if !m.state.Open && m.focus == FocusList {
		m.focus = FocusInput
		m.input.Focus()
	}
	m.keepActiveVisible()

	if !eff.Committed {
		return m, nil
	}

	m.input.SetValue(m.state.Text)
	m.input.CursorEnd()

	var cmds []tea.Cmd
	if eff.Refocus {
		cmds = append(cmds, m.Focus())
	}
	if m.onCommit != nil {
		m.onCommit(eff.Mention)
	}
	mention := eff.Mention
	cmds = append(cmds, func() tea.Msg { return CommittedMsg{Mention: mention} })

	return m, tea.Batch(cmds...)
}

// keepActiveVisible scrolls the dropdown window so the highlight stays in view
func (m *Model) keepActiveVisible() {
	n := len(m.state.Filtered)
	maxOffset := max(n-m.maxVisible, 0)

	if i := m.state.ActiveIndex; i >= 0 {
		if i < m.offset {
			m.offset = i
		} else if i >= m.offset+m.maxVisible {
			m.offset = i - m.maxVisible + 1
		}
	}
	m.offset = min(max(m.offset, 0), maxOffset)
}

// scroll moves the dropdown window without changing the highlight
func (m *Model) scroll(delta int) {
	n := len(m.state.Filtered)
	maxOffset := max(n-m.maxVisible, 0)
	m.offset = min(max(m.offset+delta, 0), maxOffset)
}
