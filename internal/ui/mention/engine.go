package mention

import "mentionbox/internal/domain"

// State is everything the widget knows about the current input. It only
// changes through Transition so text, visibility and selection move together.
type State struct {
	Text        string
	Open        bool
	Filtered    []domain.Candidate
	ActiveIndex int // -1 when nothing is highlighted
}

// NewState returns the state of a freshly mounted widget
func NewState() State {
	return State{
		Filtered:    []domain.Candidate{},
		ActiveIndex: -1,
	}
}

// Active returns the highlighted candidate, if any
func (s State) Active() (domain.Candidate, bool) {
	if s.ActiveIndex < 0 || s.ActiveIndex >= len(s.Filtered) {
		return domain.Candidate{}, false
	}
	return s.Filtered[s.ActiveIndex], true
}

// Event is an input to Transition
type Event interface {
	Type() string
}

type TextChanged struct {
	Text string
}

func (e TextChanged) Type() string { return "text_changed" }

// Direction of keyboard navigation
type Direction int

const (
	Down Direction = iota
	Up
)

type Navigate struct {
	Direction Direction
}

func (e Navigate) Type() string { return "navigate" }

// CommitActive commits the highlighted candidate (Enter)
type CommitActive struct{}

func (e CommitActive) Type() string { return "commit_active" }

// CommitCandidate commits a specific candidate (pointer click)
type CommitCandidate struct {
	Candidate domain.Candidate
}

func (e CommitCandidate) Type() string { return "commit_candidate" }

// Dismiss closes the list without touching the text
type Dismiss struct{}

func (e Dismiss) Type() string { return "dismiss" }

// Effect tells the caller what a transition asks of the outside world
type Effect struct {
	Committed bool
	Mention   string // set when Committed
	Refocus   bool   // move keyboard focus back to the input
}

// Transition applies ev to s. cands is the full host dataset.
func Transition(s State, cands []domain.Candidate, ev Event) (State, Effect) {
	switch ev := ev.(type) {
	case TextChanged:
		s.Text = ev.Text
		term, ok := SearchTerm(ev.Text)
		if !ok {
			s.Open = false
			return s, Effect{}
		}
		s.Open = true
		s.Filtered = Filter(cands, term)
		s.ActiveIndex = -1
		return s, Effect{}

	case Navigate:
		n := len(s.Filtered)
		if !s.Open || n == 0 {
			return s, Effect{}
		}
		switch ev.Direction {
		case Down:
			if s.ActiveIndex >= n-1 {
				s.ActiveIndex = 0
			} else {
				s.ActiveIndex++
			}
		case Up:
			if s.ActiveIndex <= 0 {
				s.ActiveIndex = n - 1
			} else {
				s.ActiveIndex--
			}
		}
		return s, Effect{}

	case CommitActive:
		if !s.Open {
			return s, Effect{}
		}
		c, ok := s.Active()
		if !ok {
			return s, Effect{}
		}
		return commit(s, c)

	case CommitCandidate:
		return commit(s, ev.Candidate)

	case Dismiss:
		s.Open = false
		return s, Effect{}
	}

	return s, Effect{}
}

func commit(s State, c domain.Candidate) (State, Effect) {
	s.Open = false
	s.Text = Splice(s.Text, c)
	return s, Effect{
		Committed: true,
		Mention:   MentionText(c),
		Refocus:   true,
	}
}
