package ui

// pagerClosedMsg contains the result of a pager command
type pagerClosedMsg struct {
	name string
	err  error
}
