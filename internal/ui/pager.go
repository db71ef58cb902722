package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// PagerOps shows long content in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (o *PagerOps) SetProgram(p *tea.Program) {
	o.program = p
}

// ShowInPager hands the terminal to ov for content and takes it back afterwards
func (o *PagerOps) ShowInPager(content string) error {
	if o.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := o.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = o.program.RestoreTerminal()
	}()

	return RunPager(content)
}

// RunPager runs ov over content on the current terminal
func RunPager(content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Don't write on exit to avoid messing with our screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
