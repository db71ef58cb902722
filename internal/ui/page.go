package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"mentionbox/internal/candidates"
	"mentionbox/internal/config"
	"mentionbox/internal/eventbus"
	"mentionbox/internal/ui/mention"
	"mentionbox/internal/ui/views"
)

const pageTitle = "@-Mentions"

// Page is the host screen: a title, the mention input and a help footer
type Page struct {
	mention mention.Model
	store   candidates.Store

	keys      pageKeyMap
	help      help.Model
	styles    *views.Styles
	helpText  *HelpRenderer
	directory *views.DirectoryRenderer
	pager     *PagerOps
	events    eventbus.EventBus

	width       int
	height      int
	lastMention string
	pagerErr    string
}

// NewPage creates the host page. onCommit receives every committed mention.
func NewPage(store candidates.Store, cfg *config.Config, onCommit func(string)) *Page {
	styles := views.NewStyles()

	p := &Page{
		store: store,
		mention: mention.New(store.All(), onCommit,
			mention.WithPlaceholder(cfg.UISettings.Placeholder),
			mention.WithWidth(cfg.UISettings.InputWidth),
			mention.WithMaxVisible(cfg.UISettings.MaxVisible),
			mention.WithMouse(cfg.UISettings.Mouse),
		),
		keys:      defaultPageKeyMap(),
		help:      help.New(),
		styles:    styles,
		helpText:  NewHelpRenderer(styles),
		directory: views.NewDirectoryRenderer(styles),
		pager:     NewPagerOps(),
	}

	// The widget sits directly under the title
	p.mention.SetOrigin(0, lipgloss.Height(p.header()))

	return p
}

// SetProgram sets the program reference for terminal management
func (p *Page) SetProgram(prog *tea.Program) {
	p.pager.SetProgram(prog)
}

// SetEventBus sets the bus that receives page errors
func (p *Page) SetEventBus(bus eventbus.EventBus) {
	p.events = bus
}

// Init mounts the widget, acquiring its pointer listener
func (p *Page) Init() tea.Cmd {
	return tea.Batch(p.mention.Init(), p.mention.Mount())
}

// Release unmounts the widget. Safe to call on any exit path.
func (p *Page) Release() tea.Cmd {
	return p.mention.Unmount()
}

// Mention exposes the widget for inspection
func (p *Page) Mention() mention.Model {
	return p.mention
}

// LastMention returns the most recent committed mention
func (p *Page) LastMention() string {
	return p.lastMention
}

// Update handles messages
func (p *Page) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.help.Width = msg.Width
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Quit):
			return p, p.quit()
		case key.Matches(msg, p.keys.Help):
			return p, p.showPager("help", p.helpText.RenderHelpContent())
		case key.Matches(msg, p.keys.Directory):
			return p, p.showPager("directory", p.directory.Render(p.store.All()))
		}

	case mention.CommittedMsg:
		p.lastMention = msg.Mention
		return p, nil

	case pagerClosedMsg:
		if msg.err != nil {
			// Pager failed: report it and show a short note
			p.pagerErr = "could not open " + msg.name
			if p.events != nil {
				p.events.Publish(eventbus.ErrorEvent{Message: p.pagerErr, Err: msg.err})
			} else {
				log.Error("Pager failed", "pager", msg.name, "err", msg.err)
			}
		} else {
			p.pagerErr = ""
		}
		// the terminal was handed back; re-acquire pointer reporting
		if p.mention.Mounted() {
			return p, p.mention.Mount()
		}
		return p, nil
	}

	var cmd tea.Cmd
	p.mention, cmd = p.mention.Update(msg)
	return p, cmd
}

// quit releases the widget before asking the program to stop
func (p *Page) quit() tea.Cmd {
	if release := p.Release(); release != nil {
		return tea.Sequence(release, tea.Quit)
	}
	return tea.Quit
}

// showPager returns a command that shows content using the ov pager
func (p *Page) showPager(name, content string) tea.Cmd {
	pager := p.pager
	return func() tea.Msg {
		return pagerClosedMsg{name: name, err: pager.ShowInPager(content)}
	}
}

func (p *Page) header() string {
	return p.styles.Title.Render(pageTitle)
}

// View renders the page
func (p *Page) View() string {
	status := p.styles.Dim.Render("No mention yet")
	if p.lastMention != "" {
		status = "Last mention: " + p.styles.Mention.Render(p.lastMention)
	}
	if p.pagerErr != "" {
		status += "  " + p.styles.Error.Render(p.pagerErr)
	}

	footer := p.help.View(footerKeys{page: p.keys, mention: p.mention.KeyMap()})

	return lipgloss.JoinVertical(lipgloss.Left,
		p.header(),
		p.mention.View(),
		p.styles.Status.Render(status),
		p.styles.Help.Render(footer),
	)
}
