package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"mentionbox/internal/candidates"
	"mentionbox/internal/config"
	"mentionbox/internal/eventbus"
	"mentionbox/internal/logger"
	"mentionbox/internal/ui"
	"mentionbox/internal/ui/views"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse command line arguments
	var configPath, dataPath, logPath string
	var listOnly bool
	flag.StringVar(&configPath, "config", "", "Path to config file (default: user config dir)")
	flag.StringVar(&dataPath, "data", "", "JSON file with users to suggest (default: built-in dataset)")
	flag.StringVar(&logPath, "log", "", "Log file path (overrides config)")
	flag.BoolVar(&listOnly, "list", false, "Show the user directory in a pager and exit")
	flag.Parse()

	bus := eventbus.New()
	var logFile io.Closer
	defer func() { shutdown(bus, logFile) }()

	// Load configuration
	var configSvc config.ConfigService
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath, bus)
	} else {
		configSvc = config.NewConfigServiceWithBus(bus)
	}
	_, statErr := os.Stat(configSvc.Path())
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config, using defaults: %v\n", err)
		cfg = config.DefaultConfig()
	} else if errors.Is(statErr, os.ErrNotExist) {
		// First run: write the defaults so there is a file to edit
		if err := configSvc.Save(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Could not save default config: %v\n", err)
		}
	}
	if dataPath != "" {
		cfg.DataFile = dataPath
	}
	if logPath != "" {
		cfg.LogFile = logPath
	}

	// Set up logging; the TUI owns the terminal so logs go to a file
	logFile, err = logger.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		log.SetOutput(io.Discard)
	}
	log.Info("Config loaded", "path", configSvc.Path())

	cands, source, err := candidates.Load(cfg.DataFile)
	if err != nil {
		return err
	}
	store := candidates.NewMemoryStore(cands)
	bus.Publish(eventbus.CandidatesLoadedEvent{Source: source, Count: store.Len()})
	log.Info("Candidates loaded", "source", source, "count", store.Len())

	if listOnly {
		return ui.RunPager(views.NewDirectoryRenderer(views.NewStyles()).Render(store.All()))
	}

	// The host sink: every committed mention goes through the bus and is logged
	bus.Subscribe(eventbus.EventMentionCommitted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.MentionCommittedEvent); ok {
			log.Info("Selected: " + event.Mention)
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Error(event.Message, "err", event.Err)
		}
	})
	onCommit := func(mention string) {
		bus.Publish(eventbus.MentionCommittedEvent{Mention: mention})
	}

	// Cancel the program on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	page := ui.NewPage(store, cfg, onCommit)
	p := tea.NewProgram(page, tea.WithAltScreen(), tea.WithContext(ctx))
	page.SetProgram(p)
	page.SetEventBus(bus)

	if os.Getenv("MENTIONBOX_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	log.Info("Starting UI")
	_, err = p.Run()
	// Mark the widget released. The returned command is dropped: Bubble Tea
	// turns mouse reporting off itself when the program stops.
	page.Release()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Error("Error running program", "err", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Info("UI exited normally")

	return nil
}

// shutdown closes the bus before the log file so handlers for events
// queued at exit still have somewhere to write
func shutdown(bus eventbus.EventBus, logFile io.Closer) {
	bus.Close()
	if logFile != nil {
		_ = logFile.Close()
	}
}
