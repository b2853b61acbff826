package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pokeio/internal/adapters/browser"
	"pokeio/internal/adapters/tui"
	"pokeio/internal/config"
	"pokeio/internal/di"
	"pokeio/internal/logging"
)

func main() {
	cfg, err := config.Load(config.Dir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The alternate screen owns stderr, so logs always go to a file
	logger, err := di.ProvideLogger(cfg, logging.DefaultFile())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	c, err := di.NewContainer(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	app := tui.NewApp(c.Services, browser.NewOpener(), logger.Named("tui"))

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		c.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
