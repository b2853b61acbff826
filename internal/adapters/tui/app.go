package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"pokeio/internal/adapters/tui/views"
	"pokeio/internal/application"
	"pokeio/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewRoster ViewState = iota
	ViewDetail
	ViewHelp
)

// typesPreloadedMsg reports the background type table load
type typesPreloadedMsg struct {
	err error
}

// App is the main TUI application model
type App struct {
	services *application.Services
	logger   *zap.Logger

	state     ViewState
	prevState ViewState
	roster    *views.RosterModel
	detail    *views.DetailModel
	help      *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(services *application.Services, opener ports.URLOpener, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		services: services,
		logger:   logger,
		state:    ViewRoster,
		roster:   views.NewRosterModel(services),
		detail:   views.NewDetailModel(services, opener),
		help:     views.NewHelpModel(),
	}
}

// Init loads the roster and, alongside it, the type relation table
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.roster.Init(), a.preloadTypes)
}

func (a *App) preloadTypes() tea.Msg {
	return typesPreloadedMsg{err: a.services.Types.Ensure(context.Background())}
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.roster.SetSize(msg.Width, msg.Height)
		a.detail.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case typesPreloadedMsg:
		// details resolved without the table show "type data unavailable"
		if msg.err != nil {
			a.logger.Warn("type table incomplete", zap.Error(msg.err))
		}
		return a, nil

	// View switching messages
	case views.SwitchToDetailMsg:
		a.state = ViewDetail
		return a, a.detail.Open(msg.Stub)

	case views.SwitchToRosterMsg:
		a.state = ViewRoster
		return a, nil

	case views.SwitchToHelpMsg:
		a.prevState = a.state
		a.state = ViewHelp
		return a, nil

	case views.HelpClosedMsg:
		a.state = a.prevState
		return a, nil

	// Both list markers and the detail heading follow the ledger
	case views.FavoriteToggledMsg:
		if msg.Err != nil {
			a.logger.Warn("favorite not saved", zap.String("reference", msg.Reference), zap.Error(msg.Err))
		}
		_, cmd1 := a.roster.Update(msg)
		_, cmd2 := a.detail.Update(msg)
		return a, tea.Batch(cmd1, cmd2)
	}

	// Keys go to the active view only; async results (loads, spinner ticks)
	// reach their view even when another one is showing
	if _, ok := msg.(tea.KeyMsg); ok {
		var cmd tea.Cmd
		switch a.state {
		case ViewRoster:
			_, cmd = a.roster.Update(msg)
		case ViewDetail:
			_, cmd = a.detail.Update(msg)
		case ViewHelp:
			_, cmd = a.help.Update(msg)
		}
		return a, cmd
	}

	_, cmd1 := a.roster.Update(msg)
	_, cmd2 := a.detail.Update(msg)
	return a, tea.Batch(cmd1, cmd2)
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewDetail:
		return a.detail.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.roster.View()
	}
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}
