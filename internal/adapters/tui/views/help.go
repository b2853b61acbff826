package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pokeio/internal/adapters/tui/styles"
	"pokeio/internal/domain"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpClosedMsg asks the app to return to the view that opened help
type HelpClosedMsg struct{}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return HelpClosedMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Pokédex Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Roster"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("h / l / ← / →", "Previous/next page"))
	b.WriteString(helpLine("/", "Search by name or number"))
	b.WriteString(helpLine("[ / ]", "Previous/next generation"))
	b.WriteString(helpLine("f", "Show favorites only"))
	b.WriteString(helpLine("*", "Toggle favorite"))
	b.WriteString(helpLine("Enter", "Open details"))
	b.WriteString(helpLine("r", "Reload roster"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Details"))
	b.WriteString("\n")
	b.WriteString(helpLine("s", "Toggle shiny art"))
	b.WriteString(helpLine("y", "Copy art URL"))
	b.WriteString(helpLine("o", "Open art in the browser"))
	b.WriteString(helpLine("p", "Play cry with the default player"))
	b.WriteString(helpLine("*", "Toggle favorite"))
	b.WriteString(helpLine("r", "Retry a failed load"))
	b.WriteString(helpLine("Esc", "Back to roster"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Generations"))
	b.WriteString("\n")
	for _, g := range domain.Generations {
		b.WriteString(styles.MutedText.Render("  " + g.String()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
