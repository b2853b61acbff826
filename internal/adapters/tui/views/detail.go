package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"pokeio/internal/adapters/tui/styles"
	"pokeio/internal/application"
	"pokeio/internal/domain"
	"pokeio/internal/ports"
)

// copyToClipboard is swapped out in tests
var copyToClipboard = clipboard.WriteAll

// DetailKeyMap defines key bindings for the detail view
type DetailKeyMap struct {
	Back   key.Binding
	Shiny  key.Binding
	Copy   key.Binding
	Open   key.Binding
	Cry    key.Binding
	Toggle key.Binding
	Retry  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var DetailKeys = DetailKeyMap{
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back"),
	),
	Shiny: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "shiny"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy art URL"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open art"),
	),
	Cry: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "play cry"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("*"),
		key.WithHelp("*", "favorite"),
	),
	Retry: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "retry"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type detailLoadedMsg struct {
	reference string
	detail    *domain.Detail
	err       error
}

// openedMsg reports a URL handed to the desktop
type openedMsg struct {
	what string
	err  error
}

// DetailModel is the model for the entry detail view
type DetailModel struct {
	ViewState
	services *application.Services
	opener   ports.URLOpener

	stub    domain.Stub
	detail  *domain.Detail
	err     error
	loading bool
	shiny   bool
	spinner spinner.Model
}

// NewDetailModel creates a new detail view model. opener may be nil, which
// disables opening art and cries.
func NewDetailModel(services *application.Services, opener ports.URLOpener) *DetailModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	return &DetailModel{
		services: services,
		opener:   opener,
		spinner:  s,
	}
}

// Open shows stub, resolving it unless the detail is already cached
func (m *DetailModel) Open(stub domain.Stub) tea.Cmd {
	m.stub = stub
	m.detail = nil
	m.err = nil
	m.shiny = false
	m.ClearMessage()

	if d, ok := m.services.Aggregator.Cached(stub.Reference); ok {
		m.detail = d
		m.loading = false
		return nil
	}
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.resolve(stub.Reference))
}

func (m *DetailModel) resolve(reference string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		// joins the startup preload; a failure leaves the matchups empty
		_ = m.services.Types.Ensure(ctx)
		d, err := m.services.Aggregator.Resolve(ctx, reference)
		return detailLoadedMsg{reference: reference, detail: d, err: err}
	}
}

// Init initializes the detail view
func (m *DetailModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail view
func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case detailLoadedMsg:
		// a late answer for an entry the user already left
		if msg.reference != m.stub.Reference {
			return m, nil
		}
		m.loading = false
		m.detail = msg.detail
		m.err = msg.err
		return m, nil

	case openedMsg:
		if msg.err != nil {
			m.SetMessage(fmt.Sprintf("Could not open %s: %v", msg.what, msg.err), true)
		} else {
			m.SetMessage("Opened "+msg.what, false)
		}
		return m, nil

	case FavoriteToggledMsg:
		if msg.Err != nil {
			m.SetMessage(msg.Err.Error(), true)
		} else if msg.Reference == m.stub.Reference {
			if msg.Favorite {
				m.SetMessage("Added to favorites", false)
			} else {
				m.SetMessage("Removed from favorites", false)
			}
		}
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, DetailKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, DetailKeys.Back):
			return m, func() tea.Msg {
				return SwitchToRosterMsg{}
			}

		case key.Matches(msg, DetailKeys.Shiny):
			m.shiny = !m.shiny

		case key.Matches(msg, DetailKeys.Copy):
			if url := m.ArtURL(); url != "" {
				if err := copyToClipboard(url); err != nil {
					m.SetMessage(fmt.Sprintf("Clipboard unavailable: %v", err), true)
				} else {
					m.SetMessage("Copied "+url, false)
				}
			}

		case key.Matches(msg, DetailKeys.Open):
			if url := m.ArtURL(); url != "" {
				return m, m.open("artwork", url)
			}

		case key.Matches(msg, DetailKeys.Cry):
			if m.detail != nil && m.detail.HasCry() {
				return m, m.open("cry", m.detail.Cry)
			}

		case key.Matches(msg, DetailKeys.Toggle):
			return m, ToggleFavorite(m.services.Favorites, m.stub.Reference)

		case key.Matches(msg, DetailKeys.Retry):
			if m.err != nil && !m.loading {
				return m, m.Open(m.stub)
			}

		case key.Matches(msg, DetailKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

// open hands url to the desktop off the update loop
func (m *DetailModel) open(what, url string) tea.Cmd {
	if m.opener == nil {
		m.SetMessage("Opening URLs is not available", true)
		return nil
	}
	opener := m.opener
	return func() tea.Msg {
		return openedMsg{what: what, err: opener.Open(url)}
	}
}

// ArtURL returns the sprite currently shown, default or shiny
func (m *DetailModel) ArtURL() string {
	if m.detail == nil {
		return ""
	}
	if m.shiny {
		return m.detail.Sprites.Shiny
	}
	return m.detail.Sprites.Default
}

// View renders the detail view
func (m *DetailModel) View() string {
	vb := NewViewBuilder().Title(m.heading())

	switch {
	case m.loading:
		vb.Line(m.spinner.View() + " Loading " + titleCase(m.stub.Name) + "...")
		return vb.String()
	case m.err != nil:
		vb.Message(fmt.Sprintf("Could not load %s: %v", m.stub.Name, m.err), true)
		return vb.Help(DetailKeys.Retry, DetailKeys.Back, DetailKeys.Quit).String()
	case m.detail == nil:
		return vb.Muted("Nothing selected.").String()
	}

	d := m.detail
	vb.Line(RenderTypes(d.TypeNames()))
	vb.BlankLine()
	vb.Line(RenderLabelValue("Height", fmt.Sprintf("%.1f m", d.HeightMetres())))
	vb.Line(RenderLabelValue("Weight", fmt.Sprintf("%.1f kg", d.WeightKilograms())))
	vb.Line(RenderLabelValue("Art", m.artLabel()))
	if d.HasCry() {
		vb.Line(RenderLabelValue("Cry", d.Cry))
	}
	vb.BlankLine()
	vb.Line(d.Description)
	vb.BlankLine()

	vb.Section("Base stats")
	for _, s := range d.Stats {
		vb.Line(RenderStatBar(s, 24))
	}
	vb.Line(fmt.Sprintf("%s %3d", styles.HelpDesc.Render(padRight("total", 16)), d.StatTotal()))
	vb.BlankLine()

	vb.Section("Abilities")
	for _, a := range d.Abilities {
		name := titleCase(a.Name)
		if a.Hidden {
			name += RenderMuted(" (hidden)")
		}
		vb.Line("  " + name + " " + RenderMuted(a.Description))
	}
	vb.BlankLine()

	vb.Section("Matchups")
	for _, line := range m.matchupLines() {
		vb.Line(line)
	}
	vb.BlankLine()

	vb.Section("Evolution")
	d.Evolution.Walk(func(depth int, node domain.EvolutionNode) {
		prefix := ""
		if depth > 0 {
			prefix = strings.Repeat("   ", depth-1) + styles.TreeBranch.Render("└─ ")
		}
		name := titleCase(node.SpeciesName)
		if node.SpeciesName == d.Name {
			name = styles.Success.Render(name)
		}
		vb.Line("  " + prefix + name)
	})
	vb.BlankLine()

	vb.Message(m.Message, m.MessageErr)
	return vb.Help(
		DetailKeys.Back,
		DetailKeys.Shiny,
		DetailKeys.Copy,
		DetailKeys.Open,
		DetailKeys.Cry,
		DetailKeys.Toggle,
		DetailKeys.Help,
		DetailKeys.Quit,
	).String()
}

func (m *DetailModel) heading() string {
	h := fmt.Sprintf("%s %s", m.stub.DisplayID(), titleCase(m.stub.Name))
	if m.services.Favorites.Has(m.stub.Reference) {
		h += " " + styles.FavoriteMark.Render("★")
	}
	return h
}

func (m *DetailModel) artLabel() string {
	url := m.ArtURL()
	if m.shiny {
		return url + RenderMuted(" (shiny)")
	}
	return url
}

func (m *DetailModel) matchupLines() []string {
	d := m.detail
	var missing []string
	for _, t := range d.Types {
		if t.Relations == nil {
			missing = append(missing, t.Name)
		}
	}
	if len(missing) == len(d.Types) {
		return []string{RenderMuted("  Type data unavailable.")}
	}

	lines := []string{
		"  " + RenderLabelValue("Weak to", RenderTypes(d.Matchups.Weaknesses)),
		"  " + RenderLabelValue("Resists", RenderTypes(d.Matchups.Resistances)),
	}
	if len(d.Matchups.Immunities) > 0 {
		lines = append(lines, "  "+RenderLabelValue("Immune to", RenderTypes(d.Matchups.Immunities)))
	}
	if len(missing) > 0 {
		lines = append(lines, RenderMuted("  No type data for "+strings.Join(missing, ", ")+"."))
	}
	return lines
}
