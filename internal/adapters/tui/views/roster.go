package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pokeio/internal/adapters/tui/styles"
	"pokeio/internal/application"
	"pokeio/internal/domain"
)

// RosterKeyMap defines key bindings for the roster view
type RosterKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding
	Enter     key.Binding
	Search    key.Binding
	NextGen   key.Binding
	PrevGen   key.Binding
	Favorites key.Binding
	Toggle    key.Binding
	Reload    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var RosterKeys = RosterKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right", "pgdown", "ctrl+f"),
		key.WithHelp("l/→", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left", "pgup", "ctrl+b"),
		key.WithHelp("h/←", "prev page"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	NextGen: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next gen"),
	),
	PrevGen: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "prev gen"),
	),
	Favorites: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "favorites only"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("*"),
		key.WithHelp("*", "favorite"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
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

// searchKeys are active while the search input has focus
var searchKeys = struct {
	Done   key.Binding
	Cancel key.Binding
}{
	Done: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "done"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
}

type rosterLoadedMsg struct {
	stubs []domain.Stub
}

type rosterErrMsg struct {
	err error
}

// RosterModel is the model for the roster list view
type RosterModel struct {
	ViewState
	services *application.Services

	visible       []domain.Stub
	generation    int // 0 = all
	favoritesOnly bool

	searching   bool
	searchInput textinput.Model
	spinner     spinner.Model
	paginator   *Paginator

	loading bool
	loaded  bool
}

// NewRosterModel creates a new roster view model
func NewRosterModel(services *application.Services) *RosterModel {
	input := textinput.New()
	input.Placeholder = "name or number"
	input.Prompt = "Search: "
	input.CharLimit = 32

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	return &RosterModel{
		services:    services,
		searchInput: input,
		spinner:     s,
		paginator:   NewPaginator(defaultPageSize),
	}
}

// Init starts the roster load
func (m *RosterModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.loadRoster)
}

func (m *RosterModel) loadRoster() tea.Msg {
	stubs, err := m.services.Roster.LoadAll(context.Background())
	if err != nil {
		return rosterErrMsg{err}
	}
	return rosterLoadedMsg{stubs}
}

// Update handles messages for the roster view
func (m *RosterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	case rosterLoadedMsg:
		m.loading = false
		m.loaded = true
		m.ClearMessage()
		m.refresh()
		return m, nil

	case rosterErrMsg:
		m.loading = false
		m.SetMessage(fmt.Sprintf("Could not load the roster: %v (press r to retry)", msg.err), true)
		return m, nil

	case FavoriteToggledMsg:
		if msg.Err != nil {
			m.SetMessage(msg.Err.Error(), true)
			return m, nil
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *RosterModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, searchKeys.Done):
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case key.Matches(msg, searchKeys.Cancel):
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.paginator.Reset()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	before := m.searchInput.Value()
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != before {
		m.paginator.Reset()
		m.refresh()
	}
	return m, cmd
}

func (m *RosterModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.ClearMessage()

	switch {
	case key.Matches(msg, RosterKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, RosterKeys.Up):
		m.paginator.CursorUp()
	case key.Matches(msg, RosterKeys.Down):
		m.paginator.CursorDown()
	case key.Matches(msg, RosterKeys.NextPage):
		m.paginator.NextPage()
	case key.Matches(msg, RosterKeys.PrevPage):
		m.paginator.PrevPage()

	case key.Matches(msg, RosterKeys.Search):
		m.searching = true
		return m, m.searchInput.Focus()

	case key.Matches(msg, RosterKeys.NextGen):
		m.generation = (m.generation + 1) % (len(domain.Generations) + 1)
		m.paginator.Reset()
		m.refresh()
	case key.Matches(msg, RosterKeys.PrevGen):
		m.generation = (m.generation + len(domain.Generations)) % (len(domain.Generations) + 1)
		m.paginator.Reset()
		m.refresh()

	case key.Matches(msg, RosterKeys.Favorites):
		m.favoritesOnly = !m.favoritesOnly
		m.paginator.Reset()
		m.refresh()

	case key.Matches(msg, RosterKeys.Toggle):
		if stub, ok := m.Selected(); ok {
			return m, ToggleFavorite(m.services.Favorites, stub.Reference)
		}

	case key.Matches(msg, RosterKeys.Enter):
		if stub, ok := m.Selected(); ok {
			return m, func() tea.Msg {
				return SwitchToDetailMsg{Stub: stub}
			}
		}

	case key.Matches(msg, RosterKeys.Reload):
		if !m.loading {
			return m, m.Init()
		}

	case key.Matches(msg, RosterKeys.Help):
		return m, func() tea.Msg {
			return SwitchToHelpMsg{}
		}
	}

	return m, nil
}

// ToggleFavorite flips reference in ledger off the update loop
func ToggleFavorite(ledger *application.Ledger, reference string) tea.Cmd {
	return func() tea.Msg {
		on, err := ledger.Toggle(reference)
		return FavoriteToggledMsg{Reference: reference, Favorite: on, Err: err}
	}
}

// refresh reapplies the filter to the held roster
func (m *RosterModel) refresh() {
	m.visible = m.services.Roster.Filter(m.Filter())
	m.paginator.SetTotal(len(m.visible))
}

// Filter returns the filter the view currently applies
func (m *RosterModel) Filter() application.Filter {
	return application.Filter{
		Generation:    m.generation,
		Query:         m.searchInput.Value(),
		FavoritesOnly: m.favoritesOnly,
		Favorites:     m.services.Favorites,
	}
}

// Selected returns the stub under the cursor
func (m *RosterModel) Selected() (domain.Stub, bool) {
	c := m.paginator.Cursor()
	if c >= 0 && c < len(m.visible) {
		return m.visible[c], true
	}
	return domain.Stub{}, false
}

// Visible returns the stubs that pass the current filter
func (m *RosterModel) Visible() []domain.Stub {
	return m.visible
}

// SetSize updates the view dimensions and the page size
func (m *RosterModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	// title, chips, search, pager, message and help take about 12 rows
	if rows := height - 12; rows > 0 {
		m.paginator.SetPageSize(rows)
	}
}

// View renders the roster
func (m *RosterModel) View() string {
	vb := NewViewBuilder().Title("Pokédex")

	if m.loading && !m.loaded {
		vb.Line(m.spinner.View() + " Loading roster...")
		return vb.Message(m.Message, m.MessageErr).String()
	}

	vb.Subtitle(fmt.Sprintf("%d of %d entries", len(m.visible), m.services.Roster.Len()))
	vb.Line(m.renderChips())
	if m.searching || m.searchInput.Value() != "" {
		vb.Line(m.searchInput.View())
	}
	vb.BlankLine()

	if len(m.visible) == 0 {
		vb.Muted("No entries match.")
	} else {
		start, end := m.paginator.VisibleRange()
		for i := start; i < end; i++ {
			vb.Line(m.renderRow(m.visible[i], i == m.paginator.Cursor()))
		}
	}

	vb.BlankLine()
	vb.Muted(fmt.Sprintf("Page %d/%d", m.paginator.CurrentPage(), m.paginator.TotalPages()))
	vb.Message(m.Message, m.MessageErr)

	if m.searching {
		return vb.Help(searchKeys.Done, searchKeys.Cancel).String()
	}
	return vb.Help(
		RosterKeys.Enter,
		RosterKeys.Search,
		RosterKeys.PrevGen,
		RosterKeys.NextGen,
		RosterKeys.Favorites,
		RosterKeys.Toggle,
		RosterKeys.Help,
		RosterKeys.Quit,
	).String()
}

func (m *RosterModel) renderChips() string {
	gen := "All generations"
	if g, ok := domain.LookupGeneration(m.generation); ok {
		gen = g.String()
	}
	return RenderChip(gen, m.generation != 0) + RenderChip("★ favorites", m.favoritesOnly)
}

func (m *RosterModel) renderRow(stub domain.Stub, selected bool) string {
	mark := "  "
	if m.services.Favorites.Has(stub.Reference) {
		mark = styles.FavoriteMark.Render("★ ")
	}
	text := fmt.Sprintf("%s %s", stub.DisplayID(), titleCase(stub.Name))
	if selected {
		return mark + styles.RowSelected.Render(text)
	}
	return mark + styles.RowID.Render(stub.DisplayID()) + " " + styles.RowName.Render(titleCase(stub.Name))
}

// titleCase capitalizes each dash-separated word (mr-mime -> Mr-Mime)
func titleCase(name string) string {
	parts := strings.Split(name, "-")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, "-")
}
