package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#EF4444") // Dex red
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#DC2626") // Dark red
	Favorite  = lipgloss.Color("#FACC15") // Gold
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Roster rows
	RowID = lipgloss.NewStyle().
		Foreground(Muted)

	RowName = lipgloss.NewStyle()

	RowSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	FavoriteMark = lipgloss.NewStyle().
			Foreground(Favorite).
			Bold(true)

	// Filter chips
	Chip = lipgloss.NewStyle().
		Foreground(White).
		Background(lipgloss.Color("#374151")).
		Padding(0, 1).
		MarginRight(1)

	ChipActive = lipgloss.NewStyle().
			Foreground(Black).
			Background(Favorite).
			Padding(0, 1).
			MarginRight(1)

	// Detail sections
	Section = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	Badge = lipgloss.NewStyle().
		Foreground(White).
		Bold(true).
		Padding(0, 1).
		MarginRight(1)

	StatBarFill  = lipgloss.NewStyle().Foreground(Secondary)
	StatBarEmpty = lipgloss.NewStyle().Foreground(lipgloss.Color("#374151"))

	TreeBranch = lipgloss.NewStyle().Foreground(Muted)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Spinner = lipgloss.NewStyle().
		Foreground(Primary)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// typeColors are the conventional badge colors of the elemental types
var typeColors = map[string]lipgloss.Color{
	"normal":   "#A8A77A",
	"fire":     "#EE8130",
	"water":    "#6390F0",
	"electric": "#F7D02C",
	"grass":    "#7AC74C",
	"ice":      "#96D9D6",
	"fighting": "#C22E28",
	"poison":   "#A33EA1",
	"ground":   "#E2BF65",
	"flying":   "#A98FF3",
	"psychic":  "#F95587",
	"bug":      "#A6B91A",
	"rock":     "#B6A136",
	"ghost":    "#735797",
	"dragon":   "#6F35FC",
	"dark":     "#705746",
	"steel":    "#B7B7CE",
	"fairy":    "#D685AD",
}

// TypeColor returns the badge color for a type name
func TypeColor(name string) lipgloss.Color {
	if c, ok := typeColors[name]; ok {
		return c
	}
	return Muted
}

// TypeBadge renders a type name as a colored badge
func TypeBadge(name string) string {
	return Badge.Background(TypeColor(name)).Render(name)
}
