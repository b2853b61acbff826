package commands

import (
	"fmt"
	"strings"

	"pokeio/internal/domain"
)

// Text renders the entry as plain text for the CLI and MCP front-ends
func (r *ShowResult) Text() string {
	d := r.Detail
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s %s", d.DisplayID(), d.Name)
	if r.Favorite {
		sb.WriteString(" ★")
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Types: %s\n", strings.Join(d.TypeNames(), ", "))
	fmt.Fprintf(&sb, "Height: %.1f m  Weight: %.1f kg\n", d.HeightMetres(), d.WeightKilograms())
	fmt.Fprintf(&sb, "Art: %s\nShiny: %s\n", d.Sprites.Default, d.Sprites.Shiny)
	if d.HasCry() {
		fmt.Fprintf(&sb, "Cry: %s\n", d.Cry)
	}
	fmt.Fprintf(&sb, "\n%s\n\nBase stats:\n", d.Description)
	for _, s := range d.Stats {
		fmt.Fprintf(&sb, "  %-16s %3d\n", s.Label(), s.Base)
	}
	fmt.Fprintf(&sb, "  %-16s %3d\n", "total", d.StatTotal())

	sb.WriteString("\nAbilities:\n")
	for _, a := range d.Abilities {
		hidden := ""
		if a.Hidden {
			hidden = " (hidden)"
		}
		fmt.Fprintf(&sb, "  %s%s: %s\n", a.Name, hidden, a.Description)
	}

	sb.WriteString("\nMatchups:\n")
	if hasRelations(d) {
		sb.WriteString(effectivenessText(d.Matchups))
	} else {
		sb.WriteString("  Type data unavailable.\n")
	}

	sb.WriteString("\nEvolution:\n")
	d.Evolution.Walk(func(depth int, node domain.EvolutionNode) {
		fmt.Fprintf(&sb, "  %s%s\n", strings.Repeat("  ", depth), node.SpeciesName)
	})
	return sb.String()
}

// Text renders the combined matchups as plain text
func (r *MatchupResult) Text() string {
	return fmt.Sprintf("Defending as %s:\n", strings.Join(r.Types, "/")) + effectivenessText(r.Effectiveness)
}

func hasRelations(d *domain.Detail) bool {
	for _, t := range d.Types {
		if t.Relations != nil {
			return true
		}
	}
	return false
}

func effectivenessText(e domain.Effectiveness) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Weak to:   %s\n", joinOrNone(e.Weaknesses))
	fmt.Fprintf(&sb, "  Resists:   %s\n", joinOrNone(e.Resistances))
	fmt.Fprintf(&sb, "  Immune to: %s\n", joinOrNone(e.Immunities))
	return sb.String()
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}
