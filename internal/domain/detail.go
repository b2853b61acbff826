package domain

import "strings"

const (
	// PlaceholderSprite is the local asset shown when no artwork exists
	PlaceholderSprite = "img/pokeball.png"

	// DescriptionUnavailable marks a description that could not be fetched
	// or has no English entry
	DescriptionUnavailable = "Description unavailable."

	// NoDescription is shown when a species has no English flavor text
	NoDescription = "No description available."

	// MaxBaseStat is the ceiling used to scale stat bars
	MaxBaseStat = 255
)

// Detail is the aggregated, render-ready view of one entry. Once built it
// is cached by reference and never modified.
type Detail struct {
	Reference        string
	ID               int
	Name             string
	HeightDecimetres int
	WeightHectograms int
	Description      string
	Types            []TypeSlot
	Abilities        []Ability
	Stats            []Stat
	Evolution        EvolutionTree
	Sprites          Sprites
	Cry              string // empty when the entry has no cry
	Matchups         Effectiveness
}

// TypeSlot is one of the entry's types. Relations is nil when the type
// table was not preloaded.
type TypeSlot struct {
	Name      string
	Relations *TypeRelations
}

// Ability is one ability with its English short effect
type Ability struct {
	Name        string
	Hidden      bool
	Description string
}

// Available reports whether the description was resolved
func (a Ability) Available() bool {
	return a.Description != DescriptionUnavailable
}

// AbilityDescription is the English short effect of an ability reference
type AbilityDescription struct {
	Reference   string
	ShortEffect string
}

// Stat is a base stat as the API names it (e.g., "special-attack")
type Stat struct {
	Name string
	Base int
}

// Label is the stat name with dashes replaced by spaces
func (s Stat) Label() string {
	return strings.ReplaceAll(s.Name, "-", " ")
}

// Percent scales the stat against MaxBaseStat, capped at 100
func (s Stat) Percent() float64 {
	return min(100, float64(s.Base)/MaxBaseStat*100)
}

// Sprites holds the resolved default and shiny artwork
type Sprites struct {
	Default string
	Shiny   string
}

// DisplayID formats the id as #001
func (d *Detail) DisplayID() string {
	return FormatDexID(d.ID)
}

// HeightMetres converts decimetres to metres
func (d *Detail) HeightMetres() float64 {
	return float64(d.HeightDecimetres) / 10
}

// WeightKilograms converts hectograms to kilograms
func (d *Detail) WeightKilograms() float64 {
	return float64(d.WeightHectograms) / 10
}

// HasCry reports whether a cry can be played
func (d *Detail) HasCry() bool {
	return d.Cry != ""
}

// TypeNames returns the type names in slot order
func (d *Detail) TypeNames() []string {
	names := make([]string, len(d.Types))
	for i, t := range d.Types {
		names[i] = t.Name
	}
	return names
}

// StatTotal sums the base stats
func (d *Detail) StatTotal() int {
	total := 0
	for _, s := range d.Stats {
		total += s.Base
	}
	return total
}

var flavorReplacer = strings.NewReplacer("\n", " ", "\f", " ", "\r", " ")

// CleanFlavorText removes the line and form feeds the API embeds in flavor text
func CleanFlavorText(s string) string {
	return flavorReplacer.Replace(s)
}

// FirstAvailable returns the first non-empty candidate, or fallback
func FirstAvailable(fallback string, candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return fallback
}
