package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Stub is the identity-only record listed in the roster before any detail
// is fetched. Two stubs are the same entry when their references match.
type Stub struct {
	ID        int    // e.g., 25
	Name      string // e.g., "pikachu"
	Reference string // e.g., "https://pokeapi.co/api/v2/pokemon/25/"
}

// DisplayID formats the numeric id the way the dex shows it (#001)
func (s Stub) DisplayID() string {
	return FormatDexID(s.ID)
}

// SpriteURL derives the static sprite asset for the stub from its id.
// No network call is involved; spriteBase is the asset root.
func (s Stub) SpriteURL(spriteBase string) string {
	if s.ID <= 0 {
		return PlaceholderSprite
	}
	return fmt.Sprintf("%s/%d.png", strings.TrimRight(spriteBase, "/"), s.ID)
}

// FormatDexID zero-pads an id to three digits with a leading '#'
func FormatDexID(id int) string {
	return fmt.Sprintf("#%03d", id)
}

// ParseStubID extracts the trailing numeric path segment of a reference
// (".../pokemon/25/" -> 25).
func ParseStubID(reference string) (int, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(reference), "/")
	idx := strings.LastIndex(trimmed, "/")
	segment := trimmed[idx+1:]
	if segment == "" {
		return 0, fmt.Errorf("reference %q has no trailing id", reference)
	}

	id, err := strconv.Atoi(segment)
	if err != nil {
		return 0, fmt.Errorf("reference %q: trailing segment %q is not numeric", reference, segment)
	}
	if id <= 0 {
		return 0, fmt.Errorf("reference %q: id must be positive", reference)
	}
	return id, nil
}

// Generation is a contiguous band of ids grouped into a named cohort
type Generation struct {
	Number int
	Offset int // ids strictly greater than Offset belong to the band
	Limit  int // number of ids in the band
}

// Generations is the band table used by the roster filter.
// Band 8 includes the Galar/Hisui forms that sit in the national sequence.
var Generations = []Generation{
	{1, 0, 151},
	{2, 151, 100},
	{3, 251, 135},
	{4, 386, 107},
	{5, 493, 156},
	{6, 649, 72},
	{7, 721, 88},
	{8, 809, 96},
	{9, 905, 120},
}

// First returns the first id in the band
func (g Generation) First() int {
	return g.Offset + 1
}

// Last returns the last id in the band
func (g Generation) Last() int {
	return g.Offset + g.Limit
}

// Contains reports whether id falls inside the band (inclusive on both ends)
func (g Generation) Contains(id int) bool {
	return id >= g.First() && id <= g.Last()
}

func (g Generation) String() string {
	return fmt.Sprintf("Generation %d (%s-%s)", g.Number, FormatDexID(g.First()), FormatDexID(g.Last()))
}

// LookupGeneration returns the band with the given number
func LookupGeneration(number int) (Generation, bool) {
	for _, g := range Generations {
		if g.Number == number {
			return g, true
		}
	}
	return Generation{}, false
}
