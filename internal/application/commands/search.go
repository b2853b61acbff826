package commands

import (
	"context"
	"sort"
	"strings"

	"pokeio/internal/application"
	"pokeio/internal/domain"
)

// maxSuggestions caps the names offered after a failed lookup
const maxSuggestions = 3

// SearchResult wraps a stub with a relevance score
type SearchResult struct {
	domain.Stub
	Score int
}

// SearchCommand ranks roster entries by fuzzy name match
type SearchCommand struct {
	roster *application.Roster
	Query  string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(roster *application.Roster, query string) *SearchCommand {
	return &SearchCommand{
		roster: roster,
		Query:  query,
	}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	if len(c.Query) < 2 {
		return nil, nil
	}
	if err := ensureRoster(ctx, c.roster); err != nil {
		return nil, err
	}
	return FuzzySort(c.roster.Stubs(), c.Query), nil
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Exact substring match ranks highest
	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: chars must appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && target[i-1] == '-' {
				score += 10 // after separator (mr-mime, ho-oh)
			}
			score++
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// FuzzySort scores stubs by name against query and returns the matches,
// best first. Ties keep roster order.
func FuzzySort(stubs []domain.Stub, query string) []SearchResult {
	scored := make([]SearchResult, 0, len(stubs))

	for _, s := range stubs {
		if score := FuzzyScore(s.Name, query); score > 0 {
			scored = append(scored, SearchResult{Stub: s, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// Suggest returns up to n names that fuzzily match query
func Suggest(stubs []domain.Stub, query string, n int) []string {
	results := FuzzySort(stubs, query)
	if len(results) > n {
		results = results[:n]
	}
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Name
	}
	return names
}
