package commands

import (
	"context"
	"fmt"
	"strings"

	"pokeio/internal/application"
	"pokeio/internal/domain"
)

// maxMatchupTypes is the most types a single entry can carry
const maxMatchupTypes = 2

// MatchupResult is the combined effectiveness of a type combination
type MatchupResult struct {
	Types         []string
	Effectiveness domain.Effectiveness
}

// MatchupCommand combines the preloaded relations of one or two types
type MatchupCommand struct {
	preloader *application.TypePreloader
	Types     []string
}

// NewMatchupCommand creates a new MatchupCommand
func NewMatchupCommand(preloader *application.TypePreloader, types []string) *MatchupCommand {
	normalized := make([]string, 0, len(types))
	for _, t := range types {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			normalized = append(normalized, t)
		}
	}
	return &MatchupCommand{preloader: preloader, Types: normalized}
}

// Validate checks the number of types
func (c *MatchupCommand) Validate() error {
	if len(c.Types) == 0 {
		return &application.ValidationError{Field: "typeName", Message: "at least one type name is required"}
	}
	if len(c.Types) > maxMatchupTypes {
		return &application.ValidationError{
			Field:   "typeName",
			Message: fmt.Sprintf("at most %d types can be combined, got %d", maxMatchupTypes, len(c.Types)),
		}
	}
	return nil
}

// Execute makes sure the type table is loaded and combines the
// relations of the requested types
func (c *MatchupCommand) Execute(ctx context.Context) (*MatchupResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.preloader.Ensure(ctx); err != nil && len(c.preloader.Names()) == 0 {
		return nil, fmt.Errorf("failed to load type relations: %w", err)
	}

	relations := make([]domain.TypeRelations, 0, len(c.Types))
	for _, name := range c.Types {
		rel, ok := c.preloader.Relations(name)
		if !ok {
			return nil, &application.ValidationError{
				Field:   "typeName",
				Message: fmt.Sprintf("unknown type %q (known: %s)", name, strings.Join(c.preloader.Names(), ", ")),
			}
		}
		relations = append(relations, rel)
	}

	return &MatchupResult{
		Types:         c.Types,
		Effectiveness: domain.Combine(relations...),
	}, nil
}
