package commands

import (
	"context"
	"fmt"

	"pokeio/internal/application"
	"pokeio/internal/domain"
)

// ListCommand lists the roster narrowed by generation, query and favorites
type ListCommand struct {
	roster        *application.Roster
	favorites     application.Membership
	Generation    int
	Query         string
	FavoritesOnly bool
}

// NewListCommand creates a new ListCommand. favorites may be nil when the
// favorites-only filter is never requested.
func NewListCommand(roster *application.Roster, favorites application.Membership, generation int, query string, favoritesOnly bool) *ListCommand {
	return &ListCommand{
		roster:        roster,
		favorites:     favorites,
		Generation:    generation,
		Query:         query,
		FavoritesOnly: favoritesOnly,
	}
}

// Validate checks the filter arguments
func (c *ListCommand) Validate() error {
	return application.ValidateGeneration("generation", c.Generation)
}

// Execute loads the roster if needed and returns the matching stubs
func (c *ListCommand) Execute(ctx context.Context) ([]domain.Stub, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := ensureRoster(ctx, c.roster); err != nil {
		return nil, err
	}

	return c.roster.Filter(application.Filter{
		Generation:    c.Generation,
		Query:         c.Query,
		FavoritesOnly: c.FavoritesOnly,
		Favorites:     c.favorites,
	}), nil
}

// ListFavoritesCommand lists the favorite entries in roster order
type ListFavoritesCommand struct {
	roster *application.Roster
	ledger *application.Ledger
}

// NewListFavoritesCommand creates a new ListFavoritesCommand
func NewListFavoritesCommand(roster *application.Roster, ledger *application.Ledger) *ListFavoritesCommand {
	return &ListFavoritesCommand{roster: roster, ledger: ledger}
}

// Execute runs the list favorites command
func (c *ListFavoritesCommand) Execute(ctx context.Context) ([]domain.Stub, error) {
	if c.ledger.Len() == 0 {
		return nil, nil
	}
	if err := ensureRoster(ctx, c.roster); err != nil {
		return nil, err
	}
	return c.roster.Filter(application.Filter{FavoritesOnly: true, Favorites: c.ledger}), nil
}

// ensureRoster loads the roster once per process
func ensureRoster(ctx context.Context, roster *application.Roster) error {
	if roster.Len() > 0 {
		return nil
	}
	if _, err := roster.LoadAll(ctx); err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}
	return nil
}
