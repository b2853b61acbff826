package commands

import (
	"context"
	"fmt"

	"pokeio/internal/application"
	"pokeio/internal/domain"
)

// ToggleFavoriteResult contains the result of toggling a favorite
type ToggleFavoriteResult struct {
	Stub     domain.Stub
	Favorite bool
	Message  string
}

// ToggleFavoriteCommand flips the favorite state of one entry
type ToggleFavoriteCommand struct {
	roster *application.Roster
	ledger *application.Ledger
	Query  string
}

// NewToggleFavoriteCommand creates a new ToggleFavoriteCommand
func NewToggleFavoriteCommand(roster *application.Roster, ledger *application.Ledger, query string) *ToggleFavoriteCommand {
	return &ToggleFavoriteCommand{
		roster: roster,
		ledger: ledger,
		Query:  query,
	}
}

// Validate checks if the toggle operation is valid
func (c *ToggleFavoriteCommand) Validate() error {
	return application.ValidateRequired("query", c.Query)
}

// Execute runs the toggle favorite command
func (c *ToggleFavoriteCommand) Execute(ctx context.Context) (*ToggleFavoriteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	stub, err := findStub(ctx, c.roster, c.Query)
	if err != nil {
		return nil, err
	}

	on, err := c.ledger.Toggle(stub.Reference)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle favorite: %w", err)
	}

	verb := "Removed"
	if on {
		verb = "Added"
	}
	return &ToggleFavoriteResult{
		Stub:     stub,
		Favorite: on,
		Message:  fmt.Sprintf("%s %s %s %s favorites", verb, stub.DisplayID(), stub.Name, preposition(on)),
	}, nil
}

func preposition(on bool) string {
	if on {
		return "to"
	}
	return "from"
}
