package commands

import (
	"context"
	"errors"
	"fmt"

	"pokeio/internal/application"
	"pokeio/internal/domain"
)

// ShowResult contains a resolved entry and its favorite state
type ShowResult struct {
	Detail   *domain.Detail
	Favorite bool
}

// ShowCommand resolves the full detail of one entry
type ShowCommand struct {
	roster     *application.Roster
	aggregator *application.Aggregator
	favorites  application.Membership
	Query      string
}

// NewShowCommand creates a new ShowCommand
func NewShowCommand(roster *application.Roster, aggregator *application.Aggregator, favorites application.Membership, query string) *ShowCommand {
	return &ShowCommand{
		roster:     roster,
		aggregator: aggregator,
		favorites:  favorites,
		Query:      query,
	}
}

// Validate checks if the show operation is valid
func (c *ShowCommand) Validate() error {
	return application.ValidateRequired("query", c.Query)
}

// Execute finds the entry by id, name or reference and resolves it
func (c *ShowCommand) Execute(ctx context.Context) (*ShowResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	stub, err := findStub(ctx, c.roster, c.Query)
	if err != nil {
		return nil, err
	}

	detail, err := c.aggregator.Resolve(ctx, stub.Reference)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", stub.Name, err)
	}

	result := &ShowResult{Detail: detail}
	if c.favorites != nil {
		result.Favorite = c.favorites.Has(stub.Reference)
	}
	return result, nil
}

// findStub looks query up in the roster. A miss carries the closest names
// so front-ends can offer them.
func findStub(ctx context.Context, roster *application.Roster, query string) (domain.Stub, error) {
	if err := ensureRoster(ctx, roster); err != nil {
		return domain.Stub{}, err
	}
	stub, err := roster.Find(query)
	if err == nil {
		return stub, nil
	}
	if !errors.Is(err, application.ErrNotFound) {
		return domain.Stub{}, err
	}

	suggestions := Suggest(roster.Stubs(), query, maxSuggestions)
	if len(suggestions) == 0 {
		return domain.Stub{}, err
	}
	return domain.Stub{}, &NotFoundError{Query: query, Suggestions: suggestions}
}

// NotFoundError is a roster miss with close matches attached
type NotFoundError struct {
	Query       string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no entry matches %q (did you mean %s?)", e.Query, joinOr(e.Suggestions))
}

func (e *NotFoundError) Is(target error) bool {
	return target == application.ErrNotFound
}

func joinOr(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	out := ""
	for i, n := range names {
		switch {
		case i == 0:
			out = n
		case i == len(names)-1:
			out += " or " + n
		default:
			out += ", " + n
		}
	}
	return out
}
