package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"pokeio/internal/application"
	"pokeio/internal/application/commands"
	"pokeio/internal/domain"
)

// RegisterReadTools adds all read-only Pokédex tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, services *application.Services) {
	s.AddTool(listTool(), listHandler(services))
	s.AddTool(searchTool(), searchHandler(services))
	s.AddTool(showTool(), showHandler(services))
	s.AddTool(matchupTool(), matchupHandler(services))
	s.AddTool(favoritesTool(), favoritesHandler(services))
	s.AddTool(generationsTool(), generationsHandler())
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List Pokédex entries. Filters combine: generation band, name substring or exact number, favorites only."),
		mcp.WithNumber("generation",
			mcp.Description("Generation number (1-9). Omit or 0 for all generations."),
		),
		mcp.WithString("query",
			mcp.Description("Case-insensitive name substring, or an exact dex number"),
		),
		mcp.WithBoolean("favorites_only",
			mcp.Description("Only list favorite entries"),
		),
	)
}

func listHandler(services *application.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewListCommand(
			services.Roster,
			services.Favorites,
			req.GetInt("generation", 0),
			req.GetString("query", ""),
			req.GetBool("favorites_only", false),
		)
		stubs, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(stubs, formatStub(services.Favorites))
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Fuzzy search entries by name. Returns the best matches first."),
		mcp.WithString("query",
			mcp.Description("Search query (at least 2 characters)"),
			mcp.Required(),
		),
	)
}

func searchHandler(services *application.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		results, err := commands.NewSearchCommand(services.Roster, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "%s  %s  (score %d)\n", r.DisplayID(), r.Name, r.Score)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- show ---

func showTool() mcp.Tool {
	return mcp.NewTool("show",
		mcp.WithDescription("Show one entry in full: types, size, description, base stats, abilities, matchups and evolution chain."),
		mcp.WithString("query",
			mcp.Description("Dex number (25 or #025), name, or API reference"),
			mcp.Required(),
		),
	)
}

func showHandler(services *application.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		// Details are cached for the session, so type data must be in place
		// before the first resolve. A failed preload degrades the matchups
		// and is logged by the preloader.
		_ = services.Types.Ensure(ctx)

		cmd := commands.NewShowCommand(services.Roster, services.Aggregator, services.Favorites, req.GetString("query", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Text()), nil
	}
}

// --- matchup ---

func matchupTool() mcp.Tool {
	return mcp.NewTool("matchup",
		mcp.WithDescription("Defensive matchups for one or two types combined: weaknesses, resistances and immunities."),
		mcp.WithString("types",
			mcp.Description("One or two type names separated by commas or spaces (e.g. \"water, flying\")"),
			mcp.Required(),
		),
	)
}

func matchupHandler(services *application.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		types := strings.FieldsFunc(req.GetString("types", ""), func(r rune) bool {
			return r == ',' || r == ' '
		})

		result, err := commands.NewMatchupCommand(services.Types, types).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Text()), nil
	}
}

// --- favorites ---

func favoritesTool() mcp.Tool {
	return mcp.NewTool("favorites",
		mcp.WithDescription("List favorite entries in dex order."),
	)
}

func favoritesHandler(services *application.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		stubs, err := commands.NewListFavoritesCommand(services.Roster, services.Favorites).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(stubs) == 0 {
			return mcp.NewToolResultText("No favorites yet."), nil
		}
		return formatEntities(stubs, formatStub(nil))
	}
}

// --- generations ---

func generationsTool() mcp.Tool {
	return mcp.NewTool("generations",
		mcp.WithDescription("List the generation bands usable as a list filter."),
	)
}

func generationsHandler() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return formatEntities(domain.Generations, func(g domain.Generation) string {
			return fmt.Sprintf("%d  %s", g.Number, g.String())
		})
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// formatStub marks favorites when favorites is non-nil
func formatStub(favorites application.Membership) func(domain.Stub) string {
	return func(s domain.Stub) string {
		line := fmt.Sprintf("%s  %s", s.DisplayID(), s.Name)
		if favorites != nil && favorites.Has(s.Reference) {
			line += "  ★"
		}
		return line
	}
}
