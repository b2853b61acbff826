package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"pokeio/internal/application"
	"pokeio/internal/application/commands"
)

// RegisterWriteTools adds the tools that change local state to the MCP server.
// The catalog itself is read-only; only the favorites ledger is written.
func RegisterWriteTools(s *server.MCPServer, services *application.Services) {
	s.AddTool(toggleFavoriteTool(), toggleFavoriteHandler(services))
}

// --- toggle_favorite ---

func toggleFavoriteTool() mcp.Tool {
	return mcp.NewTool("toggle_favorite",
		mcp.WithDescription("Add an entry to favorites, or remove it if it is already one. The ledger is persisted immediately."),
		mcp.WithString("query",
			mcp.Description("Dex number (25 or #025), name, or API reference"),
			mcp.Required(),
		),
	)
}

func toggleFavoriteHandler(services *application.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewToggleFavoriteCommand(services.Roster, services.Favorites, req.GetString("query", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
