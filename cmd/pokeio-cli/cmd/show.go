package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"go.uber.org/zap"

	"pokeio/internal/application/commands"
)

var showShiny bool

var showCmd = &cobra.Command{
	Use:   "show <number|name>",
	Short: "Show a full entry",
	Long: `Show one entry with its types, size, description, base stats,
abilities, defensive matchups and evolution chain.

Examples:
  pokeio-cli show 25
  pokeio-cli show "#025"
  pokeio-cli show pikachu`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		services := GetServices()

		if err := services.Types.Ensure(ctx); err != nil {
			// matchups degrade to "type data unavailable"
			container.Logger.Warn("type table incomplete", zap.Error(err))
		}

		showCmd := commands.NewShowCommand(services.Roster, services.Aggregator, services.Favorites, args[0])
		result, err := showCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if showShiny {
			fmt.Println(result.Detail.Sprites.Shiny)
			return nil
		}
		fmt.Print(result.Text())
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showShiny, "shiny", false, "print only the shiny artwork URL")
	rootCmd.AddCommand(showCmd)
}
