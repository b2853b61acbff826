package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pokeio/internal/application/commands"
)

var favCmd = &cobra.Command{
	Use:   "fav <number|name>",
	Short: "Toggle an entry in favorites",
	Long: `Add an entry to favorites, or remove it if it already is one.
Favorites are stored locally and survive restarts.

Examples:
  pokeio-cli fav 25
  pokeio-cli fav raichu`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		services := GetServices()

		toggleCmd := commands.NewToggleFavoriteCommand(services.Roster, services.Favorites, args[0])
		result, err := toggleCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

var favsCmd = &cobra.Command{
	Use:   "favs",
	Short: "List favorites in dex order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		services := GetServices()

		listCmd := commands.NewListFavoritesCommand(services.Roster, services.Favorites)
		stubs, err := listCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if len(stubs) == 0 {
			fmt.Println("No favorites yet")
			return nil
		}

		for _, s := range stubs {
			fmt.Printf("%s %s\n", s.DisplayID(), s.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(favCmd)
	rootCmd.AddCommand(favsCmd)
}
