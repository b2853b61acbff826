package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pokeio/internal/application/commands"
)

var (
	listGeneration    int
	listQuery         string
	listFavoritesOnly bool
	listSprites       bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List roster entries",
	Long: `List roster entries in dex order. Filters combine.

Examples:
  pokeio-cli list
  pokeio-cli list --gen 2
  pokeio-cli list --query char
  pokeio-cli list --query 25
  pokeio-cli list --favorites --sprites`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		services := GetServices()

		listCmd := commands.NewListCommand(services.Roster, services.Favorites, listGeneration, listQuery, listFavoritesOnly)
		stubs, err := listCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if len(stubs) == 0 {
			fmt.Println("No entries match")
			return nil
		}

		for _, s := range stubs {
			mark := " "
			if services.Favorites.Has(s.Reference) {
				mark = "*"
			}
			if listSprites {
				fmt.Printf("%s %s %s %s\n", mark, s.DisplayID(), s.Name, s.SpriteURL(container.Config.SpriteBaseURL))
				continue
			}
			fmt.Printf("%s %s %s\n", mark, s.DisplayID(), s.Name)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().IntVarP(&listGeneration, "gen", "g", 0, "generation band (1-9, 0 for all)")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "name substring or exact dex number")
	listCmd.Flags().BoolVarP(&listFavoritesOnly, "favorites", "f", false, "only favorites")
	listCmd.Flags().BoolVar(&listSprites, "sprites", false, "print each entry's sprite URL")
	rootCmd.AddCommand(listCmd)
}
