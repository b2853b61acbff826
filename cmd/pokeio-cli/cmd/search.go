package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pokeio/internal/application/commands"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy search the roster",
	Long: `Search roster entries by name.

Results are ranked by relevance using fuzzy matching.

Examples:
  pokeio-cli search pika
  pokeio-cli search mrmime`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]
		ctx := context.Background()

		searchCmd := commands.NewSearchCommand(GetServices().Roster, query)
		results, err := searchCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("No results found")
			return nil
		}

		for _, r := range results {
			fmt.Printf("%s %s\n", r.DisplayID(), r.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
