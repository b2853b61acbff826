package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pokeio/internal/application/commands"
)

var matchupCmd = &cobra.Command{
	Use:   "matchup <type> [type]",
	Short: "Show defensive matchups for one or two types",
	Long: `Combine the damage relations of one or two types and print which
attacking types are super effective, resisted, or have no effect.

Examples:
  pokeio-cli matchup fire
  pokeio-cli matchup water flying`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		matchupCmd := commands.NewMatchupCommand(GetServices().Types, args)
		result, err := matchupCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Print(result.Text())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(matchupCmd)
}
