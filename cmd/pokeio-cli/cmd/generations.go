package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pokeio/internal/domain"
)

var generationsCmd = &cobra.Command{
	Use:   "generations",
	Short: "List the generation bands usable with list --gen",
	Args:  cobra.NoArgs,
	// no network or store needed
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		for _, g := range domain.Generations {
			fmt.Printf("%d %s\n", g.Number, g)
		}
	},
}

func init() {
	rootCmd.AddCommand(generationsCmd)
}
