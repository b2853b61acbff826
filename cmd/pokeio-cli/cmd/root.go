package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pokeio/internal/application"
	"pokeio/internal/config"
	"pokeio/internal/di"
)

var (
	configDir string
	logFile   string
	verbose   bool
	container *di.Container
)

var rootCmd = &cobra.Command{
	Use:   "pokeio-cli",
	Short: "Browse the Pokédex from the command line",
	Long: `pokeio-cli is a command-line interface to the Pokédex served by PokeAPI.

It lists and searches the national roster, shows full entries with stats,
abilities, matchups and evolution chains, computes type matchups and keeps
a local list of favorites.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		cfg, err := config.Load(configDir)
		if err != nil {
			return err
		}
		// stderr is shared with command output; keep it quiet unless asked
		if !verbose && cfg.LogLevel == config.DefaultLogLevel {
			cfg.LogLevel = "warn"
		}
		logger, err := di.ProvideLogger(cfg, logFile)
		if err != nil {
			return err
		}
		container, err = di.NewContainer(cfg, logger)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if container == nil {
			return nil
		}
		return container.Close()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if container != nil {
			_ = container.Close()
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", config.Dir(), "directory holding config.yaml")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log at the configured level instead of warn")
}

// GetServices returns the initialized application services
func GetServices() *application.Services {
	return container.Services
}
