// Package main is the entry point for the flightquery CLI. It exposes the
// same pipeline as the HTTP server for one-off queries from the terminal.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/flightquery/flightquery/internal/config"
	"github.com/flightquery/flightquery/internal/infrastructure/logger"
)

// cfg and log are loaded once before any subcommand runs.
var (
	cfg *config.Config
	log *logger.Logger
)

// rootCmd is the base command for the flightquery CLI.
var rootCmd = &cobra.Command{
	Use:   "flightquery",
	Short: "Natural-language flight search from the terminal",
	Long: `flightquery answers free-text travel questions like
"flights from New York to Dallas from July 10 to July 13 budget 500 for 2 people".

It extracts the trip parameters, resolves both cities to airport codes and
searches for flights. Configuration comes from environment variables and an
optional .env file, the same way the server reads it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		level := cfg.Logging.Level
		if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			level = "error"
		}
		log = logger.NewWithOutput(logger.Config{
			Level:       level,
			Format:      "console",
			ServiceName: "flightquery",
		}, os.Stderr)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress log output below error level")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
