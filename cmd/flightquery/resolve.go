package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flightquery/flightquery/internal/adapter/provider/flyscraper"
	"github.com/flightquery/flightquery/internal/app"
	"github.com/flightquery/flightquery/internal/infrastructure/ratelimit"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <city>",
	Short: "Resolve a city name to an airport code",
	Long: `Resolve runs only the airport resolution chain for one city name and
prints the code and the tier that produced it. Useful for checking what the
full pipeline would use before spending a flight search on it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		city := args[0]

		limiter := ratelimit.New(ratelimit.Config{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			BurstSize:         cfg.RateLimit.BurstSize,
		})
		searcher := flyscraper.New(cfg.Credentials.RapidAPIKey, cfg.Timeouts.FlightSearch,
			limiter, log.WithComponent("flyscraper").Logger)
		r := app.BuildResolver(cfg, limiter, searcher, log)

		res, err := r.Resolve(context.Background(), city)
		if err != nil {
			return err
		}

		fmt.Printf("%s -> %s (source: %s", res.City, res.Code, res.Source)
		if res.Synthetic {
			fmt.Print(", synthetic placeholder")
		}
		fmt.Println(")")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
