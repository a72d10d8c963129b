package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flightquery/flightquery/internal/app"
	"github.com/flightquery/flightquery/internal/domain"
)

var askCmd = &cobra.Command{
	Use:   "ask [query...]",
	Short: "Run a free-text flight query",
	Long: `Ask runs the full pipeline for a free-text travel question and prints the
result. With --json the raw search result is printed; otherwise a short
human-readable summary is written.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		uc := app.BuildUseCase(cfg, log)
		result, err := uc.Query(context.Background(), query)
		if err != nil {
			// A result may still carry the extracted query and the
			// failure description; show it before failing.
			if result != nil {
				printResult(cmd, result)
			}
			return err
		}

		printResult(cmd, result)
		return nil
	},
}

func printResult(cmd *cobra.Command, result *domain.SearchResult) {
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(result)
		return
	}

	if result.Error != "" {
		fmt.Printf("Query failed: %s\n", result.Error)
		return
	}

	fmt.Printf("Found %d offers", result.Count)
	if result.Origin != nil && result.Destination != nil {
		fmt.Printf(" from %s (%s) to %s (%s)",
			result.Origin.City, result.Origin.Code,
			result.Destination.City, result.Destination.Code)
	}
	if result.Partial {
		fmt.Print(" (partial results)")
	}
	fmt.Println()

	for i := range result.Offers {
		offer := &result.Offers[i]
		price := "price unavailable"
		if offer.HasPrice() {
			price = fmt.Sprintf("$%.2f", offer.Price)
		}
		fmt.Printf("%2d. [%s] %s %s\n", i+1, offer.Type, price, describeOffer(offer))
	}

	if result.Reply != "" {
		fmt.Println()
		fmt.Println(result.Reply)
	}
}

func describeOffer(offer *domain.FlightOffer) string {
	switch offer.Type {
	case domain.OfferRoundTrip:
		if offer.Outbound != nil && offer.Return != nil {
			return fmt.Sprintf("%s out, %s back", offer.Outbound.Airline, offer.Return.Airline)
		}
	case domain.OfferOneWay:
		if offer.Leg != nil {
			return fmt.Sprintf("%s, %d stop(s)", offer.Leg.Airline, offer.Leg.Stops)
		}
	}
	return ""
}

func init() {
	askCmd.Flags().Bool("json", false, "print the raw search result as JSON")

	rootCmd.AddCommand(askCmd)
}
