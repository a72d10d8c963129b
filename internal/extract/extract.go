// Package extract converts free-text travel queries into structured trip
// parameters. Two interchangeable extractors share the contract: the
// deterministic pattern extractor and the model-based one.
package extract

import (
	"context"

	"github.com/flightquery/flightquery/internal/domain"
)

// Extractor turns a natural-language query into a TripQuery. Fields that
// cannot be determined stay at their zero value; the caller decides whether
// the result is complete enough to act on. Implementations never panic.
type Extractor interface {
	Extract(ctx context.Context, query string) (domain.TripQuery, error)
}

// Completer is the completion-service call the model extractor depends on.
// Implemented by the groq client.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
