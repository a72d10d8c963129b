// Package http provides the HTTP handler layer for the flight query API.
package http

import (
	"fmt"
	"strings"
)

// maxQueryLength bounds the free-text query so a request cannot feed the
// extractors unbounded input.
const maxQueryLength = 1000

// QueryFlightsRequest is the request body for POST /api/v1/flights/query.
type QueryFlightsRequest struct {
	// Query is the free-text travel question, e.g.
	// "flights from New York to Dallas from July 10 to July 13 budget 500 for 2 people"
	Query string `json:"query"`
}

// Validate checks the request before it reaches the pipeline.
func (r *QueryFlightsRequest) Validate() error {
	q := strings.TrimSpace(r.Query)
	if q == "" {
		return fmt.Errorf("query is required")
	}
	if len(q) > maxQueryLength {
		return fmt.Errorf("query exceeds %d characters", maxQueryLength)
	}
	return nil
}
