package extract

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/flightquery/flightquery/internal/domain"
	"github.com/flightquery/flightquery/internal/infrastructure/timeutil"
)

// Extraction patterns, applied in order. The destination pattern stops at
// the first trailing whitespace, dot or comma after a lazy match; a
// multiword destination followed by more trip details can still
// over-capture ("Dallas, Texas from New York"), which is a known
// imprecision of this extractor, not corrected here.
var (
	originPattern   = regexp.MustCompile(`from\s+([A-Za-z\s]+?)\s+to`)
	destPattern     = regexp.MustCompile(`to\s+([A-Za-z\s]+?)(?:\s|\.|,|$)`)
	datePatternFrom = regexp.MustCompile(`(?i)from\s+([A-Za-z]+)\s+(\d+)(?:st|nd|rd|th)?\s+to\s+([A-Za-z]+)\s+(\d+)(?:st|nd|rd|th)?`)
	datePatternBare = regexp.MustCompile(`(?i)([A-Za-z]+)\s+(\d+)(?:st|nd|rd|th)?\s+to\s+([A-Za-z]+)\s+(\d+)(?:st|nd|rd|th)?`)
	budgetPattern   = regexp.MustCompile(`budget\s+(?:is\s+|of\s+)?\$?(\d+)`)
	peoplePattern   = regexp.MustCompile(`(\d+)\s+(?:people|persons|passengers)`)
)

// PatternExtractor extracts trip parameters with ordered regular
// expressions. Month/day dates anchor to the clock's current year; there is
// no rollover handling for queries that span a year boundary.
type PatternExtractor struct {
	clock timeutil.Clock
}

// NewPatternExtractor creates a PatternExtractor on the given clock.
func NewPatternExtractor(clock timeutil.Clock) *PatternExtractor {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &PatternExtractor{clock: clock}
}

// Extract never fails: fields that do not match stay empty and the caller
// validates completeness.
func (e *PatternExtractor) Extract(_ context.Context, query string) (domain.TripQuery, error) {
	q := domain.TripQuery{Passengers: 1}

	if m := originPattern.FindStringSubmatch(query); m != nil {
		q.Origin = strings.TrimSpace(m[1])
	}
	if m := destPattern.FindStringSubmatch(query); m != nil {
		q.Destination = strings.TrimSpace(m[1])
	}

	q.DepartureDate, q.ReturnDate = e.extractDates(query)

	if m := budgetPattern.FindStringSubmatch(query); m != nil {
		if amount, err := strconv.ParseFloat(m[1], 64); err == nil {
			flightShare := amount * domain.FlightBudgetShare
			q.Budget = &amount
			q.FlightBudget = &flightShare
		}
	}

	if m := peoplePattern.FindStringSubmatch(query); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 {
			q.Passengers = n
		}
	}

	return q, nil
}

// extractDates matches the two-date pattern, preferring the from-prefixed
// form so "from July 10 to July 13" is not shadowed by a route phrase.
// Both dates must parse for either to be kept.
func (e *PatternExtractor) extractDates(query string) (depart, ret string) {
	m := datePatternFrom.FindStringSubmatch(query)
	if m == nil {
		m = datePatternBare.FindStringSubmatch(query)
	}
	if m == nil {
		return "", ""
	}

	departMonth, ok1 := parseMonth(m[1])
	returnMonth, ok2 := parseMonth(m[3])
	if !ok1 || !ok2 {
		return "", ""
	}

	departDay, err1 := strconv.Atoi(m[2])
	returnDay, err2 := strconv.Atoi(m[4])
	if err1 != nil || err2 != nil {
		return "", ""
	}

	year := e.clock.Now().Year()
	depart = fmt.Sprintf("%d-%02d-%02d", year, departMonth, departDay)
	ret = fmt.Sprintf("%d-%02d-%02d", year, returnMonth, returnDay)
	return depart, ret
}

// parseMonth accepts full month names first, then abbreviated ones, in any
// letter case.
func parseMonth(s string) (time.Month, bool) {
	title := capitalize(s)

	if t, err := time.Parse("January", title); err == nil {
		return t.Month(), true
	}
	if t, err := time.Parse("Jan", title); err == nil {
		return t.Month(), true
	}
	return 0, false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// Ensure PatternExtractor implements Extractor at compile time.
var _ Extractor = (*PatternExtractor)(nil)
