package domain

import "errors"

// Sentinel errors for the flight query pipeline. Callers wrap these with
// fmt.Errorf("%w: ...") and the HTTP layer maps them to status codes with
// errors.Is. None of them is ever fatal to the process.
var (
	// ErrInvalidRequest indicates a validation failure on user input,
	// including a TripQuery missing a required field.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrMissingCredential indicates a call could not be made because its
	// credential is not configured. The dependent stage fails softly.
	ErrMissingCredential = errors.New("missing credential")

	// ErrAirportNotFound indicates airport resolution exhausted every tier
	// without producing a verified code.
	ErrAirportNotFound = errors.New("airport not found")

	// ErrNoCoordinates indicates the geocoder returned no candidates for
	// a city name.
	ErrNoCoordinates = errors.New("no coordinates found")

	// ErrUpstream indicates a transport-level failure from an external
	// service (network error or non-success status).
	ErrUpstream = errors.New("upstream service error")

	// ErrBadResponse indicates an external service answered with a body
	// that could not be parsed into the expected shape. Treated the same
	// as a transport failure.
	ErrBadResponse = errors.New("malformed upstream response")

	// ErrUnderstanding indicates the model-based extractor could not turn
	// the completion into structured trip data. Hard failure, no retry.
	ErrUnderstanding = errors.New("failed to understand query")
)
