// Package integration provides helpers and integration tests for the flight
// query pipeline. Integration tests verify that the assembled components
// work together: HTTP handler, use case, extractor, resolver and the
// configurable mock doubles.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/flightquery/flightquery/internal/adapter/http"
	"github.com/flightquery/flightquery/internal/adapter/http/response"
	"github.com/flightquery/flightquery/internal/domain"
	"github.com/flightquery/flightquery/internal/extract"
	"github.com/flightquery/flightquery/internal/gazetteer"
	"github.com/flightquery/flightquery/internal/infrastructure/timeutil"
	"github.com/flightquery/flightquery/internal/resolver"
	"github.com/flightquery/flightquery/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.FlightHandler
}

// NewTestServer creates a new test server with the given use case.
func NewTestServer(uc usecase.FlightQueryUseCase) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewFlightHandler(uc)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// QueryRequest posts a natural-language query to the flight endpoint.
func (ts *TestServer) QueryRequest(query string) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/query",
		Body:   httpAdapter.QueryFlightsRequest{Query: query},
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseResult parses the response body as a search result.
func (r *Response) ParseResult() (*httpAdapter.SearchResultDTO, error) {
	var dto httpAdapter.SearchResultDTO
	if err := json.Unmarshal(r.Body, &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}

// ParseError parses the response body as an error payload.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	var detail response.ErrorDetail
	if err := json.Unmarshal(r.Body, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// CreateUseCase assembles the real pipeline around the given provider:
// pattern extractor anchored to 2026, gazetteer-only resolution, no
// network anywhere.
func CreateUseCase(provider domain.FlightProvider, opts ...usecase.Option) usecase.FlightQueryUseCase {
	clock := timeutil.NewMockClock(time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC))
	extractor := extract.NewPatternExtractor(clock)
	airports := resolver.New(gazetteer.New(), nil, zerolog.Nop())

	return usecase.NewFlightQueryUseCase(extractor, airports, provider, zerolog.Nop(), opts...)
}

// DefaultQuery returns a query every pipeline stage understands.
func DefaultQuery() string {
	return "from New York to Dallas from July 10 to July 13 budget 500 for 2 people"
}
