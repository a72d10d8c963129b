package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/flightquery/flightquery/internal/adapter/http/response"
	"github.com/flightquery/flightquery/internal/domain"
	"github.com/flightquery/flightquery/internal/usecase"
)

// FlightHandler handles HTTP requests for flight query endpoints.
type FlightHandler struct {
	useCase usecase.FlightQueryUseCase
}

// NewFlightHandler creates a new FlightHandler with the given use case.
func NewFlightHandler(uc usecase.FlightQueryUseCase) *FlightHandler {
	return &FlightHandler{
		useCase: uc,
	}
}

// QueryFlights handles POST /api/v1/flights/query
//
// @Summary Query flights with natural language
// @Description Extracts trip parameters from a free-text query, resolves the cities to airport codes and searches for flights
// @Tags flights
// @Accept json
// @Produce json
// @Param request body QueryFlightsRequest true "Free-text travel query"
// @Success 200 {object} SearchResultDTO
// @Failure 400 {object} response.ErrorDetail "Malformed or incomplete query"
// @Failure 404 {object} response.ErrorDetail "City could not be resolved to an airport"
// @Failure 502 {object} response.ErrorDetail "Upstream flight search failed"
// @Failure 504 {object} response.ErrorDetail "Request timed out"
// @Router /api/v1/flights/query [post]
func (h *FlightHandler) QueryFlights(c echo.Context) error {
	var req QueryFlightsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return response.BadRequest(c, err.Error())
	}

	result, err := h.useCase.Query(c.Request().Context(), req.Query)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToSearchResultDTO(result))
}

// handleError maps pipeline errors to HTTP responses.
func (h *FlightHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnderstanding):
		return response.NotUnderstood(c, err.Error())

	case errors.Is(err, domain.ErrInvalidRequest):
		return response.BadRequest(c, err.Error())

	case errors.Is(err, domain.ErrAirportNotFound):
		return response.AirportNotFound(c, err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)

	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)

	case errors.Is(err, domain.ErrUpstream),
		errors.Is(err, domain.ErrBadResponse),
		errors.Is(err, domain.ErrMissingCredential),
		errors.Is(err, domain.ErrNoCoordinates):
		return response.UpstreamError(c, err.Error())

	default:
		return response.InternalServerError(c)
	}
}

// Health handles GET /health
// Simple health check endpoint.
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}
