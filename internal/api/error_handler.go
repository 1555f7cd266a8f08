package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fitplanner/fitness-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Renders unmatched routes and disallowed methods uniformly as
//     404 {"error":"Not found"}: a route either matches exactly or it
//     does not exist.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (404 from the router, 405, bind failures).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code == http.StatusNotFound || he.Code == http.StatusMethodNotAllowed {
			return http.StatusNotFound, "Not found"
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors, in case a handler lets one propagate.
	switch {
	case errors.Is(err, domain.ErrInvalidUserData):
		return http.StatusBadRequest, "Invalid data"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Wrong email or password"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "Email already used"
	case errors.Is(err, domain.ErrInvalidPlanData):
		return http.StatusBadRequest, "Invalid plan data"
	case errors.Is(err, domain.ErrUserIDRequired):
		return http.StatusBadRequest, "user_id is required"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
