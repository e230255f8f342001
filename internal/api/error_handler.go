package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/domain"
)

// errorResponse is the error envelope used when a handler did not already
// render one. Cause carries the underlying message only for storage failures.
type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Cause   string `json:"error,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the {"status","message"} envelope the rest of the API uses.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c)
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Status: "error", Message: fmt.Sprintf("%v", he.Message)}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, errorResponse{Status: "error", Message: "Product not found"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{Status: "error", Message: "User not found"}
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, errorResponse{Status: "error", Message: "Username already exists"}
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest, errorResponse{Status: "error", Message: "Name, brand, and category are required"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Status: "error", Message: "Invalid username or password"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Status: "error", Message: "access forbidden"}
	case errors.Is(err, domain.ErrStoreCorrupt):
		// Internal admin tool: the underlying message is passed through.
		return http.StatusInternalServerError, errorResponse{Status: "error", Message: "Storage failure", Cause: err.Error()}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Status: "error", Message: "internal server error"}
}
