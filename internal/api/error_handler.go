package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/heatflow/simulation-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. The
// correlation id is only set for unexpected failures so operators can find
// the logged cause without it leaking to the client.
type errorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
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
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, errorResponse{Error: "authentication required"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Error: "invalid credentials"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Error: "access forbidden"}
	case errors.Is(err, domain.ErrSubscriptionInactive):
		return http.StatusForbidden, errorResponse{Error: "subscription is not active"}
	case errors.Is(err, domain.ErrSimulationNotFound):
		return http.StatusNotFound, errorResponse{Error: "simulation not found"}
	case errors.Is(err, domain.ErrMaterialNotFound):
		return http.StatusNotFound, errorResponse{Error: "material not found"}
	case errors.Is(err, domain.ErrResultNotFound):
		return http.StatusNotFound, errorResponse{Error: "result not found"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{Error: "user not found"}
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, errorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, errorResponse{Error: "user already exists"}
	case errors.Is(err, domain.ErrStorageConflict):
		return http.StatusConflict, errorResponse{Error: "file already exists"}
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, errorResponse{Error: "file exceeds the 50 MiB limit"}
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusUnsupportedMediaType, errorResponse{Error: "unsupported geometry file type"}
	case errors.Is(err, domain.ErrQuotaExceeded):
		return http.StatusTooManyRequests, errorResponse{Error: "simulation quota exceeded"}
	}

	// Unexpected error: log the real cause, return a generic message with a
	// correlation id the caller can quote back to support.
	correlationID := c.Response().Header().Get(echo.HeaderXRequestID)
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("correlation_id", correlationID).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{
		Error:         "internal server error",
		CorrelationID: correlationID,
	}
}
