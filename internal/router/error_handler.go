package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	apperrors "blackpot/internal/errors"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their fixed HTTP status and error code.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the canonical {status, code, error, message} envelope.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		resp := resolveError(err, log, c)
		_ = c.JSON(resp.Code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) apperrors.ErrorResponse {
	// Errors raised with an explicit status and code.
	var appErr *apperrors.HTTPError
	if errors.As(err, &appErr) {
		return appErr.ToErrorResponse()
	}

	// Echo's own errors (bind failures, 404 from the router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return apperrors.ErrorResponse{
			Status:  "error",
			Code:    he.Code,
			Error:   codeForStatus(he.Code),
			Message: fmt.Sprintf("%v", he.Message),
		}
	}

	// Known domain errors map to deterministic 4xx responses.
	if mapped := apperrors.MapErrorToHTTP(err); mapped.StatusCode != http.StatusInternalServerError {
		return mapped.ToErrorResponse()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return apperrors.ErrorResponse{
		Status:  "error",
		Code:    http.StatusInternalServerError,
		Error:   "INTERNAL_ERROR",
		Message: "internal server error",
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "INVALID_TOKEN"
	case http.StatusForbidden:
		return "INSUFFICIENT_PERMISSIONS"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusTooManyRequests:
		return "RATE_LIMIT_EXCEEDED"
	default:
		return "INTERNAL_ERROR"
	}
}
