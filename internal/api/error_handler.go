package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/researchsphere/hub-api/internal/api/handler"
	"github.com/researchsphere/hub-api/internal/core/domain"
)

// errorEnvelope mirrors the uniform response shape for failures.
type errorEnvelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the domain error taxonomy to deterministic HTTP status codes.
//   - Renders field-level validation failures under the envelope's errors key.
//   - Logs unexpected errors internally; their message reaches the client
//     only in debug mode.
func NewHTTPErrorHandler(log zerolog.Logger, debug bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, fields := resolveError(err, log, c, debug)
		_ = c.JSON(code, errorEnvelope{Success: false, Message: msg, Errors: fields})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, debug bool) (int, string, map[string]string) {
	// Field-level validation failures carry their own messages.
	var ve *handler.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, "validation failed", ve.Fields
	}

	// Echo's own errors (guard rejections, bind failures, 404 from router).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), nil
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password", nil
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid or expired token", nil
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden", nil
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found", nil
	case errors.Is(err, domain.ErrPaperNotFound):
		return http.StatusNotFound, "research paper not found", nil
	case errors.Is(err, domain.ErrBookmarkNotFound):
		return http.StatusNotFound, "bookmark not found", nil
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "email already registered", nil
	}

	// Unexpected error: log the real cause, return a generic message outside
	// debug mode.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	if debug {
		return http.StatusInternalServerError, err.Error(), nil
	}
	return http.StatusInternalServerError, "internal server error", nil
}
