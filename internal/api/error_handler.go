package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/smartclinic/portal/internal/api/metrics"
	"github.com/smartclinic/portal/internal/api/middleware"
	"github.com/smartclinic/portal/internal/core/domain"
	"github.com/smartclinic/portal/internal/core/ports"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Discards superseded query responses with 204 instead of rendering them.
//   - Invalidates the session whenever a call reports an authorization
//     failure: the stored token is revoked, so the session must not survive it.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(sessions ports.SessionContext, log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if errors.Is(err, domain.ErrSuperseded) {
			_ = c.NoContent(http.StatusNoContent)
			return
		}

		if errors.Is(err, domain.ErrNotAuthenticated) {
			invalidateSession(sessions, c, log)
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

// invalidateSession clears the rejected session and expires its cookie.
func invalidateSession(sessions ports.SessionContext, c echo.Context, log zerolog.Logger) {
	id, _ := c.Get("session_id").(string)
	if id == "" {
		return
	}
	if err := sessions.Clear(c.Request().Context(), id); err != nil {
		log.Warn().Err(err).Msg("failed to clear rejected session")
		return
	}
	middleware.ExpireSessionCookie(c)
	metrics.SessionsClearedTotal.Inc()
	log.Info().Str("path", c.Path()).Msg("session invalidated after authorization failure")
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized, "not authenticated"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrProfileFetch):
		return http.StatusBadGateway, "failed to fetch patient data"
	case errors.Is(err, domain.ErrFetchFailure):
		return http.StatusBadGateway, err.Error()
	case errors.Is(err, domain.ErrUnknownForm):
		// Configuration error: fail loudly, never degrade silently.
		log.Error().Err(err).Str("path", c.Path()).Msg("modal configuration error")
		return http.StatusInternalServerError, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
