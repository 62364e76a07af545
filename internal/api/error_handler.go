package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/userhub/user-management-api/internal/api/handler"
	"github.com/userhub/user-management-api/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders every error through the {status, message, errors} envelope.
//   - Maps known domain errors to their deterministic HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, envelope := resolveError(err, log, c)
		_ = c.JSON(code, envelope)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, handler.Envelope) {
	envelope := handler.Envelope{Status: "error"}

	// Validation failures carry the full ordered field list.
	var ve *handler.ValidationError
	if errors.As(err, &ve) {
		envelope.Message = "Validation failed"
		envelope.Errors = ve.Fields
		return http.StatusBadRequest, envelope
	}

	// Echo's own errors (bind failures, 404 from the router, middleware).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		envelope.Message = fmt.Sprintf("%v", he.Message)
		return he.Code, envelope
	}

	// Known domain errors.
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		envelope.Message = "User not found"
		return http.StatusNotFound, envelope
	case errors.Is(err, domain.ErrEmailTaken):
		envelope.Message = "User with this email already exists"
		return http.StatusConflict, envelope
	case errors.Is(err, domain.ErrAdminExists):
		envelope.Message = "Admin with this email already exists"
		return http.StatusConflict, envelope
	case errors.Is(err, domain.ErrAdminNotFound):
		envelope.Message = "Admin not found"
		return http.StatusNotFound, envelope
	case errors.Is(err, domain.ErrInvalidCredentials):
		envelope.Message = "Invalid credentials"
		return http.StatusUnauthorized, envelope
	case errors.Is(err, domain.ErrTokenExpired):
		envelope.Message = "Token has expired"
		return http.StatusUnauthorized, envelope
	case errors.Is(err, domain.ErrTokenInvalid):
		envelope.Message = "Invalid token"
		return http.StatusUnauthorized, envelope
	case errors.Is(err, domain.ErrPrincipalNotFound):
		envelope.Message = "Invalid token or user no longer exists"
		return http.StatusUnauthorized, envelope
	case errors.Is(err, domain.ErrForbidden):
		envelope.Message = "Access denied. Insufficient permissions."
		return http.StatusForbidden, envelope
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	envelope.Message = "Internal server error"
	return http.StatusInternalServerError, envelope
}
