package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/userhub/user-management-api/internal/api/metrics"
	"github.com/userhub/user-management-api/internal/core/domain"
	"github.com/userhub/user-management-api/internal/core/ports"
)

const identityKey = "identity"

// IdentityFrom extracts the principal attached by the Auth middleware.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(domain.Identity)
	return identity, ok
}

// Auth verifies the bearer token, loads the administrator it names, checks
// the account is still active, and attaches the identity to the request
// context. Runs before every protected handler.
func Auth(tokens ports.TokenService, repo ports.AuthRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				metrics.AuthFailuresTotal.WithLabelValues("missing_credential").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Access token is required")
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")

			adminID, err := tokens.Verify(token)
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.AuthFailuresTotal.WithLabelValues("token_expired").Inc()
				} else {
					metrics.AuthFailuresTotal.WithLabelValues("token_invalid").Inc()
				}
				return err
			}

			admin, err := repo.FindByID(c.Request().Context(), adminID)
			if err != nil {
				if errors.Is(err, domain.ErrAdminNotFound) {
					metrics.AuthFailuresTotal.WithLabelValues("principal_not_found").Inc()
					return domain.ErrPrincipalNotFound
				}
				return err
			}
			if !admin.IsActive {
				metrics.AuthFailuresTotal.WithLabelValues("principal_inactive").Inc()
				return domain.ErrPrincipalNotFound
			}

			c.Set(identityKey, domain.Identity{
				ID:    admin.ID,
				Email: admin.Email,
				Role:  admin.Role,
			})

			return next(c)
		}
	}
}
