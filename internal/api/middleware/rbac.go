package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhub/user-management-api/internal/core/domain"
)

// RequireRoles enforces role membership. Must be registered after Auth: an
// unauthenticated request never reaches this check.
func RequireRoles(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if _, ok := allowed[identity.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
