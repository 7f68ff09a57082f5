package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/simplesdental/product-api/internal/auth"
)

// RequireRoles is the method-level role check layered on route groups, the
// second line of defence behind the Gate's tier check. An unresolved
// identity is a 401; a resolved identity outside the allowed set is a 403.
func RequireRoles(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := auth.IdentityFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if _, ok := allowed[identity.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}
