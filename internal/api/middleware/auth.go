package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/simplesdental/product-api/internal/api/metrics"
	"github.com/simplesdental/product-api/internal/auth"
)

// Gate is the per-request authentication orchestrator. It classifies the
// route against the policy table, lets public routes straight through,
// extracts and resolves the bearer token, binds the identity to the request
// context, and rejects anything that fails policy before business logic runs.
//
// Missing token, invalid token and unknown subject are indistinguishable to
// the caller: all are a 401. An identity whose role does not satisfy the
// matched tier is a distinct 403.
func Gate(policy *auth.Policy, resolver *auth.IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tier := policy.Classify(c.Request().Method, c.Request().URL.Path)
			if tier == auth.TierPublic {
				return next(c)
			}

			token, ok := bearerToken(c.Request().Header.Get("Authorization"))
			if !ok {
				metrics.TokenRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			identity, reason := resolver.Resolve(c.Request().Context(), token)
			if identity == nil {
				metrics.TokenRejectionsTotal.WithLabelValues(reason).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			if !tier.Allows(identity.Role) {
				metrics.TokenRejectionsTotal.WithLabelValues("insufficient_role").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}

			auth.BindIdentity(c, *identity)
			return next(c)
		}
	}
}

// bearerToken extracts the token from an Authorization header. Absence or a
// scheme other than Bearer yields no token.
func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
