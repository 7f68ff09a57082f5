package auth

import (
	"github.com/labstack/echo/v4"

	"github.com/simplesdental/product-api/internal/core/domain"
)

// identityKey is the echo context key under which the request identity lives.
// The identity is bound explicitly per request; there is no ambient global.
const identityKey = "auth:identity"

// BindIdentity attaches an identity to the request context. The first bound
// identity wins: a second bind attempt is ignored and reported as false.
func BindIdentity(c echo.Context, identity domain.Identity) bool {
	if _, ok := IdentityFrom(c); ok {
		return false
	}
	c.Set(identityKey, identity)
	return true
}

// IdentityFrom returns the identity bound to the request, if any.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(domain.Identity)
	return identity, ok
}
