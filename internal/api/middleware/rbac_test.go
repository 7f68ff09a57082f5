package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/simplesdental/product-api/internal/auth"
	"github.com/simplesdental/product-api/internal/core/domain"
)

func callWithIdentity(mw echo.MiddlewareFunc, identity *domain.Identity) int {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/users/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		auth.BindIdentity(c, *identity)
	}

	handler := mw(func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code
}

func TestRequireRoles(t *testing.T) {
	adminOnly := RequireRoles(domain.RoleAdmin)

	tests := []struct {
		name     string
		identity *domain.Identity
		want     int
	}{
		{"admin allowed", &domain.Identity{ID: "a1", Email: "admin@test.com", Role: domain.RoleAdmin}, http.StatusNoContent},
		{"user forbidden", &domain.Identity{ID: "u1", Email: "user@test.com", Role: domain.RoleUser}, http.StatusForbidden},
		{"no identity unauthorized", nil, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := callWithIdentity(adminOnly, tt.identity); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestRequireRoles_MultipleRoles(t *testing.T) {
	either := RequireRoles(domain.RoleUser, domain.RoleAdmin)

	for _, role := range []string{domain.RoleUser, domain.RoleAdmin} {
		identity := &domain.Identity{ID: "x", Email: "x@test.com", Role: role}
		if got := callWithIdentity(either, identity); got != http.StatusNoContent {
			t.Errorf("role %s: expected 204, got %d", role, got)
		}
	}
}
