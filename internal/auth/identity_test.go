package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/simplesdental/product-api/internal/core/domain"
)

func TestBindIdentity_FirstWins(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	first := domain.Identity{ID: "u1", Email: "first@test.com", Role: domain.RoleUser}
	second := domain.Identity{ID: "u2", Email: "second@test.com", Role: domain.RoleAdmin}

	if !BindIdentity(c, first) {
		t.Fatalf("first bind should succeed")
	}
	if BindIdentity(c, second) {
		t.Fatalf("second bind should be rejected")
	}

	got, ok := IdentityFrom(c)
	if !ok || got.Email != "first@test.com" {
		t.Fatalf("expected first identity to survive, got %+v ok=%v", got, ok)
	}
}

func TestIdentityFrom_Empty(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	if _, ok := IdentityFrom(c); ok {
		t.Fatalf("fresh context must carry no identity")
	}
}
