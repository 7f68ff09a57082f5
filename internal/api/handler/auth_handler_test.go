package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/simplesdental/product-api/internal/api"
	"github.com/simplesdental/product-api/internal/api/handler"
	"github.com/simplesdental/product-api/internal/auth"
	"github.com/simplesdental/product-api/internal/core/domain"
	"github.com/simplesdental/product-api/internal/core/ports"
)

type stubAuthService struct {
	loginFn          func(ctx context.Context, email, password string) (string, error)
	registerFn       func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	updatePasswordFn func(ctx context.Context, identity domain.Identity, current, next string) error
	contextFn        func(ctx context.Context, email string) (domain.Identity, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) UpdatePassword(ctx context.Context, identity domain.Identity, current, next string) error {
	return s.updatePasswordFn(ctx, identity, current, next)
}

func (s *stubAuthService) Context(ctx context.Context, email string) (domain.Identity, error) {
	return s.contextFn(ctx, email)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	return e
}

func jsonContext(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func invoke(e *echo.Echo, c echo.Context, h echo.HandlerFunc) {
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, error) {
			if email != "user@test.com" || password != "123456" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", nil
		},
	}
	h := handler.NewAuthHandler(stub)

	c, rec := jsonContext(e, http.MethodPost, "/api/auth/login", `{"email":"user@test.com","password":"123456"}`)
	invoke(e, c, h.Login)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	h := handler.NewAuthHandler(stub)

	c, rec := jsonContext(e, http.MethodPost, "/api/auth/login", `{"email":"user@test.com","password":"bad"}`)
	invoke(e, c, h.Login)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	// Error envelope carries timestamp, status and path.
	if resp["status"] != float64(http.StatusUnauthorized) || resp["path"] != "/api/auth/login" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	h := handler.NewAuthHandler(stub)

	c, rec := jsonContext(e, http.MethodPost, "/api/auth/login", `{"email":"not-an-email"}`)
	invoke(e, c, h.Login)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*domain.User, error) {
			if in.Email != "new@test.com" || in.Role != "USER" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: "u9", Name: in.Name, Email: in.Email, Role: in.Role}, nil
		},
	}
	h := handler.NewAuthHandler(stub)

	c, rec := jsonContext(e, http.MethodPost, "/api/auth/register",
		`{"name":"New User","email":"new@test.com","password":"s3cret","role":"USER"}`)
	invoke(e, c, h.Register)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "u9" || resp["email"] != "new@test.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, ok := resp["password"]; ok {
		t.Fatalf("password leaked in response")
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := handler.NewAuthHandler(stub)

	c, rec := jsonContext(e, http.MethodPost, "/api/auth/register",
		`{"name":"Dup","email":"dup@test.com","password":"s3cret"}`)
	invoke(e, c, h.Register)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := handler.NewAuthHandler(stub)

	c, rec := jsonContext(e, http.MethodPost, "/api/auth/register",
		`{"name":"X","email":"x@test.com","password":"123"}`)
	invoke(e, c, h.Register)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_UpdatePassword(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		updatePasswordFn: func(_ context.Context, identity domain.Identity, current, next string) error {
			if identity.Email != "user@test.com" || current != "old-pass" || next != "new-pass" {
				t.Fatalf("unexpected args: %+v %s %s", identity, current, next)
			}
			return nil
		},
	}
	h := handler.NewAuthHandler(stub)

	c, rec := jsonContext(e, http.MethodPut, "/api/auth/password",
		`{"current_password":"old-pass","new_password":"new-pass"}`)
	auth.BindIdentity(c, domain.Identity{ID: "u1", Email: "user@test.com", Role: domain.RoleUser})
	invoke(e, c, h.UpdatePassword)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body)
	}
}

func TestAuthHandler_UpdatePassword_NoIdentity(t *testing.T) {
	e := newTestEcho()
	h := handler.NewAuthHandler(&stubAuthService{})

	c, rec := jsonContext(e, http.MethodPut, "/api/auth/password",
		`{"current_password":"a","new_password":"new-pass"}`)
	invoke(e, c, h.UpdatePassword)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Context(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		contextFn: func(_ context.Context, email string) (domain.Identity, error) {
			return domain.Identity{ID: "u1", Email: email, Role: domain.RoleUser}, nil
		},
	}
	h := handler.NewAuthHandler(stub)

	c, rec := jsonContext(e, http.MethodGet, "/api/auth/context", "")
	auth.BindIdentity(c, domain.Identity{ID: "u1", Email: "user@test.com", Role: domain.RoleUser})
	invoke(e, c, h.Context)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["email"] != "user@test.com" || resp["role"] != domain.RoleUser {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
