package ports

import (
	"context"

	"github.com/simplesdental/product-api/internal/core/domain"
)

// RegisterInput carries the fields accepted by account registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthService implements login, registration and self-service password change.
type AuthService interface {
	// Login verifies the email/password pair and returns a signed bearer
	// token. Absent account and wrong password fail identically with
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	UpdatePassword(ctx context.Context, identity domain.Identity, currentPassword, newPassword string) error
	// Context returns the identity projection for the given email, served
	// from cache when warm.
	Context(ctx context.Context, email string) (domain.Identity, error)
}

// IdentityCache caches identity projections keyed by email. A miss returns
// (nil, nil); cache failures must never fail the surrounding request.
type IdentityCache interface {
	Get(ctx context.Context, email string) (*domain.Identity, error)
	Set(ctx context.Context, identity domain.Identity) error
	Invalidate(ctx context.Context, email string) error
}
