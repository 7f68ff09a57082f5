package ports

import (
	"context"

	"github.com/simplesdental/product-api/internal/core/domain"
)

// UserInput carries the fields accepted by admin user updates.
type UserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UserService implements admin-only user management.
type UserService interface {
	FindAll(ctx context.Context, page, size int) (Page[*domain.User], error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, in UserInput, actor domain.Identity) (*domain.User, error)
	Delete(ctx context.Context, id string, actor domain.Identity) error
}
