package ports

import (
	"context"

	"github.com/simplesdental/product-api/internal/core/domain"
)

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page, size int) ([]*domain.User, int64, error)
}
