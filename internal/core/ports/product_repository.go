package ports

import (
	"context"

	"github.com/simplesdental/product-api/internal/core/domain"
)

// ProductRepository defines the interface for product persistence.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	// List returns a page of products, optionally filtered by a
	// case-insensitive name-contains match when nameFilter is non-empty.
	List(ctx context.Context, nameFilter string, page, size int) ([]*domain.Product, int64, error)
}

// CategoryRepository defines the interface for category persistence.
type CategoryRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page, size int) ([]*domain.Category, int64, error)
}
