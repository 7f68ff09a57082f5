package ports

import (
	"context"

	"github.com/simplesdental/product-api/internal/core/domain"
)

// ProductInput carries the fields accepted by product create and update.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Status      bool
	Code        string
	NumericCode int
	CategoryID  string
}

// ProductService implements product CRUD with category validation.
type ProductService interface {
	FindAll(ctx context.Context, nameFilter string, page, size int) (Page[*domain.Product], error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in ProductInput, actor domain.Identity) (*domain.Product, error)
	Update(ctx context.Context, id string, in ProductInput, actor domain.Identity) (*domain.Product, error)
	Delete(ctx context.Context, id string, actor domain.Identity) error
}

// CategoryInput carries the fields accepted by category create and update.
type CategoryInput struct {
	Name        string
	Description string
}

// CategoryService implements category CRUD.
type CategoryService interface {
	FindAll(ctx context.Context, page, size int) (Page[*domain.Category], error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, in CategoryInput, actor domain.Identity) (*domain.Category, error)
	Update(ctx context.Context, id string, in CategoryInput, actor domain.Identity) (*domain.Category, error)
	Delete(ctx context.Context, id string, actor domain.Identity) error
}
