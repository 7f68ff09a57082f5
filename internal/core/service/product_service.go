package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/simplesdental/product-api/internal/api/metrics"
	"github.com/simplesdental/product-api/internal/core/domain"
	"github.com/simplesdental/product-api/internal/core/ports"
)

// ProductService implements product CRUD with category validation.
type ProductService struct {
	repo       ports.ProductRepository
	categories ports.CategoryRepository
	audit      ports.AuditRecorder
	log        zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, categories ports.CategoryRepository, audit ports.AuditRecorder, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, categories: categories, audit: audit, log: log}
}

func (s *ProductService) FindAll(ctx context.Context, nameFilter string, page, size int) (ports.Page[*domain.Product], error) {
	products, total, err := s.repo.List(ctx, nameFilter, page, size)
	if err != nil {
		return ports.Page[*domain.Product]{}, err
	}
	return ports.NewPage(products, total, page, size), nil
}

func (s *ProductService) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, in ports.ProductInput, actor domain.Identity) (*domain.Product, error) {
	category, err := s.categories.FindByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Status:      in.Status,
		Code:        in.Code,
		NumericCode: in.NumericCode,
		CategoryID:  category.ID,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	metrics.ProductsCreatedTotal.Inc()
	s.recordAudit(domain.AuditEvent{
		Entity:     "product",
		EntityID:   created.ID,
		Action:     domain.AuditActionCreate,
		ActorEmail: actor.Email,
	})
	s.log.Info().Str("id", created.ID).Str("name", created.Name).Str("category", category.Name).Msg("product created")
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, id string, in ports.ProductInput, actor domain.Identity) (*domain.Product, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	category, err := s.categories.FindByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.Description = in.Description
	existing.Price = in.Price
	existing.Status = in.Status
	existing.Code = in.Code
	existing.NumericCode = in.NumericCode
	existing.CategoryID = category.ID
	existing.Category = category
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.recordAudit(domain.AuditEvent{
		Entity:     "product",
		EntityID:   updated.ID,
		Action:     domain.AuditActionUpdate,
		ActorEmail: actor.Email,
	})
	s.log.Info().Str("id", updated.ID).Str("name", updated.Name).Msg("product updated")
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id string, actor domain.Identity) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.recordAudit(domain.AuditEvent{
		Entity:     "product",
		EntityID:   id,
		Action:     domain.AuditActionDelete,
		ActorEmail: actor.Email,
	})
	s.log.Info().Str("id", id).Msg("product deleted")
	return nil
}

func (s *ProductService) recordAudit(event domain.AuditEvent) {
	if s.audit != nil {
		s.audit.Record(event)
	}
}
