package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/simplesdental/product-api/internal/core/domain"
	"github.com/simplesdental/product-api/internal/core/ports"
)

// CategoryService implements category CRUD.
type CategoryService struct {
	repo  ports.CategoryRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, audit ports.AuditRecorder, log zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, audit: audit, log: log}
}

func (s *CategoryService) FindAll(ctx context.Context, page, size int) (ports.Page[*domain.Category], error) {
	categories, total, err := s.repo.List(ctx, page, size)
	if err != nil {
		return ports.Page[*domain.Category]{}, err
	}
	return ports.NewPage(categories, total, page, size), nil
}

func (s *CategoryService) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, in ports.CategoryInput, actor domain.Identity) (*domain.Category, error) {
	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Category{
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.recordAudit(domain.AuditEvent{
		Entity:     "category",
		EntityID:   created.ID,
		Action:     domain.AuditActionCreate,
		ActorEmail: actor.Email,
	})
	s.log.Info().Str("id", created.ID).Str("name", created.Name).Msg("category created")
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, in ports.CategoryInput, actor domain.Identity) (*domain.Category, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.Description = in.Description
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.recordAudit(domain.AuditEvent{
		Entity:     "category",
		EntityID:   updated.ID,
		Action:     domain.AuditActionUpdate,
		ActorEmail: actor.Email,
	})
	s.log.Info().Str("id", updated.ID).Str("name", updated.Name).Msg("category updated")
	return updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string, actor domain.Identity) error {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.recordAudit(domain.AuditEvent{
		Entity:     "category",
		EntityID:   id,
		Action:     domain.AuditActionDelete,
		ActorEmail: actor.Email,
	})
	s.log.Info().Str("id", id).Str("name", category.Name).Msg("category deleted")
	return nil
}

func (s *CategoryService) recordAudit(event domain.AuditEvent) {
	if s.audit != nil {
		s.audit.Record(event)
	}
}
