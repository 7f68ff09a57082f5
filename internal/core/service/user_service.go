package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/simplesdental/product-api/internal/core/domain"
	"github.com/simplesdental/product-api/internal/core/ports"
)

// UserService implements admin-only user management.
type UserService struct {
	repo  ports.UserRepository
	cache ports.IdentityCache
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, cache ports.IdentityCache, audit ports.AuditRecorder, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, cache: cache, audit: audit, log: log}
}

func (s *UserService) FindAll(ctx context.Context, page, size int) (ports.Page[*domain.User], error) {
	users, total, err := s.repo.List(ctx, page, size)
	if err != nil {
		return ports.Page[*domain.User]{}, err
	}
	return ports.NewPage(users, total, page, size), nil
}

func (s *UserService) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update rewrites the full account, re-hashing the password, and drops any
// cached identity for the previous email.
func (s *UserService) Update(ctx context.Context, id string, in ports.UserInput, actor domain.Identity) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	role := domain.NormalizeRole(in.Role)
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	previousEmail := user.Email
	user.Name = in.Name
	user.Email = normalizeEmail(in.Email)
	user.PasswordHash = string(hash)
	user.Role = role
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, previousEmail); err != nil {
		s.log.Warn().Err(err).Str("email", previousEmail).Msg("identity cache invalidation failed")
	}
	s.recordAudit(domain.AuditEvent{
		Entity:     "user",
		EntityID:   updated.ID,
		Action:     domain.AuditActionUpdate,
		ActorEmail: actor.Email,
	})
	s.log.Info().Str("id", updated.ID).Str("email", updated.Email).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string, actor domain.Identity) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.cache.Invalidate(ctx, user.Email); err != nil {
		s.log.Warn().Err(err).Str("email", user.Email).Msg("identity cache invalidation failed")
	}
	s.recordAudit(domain.AuditEvent{
		Entity:     "user",
		EntityID:   id,
		Action:     domain.AuditActionDelete,
		ActorEmail: actor.Email,
	})
	s.log.Info().Str("id", id).Str("email", user.Email).Msg("user deleted")
	return nil
}

func (s *UserService) recordAudit(event domain.AuditEvent) {
	if s.audit != nil {
		s.audit.Record(event)
	}
}
