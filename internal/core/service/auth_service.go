package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/simplesdental/product-api/internal/api/metrics"
	"github.com/simplesdental/product-api/internal/auth"
	"github.com/simplesdental/product-api/internal/core/domain"
	"github.com/simplesdental/product-api/internal/core/ports"
)

// AuthService implements login, registration and password self-service.
type AuthService struct {
	repo  ports.UserRepository
	codec *auth.TokenCodec
	cache ports.IdentityCache
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec *auth.TokenCodec, cache ports.IdentityCache, audit ports.AuditRecorder, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, cache: cache, audit: audit, log: log}
}

// Login verifies the credential pair and mints a bearer token. An absent
// account and a wrong password fail identically so callers cannot probe for
// account existence.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.Email, user.Role)
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("email", user.Email).Msg("login succeeded")
	return token, nil
}

// Register creates a new account. Reached only through the admin-gated
// register route.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	role := domain.NormalizeRole(in.Role)
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	email := normalizeEmail(in.Email)
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(role).Inc()
	s.recordAudit(domain.AuditEvent{
		Entity:     "user",
		EntityID:   created.ID,
		Action:     domain.AuditActionCreate,
		ActorEmail: created.Email,
	})
	s.log.Info().Str("email", created.Email).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// UpdatePassword changes the caller's own password after verifying the
// current one, then drops the cached identity so the next lookup re-reads
// the account.
func (s *AuthService) UpdatePassword(ctx context.Context, identity domain.Identity, currentPassword, newPassword string) error {
	user, err := s.repo.FindByEmail(ctx, identity.Email)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now().UTC()
	if _, err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	if err := s.cache.Invalidate(ctx, user.Email); err != nil {
		s.log.Warn().Err(err).Str("email", user.Email).Msg("identity cache invalidation failed")
	}
	s.recordAudit(domain.AuditEvent{
		Entity:     "user",
		EntityID:   user.ID,
		Action:     domain.AuditActionUpdate,
		ActorEmail: user.Email,
	})
	return nil
}

// Context returns the identity projection for the given email, serving it
// from cache when warm. Cache failures fall through to the repository.
func (s *AuthService) Context(ctx context.Context, email string) (domain.Identity, error) {
	if cached, err := s.cache.Get(ctx, email); err == nil && cached != nil {
		return *cached, nil
	} else if err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("identity cache read failed")
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return domain.Identity{}, err
	}

	identity := domain.Identity{ID: user.ID, Email: user.Email, Role: user.Role}
	if err := s.cache.Set(ctx, identity); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("identity cache write failed")
	}
	return identity, nil
}

func (s *AuthService) recordAudit(event domain.AuditEvent) {
	if s.audit != nil {
		s.audit.Record(event)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
