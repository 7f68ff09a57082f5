// Package bootstrap seeds the initial admin account at process start.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/simplesdental/product-api/internal/core/domain"
	"github.com/simplesdental/product-api/internal/core/ports"
	"github.com/simplesdental/product-api/internal/infrastructure/config"
)

// EnsureAdmin creates the configured admin account unless an account with
// that email already exists. Safe to run on every startup.
func EnsureAdmin(ctx context.Context, repo ports.UserRepository, cfg config.AdminConfig, log zerolog.Logger) error {
	email := strings.ToLower(strings.TrimSpace(cfg.Email))

	exists, err := repo.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("check admin account: %w", err)
	}
	if exists {
		log.Info().Str("email", email).Msg("admin account already exists")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now().UTC()
	admin, err := repo.Create(ctx, &domain.User{
		Name:         cfg.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		// Another instance may have raced us past the existence check.
		if errors.Is(err, domain.ErrUserExists) {
			log.Info().Str("email", email).Msg("admin account already exists")
			return nil
		}
		return fmt.Errorf("create admin account: %w", err)
	}

	log.Info().Str("id", admin.ID).Str("email", admin.Email).Msg("admin account created")
	return nil
}
