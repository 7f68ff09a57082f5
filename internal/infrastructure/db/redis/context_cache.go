package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/simplesdental/product-api/internal/core/domain"
)

const contextTTL = 15 * time.Minute

// ContextCache caches identity projections keyed by email.
// Key format: authctx:<email>
//
// Entries are invalidated on password change, user update and user delete;
// the TTL bounds staleness for anything missed.
type ContextCache struct {
	client *redis.Client
}

// NewContextCache creates a ContextCache wrapping the given Redis client.
func NewContextCache(client *redis.Client) *ContextCache {
	return &ContextCache{client: client}
}

// Get returns the cached identity for email, or (nil, nil) on a miss.
func (c *ContextCache) Get(ctx context.Context, email string) (*domain.Identity, error) {
	raw, err := c.client.Get(ctx, c.key(email)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("context cache get: %w", err)
	}

	var identity domain.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return nil, fmt.Errorf("context cache decode: %w", err)
	}
	return &identity, nil
}

// Set stores the identity projection (expires after contextTTL).
func (c *ContextCache) Set(ctx context.Context, identity domain.Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("context cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(identity.Email), raw, contextTTL).Err()
}

// Invalidate drops the cached identity for email, if any.
func (c *ContextCache) Invalidate(ctx context.Context, email string) error {
	return c.client.Del(ctx, c.key(email)).Err()
}

func (c *ContextCache) key(email string) string {
	return "authctx:" + email
}
