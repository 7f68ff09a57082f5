package auth

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/simplesdental/product-api/internal/core/domain"
)

// Rejection reasons reported by Resolve. Callers use them for logging and
// metrics only; the HTTP response never distinguishes them.
const (
	ReasonInvalidToken   = "invalid_token"
	ReasonUnknownSubject = "unknown_subject"
)

// AccountSource is the subset of the user repository the resolver needs.
type AccountSource interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// IdentityResolver turns a bearer token into a request identity by
// validating the token and loading the live account it names. The role is
// always taken from the account, not the token, so role edits take effect on
// the next request.
type IdentityResolver struct {
	codec    *TokenCodec
	accounts AccountSource
	log      zerolog.Logger
}

func NewIdentityResolver(codec *TokenCodec, accounts AccountSource, log zerolog.Logger) *IdentityResolver {
	return &IdentityResolver{codec: codec, accounts: accounts, log: log}
}

// Resolve returns the identity for a valid token, or nil with a rejection
// reason. It never fails the request itself; the gate decides accept/reject.
// A token whose subject no longer maps to an account resolves to nil even
// though its signature is still valid.
func (r *IdentityResolver) Resolve(ctx context.Context, token string) (*domain.Identity, string) {
	subject, err := r.codec.ParseSubject(token)
	if err != nil {
		return nil, ReasonInvalidToken
	}
	if !r.codec.Validate(token, subject) {
		return nil, ReasonInvalidToken
	}

	user, err := r.accounts.FindByEmail(ctx, subject)
	if err != nil {
		r.log.Debug().Str("subject", subject).Msg("token subject has no matching account")
		return nil, ReasonUnknownSubject
	}

	return &domain.Identity{ID: user.ID, Email: user.Email, Role: user.Role}, ""
}
