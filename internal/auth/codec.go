// Package auth holds the authentication core: the bearer-token codec, the
// request-scoped identity binding, and the static route policy table.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenLifetime is the fixed validity window of every issued token.
const TokenLifetime = 24 * time.Hour

// TokenCodec mints and verifies HS256-signed bearer tokens. It is a pure
// function of its inputs, the wall clock and the process-wide secret, and is
// safe for concurrent use.
type TokenCodec struct {
	secret []byte
	now    func() time.Time
}

func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), now: time.Now}
}

// Issue creates a signed token carrying the subject and a roles claim,
// expiring TokenLifetime after issuance.
func (c *TokenCodec) Issue(subject, role string) (string, error) {
	now := c.now()
	claims := jwt.MapClaims{
		"sub":   subject,
		"roles": []string{role},
		"iat":   now.Unix(),
		"exp":   now.Add(TokenLifetime).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseSubject verifies the signature and structure of the token and returns
// its subject claim. Expiry is deliberately not checked here; callers decide
// validity with Validate.
func (c *TokenCodec) ParseSubject(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, c.keyFunc, jwt.WithoutClaimsValidation())
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	if !tkn.Valid {
		return "", jwt.ErrTokenSignatureInvalid
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return sub, nil
}

// Validate reports whether the token is signed with our secret, carries the
// expected subject, and has not yet expired. A malformed, tampered or
// expired token is never partially valid.
func (c *TokenCodec) Validate(token, expectedSubject string) bool {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, c.keyFunc, jwt.WithTimeFunc(c.now))
	if err != nil || !tkn.Valid {
		return false
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return false
	}
	return sub == expectedSubject
}

func (c *TokenCodec) keyFunc(token *jwt.Token) (interface{}, error) {
	if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return c.secret, nil
}
