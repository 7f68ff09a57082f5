package domain

import (
	"strings"
	"time"
)

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// ValidRole reports whether s names a known role (case-insensitive).
func ValidRole(s string) bool {
	switch strings.ToUpper(s) {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

// NormalizeRole maps any casing of a known role name onto its canonical form.
// Unknown values are returned unchanged.
func NormalizeRole(s string) string {
	upper := strings.ToUpper(s)
	if upper == RoleAdmin || upper == RoleUser {
		return upper
	}
	return s
}

// User models an account able to authenticate against the API.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the request-scoped projection of a User attached to a request
// after successful token validation. It carries no credentials and is
// discarded at request end.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
