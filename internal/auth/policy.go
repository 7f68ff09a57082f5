package auth

import (
	"strings"

	"github.com/simplesdental/product-api/internal/core/domain"
)

// Tier classifies how much authentication a route requires.
type Tier int

const (
	TierPublic Tier = iota
	TierUserOrAdmin
	TierAdminOnly
	// TierDefault is the fallback for unlisted routes: any authenticated
	// identity is accepted regardless of role.
	TierDefault
)

func (t Tier) String() string {
	switch t {
	case TierPublic:
		return "public"
	case TierUserOrAdmin:
		return "user_or_admin"
	case TierAdminOnly:
		return "admin_only"
	default:
		return "default"
	}
}

// Allows reports whether an identity with the given role satisfies the tier.
// Public routes allow everything; the default tier allows any resolved
// identity.
func (t Tier) Allows(role string) bool {
	switch t {
	case TierPublic:
		return true
	case TierUserOrAdmin:
		return role == domain.RoleUser || role == domain.RoleAdmin
	case TierAdminOnly:
		return role == domain.RoleAdmin
	default:
		return role != ""
	}
}

// rule matches a request by path pattern and optional method. An empty
// method matches every method. Patterns are matched segment-wise; a trailing
// "/*" segment matches the bare prefix and anything below it.
type rule struct {
	method  string
	pattern string
}

func (r rule) matches(method, path string) bool {
	if r.method != "" && r.method != method {
		return false
	}
	return matchPattern(r.pattern, path)
}

func matchPattern(pattern, path string) bool {
	if strings.HasSuffix(pattern, "/*") {
		prefix := strings.TrimSuffix(pattern, "/*")
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	return path == pattern
}

// Policy is the static route classification consulted before any business
// logic runs. It is built once at startup and read-only afterwards, so
// unsynchronized concurrent reads are safe.
type Policy struct {
	public      []rule
	userOrAdmin []rule
	adminOnly   []rule
}

// Classify returns the tier of the first matching rule, evaluating tiers in
// fixed order: public, then user-or-admin, then admin-only, then default.
func (p *Policy) Classify(method, path string) Tier {
	for _, r := range p.public {
		if r.matches(method, path) {
			return TierPublic
		}
	}
	for _, r := range p.userOrAdmin {
		if r.matches(method, path) {
			return TierUserOrAdmin
		}
	}
	for _, r := range p.adminOnly {
		if r.matches(method, path) {
			return TierAdminOnly
		}
	}
	return TierDefault
}

// DefaultPolicy is the route table of this API. Reads on products and
// categories are open to both roles; all mutations and user management are
// admin-only.
func DefaultPolicy() *Policy {
	return &Policy{
		public: []rule{
			{method: "POST", pattern: "/api/auth/login"},
			{pattern: "/swagger/*"},
			{method: "GET", pattern: "/health"},
			{method: "GET", pattern: "/health/ready"},
			{method: "GET", pattern: "/metrics"},
		},
		userOrAdmin: []rule{
			{method: "POST", pattern: "/api/auth/password"},
			{method: "PUT", pattern: "/api/auth/password"},
			{method: "GET", pattern: "/api/auth/context"},
			{method: "GET", pattern: "/api/products/*"},
			{method: "GET", pattern: "/api/v2/products/*"},
			{method: "GET", pattern: "/api/categories/*"},
		},
		adminOnly: []rule{
			{method: "POST", pattern: "/api/auth/register"},
			{pattern: "/api/users/*"},
			{pattern: "/api/products/*"},
			{pattern: "/api/v2/products/*"},
			{pattern: "/api/categories/*"},
		},
	}
}
