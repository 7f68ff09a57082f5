package auth

import (
	"strings"
	"testing"
	"time"
)

func frozenCodec(secret string, at time.Time) *TokenCodec {
	c := NewTokenCodec(secret)
	c.now = func() time.Time { return at }
	return c
}

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec("secret")
	token, err := codec.Issue("user@test.com", "USER")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	subject, err := codec.ParseSubject(token)
	if err != nil {
		t.Fatalf("parse subject: %v", err)
	}
	if subject != "user@test.com" {
		t.Fatalf("expected subject user@test.com, got %q", subject)
	}
	if !codec.Validate(token, "user@test.com") {
		t.Fatalf("freshly issued token should validate")
	}
}

func TestTokenCodec_SubjectMismatch(t *testing.T) {
	codec := NewTokenCodec("secret")
	token, err := codec.Issue("user@test.com", "USER")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if codec.Validate(token, "other@test.com") {
		t.Fatalf("token must not validate for a different subject")
	}
}

func TestTokenCodec_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	codec := frozenCodec("secret", issuedAt)

	token, err := codec.Issue("user@test.com", "USER")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	cases := []struct {
		name  string
		now   time.Time
		valid bool
	}{
		{"one second after issue", issuedAt.Add(time.Second), true},
		{"just before expiry", issuedAt.Add(TokenLifetime - time.Second), true},
		{"exactly at expiry", issuedAt.Add(TokenLifetime), false},
		{"one second past expiry", issuedAt.Add(TokenLifetime + time.Second), false},
	}
	for _, tc := range cases {
		codec.now = func() time.Time { return tc.now }
		if got := codec.Validate(token, "user@test.com"); got != tc.valid {
			t.Errorf("%s: expected valid=%v, got %v", tc.name, tc.valid, got)
		}
	}
}

func TestTokenCodec_ParseSubjectIgnoresExpiry(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	codec := frozenCodec("secret", issuedAt)

	token, err := codec.Issue("user@test.com", "USER")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Way past expiry: the subject must still parse, per contract.
	codec.now = func() time.Time { return issuedAt.Add(48 * time.Hour) }

	subject, err := codec.ParseSubject(token)
	if err != nil {
		t.Fatalf("parse subject on expired token: %v", err)
	}
	if subject != "user@test.com" {
		t.Fatalf("unexpected subject %q", subject)
	}
	if codec.Validate(token, "user@test.com") {
		t.Fatalf("expired token must not validate")
	}
}

func TestTokenCodec_TamperedSignature(t *testing.T) {
	codec := NewTokenCodec("secret")
	token, err := codec.Issue("user@test.com", "USER")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected three token segments, got %d", len(parts))
	}

	// Flip a byte in the signature segment.
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := codec.ParseSubject(tampered); err == nil {
		t.Fatalf("tampered token must not parse")
	}
	if codec.Validate(tampered, "user@test.com") {
		t.Fatalf("tampered token must not validate")
	}
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	token, err := NewTokenCodec("secret-a").Issue("user@test.com", "USER")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	other := NewTokenCodec("secret-b")
	if _, err := other.ParseSubject(token); err == nil {
		t.Fatalf("token signed with another secret must not parse")
	}
	if other.Validate(token, "user@test.com") {
		t.Fatalf("token signed with another secret must not validate")
	}
}

func TestTokenCodec_Garbage(t *testing.T) {
	codec := NewTokenCodec("secret")
	for _, token := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		if _, err := codec.ParseSubject(token); err == nil {
			t.Errorf("malformed token %q must not parse", token)
		}
		if codec.Validate(token, "user@test.com") {
			t.Errorf("malformed token %q must not validate", token)
		}
	}
}
