package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultDevTokenTTL is the lifetime of tokens minted by the dev signer.
const DefaultDevTokenTTL = 12 * time.Hour

// Claims are the access-token claims this service understands. They are a
// subset of what the identity provider issues; unknown claims are ignored.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the authenticated user, empty for anonymous identities.
	Email string `json:"email,omitempty"`

	// Anonymous marks a guest identity that can browse but not own a profile.
	Anonymous bool `json:"anon,omitempty"`

	// Permission scopes, e.g. "profile:write", "admin:read", "admin:write".
	Scopes []string `json:"scopes,omitempty"`
}

// NewAccessClaims builds minimally-correct claims.
func NewAccessClaims(
	subject, email string,
	scopes []string,
	ttl time.Duration,
	issuer string,
	audience []string,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			Audience:  jwt.ClaimStrings(audience),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Email:  email,
		Scopes: scopes,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// HasScope reports whether the claims carry scope s.
func (c *Claims) HasScope(s string) bool {
	return slices.Contains(c.Scopes, s)
}

// ValidateIssuer checks the issuer when one is expected.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected != "" && c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateAudience checks that at least one expected audience is present.
func (c *Claims) ValidateAudience(expected []string) error {
	if len(expected) == 0 {
		return nil
	}
	for _, want := range expected {
		if slices.Contains(c.Audience, want) {
			return nil
		}
	}
	return ErrAudience
}

// ValidateExpiry checks exp and nbf, allowing leeway for clock skew.
func (c *Claims) ValidateExpiry(now time.Time, leeway time.Duration) error {
	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}
	return nil
}

// ValidateSubject rejects tokens that do not name a subject. Every identity,
// anonymous or not, needs a stable id to own matches.
func (c *Claims) ValidateSubject() error {
	if c.Subject == "" {
		return ErrInvalidClaim
	}
	return nil
}
