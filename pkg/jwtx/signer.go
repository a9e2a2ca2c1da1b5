package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Signer is anything that can sign tokens. The matchmaker never issues
// production tokens; signers back the dev key mode and tests.
type Signer interface {
	Alg() string
	KID() string
	Sign(Claims) (string, error)
	PublicJWK() JWK
}

// EdDSASigner signs with Ed25519.
type EdDSASigner struct {
	kid string
	key ed25519.PrivateKey
}

// NewEdDSASigner wraps an existing private key.
func NewEdDSASigner(kid string, key ed25519.PrivateKey) (*EdDSASigner, error) {
	if kid == "" {
		return nil, errors.New("jwtx: signer requires a kid")
	}
	if len(key) != ed25519.PrivateKeySize {
		return nil, errors.New("jwtx: invalid Ed25519 private key size")
	}
	return &EdDSASigner{kid: kid, key: key}, nil
}

// GenerateEdDSASigner creates a signer around a fresh random key.
func GenerateEdDSASigner(kid string) (*EdDSASigner, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: generate ed25519 key: %w", err)
	}
	return NewEdDSASigner(kid, priv)
}

func (s *EdDSASigner) Alg() string { return jwt.SigningMethodEdDSA.Alg() }
func (s *EdDSASigner) KID() string { return s.kid }

// Sign turns claims into a compact JWS with the kid header set.
func (s *EdDSASigner) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.key)
}

// PublicJWK returns the key to publish or load into a KeySet.
func (s *EdDSASigner) PublicJWK() JWK {
	return NewEd25519JWK(s.kid, s.key.Public().(ed25519.PublicKey))
}
