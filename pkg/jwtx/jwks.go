package jwtx

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
)

// JWK is a public key in JSON Web Key format (RFC 7517).
type JWK struct {
	Kty string `json:"kty"`           // RSA, OKP, EC
	Use string `json:"use,omitempty"` // sig
	Alg string `json:"alg,omitempty"` // RS256, EdDSA, ES256
	Kid string `json:"kid,omitempty"`

	// RSA
	N string `json:"n,omitempty"`
	E string `json:"e,omitempty"`

	// OKP and EC
	Crv string `json:"crv,omitempty"`
	X   string `json:"x,omitempty"`
	Y   string `json:"y,omitempty"`
}

// JWKS is a JSON Web Key Set.
type JWKS struct {
	Keys []JWK `json:"keys"`
}

// ParseJWKS decodes a JWKS document and checks every key is usable.
func ParseJWKS(data []byte) (JWKS, error) {
	var set JWKS
	if err := json.Unmarshal(data, &set); err != nil {
		return JWKS{}, fmt.Errorf("jwtx: decode jwks: %w", err)
	}
	if len(set.Keys) == 0 {
		return JWKS{}, errors.New("jwtx: jwks has no keys")
	}
	for _, k := range set.Keys {
		if k.Kid == "" {
			return JWKS{}, errors.New("jwtx: jwks key missing kid")
		}
		if _, err := k.PublicKey(); err != nil {
			return JWKS{}, fmt.Errorf("jwtx: jwks key %q: %w", k.Kid, err)
		}
	}
	return set, nil
}

// NewRSAJWK builds a JWK for an RSA public key.
func NewRSAJWK(kid string, pub *rsa.PublicKey) JWK {
	return JWK{
		Kty: "RSA",
		Use: "sig",
		Alg: "RS256",
		Kid: kid,
		N:   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
		E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
	}
}

// NewEd25519JWK builds an OKP JWK for an Ed25519 public key.
func NewEd25519JWK(kid string, pub ed25519.PublicKey) JWK {
	return JWK{
		Kty: "OKP",
		Use: "sig",
		Alg: "EdDSA",
		Kid: kid,
		Crv: "Ed25519",
		X:   base64.RawURLEncoding.EncodeToString(pub),
	}
}

// PublicKey converts the JWK into *rsa.PublicKey, ed25519.PublicKey or
// *ecdsa.PublicKey.
func (j JWK) PublicKey() (any, error) {
	switch j.Kty {
	case "RSA":
		nb, err := base64.RawURLEncoding.DecodeString(j.N)
		if err != nil {
			return nil, err
		}
		eb, err := base64.RawURLEncoding.DecodeString(j.E)
		if err != nil {
			return nil, err
		}
		if len(nb) == 0 || len(eb) == 0 {
			return nil, errors.New("jwtx: empty RSA modulus or exponent")
		}
		return &rsa.PublicKey{
			N: new(big.Int).SetBytes(nb),
			E: int(new(big.Int).SetBytes(eb).Int64()),
		}, nil

	case "OKP":
		if j.Crv != "Ed25519" {
			return nil, errors.New("jwtx: unsupported OKP curve " + j.Crv)
		}
		xb, err := base64.RawURLEncoding.DecodeString(j.X)
		if err != nil {
			return nil, err
		}
		if len(xb) != ed25519.PublicKeySize {
			return nil, errors.New("jwtx: invalid Ed25519 public key size")
		}
		return ed25519.PublicKey(xb), nil

	case "EC":
		if j.Crv != "P-256" {
			return nil, errors.New("jwtx: unsupported EC curve " + j.Crv)
		}
		xb, err := base64.RawURLEncoding.DecodeString(j.X)
		if err != nil {
			return nil, err
		}
		yb, err := base64.RawURLEncoding.DecodeString(j.Y)
		if err != nil {
			return nil, err
		}
		return &ecdsa.PublicKey{
			Curve: elliptic.P256(),
			X:     new(big.Int).SetBytes(xb),
			Y:     new(big.Int).SetBytes(yb),
		}, nil

	default:
		return nil, errors.New("jwtx: unsupported kty " + j.Kty)
	}
}
