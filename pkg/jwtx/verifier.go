package jwtx

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// VerifyOptions captures what a token must satisfy beyond its signature.
type VerifyOptions struct {
	// Issuer the token must have. Empty means "don't care".
	Issuer string

	// Audience values of which the token must contain one. Empty means "don't care".
	Audience []string

	// Leeway allows small clock skew when validating exp/nbf.
	Leeway time.Duration

	// Now overrides the clock, for tests.
	Now func() time.Time
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrUnknownKID  = errors.New("jwtx: unknown kid")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")

	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrAudience     = errors.New("jwtx: audience mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// SupportedAlgorithms are the signing methods accepted by KeySetVerifier.
var SupportedAlgorithms = []string{
	jwt.SigningMethodEdDSA.Alg(),
	jwt.SigningMethodRS256.Alg(),
	jwt.SigningMethodES256.Alg(),
}

// KeySetVerifier verifies tokens against whatever keys the KeySet holds at
// the time of the call. The algorithm is taken from the token header but must
// agree with both the key type and the alg the key was published under.
type KeySetVerifier struct {
	keys *KeySet
	opts VerifyOptions
}

// NewVerifier returns a Verifier backed by keys.
func NewVerifier(keys *KeySet, opts VerifyOptions) *KeySetVerifier {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &KeySetVerifier{keys: keys, opts: opts}
}

// Verify validates the JWT string and returns its parsed Claims.
func (v *KeySetVerifier) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods(SupportedAlgorithms),
		jwt.WithoutClaimsValidation(), // claims are checked below with our own clock
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, v.keyFunc)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, fmt.Errorf("%w: %w", ErrMalformed, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, fmt.Errorf("%w: %w", ErrInvalidSig, err)
		default:
			return Claims{}, fmt.Errorf("jwtx: parse or verify: %w", err)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrInvalidClaim
	}

	if err := claims.ValidateSubject(); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateIssuer(v.opts.Issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateAudience(v.opts.Audience); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiry(v.opts.Now().UTC(), v.opts.Leeway); err != nil {
		return Claims{}, err
	}

	return *claims, nil
}

func (v *KeySetVerifier) keyFunc(t *jwt.Token) (any, error) {
	kid, _ := t.Header["kid"].(string)
	if kid == "" {
		return nil, fmt.Errorf("%w: missing kid", ErrUnknownKID)
	}

	key, publishedAlg, err := v.keys.Get(kid)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownKID, kid)
	}

	alg := t.Method.Alg()
	if publishedAlg != "" && publishedAlg != alg {
		return nil, fmt.Errorf("%w: kid %q is %s, token is %s", ErrAlgMismatch, kid, publishedAlg, alg)
	}

	switch k := key.(type) {
	case ed25519.PublicKey:
		if alg == jwt.SigningMethodEdDSA.Alg() {
			return k, nil
		}
	case *rsa.PublicKey:
		if alg == jwt.SigningMethodRS256.Alg() {
			return k, nil
		}
	case *ecdsa.PublicKey:
		if alg == jwt.SigningMethodES256.Alg() {
			return k, nil
		}
	}
	return nil, fmt.Errorf("%w: key type %T cannot verify %s", ErrAlgMismatch, key, alg)
}
