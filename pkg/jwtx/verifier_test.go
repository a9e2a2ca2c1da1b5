package jwtx_test

import (
	"crypto/rand"
	"crypto/rsa"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/cofound/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const exampleIssuer = "https://auth.example.com"

func newEdDSAKeySet(t *testing.T, kid string) (*jwtx.EdDSASigner, *jwtx.KeySet) {
	t.Helper()

	signer, err := jwtx.GenerateEdDSASigner(kid)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddJWK(signer.PublicJWK()))
	return signer, keys
}

func TestEdDSASignAndVerify(t *testing.T) {
	signer, keys := newEdDSAKeySet(t, "k1")
	require.Equal(t, "EdDSA", signer.Alg())

	now := time.Now().UTC()
	claims := jwtx.NewAccessClaims("user-1", "asha@example.com",
		[]string{"profile:write", "admin:read"}, 5*time.Minute, exampleIssuer, []string{"cofound"}, now)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	verifier := jwtx.NewVerifier(keys, jwtx.VerifyOptions{Issuer: exampleIssuer, Audience: []string{"cofound"}})
	got, err := verifier.Verify(token)
	require.NoError(t, err)

	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "asha@example.com", got.Email)
	require.False(t, got.Anonymous)
	require.ElementsMatch(t, claims.Scopes, got.Scopes)
	require.True(t, got.HasScope("admin:read"))
	require.False(t, got.HasScope("admin:write"))
	require.NotEmpty(t, got.ID)
}

func TestRS256Verify(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddJWK(jwtx.NewRSAJWK("rsa-1", &priv.PublicKey)))

	claims := jwtx.NewAccessClaims("user-2", "", nil, time.Minute, exampleIssuer, nil, time.Now())
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tok.Header["kid"] = "rsa-1"
	raw, err := tok.SignedString(priv)
	require.NoError(t, err)

	got, err := jwtx.NewVerifier(keys, jwtx.VerifyOptions{Issuer: exampleIssuer}).Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "user-2", got.Subject)
}

func TestVerifyRejections(t *testing.T) {
	signer, keys := newEdDSAKeySet(t, "k1")
	now := time.Now().UTC()

	sign := func(c jwtx.Claims) string {
		raw, err := signer.Sign(c)
		require.NoError(t, err)
		return raw
	}

	t.Run("wrong issuer", func(t *testing.T) {
		raw := sign(jwtx.NewAccessClaims("u", "", nil, time.Minute, "someone-else", nil, now))
		_, err := jwtx.NewVerifier(keys, jwtx.VerifyOptions{Issuer: exampleIssuer}).Verify(raw)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("wrong audience", func(t *testing.T) {
		raw := sign(jwtx.NewAccessClaims("u", "", nil, time.Minute, exampleIssuer, []string{"other"}, now))
		_, err := jwtx.NewVerifier(keys, jwtx.VerifyOptions{Audience: []string{"cofound"}}).Verify(raw)
		require.ErrorIs(t, err, jwtx.ErrAudience)
	})

	t.Run("expired", func(t *testing.T) {
		raw := sign(jwtx.NewAccessClaims("u", "", nil, time.Hour, exampleIssuer, nil, now.Add(-2*time.Hour)))
		_, err := jwtx.NewVerifier(keys, jwtx.VerifyOptions{}).Verify(raw)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("leeway tolerates small skew", func(t *testing.T) {
		raw := sign(jwtx.NewAccessClaims("u", "", nil, time.Minute, exampleIssuer, nil, now.Add(-61*time.Second)))
		_, err := jwtx.NewVerifier(keys, jwtx.VerifyOptions{Leeway: 30 * time.Second}).Verify(raw)
		require.NoError(t, err)
	})

	t.Run("missing subject", func(t *testing.T) {
		raw := sign(jwtx.NewAccessClaims("", "", nil, time.Minute, exampleIssuer, nil, now))
		_, err := jwtx.NewVerifier(keys, jwtx.VerifyOptions{}).Verify(raw)
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})

	t.Run("unknown kid", func(t *testing.T) {
		other, err := jwtx.GenerateEdDSASigner("k2")
		require.NoError(t, err)
		raw, err := other.Sign(jwtx.NewAccessClaims("u", "", nil, time.Minute, exampleIssuer, nil, now))
		require.NoError(t, err)

		_, err = jwtx.NewVerifier(keys, jwtx.VerifyOptions{}).Verify(raw)
		require.ErrorIs(t, err, jwtx.ErrUnknownKID)
	})

	t.Run("tampered signature", func(t *testing.T) {
		raw := sign(jwtx.NewAccessClaims("u", "", nil, time.Minute, exampleIssuer, nil, now))
		parts := strings.Split(raw, ".")
		sig := []byte(parts[2])
		if sig[0] == 'A' {
			sig[0] = 'B'
		} else {
			sig[0] = 'A'
		}
		parts[2] = string(sig)

		_, err := jwtx.NewVerifier(keys, jwtx.VerifyOptions{}).Verify(strings.Join(parts, "."))
		require.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwtx.NewVerifier(keys, jwtx.VerifyOptions{}).Verify("not.a.jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})
}

func TestVerifyRejectsAlgorithmConfusion(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddJWK(jwtx.NewRSAJWK("shared", &priv.PublicKey)))

	// An EdDSA token claiming the RSA key's kid must not verify.
	ed, err := jwtx.GenerateEdDSASigner("shared")
	require.NoError(t, err)
	raw, err := ed.Sign(jwtx.NewAccessClaims("u", "", nil, time.Minute, exampleIssuer, nil, time.Now()))
	require.NoError(t, err)

	_, err = jwtx.NewVerifier(keys, jwtx.VerifyOptions{}).Verify(raw)
	require.ErrorIs(t, err, jwtx.ErrAlgMismatch)
}
