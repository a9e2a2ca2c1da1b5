package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/domain"
	"github.com/aussiebroadwan/cofound/pkg/idx"
	"github.com/aussiebroadwan/cofound/pkg/jwtx"
)

// VerificationKeys bundles what the HTTP layer needs to check bearer tokens.
type VerificationKeys struct {
	KeySet   *jwtx.KeySet
	Verifier jwtx.Verifier

	// Source is nil when the keys never change (dev mode).
	Source jwtx.JWKSSource
}

// InitVerificationKeys loads the identity provider's public keys.
//
// Key sources, in order of preference:
//   - AUTH_JWKS_URL: fetched over HTTP and refreshed periodically.
//   - AUTH_JWKS_FILE: read from disk and re-read on every refresh.
//   - neither, with ENV=dev: an ephemeral Ed25519 key is generated and an
//     admin token signed with it is logged so the API can be exercised locally.
//
// The initial load must succeed; later refresh failures keep the old keys.
func InitVerificationKeys(ctx context.Context, cfg Config, logger *slog.Logger) (*VerificationKeys, error) {
	keys := jwtx.NewKeySet()
	vk := &VerificationKeys{
		KeySet: keys,
		Verifier: jwtx.NewVerifier(keys, jwtx.VerifyOptions{
			Issuer:   cfg.Issuer,
			Audience: cfg.Audience,
			Leeway:   30 * time.Second,
		}),
	}

	switch {
	case cfg.JWKSURL != "":
		vk.Source = jwtx.NewURLSource(cfg.JWKSURL)
		logger.Info("loading verification keys", "source", "url", "url", cfg.JWKSURL)
	case cfg.JWKSFile != "":
		vk.Source = jwtx.FileSource{Path: cfg.JWKSFile}
		logger.Info("loading verification keys", "source", "file", "path", cfg.JWKSFile)
	case cfg.Env == "dev":
		if err := initDevKeys(cfg, keys, logger); err != nil {
			return nil, err
		}
		return vk, nil
	default:
		return nil, errors.New("AUTH_JWKS_URL or AUTH_JWKS_FILE is required outside dev")
	}

	set, err := vk.Source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load verification keys: %w", err)
	}
	if err := keys.Replace(set); err != nil {
		return nil, fmt.Errorf("failed to load verification keys: %w", err)
	}

	logger.Info("verification keys loaded", "num_keys", len(set.Keys), "issuer", cfg.Issuer)
	return vk, nil
}

func initDevKeys(cfg Config, keys *jwtx.KeySet, logger *slog.Logger) error {
	signer, err := jwtx.GenerateEdDSASigner("dev-" + string(idx.New()))
	if err != nil {
		return err
	}
	if err := keys.AddJWK(signer.PublicJWK()); err != nil {
		return err
	}

	claims := jwtx.NewAccessClaims(
		"dev-admin",
		"admin@localhost",
		[]string{domain.ScopeAdminRead, domain.ScopeAdminWrite},
		jwtx.DefaultDevTokenTTL,
		cfg.Issuer,
		cfg.Audience,
		time.Now(),
	)
	token, err := signer.Sign(claims)
	if err != nil {
		return err
	}

	logger.Warn("using ephemeral dev verification key, tokens are invalid after restart",
		"kid", signer.KID(),
	)
	logger.Info("dev admin token", "token", token, "expires_in", jwtx.DefaultDevTokenTTL)
	return nil
}
