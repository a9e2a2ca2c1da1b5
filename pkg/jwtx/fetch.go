package jwtx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// maxJWKSBytes bounds how much of a JWKS response is read.
const maxJWKSBytes = 1 << 20

// JWKSSource loads a key set from somewhere.
type JWKSSource interface {
	Load(ctx context.Context) (JWKS, error)
}

// URLSource fetches a JWKS over HTTP(S).
type URLSource struct {
	URL    string
	Client *http.Client
}

// NewURLSource returns a URLSource with a bounded client timeout.
func NewURLSource(url string) *URLSource {
	return &URLSource{URL: url, Client: &http.Client{Timeout: 10 * time.Second}}
}

func (s *URLSource) Load(ctx context.Context) (JWKS, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return JWKS{}, err
	}
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return JWKS{}, fmt.Errorf("jwtx: fetch jwks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return JWKS{}, fmt.Errorf("jwtx: fetch jwks: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxJWKSBytes))
	if err != nil {
		return JWKS{}, fmt.Errorf("jwtx: read jwks: %w", err)
	}
	return ParseJWKS(body)
}

// FileSource reads a JWKS document from disk on every Load, so a rotated
// file is picked up by the next refresh.
type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) (JWKS, error) {
	body, err := os.ReadFile(s.Path)
	if err != nil {
		return JWKS{}, fmt.Errorf("jwtx: read jwks file: %w", err)
	}
	return ParseJWKS(body)
}

// StaticSource always returns the same set. Used by the dev key mode.
type StaticSource struct {
	Set JWKS
}

func (s StaticSource) Load(context.Context) (JWKS, error) { return s.Set, nil }
