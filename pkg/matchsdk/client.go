package matchsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SDKClient talks to the matchmaker API. The zero Token makes an anonymous
// client that can only reach public endpoints.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// Token is the bearer access token sent with member and admin calls.
	Token string
}

// NewSDKClient creates an anonymous client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithToken returns a copy of c that authenticates as the token's subject.
func (c *SDKClient) WithToken(token string) *SDKClient {
	cp := *c
	cp.Token = token
	return &cp
}

func (c *SDKClient) url(path string, query url.Values) string {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do sends body as JSON (when non-nil) and decodes a response with the
// expected status into out (when non-nil).
func (c *SDKClient) do(
	ctx context.Context,
	method, path string,
	query url.Values,
	body, out any,
	expectedStatus int,
	authenticated bool,
) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	switch {
	case c.Token != "":
		req.Header.Set("Authorization", "Bearer "+c.Token)
	case authenticated:
		return ErrNoToken
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *SDKClient) get(ctx context.Context, path string, query url.Values, out any, authenticated bool) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out, http.StatusOK, authenticated)
}

func (c *SDKClient) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, http.StatusNoContent, true)
}
