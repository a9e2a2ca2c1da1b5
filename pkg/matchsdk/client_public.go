package matchsdk

import (
	"context"
	"net/http"
)

// GetLiveness checks if the service is alive.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.get(ctx, "/livez", nil, &health, false); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness checks if the service can reach its store and verify tokens.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.get(ctx, "/readyz", nil, &health, false); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetStats returns the landing page counters. With an admin token the team
// request count is filled in too.
func (c *SDKClient) GetStats(ctx context.Context) (*StatsResponse, error) {
	var stats StatsResponse
	if err := c.get(ctx, "/v1/stats", nil, &stats, false); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ListApprovedReviews returns the newest approved testimonials.
func (c *SDKClient) ListApprovedReviews(ctx context.Context) (*ListReviewsResponse, error) {
	var out ListReviewsResponse
	if err := c.get(ctx, "/v1/reviews", nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) JoinWaitlist(ctx context.Context, req WaitlistRequest) (*WaitlistEntry, error) {
	var out WaitlistEntry
	if err := c.do(ctx, http.MethodPost, "/v1/waitlist", nil, req, &out, http.StatusCreated, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) RequestTeam(ctx context.Context, req TeamRequestForm) (*TeamRequest, error) {
	var out TeamRequest
	if err := c.do(ctx, http.MethodPost, "/v1/team-requests", nil, req, &out, http.StatusCreated, false); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitReview posts a testimonial. It stays pending until an admin approves it.
func (c *SDKClient) SubmitReview(ctx context.Context, req ReviewRequest) (*Review, error) {
	var out Review
	if err := c.do(ctx, http.MethodPost, "/v1/reviews", nil, req, &out, http.StatusCreated, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) SendContact(ctx context.Context, req ContactRequest) (*ContactMessage, error) {
	var out ContactMessage
	if err := c.do(ctx, http.MethodPost, "/v1/contact", nil, req, &out, http.StatusCreated, false); err != nil {
		return nil, err
	}
	return &out, nil
}
