package matchsdk

import (
	"context"
	"net/http"
	"net/url"
)

// ProfileQuery narrows ListProfiles. Empty fields are not sent.
type ProfileQuery struct {
	Search     string
	Role       string
	Commitment string
}

func (q ProfileQuery) values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	if q.Role != "" {
		v.Set("role", q.Role)
	}
	if q.Commitment != "" {
		v.Set("commitment", q.Commitment)
	}
	return v
}

// ListProfiles requires admin:read.
func (c *SDKClient) ListProfiles(ctx context.Context, q ProfileQuery) (*ListProfilesResponse, error) {
	var out ListProfilesResponse
	if err := c.get(ctx, "/v1/profiles", q.values(), &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) DeleteProfile(ctx context.Context, id string) error {
	return c.delete(ctx, "/v1/profiles/"+url.PathEscape(id))
}

// CreateMatch pairs two profiles. Requires admin:write.
func (c *SDKClient) CreateMatch(ctx context.Context, req CreateMatchRequest) (*Match, error) {
	var out Match
	if err := c.do(ctx, http.MethodPost, "/v1/matches", nil, req, &out, http.StatusCreated, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) ListMatches(ctx context.Context) (*ListMatchesResponse, error) {
	var out ListMatchesResponse
	if err := c.get(ctx, "/v1/matches", nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMatchStatus advances a match by one step. Anything else comes back
// as an invalid_transition error.
func (c *SDKClient) UpdateMatchStatus(ctx context.Context, id, status string) (*Match, error) {
	var out Match
	path := "/v1/matches/" + url.PathEscape(id) + "/status"
	if err := c.do(ctx, http.MethodPatch, path, nil, UpdateStatusRequest{Status: status}, &out, http.StatusOK, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) UpdateMatchNotes(ctx context.Context, id, notes string) (*Match, error) {
	var out Match
	path := "/v1/matches/" + url.PathEscape(id) + "/notes"
	if err := c.do(ctx, http.MethodPatch, path, nil, UpdateNotesRequest{Notes: notes}, &out, http.StatusOK, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) DeleteMatch(ctx context.Context, id string) error {
	return c.delete(ctx, "/v1/matches/"+url.PathEscape(id))
}

// ============================================================================
// Moderation inboxes
// ============================================================================

func (c *SDKClient) ListWaitlist(ctx context.Context) (*ListWaitlistResponse, error) {
	var out ListWaitlistResponse
	if err := c.get(ctx, "/v1/admin/waitlist", nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) ListTeamRequests(ctx context.Context) (*ListTeamRequestsResponse, error) {
	var out ListTeamRequestsResponse
	if err := c.get(ctx, "/v1/admin/team-requests", nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAllReviews includes pending reviews.
func (c *SDKClient) ListAllReviews(ctx context.Context) (*ListReviewsResponse, error) {
	var out ListReviewsResponse
	if err := c.get(ctx, "/v1/admin/reviews", nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) ListContacts(ctx context.Context) (*ListContactsResponse, error) {
	var out ListContactsResponse
	if err := c.get(ctx, "/v1/admin/contact", nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetReviewStatus approves ("approved") or unpublishes ("pending") a review.
func (c *SDKClient) SetReviewStatus(ctx context.Context, id, status string) (*Review, error) {
	var out Review
	path := "/v1/admin/reviews/" + url.PathEscape(id) + "/status"
	if err := c.do(ctx, http.MethodPatch, path, nil, UpdateStatusRequest{Status: status}, &out, http.StatusOK, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSubmission removes one inbox item. inbox is one of "waitlist",
// "team-requests", "reviews" or "contact".
func (c *SDKClient) DeleteSubmission(ctx context.Context, inbox, id string) error {
	return c.delete(ctx, "/v1/admin/"+url.PathEscape(inbox)+"/"+url.PathEscape(id))
}

// Dashboard loads every admin section at once. Sections that failed are
// named in Failed.
func (c *SDKClient) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	var out DashboardResponse
	if err := c.get(ctx, "/v1/admin/dashboard", nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}
