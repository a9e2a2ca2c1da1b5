package matchsdk

import (
	"context"
	"net/http"
	"net/url"
)

// SubmitProfile creates or replaces the caller's profile.
func (c *SDKClient) SubmitProfile(ctx context.Context, req ProfileRequest) (*Profile, error) {
	var out Profile
	if err := c.do(ctx, http.MethodPut, "/v1/profiles/me", nil, req, &out, http.StatusOK, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) MyProfile(ctx context.Context) (*Profile, error) {
	var out Profile
	if err := c.get(ctx, "/v1/profiles/me", nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyMatches returns the caller's matches, newest first, as seen from their side.
func (c *SDKClient) MyMatches(ctx context.Context) (*ListMatchViewsResponse, error) {
	var out ListMatchViewsResponse
	if err := c.get(ctx, "/v1/matches/me", nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserMatches lists the matches of identityID. Members may only ask for
// themselves; admins may ask for anyone.
func (c *SDKClient) UserMatches(ctx context.Context, identityID string) (*ListMatchViewsResponse, error) {
	var out ListMatchViewsResponse
	if err := c.get(ctx, "/v1/users/"+url.PathEscape(identityID)+"/matches", nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}
