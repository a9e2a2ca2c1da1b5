package matchsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, h http.HandlerFunc) *SDKClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewSDKClient(srv.URL + "/")
}

func TestNewSDKClientTrimsSlash(t *testing.T) {
	t.Parallel()

	c := NewSDKClient("https://api.example.com/")
	require.Equal(t, "https://api.example.com", c.BaseURL)
	require.Empty(t, c.Token)

	member := c.WithToken("tok")
	require.Equal(t, "tok", member.Token)
	require.Empty(t, c.Token, "WithToken must not change the original")
}

func TestMemberCallsNeedToken(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("no request expected, got %s %s", r.Method, r.URL.Path)
	})

	_, err := c.MyMatches(context.Background())
	require.ErrorIs(t, err, ErrNoToken)

	err = c.DeleteMatch(context.Background(), "m1")
	require.ErrorIs(t, err, ErrNoToken)
}

func TestCreateMatch(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/matches", r.URL.Path)
		require.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req CreateMatchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "u1", req.ProfileA)
		require.Equal(t, "u2", req.ProfileB)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Match{ID: "m1", P1ID: "u1", P2ID: "u2", Status: "pending"})
	}).WithToken("admin-token")

	m, err := c.CreateMatch(context.Background(), CreateMatchRequest{ProfileA: "u1", ProfileB: "u2"})
	require.NoError(t, err)
	require.Equal(t, "m1", m.ID)
	require.Equal(t, "pending", m.Status)
}

func TestErrorResponses(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		status int
		body   string
		check  func(error) bool
		code   string
	}{
		{"transition", http.StatusConflict, `{"error":"invalid_transition","error_description":"pending -> connected"}`, IsInvalidTransition, ErrorCodeInvalidTransition},
		{"not found", http.StatusNotFound, `{"error":"not_found"}`, IsNotFound, ErrorCodeNotFound},
		{"scope", http.StatusForbidden, `{"error":"insufficient_scope"}`, IsForbidden, ErrorCodeInsufficientScope},
		{"unavailable", http.StatusServiceUnavailable, `{"error":"store_unavailable"}`, IsUnavailable, ErrorCodeUnavailable},
		{"plain text body", http.StatusBadGateway, `upstream down`, func(error) bool { return true }, ErrorCodeServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}).WithToken("tok")

			_, err := c.UpdateMatchStatus(context.Background(), "m1", "connected")
			require.Error(t, err)
			require.True(t, tc.check(err))

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, tc.status, apiErr.StatusCode)
			require.Equal(t, tc.code, apiErr.Code)
		})
	}
}

func TestListProfilesQuery(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/profiles", r.URL.Path)
		require.Equal(t, "rust", r.URL.Query().Get("q"))
		require.Equal(t, "Developer", r.URL.Query().Get("role"))
		require.False(t, r.URL.Query().Has("commitment"))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"profiles":[{"id":"u2","name":"Ravi","role":"Developer","skills":["Rust"]}]}`))
	}).WithToken("tok")

	out, err := c.ListProfiles(context.Background(), ProfileQuery{Search: "rust", Role: "Developer"})
	require.NoError(t, err)
	require.Len(t, out.Profiles, 1)
	require.Equal(t, "Ravi", out.Profiles[0].Name)
	require.Equal(t, []string{"Rust"}, out.Profiles[0].Skills)
}

func TestSubmissionsAreFlat(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "Asha", body["name"])
		require.NotContains(t, body, "rating", "zero rating is left to the server default")

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"r1","name":"Asha","content":"great","rating":5,"status":"pending","createdAt":"2024-01-01T00:00:00Z"}`))
	})

	rv, err := c.SubmitReview(context.Background(), ReviewRequest{Name: "Asha", Content: "great"})
	require.NoError(t, err)
	require.Equal(t, "r1", rv.ID)
	require.Equal(t, 5, rv.Rating)
	require.Equal(t, "pending", rv.Status)
	require.Equal(t, 2024, rv.CreatedAt.Year())
}

func TestDeleteSubmissionExpectsNoContent(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/v1/admin/team-requests/t1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}).WithToken("tok")

	require.NoError(t, c.DeleteSubmission(context.Background(), "team-requests", "t1"))
}
