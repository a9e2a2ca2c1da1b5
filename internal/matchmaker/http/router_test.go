package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/domain"
	"github.com/aussiebroadwan/cofound/internal/matchmaker/http/mocks"
	"github.com/aussiebroadwan/cofound/internal/matchmaker/service"
	"github.com/aussiebroadwan/cofound/pkg/jwtx"
	"github.com/aussiebroadwan/cofound/pkg/matchsdk"
	"github.com/aussiebroadwan/cofound/pkg/metrics"
	"github.com/aussiebroadwan/cofound/pkg/slogx"
)

const (
	testIssuer   = "https://auth.example.com"
	testAudience = "cofound"
)

var created = time.UnixMilli(1700000000000).UTC()

type RouterSuite struct {
	suite.Suite

	ctrl        *gomock.Controller
	stats       *mocks.MockStatsComputer
	profiles    *mocks.MockProfileManager
	matches     *mocks.MockMatchManager
	submissions *mocks.MockSubmissionManager
	dashboard   *mocks.MockDashboardLoader
	pinger      *mocks.MockPinger

	signer  *jwtx.EdDSASigner
	keys    *jwtx.KeySet
	metrics *metrics.Metrics
	router  *Router
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	t := s.T()
	s.ctrl = gomock.NewController(t)
	s.stats = mocks.NewMockStatsComputer(s.ctrl)
	s.profiles = mocks.NewMockProfileManager(s.ctrl)
	s.matches = mocks.NewMockMatchManager(s.ctrl)
	s.submissions = mocks.NewMockSubmissionManager(s.ctrl)
	s.dashboard = mocks.NewMockDashboardLoader(s.ctrl)
	s.pinger = mocks.NewMockPinger(s.ctrl)

	var err error
	s.signer, err = jwtx.GenerateEdDSASigner("test-key")
	require.NoError(t, err)
	s.keys = jwtx.NewKeySet()
	require.NoError(t, s.keys.AddJWK(s.signer.PublicJWK()))

	reg := prometheus.NewRegistry()
	s.metrics = metrics.New(reg)

	verifier := jwtx.NewVerifier(s.keys, jwtx.VerifyOptions{Issuer: testIssuer, Audience: []string{testAudience}})
	s.router = NewRouter(s.keys, verifier, "test", s.pinger, reg, nil, slogx.Discard())
	s.router.StatsService = s.stats
	s.router.ProfileService = s.profiles
	s.router.MatchService = s.matches
	s.router.SubmissionService = s.submissions
	s.router.DashboardService = s.dashboard
	s.router.ApplyRoutes()
}

func (s *RouterSuite) token(sub string, scopes ...string) string {
	claims := jwtx.NewAccessClaims(sub, sub+"@example.com", scopes, time.Minute,
		testIssuer, []string{testAudience}, time.Now())
	tok, err := s.signer.Sign(claims)
	s.Require().NoError(err)
	return tok
}

func (s *RouterSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](s *RouterSuite, w *httptest.ResponseRecorder) T {
	var out T
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (s *RouterSuite) errorCode(w *httptest.ResponseRecorder) string {
	return decode[matchsdk.ErrorResponse](s, w).Error
}

func sampleMatch() domain.Match {
	return domain.Match{
		ID:        "m1",
		P1ID:      "u1",
		P2ID:      "u2",
		P1:        domain.Participant{Name: "Asha", Role: domain.RoleFounder, Email: "a@x.com", Phone: "+61 400 000 001"},
		P2:        domain.Participant{Name: "Ravi", Role: domain.RoleDeveloper, Email: "r@x.com"},
		Status:    domain.StatusPending,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

// ============================================================================
// Authentication and scopes at the edge
// ============================================================================

func (s *RouterSuite) TestAdminRoutesRejectMissingToken() {
	w := s.do(http.MethodPost, "/v1/matches", "", matchsdk.CreateMatchRequest{ProfileA: "u1", ProfileB: "u2"})
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal(matchsdk.ErrorCodeInvalidToken, s.errorCode(w))
	s.Contains(w.Header().Get("WWW-Authenticate"), "invalid_token")
}

func (s *RouterSuite) TestAdminRoutesRejectMemberToken() {
	w := s.do(http.MethodPost, "/v1/matches", s.token("u1"), matchsdk.CreateMatchRequest{ProfileA: "u1", ProfileB: "u2"})
	s.Equal(http.StatusForbidden, w.Code)
	s.Equal(matchsdk.ErrorCodeInsufficientScope, s.errorCode(w))
}

func (s *RouterSuite) TestReadScopeCannotWrite() {
	w := s.do(http.MethodDelete, "/v1/matches/m1", s.token("admin", domain.ScopeAdminRead), nil)
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *RouterSuite) TestForgedTokenRejected() {
	other, err := jwtx.GenerateEdDSASigner("test-key")
	s.Require().NoError(err)
	tok, err := other.Sign(jwtx.NewAccessClaims("admin", "", []string{domain.ScopeAdminWrite}, time.Minute,
		testIssuer, []string{testAudience}, time.Now()))
	s.Require().NoError(err)

	w := s.do(http.MethodGet, "/v1/matches", tok, nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

// ============================================================================
// Matches
// ============================================================================

func (s *RouterSuite) TestCreateMatch() {
	s.matches.EXPECT().
		CreateMatch(gomock.Any(), gomock.Any(), "u1", "u2", "both fintech").
		DoAndReturn(func(_ context.Context, caller domain.Identity, _, _, _ string) (domain.Match, error) {
			s.Equal("admin", caller.ID)
			s.True(caller.CanAdminWrite())
			return sampleMatch(), nil
		})

	w := s.do(http.MethodPost, "/v1/matches", s.token("admin", domain.ScopeAdminWrite),
		matchsdk.CreateMatchRequest{ProfileA: "u1", ProfileB: "u2", Notes: "both fintech"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	m := decode[matchsdk.Match](s, w)
	s.Equal("m1", m.ID)
	s.Equal("pending", m.Status)
	s.Equal("Asha", m.P1.Name)
	s.Equal("Developer", m.P2.Role)
	s.True(created.Equal(m.CreatedAt))
}

func (s *RouterSuite) TestCreateMatchRejectsUnknownFields() {
	w := s.do(http.MethodPost, "/v1/matches", s.token("admin", domain.ScopeAdminWrite),
		map[string]string{"profileA": "u1", "profileB": "u2", "status": "connected"})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(matchsdk.ErrorCodeInvalidRequest, s.errorCode(w))
}

func (s *RouterSuite) TestServiceErrorMapping() {
	cases := []struct {
		err  error
		code int
		body string
	}{
		{fmt.Errorf("profile u9: %w", service.ErrProfileNotFound), http.StatusNotFound, matchsdk.ErrorCodeNotFound},
		{fmt.Errorf("%w: same profile twice", service.ErrInvalidArgument), http.StatusBadRequest, matchsdk.ErrorCodeInvalidRequest},
		{service.ErrPermissionDenied, http.StatusForbidden, matchsdk.ErrorCodePermissionDenied},
		{fmt.Errorf("%w: busy", service.ErrUnavailable), http.StatusServiceUnavailable, matchsdk.ErrorCodeUnavailable},
		{errors.New("boom"), http.StatusInternalServerError, matchsdk.ErrorCodeServerError},
	}

	for _, tc := range cases {
		s.Run(tc.body, func() {
			s.matches.EXPECT().CreateMatch(gomock.Any(), gomock.Any(), "u1", "u9", "").Return(domain.Match{}, tc.err)

			w := s.do(http.MethodPost, "/v1/matches", s.token("admin", domain.ScopeAdminWrite),
				matchsdk.CreateMatchRequest{ProfileA: "u1", ProfileB: "u9"})
			s.Equal(tc.code, w.Code)
			s.Equal(tc.body, s.errorCode(w))
			if tc.code == http.StatusInternalServerError {
				s.NotContains(w.Body.String(), "boom")
			}
		})
	}
}

func (s *RouterSuite) TestUpdateStatusConflict() {
	s.matches.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), "m1", "connected").
		Return(domain.Match{}, fmt.Errorf("%w: pending -> connected", service.ErrInvalidTransition))

	w := s.do(http.MethodPatch, "/v1/matches/m1/status", s.token("admin", domain.ScopeAdminWrite),
		matchsdk.UpdateStatusRequest{Status: "connected"})
	s.Equal(http.StatusConflict, w.Code)
	s.Equal(matchsdk.ErrorCodeInvalidTransition, s.errorCode(w))
}

func (s *RouterSuite) TestUpdateStatus() {
	m := sampleMatch()
	m.Status = domain.StatusIntroduced
	s.matches.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), "m1", "introduced").Return(m, nil)

	w := s.do(http.MethodPatch, "/v1/matches/m1/status", s.token("admin", domain.ScopeAdminWrite),
		matchsdk.UpdateStatusRequest{Status: "introduced"})
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("introduced", decode[matchsdk.Match](s, w).Status)
}

func (s *RouterSuite) TestDeleteMatch() {
	s.matches.EXPECT().DeleteMatch(gomock.Any(), gomock.Any(), "m1").Return(nil)

	w := s.do(http.MethodDelete, "/v1/matches/m1", s.token("admin", domain.ScopeAdminWrite), nil)
	s.Equal(http.StatusNoContent, w.Code)
	s.Empty(w.Body.Bytes())
}

func (s *RouterSuite) TestMyMatchesHidesContactUntilIntroduced() {
	pending := sampleMatch()
	introduced := sampleMatch()
	introduced.ID = "m2"
	introduced.Status = domain.StatusIntroduced

	s.matches.EXPECT().
		ListForUser(gomock.Any(), gomock.Any(), "u2").
		DoAndReturn(func(_ context.Context, caller domain.Identity, id string) ([]domain.Match, error) {
			s.Equal("u2", caller.ID)
			s.Equal("u2@example.com", caller.Email)
			return []domain.Match{introduced, pending}, nil
		})

	w := s.do(http.MethodGet, "/v1/matches/me", s.token("u2"), nil)
	s.Require().Equal(http.StatusOK, w.Code)

	views := decode[matchsdk.ListMatchViewsResponse](s, w).Matches
	s.Require().Len(views, 2)
	s.Equal("m2", views[0].ID)
	s.Equal("u1", views[0].PartnerID)
	s.Equal("a@x.com", views[0].Partner.Email)
	s.Equal("Asha", views[1].Partner.Name)
	s.Empty(views[1].Partner.Email)
	s.Empty(views[1].Partner.Phone)
}

func (s *RouterSuite) TestUserMatchesMismatch() {
	s.matches.EXPECT().
		ListForUser(gomock.Any(), gomock.Any(), "u3").
		Return(nil, fmt.Errorf("%w: identity does not match the authenticated caller", service.ErrInvalidArgument))

	w := s.do(http.MethodGet, "/v1/users/u3/matches", s.token("u2"), nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterSuite) TestEmptyListsAreArrays() {
	s.matches.EXPECT().ListAll(gomock.Any(), gomock.Any()).Return(nil, nil)

	w := s.do(http.MethodGet, "/v1/matches", s.token("admin", domain.ScopeAdminRead), nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"matches":[]}`, w.Body.String())
}

// ============================================================================
// Profiles
// ============================================================================

func (s *RouterSuite) TestPutMyProfile() {
	s.profiles.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, caller domain.Identity, p domain.Profile) (domain.Profile, error) {
			s.Equal("u1", caller.ID)
			s.Empty(p.ID, "the handler never takes the id from the body")
			s.Equal(domain.RoleFounder, p.Role)
			p.ID = caller.ID
			p.Email = caller.Email
			p.CreatedAt = created
			return p, nil
		})

	w := s.do(http.MethodPut, "/v1/profiles/me", s.token("u1"), matchsdk.ProfileRequest{
		Name: "Asha", Location: "Sydney", Role: "Founder", Skills: []string{"Sales"},
		Commitment: "Full-time", Looking: "Technical Co-founder", Bio: "ex-banker",
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	p := decode[matchsdk.Profile](s, w)
	s.Equal("u1", p.ID)
	s.Equal("u1@example.com", p.Email)
	s.Equal([]string{}, p.Industries)
}

func (s *RouterSuite) TestPutMyProfileRejectsGuestToken() {
	claims := jwtx.NewAccessClaims("guest-1", "", nil, time.Minute,
		testIssuer, []string{testAudience}, time.Now())
	claims.Anonymous = true
	tok, err := s.signer.Sign(claims)
	s.Require().NoError(err)

	s.profiles.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, caller domain.Identity, _ domain.Profile) (domain.Profile, error) {
			s.Equal("guest-1", caller.ID)
			s.True(caller.Anonymous, "the guest flag reaches the service")
			return domain.Profile{}, service.ErrPermissionDenied
		})

	w := s.do(http.MethodPut, "/v1/profiles/me", tok, matchsdk.ProfileRequest{
		Name: "Guest", Role: "Founder", Commitment: "Full-time",
	})
	s.Equal(http.StatusForbidden, w.Code, w.Body.String())
}

func (s *RouterSuite) TestListProfilesPassesFilter() {
	s.profiles.EXPECT().
		List(gomock.Any(), gomock.Any(), domain.ProfileFilter{Search: "rust", Role: domain.RoleDeveloper}).
		Return([]domain.Profile{{ID: "u2", Name: "Ravi", Role: domain.RoleDeveloper}}, nil)

	w := s.do(http.MethodGet, "/v1/profiles?q=rust&role=Developer", s.token("admin", domain.ScopeAdminRead), nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Len(decode[matchsdk.ListProfilesResponse](s, w).Profiles, 1)
}

func (s *RouterSuite) TestGetMyProfileNotFound() {
	s.profiles.EXPECT().Get(gomock.Any(), gomock.Any(), "u1").Return(domain.Profile{}, service.ErrProfileNotFound)

	w := s.do(http.MethodGet, "/v1/profiles/me", s.token("u1"), nil)
	s.Equal(http.StatusNotFound, w.Code)
}

// ============================================================================
// Stats, submissions and dashboard
// ============================================================================

func (s *RouterSuite) TestStatsAnonymousAndAdmin() {
	s.stats.EXPECT().
		Compute(gomock.Any(), domain.Identity{}).
		Return(domain.Stats{ProfileCount: 3, MatchCount: 2, ConnectedCount: 1}, nil)

	w := s.do(http.MethodGet, "/v1/stats", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"profileCount":3,"matchCount":2,"connectedCount":1,"teamRequestCount":0}`, w.Body.String())

	s.stats.EXPECT().
		Compute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, caller domain.Identity) (domain.Stats, error) {
			s.True(caller.IsAdmin())
			return domain.Stats{ProfileCount: 3, TeamRequestCount: 2, Degraded: []string{service.StatMatches}}, nil
		})

	w = s.do(http.MethodGet, "/v1/stats", s.token("admin", domain.ScopeAdminRead), nil)
	s.Require().Equal(http.StatusOK, w.Code)
	st := decode[matchsdk.StatsResponse](s, w)
	s.Equal(2, st.TeamRequestCount)
	s.Equal([]string{"matchCount"}, st.Degraded)
}

func (s *RouterSuite) TestStatsIgnoresBadOptionalToken() {
	s.stats.EXPECT().Compute(gomock.Any(), domain.Identity{}).Return(domain.Stats{}, nil)

	w := s.do(http.MethodGet, "/v1/stats", "not-a-jwt", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterSuite) TestSubmitReviewIsPublic() {
	s.submissions.EXPECT().
		SubmitReview(gomock.Any(), domain.Review{Name: "Asha", Content: "Found my CTO"}).
		Return(domain.Submission[domain.Review]{
			ID:        "r1",
			CreatedAt: created,
			Data:      domain.Review{Name: "Asha", Content: "Found my CTO", Rating: 5, Status: domain.ReviewPending},
		}, nil)

	w := s.do(http.MethodPost, "/v1/reviews", "", matchsdk.ReviewRequest{Name: "Asha", Content: "Found my CTO"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	rv := decode[matchsdk.Review](s, w)
	s.Equal("r1", rv.ID)
	s.Equal(5, rv.Rating)
	s.Equal("pending", rv.Status)
}

func (s *RouterSuite) TestSubmitWaitlistValidation() {
	s.submissions.EXPECT().
		SubmitWaitlist(gomock.Any(), domain.WaitlistEntry{Name: "Asha"}).
		Return(domain.Submission[domain.WaitlistEntry]{}, fmt.Errorf("%w: email: is required", service.ErrInvalidArgument))

	w := s.do(http.MethodPost, "/v1/waitlist", "", matchsdk.WaitlistRequest{Name: "Asha"})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(decode[matchsdk.ErrorResponse](s, w).ErrorDescription, "email")
}

func (s *RouterSuite) TestDeleteInboxItem() {
	s.submissions.EXPECT().DeleteTeamRequest(gomock.Any(), gomock.Any(), "t1").Return(nil)

	w := s.do(http.MethodDelete, "/v1/admin/team-requests/t1", s.token("admin", domain.ScopeAdminWrite), nil)
	s.Equal(http.StatusNoContent, w.Code)

	w = s.do(http.MethodDelete, "/v1/admin/profiles/t1", s.token("admin", domain.ScopeAdminWrite), nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *RouterSuite) TestSetReviewStatus() {
	s.submissions.EXPECT().
		SetReviewStatus(gomock.Any(), gomock.Any(), "r1", "approved").
		Return(domain.Submission[domain.Review]{
			ID:   "r1",
			Data: domain.Review{Name: "Asha", Content: "x", Rating: 4, Status: domain.ReviewApproved},
		}, nil)

	w := s.do(http.MethodPatch, "/v1/admin/reviews/r1/status", s.token("admin", domain.ScopeAdminWrite),
		matchsdk.UpdateStatusRequest{Status: "approved"})
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("approved", decode[matchsdk.Review](s, w).Status)
}

func (s *RouterSuite) TestDashboardPartialFailure() {
	s.dashboard.EXPECT().Load(gomock.Any(), gomock.Any()).Return(service.Dashboard{
		Stats:   domain.Stats{ProfileCount: 1},
		Matches: []domain.Match{sampleMatch()},
		Failed:  []string{service.SectionReviews},
	}, nil)

	w := s.do(http.MethodGet, "/v1/admin/dashboard", s.token("admin", domain.ScopeAdminRead), nil)
	s.Require().Equal(http.StatusOK, w.Code)

	d := decode[matchsdk.DashboardResponse](s, w)
	s.Equal(1, d.Stats.ProfileCount)
	s.Len(d.Matches, 1)
	s.Equal([]string{"reviews"}, d.Failed)
	s.NotNil(d.Reviews)
	s.Empty(d.Reviews)
}

// ============================================================================
// System endpoints
// ============================================================================

func (s *RouterSuite) TestReadyz() {
	s.pinger.EXPECT().Ping(gomock.Any()).Return(nil)
	w := s.do(http.MethodGet, "/readyz", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("ok", decode[matchsdk.HealthResponse](s, w).Status)

	s.pinger.EXPECT().Ping(gomock.Any()).Return(errors.New("database is locked"))
	w = s.do(http.MethodGet, "/readyz", "", nil)
	s.Equal(http.StatusServiceUnavailable, w.Code)
	h := decode[matchsdk.HealthResponse](s, w)
	s.Equal("degraded", h.Status)
	s.Equal("ok", h.Checks.Keys)
	s.True(strings.HasPrefix(h.Checks.Store, "error:"))
}

func (s *RouterSuite) TestLivezAndMetrics() {
	w := s.do(http.MethodGet, "/livez", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("test", decode[matchsdk.HealthResponse](s, w).Version)

	s.metrics.IncMatchesCreated()
	w = s.do(http.MethodGet, "/metrics", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "cofound_matches_created_total 1")
}

func (s *RouterSuite) TestCORSPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/v1/matches", nil)
	req.Header.Set("Origin", "https://cofound.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "authorization,content-type")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusNoContent, w.Code)
	s.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestReadyzWithoutKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	pinger := mocks.NewMockPinger(ctrl)
	pinger.EXPECT().Ping(gomock.Any()).Return(nil)

	w := httptest.NewRecorder()
	ReadyzHandler(time.Now(), "v", pinger, jwtx.NewKeySet()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var h matchsdk.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &h))
	require.Equal(t, "error: no keys loaded", h.Checks.Keys)
}
