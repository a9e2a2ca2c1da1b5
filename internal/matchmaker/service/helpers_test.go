package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/domain"
	"github.com/aussiebroadwan/cofound/internal/matchmaker/store"
	"github.com/aussiebroadwan/cofound/internal/matchmaker/store/drivers/sqlite"
	"github.com/aussiebroadwan/cofound/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

var (
	admin     = domain.Identity{ID: "admin", Email: "admin@example.com", Scopes: []string{domain.ScopeAdminRead, domain.ScopeAdminWrite}}
	readAdmin = domain.Identity{ID: "reader", Scopes: []string{domain.ScopeAdminRead}}
	anonymous = domain.Identity{}
)

func user(id string) domain.Identity {
	return domain.Identity{ID: id, Email: id + "@example.com"}
}

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(sqlite.MemoryDSN)
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newTestMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

func putProfile(t *testing.T, s store.Store, id, name string, role domain.Role, email string) domain.Profile {
	t.Helper()

	p := domain.Profile{
		ID:         id,
		Name:       name,
		Location:   "Brisbane",
		Email:      email,
		Role:       role,
		Skills:     []string{"Go"},
		Commitment: domain.CommitmentFullTime,
		Looking:    "Any",
		Bio:        name + " builds startups.",
		CreatedAt:  time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, s.Profiles().Put(context.Background(), p))
	return p
}

// faultStore wraps a real store and injects failures per repository call.
type faultStore struct {
	store.Store

	byP1Err, byP2Err error
	matchGetErr      error
	scanErr          error
	matchCountErr    error
	profileCountErr  error
	teamCountErr     error
	profileListErr   error

	scanLimits []int
}

func (f *faultStore) Matches() store.Matches   { return &faultMatches{Matches: f.Store.Matches(), f: f} }
func (f *faultStore) Profiles() store.Profiles { return &faultProfiles{Profiles: f.Store.Profiles(), f: f} }

func (f *faultStore) TeamRequests() store.Collection[domain.TeamRequest] {
	return &faultTeam{Collection: f.Store.TeamRequests(), f: f}
}

type faultMatches struct {
	store.Matches
	f *faultStore
}

func (m *faultMatches) Get(ctx context.Context, id string) (domain.Match, error) {
	if m.f.matchGetErr != nil {
		return domain.Match{}, m.f.matchGetErr
	}
	return m.Matches.Get(ctx, id)
}

func (m *faultMatches) ListByP1(ctx context.Context, id string) ([]domain.Match, error) {
	if m.f.byP1Err != nil {
		return nil, m.f.byP1Err
	}
	return m.Matches.ListByP1(ctx, id)
}

func (m *faultMatches) ListByP2(ctx context.Context, id string) ([]domain.Match, error) {
	if m.f.byP2Err != nil {
		return nil, m.f.byP2Err
	}
	return m.Matches.ListByP2(ctx, id)
}

func (m *faultMatches) Scan(ctx context.Context, limit int) ([]domain.Match, error) {
	m.f.scanLimits = append(m.f.scanLimits, limit)
	if m.f.scanErr != nil {
		return nil, m.f.scanErr
	}
	return m.Matches.Scan(ctx, limit)
}

func (m *faultMatches) Count(ctx context.Context) (int, error) {
	if m.f.matchCountErr != nil {
		return 0, m.f.matchCountErr
	}
	return m.Matches.Count(ctx)
}

type faultProfiles struct {
	store.Profiles
	f *faultStore
}

func (p *faultProfiles) Count(ctx context.Context) (int, error) {
	if p.f.profileCountErr != nil {
		return 0, p.f.profileCountErr
	}
	return p.Profiles.Count(ctx)
}

func (p *faultProfiles) List(ctx context.Context) ([]domain.Profile, error) {
	if p.f.profileListErr != nil {
		return nil, p.f.profileListErr
	}
	return p.Profiles.List(ctx)
}

type faultTeam struct {
	store.Collection[domain.TeamRequest]
	f *faultStore
}

func (c *faultTeam) Count(ctx context.Context) (int, error) {
	if c.f.teamCountErr != nil {
		return 0, c.f.teamCountErr
	}
	return c.Collection.Count(ctx)
}

func ids(ms []domain.Match) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.ID)
	}
	return out
}
