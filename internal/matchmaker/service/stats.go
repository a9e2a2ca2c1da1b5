package service

import (
	"context"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/domain"
	"github.com/aussiebroadwan/cofound/internal/matchmaker/store"
	"github.com/aussiebroadwan/cofound/pkg/metrics"
	"github.com/aussiebroadwan/cofound/pkg/slogx"
	"golang.org/x/sync/errgroup"
)

// Names reported in Stats.Degraded.
const (
	StatProfiles     = "profileCount"
	StatMatches      = "matchCount"
	StatConnected    = "connectedCount"
	StatTeamRequests = "teamRequestCount"
)

type StatsService struct {
	Store   store.Store
	Metrics *metrics.Metrics
}

type counter struct {
	name  string
	count func(context.Context) (int, error)
	dst   *int
}

// Compute gathers the headline counters. It never needs a caller: the team
// request count is only filled in for admins and stays 0 for everyone else.
// A counter the store refuses or cannot serve is reported as 0 and named in
// Degraded instead of failing the whole call.
func (s *StatsService) Compute(ctx context.Context, caller domain.Identity) (domain.Stats, error) {
	var st domain.Stats

	counters := []counter{
		{StatProfiles, s.Store.Profiles().Count, &st.ProfileCount},
		{StatMatches, s.Store.Matches().Count, &st.MatchCount},
		{StatConnected, func(ctx context.Context) (int, error) {
			return s.Store.Matches().CountByStatus(ctx, domain.StatusConnected)
		}, &st.ConnectedCount},
	}
	if caller.IsAdmin() {
		counters = append(counters, counter{StatTeamRequests, s.Store.TeamRequests().Count, &st.TeamRequestCount})
	}

	degraded := make([]bool, len(counters))
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range counters {
		g.Go(func() error {
			n, err := c.count(gctx)
			switch {
			case err == nil:
				*c.dst = n
				return nil
			case degradable(err):
				slogx.FromContext(ctx).Warn("stat degraded to zero", "stat", c.name, "error", err)
				s.Metrics.IncStatsDegraded(c.name)
				degraded[i] = true
				return nil
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		slogx.FromContext(ctx).Error("failed to compute stats", "error", err)
		return domain.Stats{}, err
	}

	for i, c := range counters {
		if degraded[i] {
			st.Degraded = append(st.Degraded, c.name)
		}
	}
	return st, nil
}
