package service

import (
	"context"
	"sync"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/domain"
	"github.com/aussiebroadwan/cofound/pkg/slogx"
	"golang.org/x/sync/errgroup"
)

// Dashboard section names reported in Failed.
const (
	SectionStats        = "stats"
	SectionProfiles     = "profiles"
	SectionMatches      = "matches"
	SectionWaitlist     = "waitlist"
	SectionTeamRequests = "teamRequests"
	SectionReviews      = "reviews"
	SectionContacts     = "contacts"
)

// Dashboard is everything the admin console shows on load.
type Dashboard struct {
	Stats        domain.Stats
	Profiles     []domain.Profile
	Matches      []domain.Match
	Waitlist     []domain.Submission[domain.WaitlistEntry]
	TeamRequests []domain.Submission[domain.TeamRequest]
	Reviews      []domain.Submission[domain.Review]
	Contacts     []domain.Submission[domain.ContactMessage]

	// Failed lists sections that could not be loaded and are left empty.
	Failed []string
}

type DashboardService struct {
	Stats       *StatsService
	Profiles    *ProfileService
	Matches     *MatchService
	Submissions *SubmissionService
}

// Load fetches every section concurrently. A failing section is recorded in
// Failed and the rest are still returned.
func (s *DashboardService) Load(ctx context.Context, caller domain.Identity) (Dashboard, error) {
	if !caller.IsAdmin() {
		return Dashboard{}, ErrPermissionDenied
	}

	var (
		d  Dashboard
		mu sync.Mutex
		g  errgroup.Group
	)

	section := func(name string, load func() error) {
		g.Go(func() error {
			if err := load(); err != nil {
				slogx.FromContext(ctx).Warn("dashboard section failed", "section", name, "error", err)
				mu.Lock()
				d.Failed = append(d.Failed, name)
				mu.Unlock()
			}
			return nil
		})
	}

	section(SectionStats, func() (err error) {
		d.Stats, err = s.Stats.Compute(ctx, caller)
		return err
	})
	section(SectionProfiles, func() (err error) {
		d.Profiles, err = s.Profiles.List(ctx, caller, domain.ProfileFilter{})
		return err
	})
	section(SectionMatches, func() (err error) {
		d.Matches, err = s.Matches.ListAll(ctx, caller)
		return err
	})
	section(SectionWaitlist, func() (err error) {
		d.Waitlist, err = s.Submissions.ListWaitlist(ctx, caller)
		return err
	})
	section(SectionTeamRequests, func() (err error) {
		d.TeamRequests, err = s.Submissions.ListTeamRequests(ctx, caller)
		return err
	})
	section(SectionReviews, func() (err error) {
		d.Reviews, err = s.Submissions.ListReviews(ctx, caller)
		return err
	})
	section(SectionContacts, func() (err error) {
		d.Contacts, err = s.Submissions.ListContacts(ctx, caller)
		return err
	})

	_ = g.Wait()
	sortSections(d.Failed)
	return d, nil
}

var sectionOrder = []string{
	SectionStats, SectionProfiles, SectionMatches, SectionWaitlist,
	SectionTeamRequests, SectionReviews, SectionContacts,
}

// sortSections puts failures in display order.
func sortSections(names []string) {
	rank := make(map[string]int, len(sectionOrder))
	for i, n := range sectionOrder {
		rank[n] = i
	}
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && rank[names[j]] < rank[names[j-1]]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
