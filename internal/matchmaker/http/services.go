package http

//go:generate mockgen -source=services.go -destination=mocks/service-mocks.go -package=mocks

import (
	"context"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/domain"
	"github.com/aussiebroadwan/cofound/internal/matchmaker/service"
)

// The handlers depend on these rather than on the concrete services so they
// can be tested against mocks.

type StatsComputer interface {
	Compute(ctx context.Context, caller domain.Identity) (domain.Stats, error)
}

type ProfileManager interface {
	Submit(ctx context.Context, caller domain.Identity, p domain.Profile) (domain.Profile, error)
	Get(ctx context.Context, caller domain.Identity, id string) (domain.Profile, error)
	List(ctx context.Context, caller domain.Identity, f domain.ProfileFilter) ([]domain.Profile, error)
	Delete(ctx context.Context, caller domain.Identity, id string) error
}

type MatchManager interface {
	CreateMatch(ctx context.Context, caller domain.Identity, aID, bID, notes string) (domain.Match, error)
	UpdateStatus(ctx context.Context, caller domain.Identity, matchID, next string) (domain.Match, error)
	UpdateNotes(ctx context.Context, caller domain.Identity, matchID, notes string) (domain.Match, error)
	DeleteMatch(ctx context.Context, caller domain.Identity, matchID string) error
	ListForUser(ctx context.Context, caller domain.Identity, identityID string) ([]domain.Match, error)
	ListAll(ctx context.Context, caller domain.Identity) ([]domain.Match, error)
}

type SubmissionManager interface {
	SubmitWaitlist(ctx context.Context, w domain.WaitlistEntry) (domain.Submission[domain.WaitlistEntry], error)
	ListWaitlist(ctx context.Context, caller domain.Identity) ([]domain.Submission[domain.WaitlistEntry], error)
	DeleteWaitlist(ctx context.Context, caller domain.Identity, id string) error

	SubmitTeamRequest(ctx context.Context, t domain.TeamRequest) (domain.Submission[domain.TeamRequest], error)
	ListTeamRequests(ctx context.Context, caller domain.Identity) ([]domain.Submission[domain.TeamRequest], error)
	DeleteTeamRequest(ctx context.Context, caller domain.Identity, id string) error

	SubmitReview(ctx context.Context, r domain.Review) (domain.Submission[domain.Review], error)
	ListReviews(ctx context.Context, caller domain.Identity) ([]domain.Submission[domain.Review], error)
	ListApprovedReviews(ctx context.Context) ([]domain.Submission[domain.Review], error)
	SetReviewStatus(ctx context.Context, caller domain.Identity, id, status string) (domain.Submission[domain.Review], error)
	DeleteReview(ctx context.Context, caller domain.Identity, id string) error

	SubmitContact(ctx context.Context, c domain.ContactMessage) (domain.Submission[domain.ContactMessage], error)
	ListContacts(ctx context.Context, caller domain.Identity) ([]domain.Submission[domain.ContactMessage], error)
	DeleteContact(ctx context.Context, caller domain.Identity, id string) error
}

type DashboardLoader interface {
	Load(ctx context.Context, caller domain.Identity) (service.Dashboard, error)
}

// Pinger is the slice of the store the readiness probe needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

var (
	_ StatsComputer     = (*service.StatsService)(nil)
	_ ProfileManager    = (*service.ProfileService)(nil)
	_ MatchManager      = (*service.MatchService)(nil)
	_ SubmissionManager = (*service.SubmissionService)(nil)
	_ DashboardLoader   = (*service.DashboardService)(nil)
)
