package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/domain"
	"github.com/aussiebroadwan/cofound/internal/matchmaker/store"
	"github.com/aussiebroadwan/cofound/pkg/idx"
	"github.com/aussiebroadwan/cofound/pkg/metrics"
	"github.com/aussiebroadwan/cofound/pkg/slogx"
)

// PublicReviewLimit is how many approved reviews the public list shows.
const PublicReviewLimit = 10

// SubmissionService handles the public forms (waitlist, team requests,
// reviews, contact) and their admin inboxes.
type SubmissionService struct {
	Store   store.Store
	Metrics *metrics.Metrics
}

type normalizer interface{ Normalize() }

func submit[T domain.Payload](ctx context.Context, m *metrics.Metrics, c store.Collection[T], data T) (domain.Submission[T], error) {
	l := slogx.FromContext(ctx)

	if n, ok := any(&data).(normalizer); ok {
		n.Normalize()
	}
	if err := data.Validate(); err != nil {
		return domain.Submission[T]{}, invalidArgument(err)
	}

	at := now()
	sub := domain.Submission[T]{ID: idx.NewAt(at).String(), CreatedAt: at, Data: data}
	if err := c.Create(ctx, sub); err != nil {
		l.Error("failed to store submission", "error", err, "kind", data.Kind())
		return domain.Submission[T]{}, mapStoreErr(err, ErrSubmissionNotFound)
	}

	m.IncSubmission(string(data.Kind()))
	l.Info("submission received", "kind", data.Kind(), "submission_id", sub.ID)
	return sub, nil
}

func list[T domain.Payload](ctx context.Context, caller domain.Identity, c store.Collection[T]) ([]domain.Submission[T], error) {
	if !caller.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	out, err := c.List(ctx, 0)
	if err != nil {
		return nil, mapStoreErr(err, ErrSubmissionNotFound)
	}
	return out, nil
}

func remove[T domain.Payload](ctx context.Context, caller domain.Identity, c store.Collection[T], id string) error {
	if !caller.CanAdminWrite() {
		return ErrPermissionDenied
	}
	if err := c.Delete(ctx, id); err != nil {
		return mapStoreErr(err, ErrSubmissionNotFound)
	}
	var zero T
	slogx.FromContext(ctx).Info("submission deleted", "kind", zero.Kind(), "submission_id", id, "admin_id", caller.ID)
	return nil
}

func (s *SubmissionService) SubmitWaitlist(ctx context.Context, w domain.WaitlistEntry) (domain.Submission[domain.WaitlistEntry], error) {
	return submit(ctx, s.Metrics, s.Store.Waitlist(), w)
}

func (s *SubmissionService) ListWaitlist(ctx context.Context, caller domain.Identity) ([]domain.Submission[domain.WaitlistEntry], error) {
	return list(ctx, caller, s.Store.Waitlist())
}

func (s *SubmissionService) DeleteWaitlist(ctx context.Context, caller domain.Identity, id string) error {
	return remove(ctx, caller, s.Store.Waitlist(), id)
}

func (s *SubmissionService) SubmitTeamRequest(ctx context.Context, t domain.TeamRequest) (domain.Submission[domain.TeamRequest], error) {
	return submit(ctx, s.Metrics, s.Store.TeamRequests(), t)
}

func (s *SubmissionService) ListTeamRequests(ctx context.Context, caller domain.Identity) ([]domain.Submission[domain.TeamRequest], error) {
	return list(ctx, caller, s.Store.TeamRequests())
}

func (s *SubmissionService) DeleteTeamRequest(ctx context.Context, caller domain.Identity, id string) error {
	return remove(ctx, caller, s.Store.TeamRequests(), id)
}

// SubmitReview always files the review as pending, whatever the form says.
func (s *SubmissionService) SubmitReview(ctx context.Context, r domain.Review) (domain.Submission[domain.Review], error) {
	r.Status = domain.ReviewPending
	return submit[domain.Review](ctx, s.Metrics, s.Store.Reviews(), r)
}

func (s *SubmissionService) ListReviews(ctx context.Context, caller domain.Identity) ([]domain.Submission[domain.Review], error) {
	return list[domain.Review](ctx, caller, s.Store.Reviews())
}

// ListApprovedReviews is the public testimonial feed, newest first.
func (s *SubmissionService) ListApprovedReviews(ctx context.Context) ([]domain.Submission[domain.Review], error) {
	out, err := s.Store.Reviews().ListByStatus(ctx, domain.ReviewApproved, PublicReviewLimit)
	if err != nil {
		return nil, mapStoreErr(err, ErrSubmissionNotFound)
	}
	return out, nil
}

// SetReviewStatus approves a review or takes it back to pending.
func (s *SubmissionService) SetReviewStatus(ctx context.Context, caller domain.Identity, id, status string) (domain.Submission[domain.Review], error) {
	if !caller.CanAdminWrite() {
		return domain.Submission[domain.Review]{}, ErrPermissionDenied
	}

	st := domain.ReviewStatus(strings.ToLower(strings.TrimSpace(status)))
	if st != domain.ReviewPending && st != domain.ReviewApproved {
		return domain.Submission[domain.Review]{}, fmt.Errorf("%w: unknown review status %q", ErrInvalidArgument, status)
	}

	reviews := s.Store.Reviews()
	r, err := reviews.Get(ctx, id)
	if err != nil {
		return domain.Submission[domain.Review]{}, mapStoreErr(err, ErrSubmissionNotFound)
	}

	r.Data.Status = st
	if err := reviews.Put(ctx, r); err != nil {
		return domain.Submission[domain.Review]{}, mapStoreErr(err, ErrSubmissionNotFound)
	}

	slogx.FromContext(ctx).Info("review status updated", "submission_id", id, "status", st, "admin_id", caller.ID)
	return r, nil
}

func (s *SubmissionService) DeleteReview(ctx context.Context, caller domain.Identity, id string) error {
	return remove[domain.Review](ctx, caller, s.Store.Reviews(), id)
}

func (s *SubmissionService) SubmitContact(ctx context.Context, c domain.ContactMessage) (domain.Submission[domain.ContactMessage], error) {
	return submit(ctx, s.Metrics, s.Store.ContactMessages(), c)
}

func (s *SubmissionService) ListContacts(ctx context.Context, caller domain.Identity) ([]domain.Submission[domain.ContactMessage], error) {
	return list(ctx, caller, s.Store.ContactMessages())
}

func (s *SubmissionService) DeleteContact(ctx context.Context, caller domain.Identity, id string) error {
	return remove(ctx, caller, s.Store.ContactMessages(), id)
}
