package service

import (
	"context"
	"errors"
	"strings"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/domain"
	"github.com/aussiebroadwan/cofound/internal/matchmaker/store"
	"github.com/aussiebroadwan/cofound/pkg/slogx"
)

type ProfileService struct {
	Store store.Store
}

// Submit creates or replaces the caller's own profile. The id always comes
// from the verified identity, never from the form. Matches created earlier
// keep their snapshot of the previous version.
func (s *ProfileService) Submit(ctx context.Context, caller domain.Identity, p domain.Profile) (domain.Profile, error) {
	l := slogx.FromContext(ctx)

	// Guests carry a subject but may not own a profile.
	if !caller.IsAuthenticated() || caller.Anonymous {
		return domain.Profile{}, ErrPermissionDenied
	}

	p.ID = caller.ID
	if strings.TrimSpace(p.Email) == "" {
		p.Email = caller.Email
	}
	p.Normalize()

	p.CreatedAt = now()
	existing, err := s.Store.Profiles().Get(ctx, p.ID)
	switch {
	case err == nil:
		p.CreatedAt = existing.CreatedAt
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrMalformed):
		// first submission, or overwriting a record we cannot read anyway
	default:
		return domain.Profile{}, mapStoreErr(err, ErrProfileNotFound)
	}

	if err := p.Validate(); err != nil {
		return domain.Profile{}, invalidArgument(err)
	}

	if err := s.Store.Profiles().Put(ctx, p); err != nil {
		l.Error("failed to save profile", "error", err, "profile_id", p.ID)
		return domain.Profile{}, mapStoreErr(err, ErrProfileNotFound)
	}

	l.Info("profile saved", "profile_id", p.ID, "role", p.Role)
	return p, nil
}

// Get returns a profile to its owner or to an admin.
func (s *ProfileService) Get(ctx context.Context, caller domain.Identity, id string) (domain.Profile, error) {
	if !caller.IsAuthenticated() || (id != caller.ID && !caller.IsAdmin()) {
		return domain.Profile{}, ErrPermissionDenied
	}

	p, err := s.Store.Profiles().Get(ctx, id)
	if err != nil {
		return domain.Profile{}, mapStoreErr(err, ErrProfileNotFound)
	}
	return p, nil
}

// List returns the profiles passing f, newest first.
func (s *ProfileService) List(ctx context.Context, caller domain.Identity, f domain.ProfileFilter) ([]domain.Profile, error) {
	if !caller.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	all, err := s.Store.Profiles().List(ctx)
	if err != nil {
		return nil, mapStoreErr(err, ErrProfileNotFound)
	}

	out := make([]domain.Profile, 0, len(all))
	for _, p := range all {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *ProfileService) Delete(ctx context.Context, caller domain.Identity, id string) error {
	if !caller.CanAdminWrite() {
		return ErrPermissionDenied
	}

	if err := s.Store.Profiles().Delete(ctx, id); err != nil {
		return mapStoreErr(err, ErrProfileNotFound)
	}
	slogx.FromContext(ctx).Info("profile deleted", "profile_id", id, "admin_id", caller.ID)
	return nil
}
