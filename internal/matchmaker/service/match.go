package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/domain"
	"github.com/aussiebroadwan/cofound/internal/matchmaker/store"
	"github.com/aussiebroadwan/cofound/pkg/idx"
	"github.com/aussiebroadwan/cofound/pkg/metrics"
	"github.com/aussiebroadwan/cofound/pkg/slogx"
	"golang.org/x/sync/errgroup"
)

// DefaultFallbackWindow caps the scan used when the participant indexes
// cannot be queried. MaxFallbackWindow bounds what configuration may ask for.
const (
	DefaultFallbackWindow = 500
	MaxFallbackWindow     = 10000
)

type MatchService struct {
	Store   store.Store
	Metrics *metrics.Metrics

	// FallbackWindow is the most matches the degraded path reads. Matches
	// outside the window are invisible while the indexes are down.
	FallbackWindow int
}

// CreateMatch pairs two profiles. Both are read before anything is written,
// so a missing profile leaves no trace.
func (s *MatchService) CreateMatch(ctx context.Context, caller domain.Identity, aID, bID, notes string) (domain.Match, error) {
	l := slogx.FromContext(ctx)

	if !caller.CanAdminWrite() {
		return domain.Match{}, ErrPermissionDenied
	}

	aID, bID = strings.TrimSpace(aID), strings.TrimSpace(bID)
	switch {
	case aID == "" || bID == "":
		return domain.Match{}, fmt.Errorf("%w: both profile ids are required", ErrInvalidArgument)
	case aID == bID:
		return domain.Match{}, fmt.Errorf("%w: a profile cannot be matched with itself", ErrInvalidArgument)
	}

	var a, b domain.Profile
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		a, err = s.snapshotSource(gctx, aID)
		return err
	})
	g.Go(func() (err error) {
		b, err = s.snapshotSource(gctx, bID)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Match{}, err
	}

	at := now()
	m, err := domain.NewMatch(idx.NewAt(at).String(), a, b, notes, at)
	if err != nil {
		return domain.Match{}, invalidArgument(err)
	}

	if err := s.Store.Matches().Create(ctx, m); err != nil {
		l.Error("failed to create match", "error", err, "p1_id", aID, "p2_id", bID)
		return domain.Match{}, mapStoreErr(err, ErrMatchNotFound)
	}

	s.Metrics.IncMatchesCreated()
	l.Info("match created", "match_id", m.ID, "p1_id", m.P1ID, "p2_id", m.P2ID, "admin_id", caller.ID)
	return m, nil
}

func (s *MatchService) snapshotSource(ctx context.Context, id string) (domain.Profile, error) {
	p, err := s.Store.Profiles().Get(ctx, id)
	switch {
	case err == nil:
		return p, nil
	case errors.Is(err, store.ErrMalformed):
		return domain.Profile{}, fmt.Errorf("%w: profile %s cannot be snapshotted: %w", ErrInvalidArgument, id, err)
	}
	return domain.Profile{}, fmt.Errorf("profile %s: %w", id, mapStoreErr(err, ErrProfileNotFound))
}

// UpdateStatus advances a match exactly one step. The write is conditional
// on the status read here, so two admins racing cannot skip or rewind it.
func (s *MatchService) UpdateStatus(ctx context.Context, caller domain.Identity, matchID, next string) (domain.Match, error) {
	l := slogx.FromContext(ctx)

	if !caller.CanAdminWrite() {
		return domain.Match{}, ErrPermissionDenied
	}

	to, err := domain.ParseMatchStatus(next)
	if err != nil {
		return domain.Match{}, invalidArgument(err)
	}

	m, err := s.Store.Matches().Get(ctx, matchID)
	if err != nil {
		return domain.Match{}, mapStoreErr(err, ErrMatchNotFound)
	}

	if !m.Status.CanAdvanceTo(to) {
		l.Warn("refused match status transition", "match_id", m.ID, "from", m.Status, "to", to)
		return domain.Match{}, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, m.Status, to)
	}

	at := now()
	err = s.Store.Matches().UpdateStatus(ctx, m.ID, m.Status, to, at)
	switch {
	case errors.Is(err, store.ErrConflict):
		return domain.Match{}, fmt.Errorf("%w: match %s changed concurrently", ErrInvalidTransition, m.ID)
	case err != nil:
		l.Error("failed to update match status", "error", err, "match_id", m.ID)
		return domain.Match{}, mapStoreErr(err, ErrMatchNotFound)
	}

	s.Metrics.IncTransition(string(to))
	l.Info("match status updated", "match_id", m.ID, "from", m.Status, "to", to, "admin_id", caller.ID)

	m.Status = to
	m.UpdatedAt = at
	return m, nil
}

func (s *MatchService) UpdateNotes(ctx context.Context, caller domain.Identity, matchID, notes string) (domain.Match, error) {
	if !caller.CanAdminWrite() {
		return domain.Match{}, ErrPermissionDenied
	}

	notes = strings.TrimSpace(notes)
	at := now()
	if err := s.Store.Matches().UpdateNotes(ctx, matchID, notes, at); err != nil {
		return domain.Match{}, mapStoreErr(err, ErrMatchNotFound)
	}

	m, err := s.Store.Matches().Get(ctx, matchID)
	if err != nil {
		return domain.Match{}, mapStoreErr(err, ErrMatchNotFound)
	}
	slogx.FromContext(ctx).Info("match notes updated", "match_id", matchID, "admin_id", caller.ID)
	return m, nil
}

// DeleteMatch removes the match. The profiles it references are untouched.
func (s *MatchService) DeleteMatch(ctx context.Context, caller domain.Identity, matchID string) error {
	l := slogx.FromContext(ctx)

	if !caller.CanAdminWrite() {
		return ErrPermissionDenied
	}

	if err := s.Store.Matches().Delete(ctx, matchID); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			l.Error("failed to delete match", "error", err, "match_id", matchID)
		}
		return mapStoreErr(err, ErrMatchNotFound)
	}

	l.Info("match deleted", "match_id", matchID, "admin_id", caller.ID)
	return nil
}

// ListForUser returns every match identityID takes part in, newest first.
// Only admins may ask about someone other than themselves.
func (s *MatchService) ListForUser(ctx context.Context, caller domain.Identity, identityID string) ([]domain.Match, error) {
	if !caller.IsAuthenticated() {
		return nil, ErrPermissionDenied
	}

	identityID = strings.TrimSpace(identityID)
	switch {
	case identityID == "":
		return nil, fmt.Errorf("%w: identity id is required", ErrInvalidArgument)
	case identityID != caller.ID && !caller.IsAdmin():
		return nil, fmt.Errorf("%w: identity does not match the authenticated caller", ErrInvalidArgument)
	}

	var byP1, byP2 []domain.Match
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		byP1, err = s.Store.Matches().ListByP1(gctx, identityID)
		return err
	})
	g.Go(func() (err error) {
		byP2, err = s.Store.Matches().ListByP2(gctx, identityID)
		return err
	})

	err := g.Wait()
	switch {
	case errors.Is(err, store.ErrIndexUnavailable):
		return s.scanForUser(ctx, identityID, err)
	case err != nil:
		slogx.FromContext(ctx).Error("failed to list matches", "error", err, "identity_id", identityID)
		return nil, mapStoreErr(err, ErrMatchNotFound)
	}

	return mergeNewestFirst(byP1, byP2), nil
}

// scanForUser is the degraded path: a capped scan filtered in memory.
func (s *MatchService) scanForUser(ctx context.Context, identityID string, cause error) ([]domain.Match, error) {
	window := s.FallbackWindow
	if window <= 0 {
		window = DefaultFallbackWindow
	}
	window = min(window, MaxFallbackWindow)

	slogx.FromContext(ctx).Warn("participant index unavailable, scanning recent matches",
		"error", cause,
		"window", window,
	)
	s.Metrics.IncQueryFallback()

	recent, err := s.Store.Matches().Scan(ctx, window)
	if err != nil {
		return nil, mapStoreErr(err, ErrMatchNotFound)
	}

	out := make([]domain.Match, 0)
	for _, m := range recent {
		if m.Involves(identityID) {
			out = append(out, m)
		}
	}
	domain.SortMatchesNewestFirst(out)
	return out, nil
}

func (s *MatchService) ListAll(ctx context.Context, caller domain.Identity) ([]domain.Match, error) {
	if !caller.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	all, err := s.Store.Matches().ListAll(ctx)
	if err != nil {
		return nil, mapStoreErr(err, ErrMatchNotFound)
	}
	domain.SortMatchesNewestFirst(all)
	return all, nil
}

// Views projects matches onto userID's side, hiding unrevealed contacts.
func Views(userID string, ms []domain.Match) []domain.MatchView {
	out := make([]domain.MatchView, 0, len(ms))
	for _, m := range ms {
		if v, ok := m.ViewFor(userID); ok {
			out = append(out, v)
		}
	}
	return out
}

func mergeNewestFirst(lists ...[]domain.Match) []domain.Match {
	seen := map[string]bool{}
	out := make([]domain.Match, 0)
	for _, list := range lists {
		for _, m := range list {
			if seen[m.ID] {
				continue
			}
			seen[m.ID] = true
			out = append(out, m)
		}
	}
	domain.SortMatchesNewestFirst(out)
	return out
}
