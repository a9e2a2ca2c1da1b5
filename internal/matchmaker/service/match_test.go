package service

import (
	"context"
	"fmt"
	"slices"
	"testing"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/domain"
	"github.com/aussiebroadwan/cofound/internal/matchmaker/store"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestAshaAndRavi(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	putProfile(t, st, "u1", "Asha", domain.RoleFounder, "a@x.com")
	putProfile(t, st, "u2", "Ravi", domain.RoleDeveloper, "r@x.com")
	svc := &MatchService{Store: st, Metrics: newTestMetrics()}

	m, err := svc.CreateMatch(ctx, admin, "u1", "u2", "good fit")
	require.NoError(t, err)
	require.Equal(t, "Asha", m.P1.Name)
	require.Equal(t, "Ravi", m.P2.Name)
	require.Equal(t, domain.StatusPending, m.Status)
	require.Equal(t, "good fit", m.Notes)

	m, err = svc.UpdateStatus(ctx, admin, m.ID, "introduced")
	require.NoError(t, err)
	require.Equal(t, domain.StatusIntroduced, m.Status)

	list, err := svc.ListForUser(ctx, user("u1"), "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, m.ID, list[0].ID)
	require.Equal(t, "Asha", list[0].P1.Name)
	require.Equal(t, domain.StatusIntroduced, list[0].Status)
}

func TestCreateMatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("self match is rejected", func(t *testing.T) {
		t.Parallel()
		st := newTestStore(t)
		putProfile(t, st, "u1", "Asha", domain.RoleFounder, "a@x.com")
		svc := &MatchService{Store: st}

		_, err := svc.CreateMatch(ctx, admin, "u1", "u1", "")
		require.ErrorIs(t, err, ErrInvalidArgument)

		_, err = svc.CreateMatch(ctx, admin, " u1", "u1 ", "")
		require.ErrorIs(t, err, ErrInvalidArgument)

		_, err = svc.CreateMatch(ctx, admin, "", "u1", "")
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("requires admin write", func(t *testing.T) {
		t.Parallel()
		st := newTestStore(t)
		svc := &MatchService{Store: st}

		for _, caller := range []domain.Identity{anonymous, user("u1"), readAdmin} {
			_, err := svc.CreateMatch(ctx, caller, "u1", "u2", "")
			require.ErrorIs(t, err, ErrPermissionDenied)
		}
	})

	t.Run("missing profile persists nothing", func(t *testing.T) {
		t.Parallel()
		st := newTestStore(t)
		putProfile(t, st, "u1", "Asha", domain.RoleFounder, "a@x.com")
		svc := &MatchService{Store: st}

		_, err := svc.CreateMatch(ctx, admin, "u1", "ghost", "")
		require.ErrorIs(t, err, ErrProfileNotFound)
		require.True(t, IsNotFound(err))

		n, err := st.Matches().Count(ctx)
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("snapshot survives profile resubmission", func(t *testing.T) {
		t.Parallel()
		st := newTestStore(t)
		putProfile(t, st, "u1", "Asha", domain.RoleFounder, "a@x.com")
		putProfile(t, st, "u2", "Ravi", domain.RoleDeveloper, "r@x.com")
		svc := &MatchService{Store: st}
		profiles := &ProfileService{Store: st}

		m, err := svc.CreateMatch(ctx, admin, "u1", "u2", "")
		require.NoError(t, err)

		p, err := profiles.Get(ctx, user("u1"), "u1")
		require.NoError(t, err)
		p.Name = "Asha Renamed"
		p.Email = "asha.new@x.com"
		_, err = profiles.Submit(ctx, user("u1"), p)
		require.NoError(t, err)

		got, err := st.Matches().Get(ctx, m.ID)
		require.NoError(t, err)
		require.Equal(t, "Asha", got.P1.Name)
		require.Equal(t, "a@x.com", got.P1.Email)
	})

	t.Run("counts created matches", func(t *testing.T) {
		t.Parallel()
		st := newTestStore(t)
		putProfile(t, st, "u1", "Asha", domain.RoleFounder, "a@x.com")
		putProfile(t, st, "u2", "Ravi", domain.RoleDeveloper, "r@x.com")
		m := newTestMetrics()
		svc := &MatchService{Store: st, Metrics: m}

		_, err := svc.CreateMatch(ctx, admin, "u1", "u2", "")
		require.NoError(t, err)
		require.InDelta(t, 1, testutil.ToFloat64(m.MatchesCreated), 0)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	setup := func(t *testing.T) (*MatchService, domain.Match) {
		st := newTestStore(t)
		putProfile(t, st, "u1", "Asha", domain.RoleFounder, "a@x.com")
		putProfile(t, st, "u2", "Ravi", domain.RoleDeveloper, "r@x.com")
		svc := &MatchService{Store: st, Metrics: newTestMetrics()}
		m, err := svc.CreateMatch(ctx, admin, "u1", "u2", "")
		require.NoError(t, err)
		return svc, m
	}

	t.Run("moves forward one step at a time", func(t *testing.T) {
		t.Parallel()
		svc, m := setup(t)

		_, err := svc.UpdateStatus(ctx, admin, m.ID, "connected")
		require.ErrorIs(t, err, ErrInvalidTransition)

		m, err = svc.UpdateStatus(ctx, admin, m.ID, "introduced")
		require.NoError(t, err)

		_, err = svc.UpdateStatus(ctx, admin, m.ID, "pending")
		require.ErrorIs(t, err, ErrInvalidTransition)

		_, err = svc.UpdateStatus(ctx, admin, m.ID, "introduced")
		require.ErrorIs(t, err, ErrInvalidTransition)

		m, err = svc.UpdateStatus(ctx, admin, m.ID, "CONNECTED")
		require.NoError(t, err)
		require.Equal(t, domain.StatusConnected, m.Status)

		_, err = svc.UpdateStatus(ctx, admin, m.ID, "introduced")
		require.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("status history is a subsequence of the lifecycle", func(t *testing.T) {
		t.Parallel()
		svc, m := setup(t)

		lifecycle := []domain.MatchStatus{domain.StatusPending, domain.StatusIntroduced, domain.StatusConnected}
		history := []domain.MatchStatus{m.Status}
		for _, attempt := range []string{"connected", "introduced", "pending", "introduced", "connected", "pending"} {
			updated, err := svc.UpdateStatus(ctx, admin, m.ID, attempt)
			if err == nil {
				history = append(history, updated.Status)
			}
		}

		require.Equal(t, lifecycle, history)
	})

	t.Run("argument and lookup errors", func(t *testing.T) {
		t.Parallel()
		svc, m := setup(t)

		_, err := svc.UpdateStatus(ctx, admin, m.ID, "archived")
		require.ErrorIs(t, err, ErrInvalidArgument)

		_, err = svc.UpdateStatus(ctx, admin, "missing", "introduced")
		require.ErrorIs(t, err, ErrMatchNotFound)

		_, err = svc.UpdateStatus(ctx, readAdmin, m.ID, "introduced")
		require.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("a malformed stored match is an invalid argument", func(t *testing.T) {
		t.Parallel()
		svc, m := setup(t)
		svc.Store = &faultStore{Store: svc.Store, matchGetErr: fmt.Errorf("%w: bad status", store.ErrMalformed)}

		_, err := svc.UpdateStatus(ctx, admin, m.ID, "introduced")
		require.ErrorIs(t, err, ErrInvalidArgument)
		require.ErrorIs(t, err, store.ErrMalformed)
		require.False(t, IsNotFound(err))
	})

	t.Run("notes are editable", func(t *testing.T) {
		t.Parallel()
		svc, m := setup(t)

		got, err := svc.UpdateNotes(ctx, admin, m.ID, "  follow up next week ")
		require.NoError(t, err)
		require.Equal(t, "follow up next week", got.Notes)

		_, err = svc.UpdateNotes(ctx, admin, "missing", "x")
		require.ErrorIs(t, err, ErrMatchNotFound)
	})
}

func TestListForUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// u1 appears on both sides; u4 never matches u1.
	seed := func(t *testing.T) (*MatchService, *faultStore, []domain.Match) {
		st := newTestStore(t)
		for _, id := range []string{"u1", "u2", "u3", "u4"} {
			putProfile(t, st, id, "Person "+id, domain.RoleOther, id+"@x.com")
		}
		fs := &faultStore{Store: st}
		svc := &MatchService{Store: fs, Metrics: newTestMetrics()}

		var made []domain.Match
		for _, pair := range [][2]string{{"u1", "u2"}, {"u3", "u1"}, {"u2", "u3"}, {"u1", "u4"}, {"u4", "u2"}} {
			m, err := svc.CreateMatch(ctx, admin, pair[0], pair[1], "")
			require.NoError(t, err)
			made = append(made, m)
		}
		return svc, fs, made
	}

	expected := func(made []domain.Match, userID string) []string {
		var out []string
		for _, m := range made {
			if m.Involves(userID) {
				out = append(out, m.ID)
			}
		}
		slices.Reverse(out)
		return out
	}

	t.Run("union of both sides newest first", func(t *testing.T) {
		t.Parallel()
		svc, _, made := seed(t)

		for _, u := range []string{"u1", "u2", "u3", "u4"} {
			got, err := svc.ListForUser(ctx, user(u), u)
			require.NoError(t, err)
			require.Equal(t, expected(made, u), ids(got), u)

			for i := 1; i < len(got); i++ {
				require.False(t, got[i].CreatedAt.After(got[i-1].CreatedAt))
			}
		}
	})

	t.Run("other identities are refused unless admin", func(t *testing.T) {
		t.Parallel()
		svc, _, made := seed(t)

		_, err := svc.ListForUser(ctx, user("u1"), "u2")
		require.ErrorIs(t, err, ErrInvalidArgument)

		_, err = svc.ListForUser(ctx, anonymous, "u2")
		require.ErrorIs(t, err, ErrPermissionDenied)

		got, err := svc.ListForUser(ctx, readAdmin, "u2")
		require.NoError(t, err)
		require.Equal(t, expected(made, "u2"), ids(got))
	})

	t.Run("index failure falls back to a capped scan", func(t *testing.T) {
		t.Parallel()
		svc, fs, made := seed(t)
		fs.byP2Err = store.ErrIndexUnavailable
		svc.FallbackWindow = 50

		got, err := svc.ListForUser(ctx, user("u1"), "u1")
		require.NoError(t, err)
		require.Equal(t, expected(made, "u1"), ids(got))
		require.Equal(t, []int{50}, fs.scanLimits)
		require.InDelta(t, 1, testutil.ToFloat64(svc.Metrics.MatchQueryFallback), 0)
	})

	t.Run("fallback window is capped", func(t *testing.T) {
		t.Parallel()
		svc, fs, _ := seed(t)
		fs.byP1Err = store.ErrIndexUnavailable
		svc.FallbackWindow = 1_000_000

		_, err := svc.ListForUser(ctx, user("u1"), "u1")
		require.NoError(t, err)
		require.Equal(t, []int{MaxFallbackWindow}, fs.scanLimits)
	})

	t.Run("fallback window hides older matches", func(t *testing.T) {
		t.Parallel()
		svc, fs, made := seed(t)
		fs.byP1Err = store.ErrIndexUnavailable
		svc.FallbackWindow = 2

		got, err := svc.ListForUser(ctx, user("u2"), "u2")
		require.NoError(t, err)

		// The two newest matches are u4-u2 and u1-u4; only the first involves u2.
		require.Equal(t, []string{made[4].ID}, ids(got))
	})

	t.Run("other store errors propagate without a scan", func(t *testing.T) {
		t.Parallel()
		svc, fs, _ := seed(t)
		fs.byP1Err = store.ErrUnavailable

		_, err := svc.ListForUser(ctx, user("u1"), "u1")
		require.ErrorIs(t, err, ErrUnavailable)
		require.Empty(t, fs.scanLimits)
	})

	t.Run("views hide contacts until introduced", func(t *testing.T) {
		t.Parallel()
		svc, _, made := seed(t)

		_, err := svc.UpdateStatus(ctx, admin, made[0].ID, "introduced")
		require.NoError(t, err)

		got, err := svc.ListForUser(ctx, user("u2"), "u2")
		require.NoError(t, err)

		views := Views("u2", got)
		require.Len(t, views, len(got))
		for _, v := range views {
			if v.ID == made[0].ID {
				require.Equal(t, "u1", v.PartnerID)
				require.Equal(t, "u1@x.com", v.Partner.Email)
				continue
			}
			require.Empty(t, v.Partner.Email)
			require.NotEmpty(t, v.Partner.Name)
		}
	})
}

func TestDeleteMatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	putProfile(t, st, "u1", "Asha", domain.RoleFounder, "a@x.com")
	putProfile(t, st, "u2", "Ravi", domain.RoleDeveloper, "r@x.com")
	svc := &MatchService{Store: st}

	m, err := svc.CreateMatch(ctx, admin, "u1", "u2", "")
	require.NoError(t, err)
	keep, err := svc.CreateMatch(ctx, admin, "u2", "u1", "")
	require.NoError(t, err)

	require.ErrorIs(t, svc.DeleteMatch(ctx, user("u1"), m.ID), ErrPermissionDenied)
	require.NoError(t, svc.DeleteMatch(ctx, admin, m.ID))
	require.ErrorIs(t, svc.DeleteMatch(ctx, admin, m.ID), ErrMatchNotFound)

	all, err := svc.ListAll(ctx, admin)
	require.NoError(t, err)
	require.Equal(t, []string{keep.ID}, ids(all))

	for _, u := range []string{"u1", "u2"} {
		list, err := svc.ListForUser(ctx, user(u), u)
		require.NoError(t, err)
		require.Equal(t, []string{keep.ID}, ids(list))
	}

	// Profiles are not cascaded.
	_, err = st.Profiles().Get(ctx, "u1")
	require.NoError(t, err)
}
