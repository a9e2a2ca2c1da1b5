package sqlite

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/domain"
	"github.com/aussiebroadwan/cofound/internal/matchmaker/store"
	"github.com/stretchr/testify/require"
)

type quarantined struct {
	mu  sync.Mutex
	ids []string
}

func (q *quarantined) hook(_ context.Context, _ string, id string, _ error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ids = append(q.ids, id)
}

func newTestStore(t *testing.T) (*Store, *quarantined) {
	t.Helper()

	q := &quarantined{}
	s, err := NewStore(MemoryDSN, store.WithQuarantine(q.hook))
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s, q
}

var base = time.UnixMilli(1_700_000_000_000).UTC()

func testProfile(id, name string, at time.Time) domain.Profile {
	return domain.Profile{
		ID:         id,
		Name:       name,
		Location:   "Sydney",
		Email:      id + "@example.com",
		Phone:      "0400 000 000",
		Role:       domain.RoleDeveloper,
		Skills:     []string{"Go", "Postgres"},
		Commitment: domain.CommitmentFullTime,
		Industries: []string{"Fintech"},
		Looking:    "Business Co-founder",
		Bio:        "Builds things.",
		CreatedAt:  at,
	}
}

func testMatch(t *testing.T, id, a, b string, at time.Time) domain.Match {
	t.Helper()
	m, err := domain.NewMatch(id, testProfile(a, "A "+a, at), testProfile(b, "B "+b, at), "", at)
	require.NoError(t, err)
	return m
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestProfiles(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("put get and upsert keep the first created_at", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestStore(t)
		repo := s.Profiles()

		p := testProfile("u1", "Asha", base)
		require.NoError(t, repo.Put(ctx, p))

		got, err := repo.Get(ctx, "u1")
		require.NoError(t, err)
		require.Equal(t, p, got)

		p.Name = "Asha K"
		p.Phone = ""
		p.CreatedAt = base.Add(time.Hour)
		require.NoError(t, repo.Put(ctx, p))

		got, err = repo.Get(ctx, "u1")
		require.NoError(t, err)
		require.Equal(t, "Asha K", got.Name)
		require.Empty(t, got.Phone)
		require.Equal(t, base, got.CreatedAt)
	})

	t.Run("list is newest first and count agrees", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestStore(t)
		repo := s.Profiles()

		require.NoError(t, repo.Put(ctx, testProfile("old", "Old", base)))
		require.NoError(t, repo.Put(ctx, testProfile("new", "New", base.Add(time.Minute))))

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "new", list[0].ID)
		require.Equal(t, "old", list[1].ID)

		n, err := repo.Count(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, n)
	})

	t.Run("missing profile is not found", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestStore(t)

		_, err := s.Profiles().Get(ctx, "nobody")
		require.ErrorIs(t, err, store.ErrNotFound)
		require.ErrorIs(t, s.Profiles().Delete(ctx, "nobody"), store.ErrNotFound)
	})

	t.Run("malformed rows are skipped by list", func(t *testing.T) {
		t.Parallel()
		s, q := newTestStore(t)

		require.NoError(t, s.Profiles().Put(ctx, testProfile("ok", "Ok", base)))
		_, err := s.db.ExecContext(ctx, `INSERT INTO profiles
			(id, name, location, email, role, skills, commitment, industries, looking, bio, created_at)
			VALUES ('bad', 'Bad', 'Perth', 'bad@example.com', 'Wizard', 'not-json', 'Full-time', '[]', 'Any', 'x', 1)`)
		require.NoError(t, err)

		list, err := s.Profiles().List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, []string{"bad"}, q.ids)

		_, err = s.Profiles().Get(ctx, "bad")
		require.ErrorIs(t, err, store.ErrMalformed)
	})
}

func TestMatches(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("create and get round trip", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestStore(t)

		m := testMatch(t, "m1", "a", "b", base)
		m.Notes = "both into fintech"
		require.NoError(t, s.Matches().Create(ctx, m))

		got, err := s.Matches().Get(ctx, "m1")
		require.NoError(t, err)
		require.Equal(t, m, got)

		require.ErrorIs(t, s.Matches().Create(ctx, m), store.ErrAlreadyExists)
	})

	t.Run("status update is conditional on the current status", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestStore(t)
		repo := s.Matches()

		require.NoError(t, repo.Create(ctx, testMatch(t, "m1", "a", "b", base)))

		at := base.Add(time.Hour)
		require.NoError(t, repo.UpdateStatus(ctx, "m1", domain.StatusPending, domain.StatusIntroduced, at))

		err := repo.UpdateStatus(ctx, "m1", domain.StatusPending, domain.StatusIntroduced, at)
		require.ErrorIs(t, err, store.ErrConflict)

		err = repo.UpdateStatus(ctx, "missing", domain.StatusPending, domain.StatusIntroduced, at)
		require.ErrorIs(t, err, store.ErrNotFound)

		got, err := repo.Get(ctx, "m1")
		require.NoError(t, err)
		require.Equal(t, domain.StatusIntroduced, got.Status)
		require.Equal(t, at, got.UpdatedAt)
		require.Equal(t, base, got.CreatedAt)
	})

	t.Run("notes and delete", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestStore(t)
		repo := s.Matches()

		require.NoError(t, repo.Create(ctx, testMatch(t, "m1", "a", "b", base)))
		require.NoError(t, repo.UpdateNotes(ctx, "m1", "call on friday", base.Add(time.Minute)))

		got, err := repo.Get(ctx, "m1")
		require.NoError(t, err)
		require.Equal(t, "call on friday", got.Notes)

		require.NoError(t, repo.Delete(ctx, "m1"))
		require.ErrorIs(t, repo.Delete(ctx, "m1"), store.ErrNotFound)
		require.ErrorIs(t, repo.UpdateNotes(ctx, "m1", "x", base), store.ErrNotFound)
	})

	t.Run("participant queries, scan and counts", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestStore(t)
		repo := s.Matches()

		require.NoError(t, repo.Create(ctx, testMatch(t, "m1", "u", "x", base)))
		require.NoError(t, repo.Create(ctx, testMatch(t, "m2", "y", "u", base.Add(time.Minute))))
		require.NoError(t, repo.Create(ctx, testMatch(t, "m3", "u", "z", base.Add(2*time.Minute))))
		require.NoError(t, repo.UpdateStatus(ctx, "m3", domain.StatusPending, domain.StatusIntroduced, base))

		byP1, err := repo.ListByP1(ctx, "u")
		require.NoError(t, err)
		require.Equal(t, []string{"m3", "m1"}, matchIDs(byP1))

		byP2, err := repo.ListByP2(ctx, "u")
		require.NoError(t, err)
		require.Equal(t, []string{"m2"}, matchIDs(byP2))

		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"m3", "m2", "m1"}, matchIDs(all))

		scanned, err := repo.Scan(ctx, 2)
		require.NoError(t, err)
		require.Equal(t, []string{"m3", "m2"}, matchIDs(scanned))

		n, err := repo.Count(ctx)
		require.NoError(t, err)
		require.Equal(t, 3, n)

		n, err = repo.CountByStatus(ctx, domain.StatusIntroduced)
		require.NoError(t, err)
		require.Equal(t, 1, n)
	})

	t.Run("malformed snapshot is quarantined", func(t *testing.T) {
		t.Parallel()
		s, q := newTestStore(t)

		require.NoError(t, s.Matches().Create(ctx, testMatch(t, "good", "a", "b", base)))
		_, err := s.db.ExecContext(ctx, `INSERT INTO matches
			(id, p1_id, p2_id, p1_name, p1_role, p1_email, p2_name, p2_role, p2_email, status, created_at, updated_at)
			VALUES ('broken', 'a', 'c', '', 'Founder', 'a@example.com', 'C', 'Founder', 'c@example.com', 'pending', 5, 5)`)
		require.NoError(t, err)

		list, err := s.Matches().ListByP1(ctx, "a")
		require.NoError(t, err)
		require.Equal(t, []string{"good"}, matchIDs(list))
		require.Equal(t, []string{"broken"}, q.ids)
	})
}

func TestSubmissions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("kinds share a table but not their rows", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestStore(t)

		w := domain.Submission[domain.WaitlistEntry]{
			ID:        "s1",
			CreatedAt: base,
			Data:      domain.WaitlistEntry{Name: "Mia", Email: "mia@example.com", Looking: []string{"Any"}},
		}
		require.NoError(t, s.Waitlist().Create(ctx, w))

		got, err := s.Waitlist().Get(ctx, "s1")
		require.NoError(t, err)
		require.Equal(t, w, got)

		_, err = s.ContactMessages().Get(ctx, "s1")
		require.ErrorIs(t, err, store.ErrNotFound)

		n, err := s.TeamRequests().Count(ctx)
		require.NoError(t, err)
		require.Zero(t, n)

		require.ErrorIs(t, s.Waitlist().Create(ctx, w), store.ErrAlreadyExists)
	})

	t.Run("reviews filter by status and put requires an existing row", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestStore(t)
		repo := s.Reviews()

		for i, id := range []string{"r1", "r2", "r3"} {
			r := domain.Review{Name: "N" + id, Content: "great", Rating: 5, Status: domain.ReviewPending}
			require.NoError(t, repo.Create(ctx, domain.Submission[domain.Review]{
				ID:        id,
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
				Data:      r,
			}))
		}

		r2, err := repo.Get(ctx, "r2")
		require.NoError(t, err)
		r2.Data.Status = domain.ReviewApproved
		require.NoError(t, repo.Put(ctx, r2))

		approved, err := repo.ListByStatus(ctx, domain.ReviewApproved, 0)
		require.NoError(t, err)
		require.Len(t, approved, 1)
		require.Equal(t, "r2", approved[0].ID)

		pending, err := repo.ListByStatus(ctx, domain.ReviewPending, 1)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		require.Equal(t, "r3", pending[0].ID)

		missing := domain.Submission[domain.Review]{ID: "nope", CreatedAt: base, Data: r2.Data}
		require.ErrorIs(t, repo.Put(ctx, missing), store.ErrNotFound)

		require.NoError(t, repo.Delete(ctx, "r1"))
		all, err := repo.List(ctx, 0)
		require.NoError(t, err)
		require.Len(t, all, 2)
	})

	t.Run("undecodable payload is quarantined", func(t *testing.T) {
		t.Parallel()
		s, q := newTestStore(t)

		_, err := s.db.ExecContext(ctx,
			`INSERT INTO submissions (id, kind, payload, created_at) VALUES ('bad', 'contact', '{"name": 1}', 1)`)
		require.NoError(t, err)

		list, err := s.ContactMessages().List(ctx, 0)
		require.NoError(t, err)
		require.Empty(t, list)
		require.Equal(t, []string{"bad"}, q.ids)
	})
}

func matchIDs(ms []domain.Match) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.ID)
	}
	return out
}
