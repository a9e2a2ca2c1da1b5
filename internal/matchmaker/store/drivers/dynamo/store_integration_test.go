//go:build integration

package dynamo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/domain"
	"github.com/aussiebroadwan/cofound/internal/matchmaker/store"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newLocalStore starts dynamodb-local and returns a migrated store.
func newLocalStore(t *testing.T) *Store {
	t.Helper()
	if testing.Short() {
		t.Skip("dynamodb-local needs docker")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "amazon/dynamodb-local:2.5.2",
			ExposedPorts: []string{"8000/tcp"},
			WaitingFor:   wait.ForListeningPort("8000/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "8000")
	require.NoError(t, err)

	client := dynamodb.New(dynamodb.Options{
		Region:       "ap-southeast-2",
		BaseEndpoint: aws.String(fmt.Sprintf("http://%s:%s", host, port.Port())),
		Credentials:  credentials.NewStaticCredentialsProvider("local", "local", ""),
	})

	s := New(client, "it_")
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(ctx))
	return s
}

func profile(id string, at time.Time) domain.Profile {
	return domain.Profile{
		ID:         id,
		Name:       "Person " + id,
		Location:   "Melbourne",
		Email:      id + "@example.com",
		Role:       domain.RoleFounder,
		Skills:     []string{"Sales"},
		Commitment: domain.CommitmentExploring,
		Industries: []string{},
		Looking:    "Technical Co-founder",
		Bio:        "Sells things.",
		CreatedAt:  at,
	}
}

func TestDynamoStore(t *testing.T) {
	s := newLocalStore(t)
	ctx := context.Background()
	base := time.UnixMilli(1_700_000_000_000).UTC()

	t.Run("profiles upsert keeps created_at and clears dropped fields", func(t *testing.T) {
		p := profile("asha", base)
		p.Phone = "0400 111 222"
		require.NoError(t, s.Profiles().Put(ctx, p))

		p.Phone = ""
		p.CreatedAt = base.Add(time.Hour)
		require.NoError(t, s.Profiles().Put(ctx, p))

		got, err := s.Profiles().Get(ctx, "asha")
		require.NoError(t, err)
		require.Empty(t, got.Phone)
		require.Equal(t, base, got.CreatedAt)

		n, err := s.Profiles().Count(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, n)
	})

	t.Run("matches union and status compare-and-set", func(t *testing.T) {
		a, b, c := profile("a", base), profile("b", base), profile("c", base)
		m1, err := domain.NewMatch("m1", a, b, "", base)
		require.NoError(t, err)
		m2, err := domain.NewMatch("m2", c, a, "warm intro", base.Add(time.Minute))
		require.NoError(t, err)

		require.NoError(t, s.Matches().Create(ctx, m1))
		require.NoError(t, s.Matches().Create(ctx, m2))
		require.ErrorIs(t, s.Matches().Create(ctx, m1), store.ErrAlreadyExists)

		byP1, err := s.Matches().ListByP1(ctx, "a")
		require.NoError(t, err)
		require.Len(t, byP1, 1)
		byP2, err := s.Matches().ListByP2(ctx, "a")
		require.NoError(t, err)
		require.Len(t, byP2, 1)
		require.Equal(t, "m2", byP2[0].ID)

		require.NoError(t, s.Matches().UpdateStatus(ctx, "m1", domain.StatusPending, domain.StatusIntroduced, base))
		require.ErrorIs(t, s.Matches().UpdateStatus(ctx, "m1", domain.StatusPending, domain.StatusIntroduced, base), store.ErrConflict)
		require.ErrorIs(t, s.Matches().UpdateStatus(ctx, "zz", domain.StatusPending, domain.StatusIntroduced, base), store.ErrNotFound)

		n, err := s.Matches().CountByStatus(ctx, domain.StatusIntroduced)
		require.NoError(t, err)
		require.Equal(t, 1, n)

		all, err := s.Matches().ListAll(ctx)
		require.NoError(t, err)
		require.Equal(t, "m2", all[0].ID)

		require.NoError(t, s.Matches().Delete(ctx, "m1"))
		require.ErrorIs(t, s.Matches().Delete(ctx, "m1"), store.ErrNotFound)
	})

	t.Run("reviews by status", func(t *testing.T) {
		for i, st := range []domain.ReviewStatus{domain.ReviewPending, domain.ReviewApproved, domain.ReviewApproved} {
			require.NoError(t, s.Reviews().Create(ctx, domain.Submission[domain.Review]{
				ID:        fmt.Sprintf("r%d", i),
				CreatedAt: base.Add(time.Duration(i) * time.Second),
				Data:      domain.Review{Name: "N", Content: "good", Rating: 4, Status: st},
			}))
		}

		approved, err := s.Reviews().ListByStatus(ctx, domain.ReviewApproved, 10)
		require.NoError(t, err)
		require.Len(t, approved, 2)
		require.Equal(t, "r2", approved[0].ID)

		_, err = s.Waitlist().Get(ctx, "r0")
		require.ErrorIs(t, err, store.ErrNotFound)

		n, err := s.Reviews().Count(ctx)
		require.NoError(t, err)
		require.Equal(t, 3, n)
	})
}
