package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/domain"
	"github.com/aussiebroadwan/cofound/internal/matchmaker/store"
	_ "modernc.org/sqlite"
)

// querier is the subset of *sql.DB the repositories use.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db   *sql.DB
	opts store.Options
}

var _ store.Store = (*Store)(nil)

// NewStore opens the database at dsn. Migrations are not applied; call
// ApplyMigrations.
func NewStore(dsn string, opts ...store.Option) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// A single connection keeps ":memory:" databases coherent and avoids
	// SQLITE_BUSY between our own connections on file databases.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, opts: store.BuildOptions(opts...)}, nil
}

// MemoryDSN is the DSN used by tests.
const MemoryDSN = ":memory:"

// FileDSN builds the DSN for a database file with WAL and a busy timeout.
func FileDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	return "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return mapErr(s.db.PingContext(ctx))
}

func (s *Store) Profiles() store.Profiles { return &profilesRepo{q: s.db, opts: s.opts} }
func (s *Store) Matches() store.Matches   { return &matchesRepo{q: s.db, opts: s.opts} }

func (s *Store) Waitlist() store.Collection[domain.WaitlistEntry] {
	return newCollection[domain.WaitlistEntry](s.db, s.opts)
}

func (s *Store) TeamRequests() store.Collection[domain.TeamRequest] {
	return newCollection[domain.TeamRequest](s.db, s.opts)
}

func (s *Store) Reviews() store.Reviews {
	return &reviewsRepo{collection: newCollection[domain.Review](s.db, s.opts)}
}

func (s *Store) ContactMessages() store.Collection[domain.ContactMessage] {
	return newCollection[domain.ContactMessage](s.db, s.opts)
}
