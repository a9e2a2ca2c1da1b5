package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrConflict reports a conditional write whose precondition no longer
	// holds, e.g. a match whose status changed underneath the caller.
	ErrConflict = errors.New("store: conflict")

	// ErrMalformed reports a stored record that failed validation on read.
	ErrMalformed = errors.New("store: malformed record")

	ErrPermissionDenied = errors.New("store: permission denied")
	ErrUnavailable      = errors.New("store: unavailable")

	// ErrIndexUnavailable reports that a secondary index query could not be
	// served. Callers may fall back to a bounded scan.
	ErrIndexUnavailable = errors.New("store: index unavailable")
)

// Store is the root data access interface. Drivers (sqlite, dynamodb)
// implement it and hand out one repository per logical collection.
type Store interface {
	Profiles() Profiles
	Matches() Matches

	// The four submission repositories share one physical collection,
	// discriminated by domain.SubmissionKind.
	Waitlist() Collection[domain.WaitlistEntry]
	TeamRequests() Collection[domain.TeamRequest]
	Reviews() Reviews
	ContactMessages() Collection[domain.ContactMessage]

	// ApplyMigrations brings the schema (tables, indexes) up to date.
	ApplyMigrations() error

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}

type Profiles interface {
	// Get returns the profile owned by identity id.
	Get(ctx context.Context, id string) (domain.Profile, error)

	// Put creates or fully replaces the profile keyed by p.ID.
	Put(ctx context.Context, p domain.Profile) error

	// List returns every profile, newest first. Malformed records are skipped.
	List(ctx context.Context) ([]domain.Profile, error)

	// Delete removes the profile. Matches that reference it are untouched.
	Delete(ctx context.Context, id string) error

	Count(ctx context.Context) (int, error)
}

type Matches interface {
	// Create inserts a new match, ErrAlreadyExists if the id is taken.
	Create(ctx context.Context, m domain.Match) error

	Get(ctx context.Context, id string) (domain.Match, error)

	// UpdateStatus moves the match from one status to another. It fails with
	// ErrConflict when the stored status is no longer from.
	UpdateStatus(ctx context.Context, id string, from, to domain.MatchStatus, at time.Time) error

	// UpdateNotes replaces the admin notes.
	UpdateNotes(ctx context.Context, id, notes string, at time.Time) error

	Delete(ctx context.Context, id string) error

	// ListByP1 and ListByP2 are the two single-predicate index queries. Each
	// is ordered newest first relative to itself only.
	ListByP1(ctx context.Context, userID string) ([]domain.Match, error)
	ListByP2(ctx context.Context, userID string) ([]domain.Match, error)

	// ListAll returns every match, newest first.
	ListAll(ctx context.Context) ([]domain.Match, error)

	// Scan returns the newest limit matches without using the participant
	// indexes; limit <= 0 means all. It backs the degraded query path.
	Scan(ctx context.Context, limit int) ([]domain.Match, error)

	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status domain.MatchStatus) (int, error)
}

// Collection is the repository of one submission variant.
type Collection[T domain.Payload] interface {
	Create(ctx context.Context, s domain.Submission[T]) error
	Get(ctx context.Context, id string) (domain.Submission[T], error)

	// Put replaces an existing record, ErrNotFound if there is none.
	Put(ctx context.Context, s domain.Submission[T]) error

	// List returns up to limit records newest first; limit <= 0 means all.
	List(ctx context.Context, limit int) ([]domain.Submission[T], error)

	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type Reviews interface {
	Collection[domain.Review]

	// ListByStatus returns up to limit reviews in status, newest first.
	ListByStatus(ctx context.Context, status domain.ReviewStatus, limit int) ([]domain.Submission[domain.Review], error)
}
