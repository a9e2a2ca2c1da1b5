package sqlite

import (
	"context"
	"encoding/json"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/domain"
	"github.com/aussiebroadwan/cofound/internal/matchmaker/store"
)

// collection stores one submission variant in the shared submissions table.
type collection[T domain.Payload] struct {
	q    querier
	opts store.Options
	kind domain.SubmissionKind
}

func newCollection[T domain.Payload](q querier, opts store.Options) *collection[T] {
	var zero T
	return &collection[T]{q: q, opts: opts, kind: zero.Kind()}
}

func (c *collection[T]) decode(id, payload string, createdAt int64) (domain.Submission[T], error) {
	s := domain.Submission[T]{ID: id, CreatedAt: fromMillis(createdAt)}
	if err := json.Unmarshal([]byte(payload), &s.Data); err != nil {
		return domain.Submission[T]{}, malformed(err)
	}
	if err := s.Data.Validate(); err != nil {
		return domain.Submission[T]{}, malformed(err)
	}
	return s, nil
}

func (c *collection[T]) Create(ctx context.Context, s domain.Submission[T]) error {
	payload, err := json.Marshal(s.Data)
	if err != nil {
		return err
	}
	_, err = c.q.ExecContext(ctx,
		`INSERT INTO submissions (id, kind, payload, created_at) VALUES (?, ?, ?, ?)`,
		s.ID, string(c.kind), string(payload), toMillis(s.CreatedAt))
	return mapErr(err)
}

func (c *collection[T]) Get(ctx context.Context, id string) (domain.Submission[T], error) {
	var (
		payload   string
		createdAt int64
	)
	err := c.q.QueryRowContext(ctx,
		`SELECT payload, created_at FROM submissions WHERE id = ? AND kind = ?`,
		id, string(c.kind)).Scan(&payload, &createdAt)
	if err != nil {
		return domain.Submission[T]{}, mapErr(err)
	}
	return c.decode(id, payload, createdAt)
}

func (c *collection[T]) Put(ctx context.Context, s domain.Submission[T]) error {
	payload, err := json.Marshal(s.Data)
	if err != nil {
		return err
	}
	res, err := c.q.ExecContext(ctx,
		`UPDATE submissions SET payload = ? WHERE id = ? AND kind = ?`,
		string(payload), s.ID, string(c.kind))
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}

func (c *collection[T]) List(ctx context.Context, limit int) ([]domain.Submission[T], error) {
	return c.list(ctx, `SELECT id, payload, created_at FROM submissions
		WHERE kind = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		string(c.kind), sqlLimit(limit))
}

func (c *collection[T]) list(ctx context.Context, query string, args ...any) ([]domain.Submission[T], error) {
	rows, err := c.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []domain.Submission[T]{}
	for rows.Next() {
		var (
			id, payload string
			createdAt   int64
		)
		if err := rows.Scan(&id, &payload, &createdAt); err != nil {
			return nil, mapErr(err)
		}
		s, err := c.decode(id, payload, createdAt)
		if err != nil {
			c.opts.Quarantine(ctx, string(c.kind), id, err)
			continue
		}
		out = append(out, s)
	}
	return out, mapErr(rows.Err())
}

func (c *collection[T]) Delete(ctx context.Context, id string) error {
	res, err := c.q.ExecContext(ctx,
		`DELETE FROM submissions WHERE id = ? AND kind = ?`, id, string(c.kind))
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}

func (c *collection[T]) Count(ctx context.Context) (int, error) {
	var n int
	err := c.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM submissions WHERE kind = ?`, string(c.kind)).Scan(&n)
	return n, mapErr(err)
}

type reviewsRepo struct {
	*collection[domain.Review]
}

func (r *reviewsRepo) ListByStatus(ctx context.Context, status domain.ReviewStatus, limit int) ([]domain.Submission[domain.Review], error) {
	return r.list(ctx, `SELECT id, payload, created_at FROM submissions
		WHERE kind = ? AND json_extract(payload, '$.status') = ?
		ORDER BY created_at DESC, id DESC LIMIT ?`,
		string(r.kind), string(status), sqlLimit(limit))
}
