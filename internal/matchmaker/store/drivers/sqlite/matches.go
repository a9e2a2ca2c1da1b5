package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/domain"
	"github.com/aussiebroadwan/cofound/internal/matchmaker/store"
)

const matchColumns = `id, p1_id, p2_id,
	p1_name, p1_role, p1_email, p1_phone,
	p2_name, p2_role, p2_email, p2_phone,
	notes, status, created_at, updated_at`

type matchesRepo struct {
	q    querier
	opts store.Options
}

type matchRow struct {
	ID        string
	P1ID      string
	P2ID      string
	P1Name    string
	P1Role    string
	P1Email   string
	P1Phone   sql.NullString
	P2Name    string
	P2Role    string
	P2Email   string
	P2Phone   sql.NullString
	Notes     sql.NullString
	Status    string
	CreatedAt int64
	UpdatedAt int64
}

func scanMatch(s rowScanner) (matchRow, error) {
	var r matchRow
	err := s.Scan(&r.ID, &r.P1ID, &r.P2ID,
		&r.P1Name, &r.P1Role, &r.P1Email, &r.P1Phone,
		&r.P2Name, &r.P2Role, &r.P2Email, &r.P2Phone,
		&r.Notes, &r.Status, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func mapMatch(r matchRow) (domain.Match, error) {
	m := domain.Match{
		ID:   r.ID,
		P1ID: r.P1ID,
		P2ID: r.P2ID,
		P1: domain.Participant{
			Name:  r.P1Name,
			Role:  domain.Role(r.P1Role),
			Email: r.P1Email,
			Phone: mapNullString(r.P1Phone),
		},
		P2: domain.Participant{
			Name:  r.P2Name,
			Role:  domain.Role(r.P2Role),
			Email: r.P2Email,
			Phone: mapNullString(r.P2Phone),
		},
		Notes:     mapNullString(r.Notes),
		Status:    domain.MatchStatus(r.Status),
		CreatedAt: fromMillis(r.CreatedAt),
		UpdatedAt: fromMillis(r.UpdatedAt),
	}
	if err := m.Validate(); err != nil {
		return domain.Match{}, malformed(err)
	}
	return m, nil
}

func (r *matchesRepo) Create(ctx context.Context, m domain.Match) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO matches (`+matchColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.P1ID, m.P2ID,
		m.P1.Name, string(m.P1.Role), m.P1.Email, mapStringNull(m.P1.Phone),
		m.P2.Name, string(m.P2.Role), m.P2.Email, mapStringNull(m.P2.Phone),
		mapStringNull(m.Notes), string(m.Status), toMillis(m.CreatedAt), toMillis(m.UpdatedAt),
	)
	return mapErr(err)
}

func (r *matchesRepo) Get(ctx context.Context, id string) (domain.Match, error) {
	row, err := scanMatch(r.q.QueryRowContext(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE id = ?`, id))
	if err != nil {
		return domain.Match{}, mapErr(err)
	}
	return mapMatch(row)
}

func (r *matchesRepo) UpdateStatus(ctx context.Context, id string, from, to domain.MatchStatus, at time.Time) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE matches SET status = ?, updated_at = ? WHERE id = ? AND status = ?`,
		string(to), toMillis(at), id, string(from))
	if err != nil {
		return mapErr(err)
	}
	if err := requireAffected(res); !errors.Is(err, store.ErrNotFound) {
		return err
	}

	// Nothing matched: either the match is gone or its status moved on.
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	return store.ErrConflict
}

func (r *matchesRepo) UpdateNotes(ctx context.Context, id, notes string, at time.Time) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE matches SET notes = ?, updated_at = ? WHERE id = ?`,
		mapStringNull(notes), toMillis(at), id)
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}

func (r *matchesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM matches WHERE id = ?`, id)
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}

func (r *matchesRepo) ListByP1(ctx context.Context, userID string) ([]domain.Match, error) {
	return r.list(ctx, `SELECT `+matchColumns+` FROM matches
		WHERE p1_id = ? ORDER BY created_at DESC, id DESC`, userID)
}

func (r *matchesRepo) ListByP2(ctx context.Context, userID string) ([]domain.Match, error) {
	return r.list(ctx, `SELECT `+matchColumns+` FROM matches
		WHERE p2_id = ? ORDER BY created_at DESC, id DESC`, userID)
}

func (r *matchesRepo) ListAll(ctx context.Context) ([]domain.Match, error) {
	return r.list(ctx, `SELECT `+matchColumns+` FROM matches ORDER BY created_at DESC, id DESC`)
}

func (r *matchesRepo) Scan(ctx context.Context, limit int) ([]domain.Match, error) {
	return r.list(ctx, `SELECT `+matchColumns+` FROM matches
		ORDER BY created_at DESC, id DESC LIMIT ?`, sqlLimit(limit))
}

func (r *matchesRepo) list(ctx context.Context, query string, args ...any) ([]domain.Match, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []domain.Match{}
	for rows.Next() {
		row, err := scanMatch(rows)
		if err != nil {
			return nil, mapErr(err)
		}
		m, err := mapMatch(row)
		if err != nil {
			r.opts.Quarantine(ctx, "matches", row.ID, err)
			continue
		}
		out = append(out, m)
	}
	return out, mapErr(rows.Err())
}

func (r *matchesRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM matches`).Scan(&n)
	return n, mapErr(err)
}

func (r *matchesRepo) CountByStatus(ctx context.Context, status domain.MatchStatus) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM matches WHERE status = ?`, string(status)).Scan(&n)
	return n, mapErr(err)
}
