package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/domain"
	"github.com/aussiebroadwan/cofound/internal/matchmaker/store"
)

const profileColumns = `id, name, location, email, phone, linkedin, role, experience,
	skills, stage, commitment, industries, looking, bio, idea, created_at`

type profilesRepo struct {
	q    querier
	opts store.Options
}

type profileRow struct {
	ID         string
	Name       string
	Location   string
	Email      string
	Phone      sql.NullString
	LinkedIn   sql.NullString
	Role       string
	Experience sql.NullString
	Skills     string
	Stage      sql.NullString
	Commitment string
	Industries string
	Looking    string
	Bio        string
	Idea       sql.NullString
	CreatedAt  int64
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(s rowScanner) (profileRow, error) {
	var r profileRow
	err := s.Scan(&r.ID, &r.Name, &r.Location, &r.Email, &r.Phone, &r.LinkedIn, &r.Role,
		&r.Experience, &r.Skills, &r.Stage, &r.Commitment, &r.Industries, &r.Looking,
		&r.Bio, &r.Idea, &r.CreatedAt)
	return r, err
}

func mapProfile(r profileRow) (domain.Profile, error) {
	p := domain.Profile{
		ID:         r.ID,
		Name:       r.Name,
		Location:   r.Location,
		Email:      r.Email,
		Phone:      mapNullString(r.Phone),
		LinkedIn:   mapNullString(r.LinkedIn),
		Role:       domain.Role(r.Role),
		Experience: domain.Experience(mapNullString(r.Experience)),
		Stage:      domain.Stage(mapNullString(r.Stage)),
		Commitment: domain.Commitment(r.Commitment),
		Looking:    domain.LookingFor(r.Looking),
		Bio:        r.Bio,
		Idea:       mapNullString(r.Idea),
		CreatedAt:  fromMillis(r.CreatedAt),
	}
	if err := json.Unmarshal([]byte(r.Skills), &p.Skills); err != nil {
		return domain.Profile{}, malformed(err)
	}
	if err := json.Unmarshal([]byte(r.Industries), &p.Industries); err != nil {
		return domain.Profile{}, malformed(err)
	}
	if err := p.Validate(); err != nil {
		return domain.Profile{}, malformed(err)
	}
	return p, nil
}

func (r *profilesRepo) Get(ctx context.Context, id string) (domain.Profile, error) {
	row, err := scanProfile(r.q.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = ?`, id))
	if err != nil {
		return domain.Profile{}, mapErr(err)
	}
	return mapProfile(row)
}

func (r *profilesRepo) Put(ctx context.Context, p domain.Profile) error {
	skills, err := json.Marshal(nonNil(p.Skills))
	if err != nil {
		return err
	}
	industries, err := json.Marshal(nonNil(p.Industries))
	if err != nil {
		return err
	}

	// created_at is kept from the first write.
	_, err = r.q.ExecContext(ctx, `
		INSERT INTO profiles (`+profileColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			location = excluded.location,
			email = excluded.email,
			phone = excluded.phone,
			linkedin = excluded.linkedin,
			role = excluded.role,
			experience = excluded.experience,
			skills = excluded.skills,
			stage = excluded.stage,
			commitment = excluded.commitment,
			industries = excluded.industries,
			looking = excluded.looking,
			bio = excluded.bio,
			idea = excluded.idea`,
		p.ID, p.Name, p.Location, p.Email, mapStringNull(p.Phone), mapStringNull(p.LinkedIn),
		string(p.Role), mapStringNull(string(p.Experience)), string(skills),
		mapStringNull(string(p.Stage)), string(p.Commitment), string(industries),
		string(p.Looking), p.Bio, mapStringNull(p.Idea), toMillis(p.CreatedAt),
	)
	return mapErr(err)
}

func (r *profilesRepo) List(ctx context.Context) ([]domain.Profile, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+profileColumns+` FROM profiles ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []domain.Profile{}
	for rows.Next() {
		row, err := scanProfile(rows)
		if err != nil {
			return nil, mapErr(err)
		}
		p, err := mapProfile(row)
		if err != nil {
			r.opts.Quarantine(ctx, "profiles", row.ID, err)
			continue
		}
		out = append(out, p)
	}
	return out, mapErr(rows.Err())
}

func (r *profilesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}

func (r *profilesRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&n)
	return n, mapErr(err)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
