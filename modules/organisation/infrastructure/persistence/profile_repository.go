package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/profile"
	"github.com/lumenhr/orgadmin/pkg/composables"
)

type PgProfileRepository struct{}

func NewProfileRepository() profile.Repository {
	return &PgProfileRepository{}
}

const profileColumns = `id, full_name, location, status, created_at, updated_at`

func scanProfile(row pgx.Row) (profile.Profile, error) {
	var (
		id        uuid.UUID
		fullName  string
		location  *string
		status    string
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&id, &fullName, &location, &status, &createdAt, &updatedAt); err != nil {
		return profile.Profile{}, err
	}
	return profile.Hydrate(id, fullName, location, profile.Status(status), createdAt, updatedAt), nil
}

func (r *PgProfileRepository) GetPaginated(ctx context.Context, params *profile.FindParams) ([]profile.Profile, int64, error) {
	if params == nil {
		params = &profile.FindParams{}
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, 0, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := tx.Query(ctx, `
SELECT `+profileColumns+`
FROM profiles
WHERE ($1 = '' OR full_name ILIKE '%' || $1 || '%')
  AND ($2 = '' OR status = $2)
  AND ($3 = '' OR status <> $3)
ORDER BY full_name, id
LIMIT $4 OFFSET $5
`, params.Q, string(params.Status), string(params.ExcludeStatus), limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]profile.Profile, 0, limit)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := tx.QueryRow(ctx, `
SELECT COUNT(*)
FROM profiles
WHERE ($1 = '' OR full_name ILIKE '%' || $1 || '%')
  AND ($2 = '' OR status = $2)
  AND ($3 = '' OR status <> $3)
`, params.Q, string(params.Status), string(params.ExcludeStatus)).Scan(&total); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PgProfileRepository) GetAll(ctx context.Context, excludeStatus profile.Status) ([]profile.Profile, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT `+profileColumns+`
FROM profiles
WHERE $1 = '' OR status <> $1
ORDER BY full_name, id
`, string(excludeStatus))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PgProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (profile.Profile, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return profile.Profile{}, err
	}

	p, err := scanProfile(tx.QueryRow(ctx, `
SELECT `+profileColumns+`
FROM profiles
WHERE id = $1
`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, err
}

func (r *PgProfileRepository) Create(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return profile.Profile{}, err
	}

	return scanProfile(tx.QueryRow(ctx, `
INSERT INTO profiles (full_name, location, status)
VALUES ($1, $2, $3)
RETURNING `+profileColumns+`
`, p.FullName(), p.Location(), string(p.Status())))
}

func (r *PgProfileRepository) Update(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return profile.Profile{}, err
	}

	updated, err := scanProfile(tx.QueryRow(ctx, `
UPDATE profiles
SET full_name = $2, location = $3, status = $4, updated_at = now()
WHERE id = $1
RETURNING `+profileColumns+`
`, p.ID(), p.FullName(), p.Location(), string(p.Status())))
	if errors.Is(err, pgx.ErrNoRows) {
		return profile.Profile{}, profile.ErrNotFound
	}
	return updated, err
}

func (r *PgProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return profile.ErrNotFound
	}
	return nil
}
