package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/location"
	"github.com/lumenhr/orgadmin/pkg/composables"
)

type PgLocationRepository struct{}

func NewLocationRepository() location.Repository {
	return &PgLocationRepository{}
}

func scanLocation(row pgx.Row) (location.Location, error) {
	var (
		id        uuid.UUID
		name      string
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&id, &name, &createdAt, &updatedAt); err != nil {
		return location.Location{}, err
	}
	return location.Hydrate(id, name, createdAt, updatedAt), nil
}

func (r *PgLocationRepository) GetAll(ctx context.Context) ([]location.Location, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT id, name, created_at, updated_at
FROM locations
ORDER BY name, id
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]location.Location, 0)
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *PgLocationRepository) GetByID(ctx context.Context, id uuid.UUID) (location.Location, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return location.Location{}, err
	}

	l, err := scanLocation(tx.QueryRow(ctx, `
SELECT id, name, created_at, updated_at
FROM locations
WHERE id = $1
`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return location.Location{}, location.ErrNotFound
	}
	return l, err
}

func (r *PgLocationRepository) Create(ctx context.Context, l location.Location) (location.Location, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return location.Location{}, err
	}

	created, err := scanLocation(tx.QueryRow(ctx, `
INSERT INTO locations (name)
VALUES ($1)
RETURNING id, name, created_at, updated_at
`, l.Name()))
	if isUniqueViolation(err) {
		return location.Location{}, location.ErrNameTaken
	}
	return created, err
}

func (r *PgLocationRepository) Update(ctx context.Context, l location.Location) (location.Location, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return location.Location{}, err
	}

	updated, err := scanLocation(tx.QueryRow(ctx, `
UPDATE locations
SET name = $2, updated_at = now()
WHERE id = $1
RETURNING id, name, created_at, updated_at
`, l.ID(), l.Name()))
	if errors.Is(err, pgx.ErrNoRows) {
		return location.Location{}, location.ErrNotFound
	}
	if isUniqueViolation(err) {
		return location.Location{}, location.ErrNameTaken
	}
	return updated, err
}

func (r *PgLocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return location.ErrNotFound
	}
	return nil
}
