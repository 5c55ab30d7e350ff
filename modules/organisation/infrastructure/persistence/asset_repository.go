package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/asset"
	"github.com/lumenhr/orgadmin/pkg/composables"
)

type PgAssetRepository struct{}

func NewAssetRepository() asset.Repository {
	return &PgAssetRepository{}
}

const assetColumns = `id, kind, name, serial, assigned_to, assigned_at, created_at, updated_at`

func scanAsset(row pgx.Row) (asset.Asset, error) {
	var (
		id         uuid.UUID
		kind       string
		name       string
		serial     string
		assignedTo *uuid.UUID
		assignedAt *time.Time
		createdAt  time.Time
		updatedAt  time.Time
	)
	if err := row.Scan(&id, &kind, &name, &serial, &assignedTo, &assignedAt, &createdAt, &updatedAt); err != nil {
		return asset.Asset{}, err
	}
	return asset.Hydrate(id, asset.Kind(kind), name, serial, assignedTo, assignedAt, createdAt, updatedAt), nil
}

func (r *PgAssetRepository) GetPaginated(ctx context.Context, params *asset.FindParams) ([]asset.Asset, int64, error) {
	if params == nil {
		params = &asset.FindParams{}
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
SELECT `+assetColumns+`
FROM assets
WHERE ($1 = '' OR kind = $1)
  AND ($2::uuid IS NULL OR assigned_to = $2)
ORDER BY name, id
LIMIT $3 OFFSET $4
`, string(params.Kind), params.AssignedTo, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]asset.Asset, 0, limit)
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := tx.QueryRow(ctx, `
SELECT COUNT(*)
FROM assets
WHERE ($1 = '' OR kind = $1)
  AND ($2::uuid IS NULL OR assigned_to = $2)
`, string(params.Kind), params.AssignedTo).Scan(&total); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PgAssetRepository) GetByID(ctx context.Context, id uuid.UUID) (asset.Asset, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return asset.Asset{}, err
	}

	a, err := scanAsset(tx.QueryRow(ctx, `
SELECT `+assetColumns+`
FROM assets
WHERE id = $1
`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return asset.Asset{}, asset.ErrNotFound
	}
	return a, err
}

func (r *PgAssetRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]asset.Asset, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT `+assetColumns+`
FROM assets
WHERE assigned_to = $1
ORDER BY name, id
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]asset.Asset, 0)
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PgAssetRepository) Create(ctx context.Context, a asset.Asset) (asset.Asset, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return asset.Asset{}, err
	}

	return scanAsset(tx.QueryRow(ctx, `
INSERT INTO assets (kind, name, serial)
VALUES ($1, $2, $3)
RETURNING `+assetColumns+`
`, string(a.Kind()), a.Name(), a.Serial()))
}

func (r *PgAssetRepository) Update(ctx context.Context, a asset.Asset) (asset.Asset, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return asset.Asset{}, err
	}

	updated, err := scanAsset(tx.QueryRow(ctx, `
UPDATE assets
SET name = $2, serial = $3, updated_at = now()
WHERE id = $1
RETURNING `+assetColumns+`
`, a.ID(), a.Name(), a.Serial()))
	if errors.Is(err, pgx.ErrNoRows) {
		return asset.Asset{}, asset.ErrNotFound
	}
	return updated, err
}

func (r *PgAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return asset.ErrNotFound
	}
	return nil
}

func (r *PgAssetRepository) Assign(ctx context.Context, assetID, userID uuid.UUID) (asset.Asset, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return asset.Asset{}, err
	}

	assigned, err := scanAsset(tx.QueryRow(ctx, `
UPDATE assets
SET assigned_to = $2, assigned_at = now(), updated_at = now()
WHERE id = $1 AND assigned_to IS NULL
RETURNING `+assetColumns+`
`, assetID, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		// Either the asset does not exist or it is already checked out.
		if _, getErr := r.GetByID(ctx, assetID); getErr != nil {
			return asset.Asset{}, getErr
		}
		return asset.Asset{}, asset.ErrAlreadyAssigned
	}
	return assigned, err
}

func (r *PgAssetRepository) Return(ctx context.Context, assetID uuid.UUID) (asset.Asset, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return asset.Asset{}, err
	}

	returned, err := scanAsset(tx.QueryRow(ctx, `
UPDATE assets
SET assigned_to = NULL, assigned_at = NULL, updated_at = now()
WHERE id = $1 AND assigned_to IS NOT NULL
RETURNING `+assetColumns+`
`, assetID))
	if errors.Is(err, pgx.ErrNoRows) {
		if _, getErr := r.GetByID(ctx, assetID); getErr != nil {
			return asset.Asset{}, getErr
		}
		return asset.Asset{}, asset.ErrNotAssigned
	}
	return returned, err
}
