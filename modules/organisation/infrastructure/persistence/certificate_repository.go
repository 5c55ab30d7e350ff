package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/certificate"
	"github.com/lumenhr/orgadmin/pkg/composables"
)

type PgCertificateRepository struct{}

func NewCertificateRepository() certificate.Repository {
	return &PgCertificateRepository{}
}

const certificateColumns = `id, user_id, name, issued_at, expires_at, created_at, updated_at`

func scanCertificate(row pgx.Row) (certificate.Certificate, error) {
	var (
		id        uuid.UUID
		userID    uuid.UUID
		name      string
		issuedAt  time.Time
		expiresAt *time.Time
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&id, &userID, &name, &issuedAt, &expiresAt, &createdAt, &updatedAt); err != nil {
		return certificate.Certificate{}, err
	}
	return certificate.Hydrate(id, userID, name, issuedAt, expiresAt, createdAt, updatedAt), nil
}

func (r *PgCertificateRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]certificate.Certificate, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT `+certificateColumns+`
FROM certificates
WHERE user_id = $1
ORDER BY issued_at DESC, id
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]certificate.Certificate, 0)
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PgCertificateRepository) GetByID(ctx context.Context, id uuid.UUID) (certificate.Certificate, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return certificate.Certificate{}, err
	}

	c, err := scanCertificate(tx.QueryRow(ctx, `
SELECT `+certificateColumns+`
FROM certificates
WHERE id = $1
`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return certificate.Certificate{}, certificate.ErrNotFound
	}
	return c, err
}

func (r *PgCertificateRepository) GetExpiringBefore(ctx context.Context, now, cutoff time.Time) ([]certificate.Certificate, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT `+certificateColumns+`
FROM certificates
WHERE expires_at IS NOT NULL AND expires_at > $1 AND expires_at < $2
ORDER BY expires_at, id
`, now, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]certificate.Certificate, 0)
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PgCertificateRepository) Create(ctx context.Context, c certificate.Certificate) (certificate.Certificate, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return certificate.Certificate{}, err
	}

	return scanCertificate(tx.QueryRow(ctx, `
INSERT INTO certificates (user_id, name, issued_at, expires_at)
VALUES ($1, $2, $3, $4)
RETURNING `+certificateColumns+`
`, c.UserID(), c.Name(), c.IssuedAt(), c.ExpiresAt()))
}

func (r *PgCertificateRepository) Update(ctx context.Context, c certificate.Certificate) (certificate.Certificate, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return certificate.Certificate{}, err
	}

	updated, err := scanCertificate(tx.QueryRow(ctx, `
UPDATE certificates
SET name = $2, issued_at = $3, expires_at = $4, updated_at = now()
WHERE id = $1
RETURNING `+certificateColumns+`
`, c.ID(), c.Name(), c.IssuedAt(), c.ExpiresAt()))
	if errors.Is(err, pgx.ErrNoRows) {
		return certificate.Certificate{}, certificate.ErrNotFound
	}
	return updated, err
}

func (r *PgCertificateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM certificates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return certificate.ErrNotFound
	}
	return nil
}
