package certificate

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("certificate not found")

type Repository interface {
	GetByUser(ctx context.Context, userID uuid.UUID) ([]Certificate, error)
	GetByID(ctx context.Context, id uuid.UUID) (Certificate, error)
	// GetExpiringBefore returns certificates with an expiry before the cutoff
	// that have not yet expired as of now.
	GetExpiringBefore(ctx context.Context, now, cutoff time.Time) ([]Certificate, error)
	Create(ctx context.Context, c Certificate) (Certificate, error)
	Update(ctx context.Context, c Certificate) (Certificate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
