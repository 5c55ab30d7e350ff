package profile

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("profile not found")

type FindParams struct {
	Q             string
	Status        Status
	ExcludeStatus Status
	Limit         int
	Offset        int
}

type Repository interface {
	GetPaginated(ctx context.Context, params *FindParams) ([]Profile, int64, error)
	GetAll(ctx context.Context, excludeStatus Status) ([]Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (Profile, error)
	Create(ctx context.Context, p Profile) (Profile, error)
	Update(ctx context.Context, p Profile) (Profile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
