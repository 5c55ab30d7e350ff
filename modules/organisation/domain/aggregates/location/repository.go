package location

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("location not found")
	ErrNameTaken = errors.New("location name already exists")
)

type Repository interface {
	GetAll(ctx context.Context) ([]Location, error)
	GetByID(ctx context.Context, id uuid.UUID) (Location, error)
	Create(ctx context.Context, l Location) (Location, error)
	Update(ctx context.Context, l Location) (Location, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
