package asset

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("asset not found")
	ErrAlreadyAssigned = errors.New("asset already assigned")
	ErrNotAssigned     = errors.New("asset not assigned")
)

type FindParams struct {
	Kind       Kind
	AssignedTo *uuid.UUID
	Limit      int
	Offset     int
}

type Repository interface {
	GetPaginated(ctx context.Context, params *FindParams) ([]Asset, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (Asset, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]Asset, error)
	Create(ctx context.Context, a Asset) (Asset, error)
	Update(ctx context.Context, a Asset) (Asset, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Assign(ctx context.Context, assetID, userID uuid.UUID) (Asset, error)
	Return(ctx context.Context, assetID uuid.UUID) (Asset, error)
}
