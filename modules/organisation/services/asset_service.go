package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/asset"
	"github.com/lumenhr/orgadmin/pkg/composables"
	"github.com/lumenhr/orgadmin/pkg/eventbus"
)

// AssetService manages hardware and software assets and their checkout to
// users.
type AssetService struct {
	repo      asset.Repository
	publisher eventbus.EventBus
}

func NewAssetService(repo asset.Repository, publisher eventbus.EventBus) *AssetService {
	return &AssetService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *AssetService) GetPaginated(ctx context.Context, params *asset.FindParams) ([]asset.Asset, int64, error) {
	return s.repo.GetPaginated(ctx, params)
}

func (s *AssetService) GetByID(ctx context.Context, id uuid.UUID) (asset.Asset, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AssetService) GetByUser(ctx context.Context, userID uuid.UUID) ([]asset.Asset, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *AssetService) Create(ctx context.Context, kind asset.Kind, name, serial string) (asset.Asset, error) {
	created, err := composables.InTxResult(ctx, func(txCtx context.Context) (asset.Asset, error) {
		return s.repo.Create(txCtx, asset.New(kind, name, serial))
	})
	if err != nil {
		return asset.Asset{}, err
	}

	s.publisher.Publish(asset.CreatedEvent{Result: created})
	return created, nil
}

func (s *AssetService) Update(ctx context.Context, id uuid.UUID, name, serial string) (asset.Asset, error) {
	updated, err := composables.InTxResult(ctx, func(txCtx context.Context) (asset.Asset, error) {
		existing, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return asset.Asset{}, err
		}
		return s.repo.Update(txCtx, existing.WithName(name).WithSerial(serial))
	})
	if err != nil {
		return asset.Asset{}, err
	}

	s.publisher.Publish(asset.UpdatedEvent{Result: updated})
	return updated, nil
}

func (s *AssetService) Delete(ctx context.Context, id uuid.UUID) (asset.Asset, error) {
	deleted, err := composables.InTxResult(ctx, func(txCtx context.Context) (asset.Asset, error) {
		existing, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return asset.Asset{}, err
		}
		if err := s.repo.Delete(txCtx, id); err != nil {
			return asset.Asset{}, err
		}
		return existing, nil
	})
	if err != nil {
		return asset.Asset{}, err
	}

	s.publisher.Publish(asset.DeletedEvent{Result: deleted})
	return deleted, nil
}

// Assign checks the asset out to a user. Assigning an already assigned asset
// fails with asset.ErrAlreadyAssigned.
func (s *AssetService) Assign(ctx context.Context, assetID, userID uuid.UUID) (asset.Asset, error) {
	assigned, err := composables.InTxResult(ctx, func(txCtx context.Context) (asset.Asset, error) {
		return s.repo.Assign(txCtx, assetID, userID)
	})
	if err != nil {
		return asset.Asset{}, err
	}

	s.publisher.Publish(asset.AssignedEvent{Result: assigned})
	return assigned, nil
}

// Return checks the asset back in.
func (s *AssetService) Return(ctx context.Context, assetID uuid.UUID) (asset.Asset, error) {
	returned, err := composables.InTxResult(ctx, func(txCtx context.Context) (asset.Asset, error) {
		return s.repo.Return(txCtx, assetID)
	})
	if err != nil {
		return asset.Asset{}, err
	}

	s.publisher.Publish(asset.ReturnedEvent{Result: returned})
	return returned, nil
}
