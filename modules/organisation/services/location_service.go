package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/location"
	"github.com/lumenhr/orgadmin/pkg/composables"
	"github.com/lumenhr/orgadmin/pkg/eventbus"
)

// LocationService manages the admin-maintained site list. Profiles hold a
// location display name, so edits here never cascade to profiles.
type LocationService struct {
	repo      location.Repository
	publisher eventbus.EventBus
}

func NewLocationService(repo location.Repository, publisher eventbus.EventBus) *LocationService {
	return &LocationService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *LocationService) GetAll(ctx context.Context) ([]location.Location, error) {
	return s.repo.GetAll(ctx)
}

func (s *LocationService) GetByID(ctx context.Context, id uuid.UUID) (location.Location, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *LocationService) Create(ctx context.Context, name string) (location.Location, error) {
	created, err := composables.InTxResult(ctx, func(txCtx context.Context) (location.Location, error) {
		return s.repo.Create(txCtx, location.New(name))
	})
	if err != nil {
		return location.Location{}, err
	}

	s.publisher.Publish(location.CreatedEvent{Result: created})
	return created, nil
}

func (s *LocationService) Rename(ctx context.Context, id uuid.UUID, name string) (location.Location, error) {
	updated, err := composables.InTxResult(ctx, func(txCtx context.Context) (location.Location, error) {
		existing, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return location.Location{}, err
		}
		return s.repo.Update(txCtx, existing.WithName(name))
	})
	if err != nil {
		return location.Location{}, err
	}

	s.publisher.Publish(location.UpdatedEvent{Result: updated})
	return updated, nil
}

func (s *LocationService) Delete(ctx context.Context, id uuid.UUID) (location.Location, error) {
	deleted, err := composables.InTxResult(ctx, func(txCtx context.Context) (location.Location, error) {
		existing, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return location.Location{}, err
		}
		if err := s.repo.Delete(txCtx, id); err != nil {
			return location.Location{}, err
		}
		return existing, nil
	})
	if err != nil {
		return location.Location{}, err
	}

	s.publisher.Publish(location.DeletedEvent{Result: deleted})
	return deleted, nil
}
