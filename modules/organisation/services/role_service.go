package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/role"
	"github.com/lumenhr/orgadmin/pkg/composables"
	"github.com/lumenhr/orgadmin/pkg/eventbus"
)

// RoleService mirrors DepartmentService for the role axis of the org chart.
type RoleService struct {
	repo      role.Repository
	publisher eventbus.EventBus
}

func NewRoleService(repo role.Repository, publisher eventbus.EventBus) *RoleService {
	return &RoleService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *RoleService) GetAll(ctx context.Context) ([]role.Role, error) {
	return s.repo.GetAll(ctx)
}

func (s *RoleService) GetByID(ctx context.Context, id uuid.UUID) (role.Role, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RoleService) Create(ctx context.Context, name string) (role.Role, error) {
	created, err := composables.InTxResult(ctx, func(txCtx context.Context) (role.Role, error) {
		return s.repo.Create(txCtx, role.New(name))
	})
	if err != nil {
		return role.Role{}, err
	}

	s.publisher.Publish(role.CreatedEvent{Result: created})
	return created, nil
}

func (s *RoleService) Rename(ctx context.Context, id uuid.UUID, name string) (role.Role, error) {
	updated, err := composables.InTxResult(ctx, func(txCtx context.Context) (role.Role, error) {
		existing, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return role.Role{}, err
		}
		return s.repo.Update(txCtx, existing.WithName(name))
	})
	if err != nil {
		return role.Role{}, err
	}

	s.publisher.Publish(role.UpdatedEvent{Result: updated})
	return updated, nil
}

func (s *RoleService) Delete(ctx context.Context, id uuid.UUID) (role.Role, error) {
	deleted, err := composables.InTxResult(ctx, func(txCtx context.Context) (role.Role, error) {
		existing, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return role.Role{}, err
		}
		if err := s.repo.Delete(txCtx, id); err != nil {
			return role.Role{}, err
		}
		return existing, nil
	})
	if err != nil {
		return role.Role{}, err
	}

	s.publisher.Publish(role.DeletedEvent{Result: deleted})
	return deleted, nil
}

func (s *RoleService) GetUserRoles(ctx context.Context, userID uuid.UUID) ([]role.UserRole, error) {
	return s.repo.GetUserRolesByUser(ctx, userID)
}

func (s *RoleService) AssignUser(ctx context.Context, userID, roleID uuid.UUID, primary bool) (role.UserRole, error) {
	link, err := composables.InTxResult(ctx, func(txCtx context.Context) (role.UserRole, error) {
		if _, err := s.repo.GetByID(txCtx, roleID); err != nil {
			return role.UserRole{}, err
		}
		saved, err := s.repo.AssignUser(txCtx, role.UserRole{
			UserID: userID,
			RoleID: roleID,
		})
		if err != nil {
			return role.UserRole{}, err
		}
		if primary {
			if err := s.repo.SetPrimary(txCtx, userID, roleID); err != nil {
				return role.UserRole{}, err
			}
			saved.IsPrimary = true
		}
		return saved, nil
	})
	if err != nil {
		return role.UserRole{}, err
	}

	s.publisher.Publish(role.UserAssignedEvent{Result: link})
	return link, nil
}

func (s *RoleService) RemoveUser(ctx context.Context, userID, roleID uuid.UUID) error {
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.RemoveUser(txCtx, userID, roleID)
	})
	if err != nil {
		return err
	}

	s.publisher.Publish(role.UserRemovedEvent{Result: role.UserRole{
		UserID: userID,
		RoleID: roleID,
	}})
	return nil
}

func (s *RoleService) SetPrimary(ctx context.Context, userID, roleID uuid.UUID) error {
	return composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.SetPrimary(txCtx, userID, roleID)
	})
}
