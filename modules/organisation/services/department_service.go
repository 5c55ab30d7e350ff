package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/department"
	"github.com/lumenhr/orgadmin/pkg/composables"
	"github.com/lumenhr/orgadmin/pkg/eventbus"
)

// DepartmentService provides operations for managing departments and the
// user<->department pairings the drill-down indexes.
type DepartmentService struct {
	repo      department.Repository
	publisher eventbus.EventBus
}

func NewDepartmentService(repo department.Repository, publisher eventbus.EventBus) *DepartmentService {
	return &DepartmentService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *DepartmentService) GetAll(ctx context.Context) ([]department.Department, error) {
	return s.repo.GetAll(ctx)
}

func (s *DepartmentService) GetByID(ctx context.Context, id uuid.UUID) (department.Department, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DepartmentService) Create(ctx context.Context, name string) (department.Department, error) {
	created, err := composables.InTxResult(ctx, func(txCtx context.Context) (department.Department, error) {
		return s.repo.Create(txCtx, department.New(name))
	})
	if err != nil {
		return department.Department{}, err
	}

	s.publisher.Publish(department.CreatedEvent{Result: created})
	return created, nil
}

func (s *DepartmentService) Rename(ctx context.Context, id uuid.UUID, name string) (department.Department, error) {
	updated, err := composables.InTxResult(ctx, func(txCtx context.Context) (department.Department, error) {
		existing, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return department.Department{}, err
		}
		return s.repo.Update(txCtx, existing.WithName(name))
	})
	if err != nil {
		return department.Department{}, err
	}

	s.publisher.Publish(department.UpdatedEvent{Result: updated})
	return updated, nil
}

func (s *DepartmentService) Delete(ctx context.Context, id uuid.UUID) (department.Department, error) {
	deleted, err := composables.InTxResult(ctx, func(txCtx context.Context) (department.Department, error) {
		existing, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return department.Department{}, err
		}
		if err := s.repo.Delete(txCtx, id); err != nil {
			return department.Department{}, err
		}
		return existing, nil
	})
	if err != nil {
		return department.Department{}, err
	}

	s.publisher.Publish(department.DeletedEvent{Result: deleted})
	return deleted, nil
}

func (s *DepartmentService) GetUserDepartments(ctx context.Context, userID uuid.UUID) ([]department.UserDepartment, error) {
	return s.repo.GetUserDepartmentsByUser(ctx, userID)
}

// AssignUser pairs a user with a department. When primary is set, any
// previous primary pairing for the user is demoted in the same transaction.
func (s *DepartmentService) AssignUser(ctx context.Context, userID, departmentID uuid.UUID, primary bool) (department.UserDepartment, error) {
	link, err := composables.InTxResult(ctx, func(txCtx context.Context) (department.UserDepartment, error) {
		if _, err := s.repo.GetByID(txCtx, departmentID); err != nil {
			return department.UserDepartment{}, err
		}
		saved, err := s.repo.AssignUser(txCtx, department.UserDepartment{
			UserID:       userID,
			DepartmentID: departmentID,
		})
		if err != nil {
			return department.UserDepartment{}, err
		}
		if primary {
			if err := s.repo.SetPrimary(txCtx, userID, departmentID); err != nil {
				return department.UserDepartment{}, err
			}
			saved.IsPrimary = true
		}
		return saved, nil
	})
	if err != nil {
		return department.UserDepartment{}, err
	}

	s.publisher.Publish(department.UserAssignedEvent{Result: link})
	return link, nil
}

func (s *DepartmentService) RemoveUser(ctx context.Context, userID, departmentID uuid.UUID) error {
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.RemoveUser(txCtx, userID, departmentID)
	})
	if err != nil {
		return err
	}

	s.publisher.Publish(department.UserRemovedEvent{Result: department.UserDepartment{
		UserID:       userID,
		DepartmentID: departmentID,
	}})
	return nil
}

// SetPrimary marks the pairing as the user's primary department, demoting
// any other pairing the user holds.
func (s *DepartmentService) SetPrimary(ctx context.Context, userID, departmentID uuid.UUID) error {
	return composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.SetPrimary(txCtx, userID, departmentID)
	})
}
