package department

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("department not found")
	ErrNameTaken = errors.New("department name already exists")
)

type Repository interface {
	GetAll(ctx context.Context) ([]Department, error)
	GetByID(ctx context.Context, id uuid.UUID) (Department, error)
	Create(ctx context.Context, d Department) (Department, error)
	Update(ctx context.Context, d Department) (Department, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// GetUserDepartments returns the user<->department relation; with
	// primaryOnly set, only rows flagged is_primary.
	GetUserDepartments(ctx context.Context, primaryOnly bool) ([]UserDepartment, error)
	GetUserDepartmentsByUser(ctx context.Context, userID uuid.UUID) ([]UserDepartment, error)
	AssignUser(ctx context.Context, link UserDepartment) (UserDepartment, error)
	RemoveUser(ctx context.Context, userID, departmentID uuid.UUID) error
	// SetPrimary clears any previous primary flag for the user and marks the
	// given department as primary.
	SetPrimary(ctx context.Context, userID, departmentID uuid.UUID) error
}
