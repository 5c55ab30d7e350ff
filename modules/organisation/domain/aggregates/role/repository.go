package role

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("role not found")
	ErrNameTaken = errors.New("role name already exists")
)

type Repository interface {
	GetAll(ctx context.Context) ([]Role, error)
	GetByID(ctx context.Context, id uuid.UUID) (Role, error)
	Create(ctx context.Context, r Role) (Role, error)
	Update(ctx context.Context, r Role) (Role, error)
	Delete(ctx context.Context, id uuid.UUID) error

	GetUserRoles(ctx context.Context, primaryOnly bool) ([]UserRole, error)
	GetUserRolesByUser(ctx context.Context, userID uuid.UUID) ([]UserRole, error)
	AssignUser(ctx context.Context, link UserRole) (UserRole, error)
	RemoveUser(ctx context.Context, userID, roleID uuid.UUID) error
	SetPrimary(ctx context.Context, userID, roleID uuid.UUID) error
}
