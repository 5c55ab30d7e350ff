package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/role"
	"github.com/lumenhr/orgadmin/pkg/composables"
)

type PgRoleRepository struct{}

func NewRoleRepository() role.Repository {
	return &PgRoleRepository{}
}

func scanRole(row pgx.Row) (role.Role, error) {
	var (
		id        uuid.UUID
		name      string
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&id, &name, &createdAt, &updatedAt); err != nil {
		return role.Role{}, err
	}
	return role.Hydrate(id, name, createdAt, updatedAt), nil
}

func (r *PgRoleRepository) GetAll(ctx context.Context) ([]role.Role, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT id, name, created_at, updated_at
FROM roles
ORDER BY name, id
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]role.Role, 0)
	for rows.Next() {
		entity, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, entity)
	}
	return out, rows.Err()
}

func (r *PgRoleRepository) GetByID(ctx context.Context, id uuid.UUID) (role.Role, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return role.Role{}, err
	}

	entity, err := scanRole(tx.QueryRow(ctx, `
SELECT id, name, created_at, updated_at
FROM roles
WHERE id = $1
`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return role.Role{}, role.ErrNotFound
	}
	return entity, err
}

func (r *PgRoleRepository) Create(ctx context.Context, entity role.Role) (role.Role, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return role.Role{}, err
	}

	created, err := scanRole(tx.QueryRow(ctx, `
INSERT INTO roles (name)
VALUES ($1)
RETURNING id, name, created_at, updated_at
`, entity.Name()))
	if isUniqueViolation(err) {
		return role.Role{}, role.ErrNameTaken
	}
	return created, err
}

func (r *PgRoleRepository) Update(ctx context.Context, entity role.Role) (role.Role, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return role.Role{}, err
	}

	updated, err := scanRole(tx.QueryRow(ctx, `
UPDATE roles
SET name = $2, updated_at = now()
WHERE id = $1
RETURNING id, name, created_at, updated_at
`, entity.ID(), entity.Name()))
	if errors.Is(err, pgx.ErrNoRows) {
		return role.Role{}, role.ErrNotFound
	}
	if isUniqueViolation(err) {
		return role.Role{}, role.ErrNameTaken
	}
	return updated, err
}

func (r *PgRoleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return role.ErrNotFound
	}
	return nil
}

func (r *PgRoleRepository) GetUserRoles(ctx context.Context, primaryOnly bool) ([]role.UserRole, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT user_id, role_id, is_primary
FROM user_roles
WHERE $1 = false OR is_primary = true
ORDER BY user_id, role_id
`, primaryOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]role.UserRole, 0)
	for rows.Next() {
		var link role.UserRole
		if err := rows.Scan(&link.UserID, &link.RoleID, &link.IsPrimary); err != nil {
			return nil, err
		}
		out = append(out, link)
	}
	return out, rows.Err()
}

func (r *PgRoleRepository) GetUserRolesByUser(ctx context.Context, userID uuid.UUID) ([]role.UserRole, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT user_id, role_id, is_primary
FROM user_roles
WHERE user_id = $1
ORDER BY role_id
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]role.UserRole, 0)
	for rows.Next() {
		var link role.UserRole
		if err := rows.Scan(&link.UserID, &link.RoleID, &link.IsPrimary); err != nil {
			return nil, err
		}
		out = append(out, link)
	}
	return out, rows.Err()
}

func (r *PgRoleRepository) AssignUser(ctx context.Context, link role.UserRole) (role.UserRole, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return role.UserRole{}, err
	}

	if _, err := tx.Exec(ctx, `
INSERT INTO user_roles (user_id, role_id, is_primary)
VALUES ($1, $2, $3)
`, link.UserID, link.RoleID, link.IsPrimary); err != nil {
		return role.UserRole{}, err
	}
	return link, nil
}

func (r *PgRoleRepository) RemoveUser(ctx context.Context, userID, roleID uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `
DELETE FROM user_roles
WHERE user_id = $1 AND role_id = $2
`, userID, roleID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return role.ErrNotFound
	}
	return nil
}

func (r *PgRoleRepository) SetPrimary(ctx context.Context, userID, roleID uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `
UPDATE user_roles
SET is_primary = (role_id = $2)
WHERE user_id = $1
`, userID, roleID); err != nil {
		return err
	}
	return nil
}
