package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/department"
	"github.com/lumenhr/orgadmin/pkg/composables"
)

type PgDepartmentRepository struct{}

func NewDepartmentRepository() department.Repository {
	return &PgDepartmentRepository{}
}

func scanDepartment(row pgx.Row) (department.Department, error) {
	var (
		id        uuid.UUID
		name      string
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&id, &name, &createdAt, &updatedAt); err != nil {
		return department.Department{}, err
	}
	return department.Hydrate(id, name, createdAt, updatedAt), nil
}

func (r *PgDepartmentRepository) GetAll(ctx context.Context) ([]department.Department, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT id, name, created_at, updated_at
FROM departments
ORDER BY name, id
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]department.Department, 0)
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *PgDepartmentRepository) GetByID(ctx context.Context, id uuid.UUID) (department.Department, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return department.Department{}, err
	}

	d, err := scanDepartment(tx.QueryRow(ctx, `
SELECT id, name, created_at, updated_at
FROM departments
WHERE id = $1
`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return department.Department{}, department.ErrNotFound
	}
	return d, err
}

func (r *PgDepartmentRepository) Create(ctx context.Context, d department.Department) (department.Department, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return department.Department{}, err
	}

	created, err := scanDepartment(tx.QueryRow(ctx, `
INSERT INTO departments (name)
VALUES ($1)
RETURNING id, name, created_at, updated_at
`, d.Name()))
	if isUniqueViolation(err) {
		return department.Department{}, department.ErrNameTaken
	}
	return created, err
}

func (r *PgDepartmentRepository) Update(ctx context.Context, d department.Department) (department.Department, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return department.Department{}, err
	}

	updated, err := scanDepartment(tx.QueryRow(ctx, `
UPDATE departments
SET name = $2, updated_at = now()
WHERE id = $1
RETURNING id, name, created_at, updated_at
`, d.ID(), d.Name()))
	if errors.Is(err, pgx.ErrNoRows) {
		return department.Department{}, department.ErrNotFound
	}
	if isUniqueViolation(err) {
		return department.Department{}, department.ErrNameTaken
	}
	return updated, err
}

func (r *PgDepartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return department.ErrNotFound
	}
	return nil
}

func (r *PgDepartmentRepository) GetUserDepartments(ctx context.Context, primaryOnly bool) ([]department.UserDepartment, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT id, user_id, department_id, is_primary
FROM user_departments
WHERE $1 = false OR is_primary = true
ORDER BY id
`, primaryOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]department.UserDepartment, 0)
	for rows.Next() {
		var link department.UserDepartment
		if err := rows.Scan(&link.PairingID, &link.UserID, &link.DepartmentID, &link.IsPrimary); err != nil {
			return nil, err
		}
		out = append(out, link)
	}
	return out, rows.Err()
}

func (r *PgDepartmentRepository) GetUserDepartmentsByUser(ctx context.Context, userID uuid.UUID) ([]department.UserDepartment, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT id, user_id, department_id, is_primary
FROM user_departments
WHERE user_id = $1
ORDER BY id
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]department.UserDepartment, 0)
	for rows.Next() {
		var link department.UserDepartment
		if err := rows.Scan(&link.PairingID, &link.UserID, &link.DepartmentID, &link.IsPrimary); err != nil {
			return nil, err
		}
		out = append(out, link)
	}
	return out, rows.Err()
}

func (r *PgDepartmentRepository) AssignUser(ctx context.Context, link department.UserDepartment) (department.UserDepartment, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return department.UserDepartment{}, err
	}

	err = tx.QueryRow(ctx, `
INSERT INTO user_departments (user_id, department_id, is_primary)
VALUES ($1, $2, $3)
RETURNING id
`, link.UserID, link.DepartmentID, link.IsPrimary).Scan(&link.PairingID)
	return link, err
}

func (r *PgDepartmentRepository) RemoveUser(ctx context.Context, userID, departmentID uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `
DELETE FROM user_departments
WHERE user_id = $1 AND department_id = $2
`, userID, departmentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return department.ErrNotFound
	}
	return nil
}

func (r *PgDepartmentRepository) SetPrimary(ctx context.Context, userID, departmentID uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `
UPDATE user_departments
SET is_primary = (department_id = $2)
WHERE user_id = $1
`, userID, departmentID); err != nil {
		return err
	}
	return nil
}
