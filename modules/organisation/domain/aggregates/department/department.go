package department

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Department struct {
	id        uuid.UUID
	name      string
	createdAt time.Time
	updatedAt time.Time
}

func New(name string) Department {
	return Department{name: strings.TrimSpace(name)}
}

func Hydrate(id uuid.UUID, name string, createdAt, updatedAt time.Time) Department {
	return Department{
		id:        id,
		name:      strings.TrimSpace(name),
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (d Department) ID() uuid.UUID        { return d.id }
func (d Department) Name() string         { return d.name }
func (d Department) CreatedAt() time.Time { return d.createdAt }
func (d Department) UpdatedAt() time.Time { return d.updatedAt }
func (d Department) IsZero() bool         { return d.id == uuid.Nil && d.name == "" }

func (d Department) WithName(name string) Department {
	d.name = strings.TrimSpace(name)
	return d
}

// UserDepartment links a user to a department. At most one link per user
// should carry IsPrimary; the drill-down index tolerates violations.
type UserDepartment struct {
	PairingID    uuid.UUID
	UserID       uuid.UUID
	DepartmentID uuid.UUID
	IsPrimary    bool
}
