package role

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role struct {
	id        uuid.UUID
	name      string
	createdAt time.Time
	updatedAt time.Time
}

func New(name string) Role {
	return Role{name: strings.TrimSpace(name)}
}

func Hydrate(id uuid.UUID, name string, createdAt, updatedAt time.Time) Role {
	return Role{
		id:        id,
		name:      strings.TrimSpace(name),
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r Role) ID() uuid.UUID        { return r.id }
func (r Role) Name() string         { return r.name }
func (r Role) CreatedAt() time.Time { return r.createdAt }
func (r Role) UpdatedAt() time.Time { return r.updatedAt }
func (r Role) IsZero() bool         { return r.id == uuid.Nil && r.name == "" }

func (r Role) WithName(name string) Role {
	r.name = strings.TrimSpace(name)
	return r
}

// UserRole links a user to a role, with the same single-primary convention as
// department links.
type UserRole struct {
	UserID    uuid.UUID
	RoleID    uuid.UUID
	IsPrimary bool
}
