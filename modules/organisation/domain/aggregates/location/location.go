package location

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Location is an admin-managed site record. Profiles reference locations by
// display name only, so renaming a location does not rewrite profiles; the
// drill-down groups by the denormalized string.
type Location struct {
	id        uuid.UUID
	name      string
	createdAt time.Time
	updatedAt time.Time
}

func New(name string) Location {
	return Location{name: strings.TrimSpace(name)}
}

func Hydrate(id uuid.UUID, name string, createdAt, updatedAt time.Time) Location {
	return Location{
		id:        id,
		name:      strings.TrimSpace(name),
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (l Location) ID() uuid.UUID        { return l.id }
func (l Location) Name() string         { return l.name }
func (l Location) CreatedAt() time.Time { return l.createdAt }
func (l Location) UpdatedAt() time.Time { return l.updatedAt }
func (l Location) IsZero() bool         { return l.id == uuid.Nil && l.name == "" }

func (l Location) WithName(name string) Location {
	l.name = strings.TrimSpace(name)
	return l
}
