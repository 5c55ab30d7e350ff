package profile

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Profile is one person in the organisation. Location is a denormalized
// display name, not a foreign key; it is what the drill-down groups by.
type Profile struct {
	id        uuid.UUID
	fullName  string
	location  *string
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func New(fullName string, location *string) Profile {
	return Profile{
		fullName: strings.TrimSpace(fullName),
		location: normalizeLocation(location),
		status:   StatusActive,
	}
}

func Hydrate(
	id uuid.UUID,
	fullName string,
	location *string,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) Profile {
	return Profile{
		id:        id,
		fullName:  strings.TrimSpace(fullName),
		location:  normalizeLocation(location),
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (p Profile) ID() uuid.UUID        { return p.id }
func (p Profile) FullName() string     { return p.fullName }
func (p Profile) Location() *string    { return p.location }
func (p Profile) Status() Status       { return p.status }
func (p Profile) CreatedAt() time.Time { return p.createdAt }
func (p Profile) UpdatedAt() time.Time { return p.updatedAt }
func (p Profile) IsZero() bool         { return p.id == uuid.Nil && p.fullName == "" }

func (p Profile) WithFullName(fullName string) Profile {
	p.fullName = strings.TrimSpace(fullName)
	return p
}

func (p Profile) WithLocation(location *string) Profile {
	p.location = normalizeLocation(location)
	return p
}

func (p Profile) WithStatus(status Status) Profile {
	p.status = status
	return p
}

// LocationName returns the display name or "" when the profile has none.
func (p Profile) LocationName() string {
	if p.location == nil {
		return ""
	}
	return *p.location
}

func normalizeLocation(location *string) *string {
	if location == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*location)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
