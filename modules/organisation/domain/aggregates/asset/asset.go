package asset

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindHardware Kind = "hardware"
	KindSoftware Kind = "software"
)

// Asset is a hardware device or software license that can be checked out to
// a user.
type Asset struct {
	id         uuid.UUID
	kind       Kind
	name       string
	serial     string
	assignedTo *uuid.UUID
	assignedAt *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

func New(kind Kind, name, serial string) Asset {
	return Asset{
		kind:   kind,
		name:   strings.TrimSpace(name),
		serial: strings.TrimSpace(serial),
	}
}

func Hydrate(
	id uuid.UUID,
	kind Kind,
	name, serial string,
	assignedTo *uuid.UUID,
	assignedAt *time.Time,
	createdAt, updatedAt time.Time,
) Asset {
	return Asset{
		id:         id,
		kind:       kind,
		name:       strings.TrimSpace(name),
		serial:     strings.TrimSpace(serial),
		assignedTo: assignedTo,
		assignedAt: assignedAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (a Asset) ID() uuid.UUID          { return a.id }
func (a Asset) Kind() Kind             { return a.kind }
func (a Asset) Name() string           { return a.name }
func (a Asset) Serial() string         { return a.serial }
func (a Asset) AssignedTo() *uuid.UUID { return a.assignedTo }
func (a Asset) AssignedAt() *time.Time { return a.assignedAt }
func (a Asset) CreatedAt() time.Time   { return a.createdAt }
func (a Asset) UpdatedAt() time.Time   { return a.updatedAt }
func (a Asset) Assigned() bool         { return a.assignedTo != nil }

func (a Asset) WithName(name string) Asset {
	a.name = strings.TrimSpace(name)
	return a
}

func (a Asset) WithSerial(serial string) Asset {
	a.serial = strings.TrimSpace(serial)
	return a
}
