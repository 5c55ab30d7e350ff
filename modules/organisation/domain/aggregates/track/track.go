package track

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// LearningTrack is a named curriculum bundle assignable to users.
type LearningTrack struct {
	id          uuid.UUID
	name        string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func New(name, description string) LearningTrack {
	return LearningTrack{
		name:        strings.TrimSpace(name),
		description: strings.TrimSpace(description),
	}
}

func Hydrate(id uuid.UUID, name, description string, createdAt, updatedAt time.Time) LearningTrack {
	return LearningTrack{
		id:          id,
		name:        strings.TrimSpace(name),
		description: strings.TrimSpace(description),
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (t LearningTrack) ID() uuid.UUID        { return t.id }
func (t LearningTrack) Name() string         { return t.name }
func (t LearningTrack) Description() string  { return t.description }
func (t LearningTrack) CreatedAt() time.Time { return t.createdAt }
func (t LearningTrack) UpdatedAt() time.Time { return t.updatedAt }
func (t LearningTrack) IsZero() bool         { return t.id == uuid.Nil && t.name == "" }

func (t LearningTrack) WithName(name string) LearningTrack {
	t.name = strings.TrimSpace(name)
	return t
}

func (t LearningTrack) WithDescription(description string) LearningTrack {
	t.description = strings.TrimSpace(description)
	return t
}

type AssignmentStatus string

const (
	AssignmentStatusActive  AssignmentStatus = "active"
	AssignmentStatusRevoked AssignmentStatus = "revoked"
)

// Assignment records that a track was assigned to a user.
type Assignment struct {
	UserID     uuid.UUID
	TrackID    uuid.UUID
	AssignedAt time.Time
	Status     AssignmentStatus
}

// Progress records a user's advancement through an assigned track. Zero or
// one row per (user, track).
type Progress struct {
	UserID      uuid.UUID
	TrackID     uuid.UUID
	StartedAt   *time.Time
	CompletedAt *time.Time
}
