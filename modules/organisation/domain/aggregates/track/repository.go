package track

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("learning track not found")
	ErrAlreadyAssigned = errors.New("user already assigned to track")
)

type Repository interface {
	GetAll(ctx context.Context) ([]LearningTrack, error)
	GetByID(ctx context.Context, id uuid.UUID) (LearningTrack, error)
	Create(ctx context.Context, t LearningTrack) (LearningTrack, error)
	Update(ctx context.Context, t LearningTrack) (LearningTrack, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// GetAssignments returns every user-level assignment for the track.
	GetAssignments(ctx context.Context, trackID uuid.UUID) ([]Assignment, error)
	AssignUser(ctx context.Context, a Assignment) (Assignment, error)
	UnassignUser(ctx context.Context, userID, trackID uuid.UUID) error

	// GetProgress returns every progress row for the track.
	GetProgress(ctx context.Context, trackID uuid.UUID) ([]Progress, error)
	// UpsertProgress inserts the row or updates started_at/completed_at.
	UpsertProgress(ctx context.Context, p Progress) (Progress, error)
}
