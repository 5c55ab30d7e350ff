package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/track"
	"github.com/lumenhr/orgadmin/pkg/composables"
	"github.com/lumenhr/orgadmin/pkg/eventbus"
)

// TrackService manages learning tracks, their user assignments and progress
// rows. Assignment and progress feed the drill-down status resolution.
type TrackService struct {
	repo      track.Repository
	publisher eventbus.EventBus
}

func NewTrackService(repo track.Repository, publisher eventbus.EventBus) *TrackService {
	return &TrackService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *TrackService) GetAll(ctx context.Context) ([]track.LearningTrack, error) {
	return s.repo.GetAll(ctx)
}

func (s *TrackService) GetByID(ctx context.Context, id uuid.UUID) (track.LearningTrack, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TrackService) Create(ctx context.Context, name, description string) (track.LearningTrack, error) {
	created, err := composables.InTxResult(ctx, func(txCtx context.Context) (track.LearningTrack, error) {
		return s.repo.Create(txCtx, track.New(name, description))
	})
	if err != nil {
		return track.LearningTrack{}, err
	}

	s.publisher.Publish(track.CreatedEvent{Result: created})
	return created, nil
}

func (s *TrackService) Update(ctx context.Context, id uuid.UUID, name, description string) (track.LearningTrack, error) {
	updated, err := composables.InTxResult(ctx, func(txCtx context.Context) (track.LearningTrack, error) {
		existing, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return track.LearningTrack{}, err
		}
		return s.repo.Update(txCtx, existing.WithName(name).WithDescription(description))
	})
	if err != nil {
		return track.LearningTrack{}, err
	}

	s.publisher.Publish(track.UpdatedEvent{Result: updated})
	return updated, nil
}

func (s *TrackService) Delete(ctx context.Context, id uuid.UUID) (track.LearningTrack, error) {
	deleted, err := composables.InTxResult(ctx, func(txCtx context.Context) (track.LearningTrack, error) {
		existing, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return track.LearningTrack{}, err
		}
		if err := s.repo.Delete(txCtx, id); err != nil {
			return track.LearningTrack{}, err
		}
		return existing, nil
	})
	if err != nil {
		return track.LearningTrack{}, err
	}

	s.publisher.Publish(track.DeletedEvent{Result: deleted})
	return deleted, nil
}

func (s *TrackService) GetAssignments(ctx context.Context, trackID uuid.UUID) ([]track.Assignment, error) {
	return s.repo.GetAssignments(ctx, trackID)
}

func (s *TrackService) AssignUser(ctx context.Context, userID, trackID uuid.UUID) (track.Assignment, error) {
	assignment, err := composables.InTxResult(ctx, func(txCtx context.Context) (track.Assignment, error) {
		if _, err := s.repo.GetByID(txCtx, trackID); err != nil {
			return track.Assignment{}, err
		}
		return s.repo.AssignUser(txCtx, track.Assignment{
			UserID:     userID,
			TrackID:    trackID,
			AssignedAt: time.Now(),
			Status:     track.AssignmentStatusActive,
		})
	})
	if err != nil {
		return track.Assignment{}, err
	}

	s.publisher.Publish(track.UserAssignedEvent{Result: assignment})
	return assignment, nil
}

func (s *TrackService) UnassignUser(ctx context.Context, userID, trackID uuid.UUID) error {
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.UnassignUser(txCtx, userID, trackID)
	})
	if err != nil {
		return err
	}

	s.publisher.Publish(track.UserUnassignedEvent{Result: track.Assignment{
		UserID:  userID,
		TrackID: trackID,
	}})
	return nil
}

// StartProgress records that the user has begun the track. Calling it again
// keeps the original start time.
func (s *TrackService) StartProgress(ctx context.Context, userID, trackID uuid.UUID) (track.Progress, error) {
	progress, err := composables.InTxResult(ctx, func(txCtx context.Context) (track.Progress, error) {
		existing, err := s.findProgress(txCtx, userID, trackID)
		if err != nil {
			return track.Progress{}, err
		}
		if existing.StartedAt != nil {
			return existing, nil
		}
		now := time.Now()
		existing.UserID = userID
		existing.TrackID = trackID
		existing.StartedAt = &now
		return s.repo.UpsertProgress(txCtx, existing)
	})
	if err != nil {
		return track.Progress{}, err
	}

	s.publisher.Publish(track.ProgressRecordedEvent{Result: progress})
	return progress, nil
}

// CompleteProgress marks the track completed for the user, backfilling the
// start time when the row never recorded one.
func (s *TrackService) CompleteProgress(ctx context.Context, userID, trackID uuid.UUID) (track.Progress, error) {
	progress, err := composables.InTxResult(ctx, func(txCtx context.Context) (track.Progress, error) {
		existing, err := s.findProgress(txCtx, userID, trackID)
		if err != nil {
			return track.Progress{}, err
		}
		now := time.Now()
		existing.UserID = userID
		existing.TrackID = trackID
		if existing.StartedAt == nil {
			existing.StartedAt = &now
		}
		existing.CompletedAt = &now
		return s.repo.UpsertProgress(txCtx, existing)
	})
	if err != nil {
		return track.Progress{}, err
	}

	s.publisher.Publish(track.ProgressRecordedEvent{Result: progress})
	return progress, nil
}

func (s *TrackService) GetProgress(ctx context.Context, trackID uuid.UUID) ([]track.Progress, error) {
	return s.repo.GetProgress(ctx, trackID)
}

func (s *TrackService) findProgress(ctx context.Context, userID, trackID uuid.UUID) (track.Progress, error) {
	rows, err := s.repo.GetProgress(ctx, trackID)
	if err != nil {
		return track.Progress{}, err
	}
	for _, row := range rows {
		if row.UserID == userID {
			return row, nil
		}
	}
	return track.Progress{}, nil
}
