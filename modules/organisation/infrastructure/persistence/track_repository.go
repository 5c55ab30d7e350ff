package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/track"
	"github.com/lumenhr/orgadmin/pkg/composables"
)

type PgTrackRepository struct{}

func NewTrackRepository() track.Repository {
	return &PgTrackRepository{}
}

func scanTrack(row pgx.Row) (track.LearningTrack, error) {
	var (
		id          uuid.UUID
		name        string
		description string
		createdAt   time.Time
		updatedAt   time.Time
	)
	if err := row.Scan(&id, &name, &description, &createdAt, &updatedAt); err != nil {
		return track.LearningTrack{}, err
	}
	return track.Hydrate(id, name, description, createdAt, updatedAt), nil
}

func (r *PgTrackRepository) GetAll(ctx context.Context) ([]track.LearningTrack, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT id, name, description, created_at, updated_at
FROM learning_tracks
ORDER BY name, id
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]track.LearningTrack, 0)
	for rows.Next() {
		t, err := scanTrack(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PgTrackRepository) GetByID(ctx context.Context, id uuid.UUID) (track.LearningTrack, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return track.LearningTrack{}, err
	}

	t, err := scanTrack(tx.QueryRow(ctx, `
SELECT id, name, description, created_at, updated_at
FROM learning_tracks
WHERE id = $1
`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return track.LearningTrack{}, track.ErrNotFound
	}
	return t, err
}

func (r *PgTrackRepository) Create(ctx context.Context, t track.LearningTrack) (track.LearningTrack, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return track.LearningTrack{}, err
	}

	return scanTrack(tx.QueryRow(ctx, `
INSERT INTO learning_tracks (name, description)
VALUES ($1, $2)
RETURNING id, name, description, created_at, updated_at
`, t.Name(), t.Description()))
}

func (r *PgTrackRepository) Update(ctx context.Context, t track.LearningTrack) (track.LearningTrack, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return track.LearningTrack{}, err
	}

	updated, err := scanTrack(tx.QueryRow(ctx, `
UPDATE learning_tracks
SET name = $2, description = $3, updated_at = now()
WHERE id = $1
RETURNING id, name, description, created_at, updated_at
`, t.ID(), t.Name(), t.Description()))
	if errors.Is(err, pgx.ErrNoRows) {
		return track.LearningTrack{}, track.ErrNotFound
	}
	return updated, err
}

func (r *PgTrackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM learning_tracks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return track.ErrNotFound
	}
	return nil
}

func (r *PgTrackRepository) GetAssignments(ctx context.Context, trackID uuid.UUID) ([]track.Assignment, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT user_id, track_id, assigned_at, status
FROM track_assignments
WHERE track_id = $1
ORDER BY assigned_at, user_id
`, trackID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]track.Assignment, 0)
	for rows.Next() {
		var (
			a      track.Assignment
			status string
		)
		if err := rows.Scan(&a.UserID, &a.TrackID, &a.AssignedAt, &status); err != nil {
			return nil, err
		}
		a.Status = track.AssignmentStatus(status)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PgTrackRepository) AssignUser(ctx context.Context, a track.Assignment) (track.Assignment, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return track.Assignment{}, err
	}

	if _, err := tx.Exec(ctx, `
INSERT INTO track_assignments (user_id, track_id, assigned_at, status)
VALUES ($1, $2, $3, $4)
`, a.UserID, a.TrackID, a.AssignedAt, string(a.Status)); err != nil {
		if isUniqueViolation(err) {
			return track.Assignment{}, track.ErrAlreadyAssigned
		}
		return track.Assignment{}, err
	}
	return a, nil
}

func (r *PgTrackRepository) UnassignUser(ctx context.Context, userID, trackID uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `
DELETE FROM track_assignments
WHERE user_id = $1 AND track_id = $2
`, userID, trackID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return track.ErrNotFound
	}
	return nil
}

func (r *PgTrackRepository) GetProgress(ctx context.Context, trackID uuid.UUID) ([]track.Progress, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT user_id, track_id, started_at, completed_at
FROM track_progress
WHERE track_id = $1
ORDER BY user_id
`, trackID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]track.Progress, 0)
	for rows.Next() {
		var p track.Progress
		if err := rows.Scan(&p.UserID, &p.TrackID, &p.StartedAt, &p.CompletedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PgTrackRepository) UpsertProgress(ctx context.Context, p track.Progress) (track.Progress, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return track.Progress{}, err
	}

	if _, err := tx.Exec(ctx, `
INSERT INTO track_progress (user_id, track_id, started_at, completed_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, track_id)
DO UPDATE SET started_at = EXCLUDED.started_at, completed_at = EXCLUDED.completed_at
`, p.UserID, p.TrackID, p.StartedAt, p.CompletedAt); err != nil {
		return track.Progress{}, err
	}
	return p, nil
}
