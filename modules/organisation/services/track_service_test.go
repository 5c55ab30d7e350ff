package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/track"
)

func TestTrackService_AssignUser(t *testing.T) {
	t.Parallel()

	repo := &mockTrackRepo{}
	publisher := &stubPublisher{}
	svc := NewTrackService(repo, publisher)

	created, err := svc.Create(txContext(), "Onboarding", "First-week curriculum")
	require.NoError(t, err)

	userID := uuid.New()
	assignment, err := svc.AssignUser(txContext(), userID, created.ID())
	require.NoError(t, err)
	assert.Equal(t, track.AssignmentStatusActive, assignment.Status)
	assert.False(t, assignment.AssignedAt.IsZero())

	_, err = svc.AssignUser(txContext(), userID, created.ID())
	require.ErrorIs(t, err, track.ErrAlreadyAssigned)
}

func TestTrackService_AssignUser_UnknownTrack(t *testing.T) {
	t.Parallel()

	svc := NewTrackService(&mockTrackRepo{}, &stubPublisher{})
	_, err := svc.AssignUser(txContext(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, track.ErrNotFound)
}

func TestTrackService_ProgressLifecycle(t *testing.T) {
	t.Parallel()

	repo := &mockTrackRepo{}
	svc := NewTrackService(repo, &stubPublisher{})

	created, err := svc.Create(txContext(), "Onboarding", "")
	require.NoError(t, err)

	userID := uuid.New()
	_, err = svc.AssignUser(txContext(), userID, created.ID())
	require.NoError(t, err)

	started, err := svc.StartProgress(txContext(), userID, created.ID())
	require.NoError(t, err)
	require.NotNil(t, started.StartedAt)
	assert.Nil(t, started.CompletedAt)

	// Starting again keeps the original timestamp.
	firstStart := *started.StartedAt
	time.Sleep(time.Millisecond)
	again, err := svc.StartProgress(txContext(), userID, created.ID())
	require.NoError(t, err)
	assert.Equal(t, firstStart, *again.StartedAt)

	completed, err := svc.CompleteProgress(txContext(), userID, created.ID())
	require.NoError(t, err)
	require.NotNil(t, completed.CompletedAt)
	assert.Equal(t, firstStart, *completed.StartedAt)

	status := ResolveAssignmentStatus(userID, repo.assignments, repo.progress)
	assert.Equal(t, StatusCompleted, status)
}

func TestTrackService_CompleteWithoutStartBackfills(t *testing.T) {
	t.Parallel()

	repo := &mockTrackRepo{}
	svc := NewTrackService(repo, &stubPublisher{})

	created, err := svc.Create(txContext(), "Onboarding", "")
	require.NoError(t, err)

	userID := uuid.New()
	completed, err := svc.CompleteProgress(txContext(), userID, created.ID())
	require.NoError(t, err)
	require.NotNil(t, completed.StartedAt)
	require.NotNil(t, completed.CompletedAt)
}

func TestTrackService_UnassignUser(t *testing.T) {
	t.Parallel()

	repo := &mockTrackRepo{}
	svc := NewTrackService(repo, &stubPublisher{})

	created, err := svc.Create(txContext(), "Onboarding", "")
	require.NoError(t, err)

	userID := uuid.New()
	_, err = svc.AssignUser(txContext(), userID, created.ID())
	require.NoError(t, err)

	require.NoError(t, svc.UnassignUser(txContext(), userID, created.ID()))

	status := ResolveAssignmentStatus(userID, repo.assignments, repo.progress)
	assert.Equal(t, StatusNotAssigned, status)
}
