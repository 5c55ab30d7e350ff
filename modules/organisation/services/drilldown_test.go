package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/department"
	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/profile"
	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/role"
	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/track"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func makeProfile(t *testing.T, name string, location *string) profile.Profile {
	t.Helper()
	return profile.Hydrate(uuid.New(), name, location, profile.StatusActive, time.Now(), time.Now())
}

func TestBuildPrimaryDepartmentIndex(t *testing.T) {
	t.Parallel()

	userA := uuid.New()
	userB := uuid.New()
	deptEng := uuid.New()
	deptOps := uuid.New()

	links := []department.UserDepartment{
		{PairingID: uuid.New(), UserID: userA, DepartmentID: deptEng, IsPrimary: true},
		{PairingID: uuid.New(), UserID: userA, DepartmentID: deptOps, IsPrimary: false},
		{PairingID: uuid.New(), UserID: userB, DepartmentID: deptOps, IsPrimary: false},
	}

	idx := BuildPrimaryDepartmentIndex(links)
	require.Len(t, idx, 1)
	assert.Equal(t, deptEng, idx[userA].DepartmentID)
	_, ok := idx[userB]
	assert.False(t, ok, "non-primary links must not index")
}

func TestBuildPrimaryDepartmentIndex_DuplicatePrimaryLastWins(t *testing.T) {
	t.Parallel()

	userA := uuid.New()
	first := uuid.New()
	second := uuid.New()

	idx := BuildPrimaryDepartmentIndex([]department.UserDepartment{
		{PairingID: uuid.New(), UserID: userA, DepartmentID: first, IsPrimary: true},
		{PairingID: uuid.New(), UserID: userA, DepartmentID: second, IsPrimary: true},
	})

	require.Len(t, idx, 1)
	assert.Equal(t, second, idx[userA].DepartmentID)
}

func TestBuildPrimaryRoleIndex(t *testing.T) {
	t.Parallel()

	userA := uuid.New()
	roleID := uuid.New()

	idx := BuildPrimaryRoleIndex([]role.UserRole{
		{UserID: userA, RoleID: roleID, IsPrimary: true},
		{UserID: uuid.New(), RoleID: roleID, IsPrimary: false},
	})

	require.Len(t, idx, 1)
	assert.Equal(t, roleID, idx[userA].RoleID)
}

func TestResolveAssignmentStatus(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	trackID := uuid.New()
	now := time.Now()
	assignments := []track.Assignment{{UserID: userID, TrackID: trackID, AssignedAt: now, Status: track.AssignmentStatusActive}}

	tests := []struct {
		name     string
		progress []track.Progress
		want     CompletionStatus
	}{
		{
			name:     "no progress row",
			progress: nil,
			want:     StatusNotStarted,
		},
		{
			name:     "row without timestamps",
			progress: []track.Progress{{UserID: userID, TrackID: trackID}},
			want:     StatusNotStarted,
		},
		{
			name:     "started only",
			progress: []track.Progress{{UserID: userID, TrackID: trackID, StartedAt: timePtr(now)}},
			want:     StatusInProgress,
		},
		{
			name:     "completed",
			progress: []track.Progress{{UserID: userID, TrackID: trackID, StartedAt: timePtr(now), CompletedAt: timePtr(now)}},
			want:     StatusCompleted,
		},
		{
			name:     "completed without start still completed",
			progress: []track.Progress{{UserID: userID, TrackID: trackID, CompletedAt: timePtr(now)}},
			want:     StatusCompleted,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ResolveAssignmentStatus(userID, assignments, tt.progress))
		})
	}
}

func TestResolveAssignmentStatus_NotAssigned(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	now := time.Now()

	// A progress row without an assignment never upgrades the status.
	got := ResolveAssignmentStatus(userID, nil, []track.Progress{
		{UserID: userID, CompletedAt: timePtr(now)},
	})
	assert.Equal(t, StatusNotAssigned, got)
}

func TestResolveAssignmentStatus_IgnoresOtherUsers(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	other := uuid.New()
	now := time.Now()

	got := ResolveAssignmentStatus(userID,
		[]track.Assignment{{UserID: userID}, {UserID: other}},
		[]track.Progress{{UserID: other, CompletedAt: timePtr(now)}},
	)
	assert.Equal(t, StatusNotStarted, got)
}

func TestComputeOrganizationLevel(t *testing.T) {
	t.Parallel()

	assigned := []profile.Profile{
		makeProfile(t, "Alice", strPtr("HQ")),
		makeProfile(t, "Bob", strPtr("Remote")),
	}

	org := ComputeOrganizationLevel(assigned)
	assert.Equal(t, 0, org.Level)
	assert.Equal(t, OrganizationTitle, org.Title)
	assert.Equal(t, LevelOrganization, org.Type)
	assert.Equal(t, 2, org.Value)
	assert.Len(t, org.Data, 2)
}

func TestComputeOrganizationLevel_Empty(t *testing.T) {
	t.Parallel()

	org := ComputeOrganizationLevel(nil)
	assert.Equal(t, 0, org.Value)
	assert.Empty(t, ComputeLocationBreakdown(org))
	assert.Empty(t, ComputeStaffList(org))
}

func TestComputeLocationBreakdown(t *testing.T) {
	t.Parallel()

	alice := makeProfile(t, "Alice", strPtr("HQ"))
	bob := makeProfile(t, "Bob", strPtr("HQ"))
	carol := makeProfile(t, "Carol", strPtr("Remote"))
	dave := makeProfile(t, "Dave", nil)

	org := ComputeOrganizationLevel([]profile.Profile{alice, bob, carol, dave})
	locations := ComputeLocationBreakdown(org)

	require.Len(t, locations, 2)
	assert.Equal(t, "HQ", locations[0].Title)
	assert.Equal(t, 2, locations[0].Value)
	assert.Equal(t, "Remote", locations[1].Title)
	assert.Equal(t, 1, locations[1].Value)
	for _, l := range locations {
		assert.Equal(t, 1, l.Level)
		assert.Equal(t, LevelLocation, l.Type)
	}

	// Dave has no location, so the groups cover fewer members than the parent.
	sum := 0
	for _, l := range locations {
		sum += l.Value
	}
	assert.Equal(t, 3, sum)
	assert.LessOrEqual(t, sum, org.Value)
}

func TestComputeLocationBreakdown_FirstAppearanceOrder(t *testing.T) {
	t.Parallel()

	org := ComputeOrganizationLevel([]profile.Profile{
		makeProfile(t, "A", strPtr("Remote")),
		makeProfile(t, "B", strPtr("HQ")),
		makeProfile(t, "C", strPtr("Remote")),
	})

	locations := ComputeLocationBreakdown(org)
	require.Len(t, locations, 2)
	assert.Equal(t, "Remote", locations[0].Title)
	assert.Equal(t, "HQ", locations[1].Title)
}

func TestComputeDepartmentBreakdown(t *testing.T) {
	t.Parallel()

	alice := makeProfile(t, "Alice", strPtr("HQ"))
	bob := makeProfile(t, "Bob", strPtr("HQ"))
	carol := makeProfile(t, "Carol", strPtr("HQ"))

	deptEng := uuid.New()
	deptOps := uuid.New()
	primaries := map[uuid.UUID]department.UserDepartment{
		alice.ID(): {UserID: alice.ID(), DepartmentID: deptEng, IsPrimary: true},
		bob.ID():   {UserID: bob.ID(), DepartmentID: deptOps, IsPrimary: true},
		// Carol has no primary department.
	}
	names := map[uuid.UUID]string{deptEng: "Engineering", deptOps: "Operations"}

	org := ComputeOrganizationLevel([]profile.Profile{alice, bob, carol})
	departments := ComputeDepartmentBreakdown(org, primaries, names)

	require.Len(t, departments, 2)
	assert.Equal(t, "Engineering", departments[0].Title)
	assert.Equal(t, 1, departments[0].Value)
	assert.Equal(t, "Operations", departments[1].Title)
	assert.Equal(t, 1, departments[1].Value)

	// Carol stays out of every group but remains in the parent's staff list.
	sum := 0
	for _, d := range departments {
		sum += d.Value
	}
	assert.Equal(t, 2, sum)
	assert.Len(t, ComputeStaffList(org), 3)
}

func TestComputeDepartmentBreakdown_DanglingDepartmentExcluded(t *testing.T) {
	t.Parallel()

	alice := makeProfile(t, "Alice", nil)
	primaries := map[uuid.UUID]department.UserDepartment{
		alice.ID(): {UserID: alice.ID(), DepartmentID: uuid.New(), IsPrimary: true},
	}

	org := ComputeOrganizationLevel([]profile.Profile{alice})
	departments := ComputeDepartmentBreakdown(org, primaries, map[uuid.UUID]string{})
	assert.Empty(t, departments)
}

func TestComputeDepartmentBreakdown_SameNameStaysSeparate(t *testing.T) {
	t.Parallel()

	alice := makeProfile(t, "Alice", nil)
	bob := makeProfile(t, "Bob", nil)

	deptA := uuid.New()
	deptB := uuid.New()
	primaries := map[uuid.UUID]department.UserDepartment{
		alice.ID(): {UserID: alice.ID(), DepartmentID: deptA, IsPrimary: true},
		bob.ID():   {UserID: bob.ID(), DepartmentID: deptB, IsPrimary: true},
	}
	names := map[uuid.UUID]string{deptA: "Support", deptB: "Support"}

	org := ComputeOrganizationLevel([]profile.Profile{alice, bob})
	departments := ComputeDepartmentBreakdown(org, primaries, names)

	require.Len(t, departments, 2)
	assert.Equal(t, "Support", departments[0].Title)
	assert.Equal(t, "Support", departments[1].Title)
	assert.Equal(t, 1, departments[0].Value)
	assert.Equal(t, 1, departments[1].Value)
}

// Drilling from a location into departments must only narrow the member set:
// every member of every department group was a member of the location group.
func TestDrillDown_MonotonicNarrowing(t *testing.T) {
	t.Parallel()

	alice := makeProfile(t, "Alice", strPtr("HQ"))
	bob := makeProfile(t, "Bob", strPtr("HQ"))
	carol := makeProfile(t, "Carol", strPtr("Remote"))

	deptEng := uuid.New()
	primaries := map[uuid.UUID]department.UserDepartment{
		alice.ID(): {UserID: alice.ID(), DepartmentID: deptEng, IsPrimary: true},
		carol.ID(): {UserID: carol.ID(), DepartmentID: deptEng, IsPrimary: true},
	}
	names := map[uuid.UUID]string{deptEng: "Engineering"}

	org := ComputeOrganizationLevel([]profile.Profile{alice, bob, carol})
	locations := ComputeLocationBreakdown(org)
	require.Equal(t, "HQ", locations[0].Title)

	departments := ComputeDepartmentBreakdown(locations[0], primaries, names)
	require.Len(t, departments, 1)

	hqMembers := make(map[uuid.UUID]struct{})
	for _, p := range locations[0].Data {
		hqMembers[p.ID()] = struct{}{}
	}
	for _, d := range departments {
		assert.LessOrEqual(t, d.Value, locations[0].Value)
		for _, p := range d.Data {
			_, ok := hqMembers[p.ID()]
			assert.True(t, ok, "department member %s must come from the parent location", p.FullName())
		}
	}

	// Carol is in Engineering globally but not under HQ.
	assert.Equal(t, 1, departments[0].Value)
	assert.Equal(t, alice.ID(), departments[0].Data[0].ID())
}

func TestLevelResult_ValueSurvivesDrilling(t *testing.T) {
	t.Parallel()

	org := ComputeOrganizationLevel([]profile.Profile{
		makeProfile(t, "Alice", strPtr("HQ")),
		makeProfile(t, "Bob", strPtr("Remote")),
	})
	_ = ComputeLocationBreakdown(org)
	assert.Equal(t, 2, org.Value)
}

func TestAnnotateStaff(t *testing.T) {
	t.Parallel()

	alice := makeProfile(t, "Alice", strPtr("HQ"))
	bob := makeProfile(t, "Bob", nil)

	deptEng := uuid.New()
	roleMgr := uuid.New()
	now := time.Now()

	rows := AnnotateStaff(
		[]profile.Profile{alice, bob},
		map[uuid.UUID]department.UserDepartment{
			alice.ID(): {UserID: alice.ID(), DepartmentID: deptEng, IsPrimary: true},
		},
		map[uuid.UUID]string{deptEng: "Engineering"},
		map[uuid.UUID]role.UserRole{
			alice.ID(): {UserID: alice.ID(), RoleID: roleMgr, IsPrimary: true},
		},
		map[uuid.UUID]string{roleMgr: "Manager"},
		[]track.Assignment{{UserID: alice.ID()}, {UserID: bob.ID()}},
		[]track.Progress{{UserID: alice.ID(), StartedAt: timePtr(now), CompletedAt: timePtr(now)}},
	)

	require.Len(t, rows, 2)

	assert.Equal(t, "Engineering", rows[0].DepartmentName)
	assert.Equal(t, "Manager", rows[0].RoleName)
	assert.Equal(t, "HQ", rows[0].Location)
	assert.Equal(t, StatusCompleted, rows[0].Status)

	assert.Equal(t, NoDepartmentLabel, rows[1].DepartmentName)
	assert.Equal(t, NoRoleLabel, rows[1].RoleName)
	assert.Equal(t, "", rows[1].Location)
	assert.Equal(t, StatusNotStarted, rows[1].Status)
}
