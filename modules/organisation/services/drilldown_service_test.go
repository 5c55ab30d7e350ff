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

func TestDrillDownService_LoadSession(t *testing.T) {
	t.Parallel()

	now := time.Now()
	onboarding := track.Hydrate(uuid.New(), "Onboarding", "", now, now)

	alice := makeProfile(t, "Alice", strPtr("HQ"))
	bob := makeProfile(t, "Bob", strPtr("HQ"))
	carol := makeProfile(t, "Carol", strPtr("Remote"))
	dave := makeProfile(t, "Dave", nil)
	eve := makeProfile(t, "Eve", strPtr("HQ")) // never assigned

	deptEng := department.Hydrate(uuid.New(), "Engineering", now, now)
	deptOps := department.Hydrate(uuid.New(), "Operations", now, now)
	roleMgr := role.Hydrate(uuid.New(), "Manager", now, now)

	profiles := &mockProfileRepo{profiles: []profile.Profile{alice, bob, carol, dave, eve}}
	departments := &mockDepartmentRepo{
		departments: []department.Department{deptEng, deptOps},
		userDepartments: []department.UserDepartment{
			{PairingID: uuid.New(), UserID: alice.ID(), DepartmentID: deptEng.ID(), IsPrimary: true},
			{PairingID: uuid.New(), UserID: bob.ID(), DepartmentID: deptOps.ID(), IsPrimary: true},
			{PairingID: uuid.New(), UserID: carol.ID(), DepartmentID: deptEng.ID(), IsPrimary: true},
			// Dave has no primary department.
			{PairingID: uuid.New(), UserID: dave.ID(), DepartmentID: deptOps.ID(), IsPrimary: false},
		},
	}
	roles := &mockRoleRepo{
		roles: []role.Role{roleMgr},
		userRoles: []role.UserRole{
			{UserID: alice.ID(), RoleID: roleMgr.ID(), IsPrimary: true},
		},
	}
	tracks := &mockTrackRepo{
		tracks: []track.LearningTrack{onboarding},
		assignments: []track.Assignment{
			{UserID: alice.ID(), TrackID: onboarding.ID(), AssignedAt: now, Status: track.AssignmentStatusActive},
			{UserID: bob.ID(), TrackID: onboarding.ID(), AssignedAt: now, Status: track.AssignmentStatusActive},
			{UserID: carol.ID(), TrackID: onboarding.ID(), AssignedAt: now, Status: track.AssignmentStatusActive},
			{UserID: dave.ID(), TrackID: onboarding.ID(), AssignedAt: now, Status: track.AssignmentStatusActive},
		},
		progress: []track.Progress{
			{UserID: alice.ID(), TrackID: onboarding.ID(), StartedAt: timePtr(now), CompletedAt: timePtr(now)},
			{UserID: bob.ID(), TrackID: onboarding.ID(), StartedAt: timePtr(now)},
		},
	}

	svc := NewDrillDownService(profiles, departments, roles, tracks)
	session, err := svc.LoadSession(txContext(), onboarding.ID())
	require.NoError(t, err)

	// Eve never got the track assigned, so the root covers four people.
	org := session.OrganizationLevel()
	assert.Equal(t, 4, org.Value)
	assert.Equal(t, OrganizationTitle, org.Title)

	locations := session.LocationBreakdown(org)
	require.Len(t, locations, 2)
	assert.Equal(t, "HQ", locations[0].Title)
	assert.Equal(t, 2, locations[0].Value)
	assert.Equal(t, "Remote", locations[1].Title)
	assert.Equal(t, 1, locations[1].Value)

	// Drilling HQ into departments: Alice in Engineering, Bob in Operations.
	hqDepartments := session.DepartmentBreakdown(locations[0])
	require.Len(t, hqDepartments, 2)
	assert.Equal(t, "Engineering", hqDepartments[0].Title)
	assert.Equal(t, 1, hqDepartments[0].Value)
	assert.Equal(t, "Operations", hqDepartments[1].Title)
	assert.Equal(t, 1, hqDepartments[1].Value)

	// Staff list at the root annotates every assigned member.
	staff := session.StaffList(org)
	require.Len(t, staff, 4)

	byName := make(map[string]StaffRow, len(staff))
	for _, row := range staff {
		byName[row.Profile.FullName()] = row
	}

	assert.Equal(t, StatusCompleted, byName["Alice"].Status)
	assert.Equal(t, "Engineering", byName["Alice"].DepartmentName)
	assert.Equal(t, "Manager", byName["Alice"].RoleName)

	assert.Equal(t, StatusInProgress, byName["Bob"].Status)
	assert.Equal(t, StatusNotStarted, byName["Carol"].Status)

	assert.Equal(t, NoDepartmentLabel, byName["Dave"].DepartmentName)
	assert.Equal(t, NoRoleLabel, byName["Dave"].RoleName)
	assert.Equal(t, StatusNotStarted, byName["Dave"].Status)
}

func TestDrillDownService_LoadSession_CountConservation(t *testing.T) {
	t.Parallel()

	now := time.Now()
	onboarding := track.Hydrate(uuid.New(), "Onboarding", "", now, now)

	alice := makeProfile(t, "Alice", strPtr("HQ"))
	bob := makeProfile(t, "Bob", strPtr("Remote"))

	profiles := &mockProfileRepo{profiles: []profile.Profile{alice, bob}}
	tracks := &mockTrackRepo{
		tracks: []track.LearningTrack{onboarding},
		assignments: []track.Assignment{
			{UserID: alice.ID(), TrackID: onboarding.ID()},
			{UserID: bob.ID(), TrackID: onboarding.ID()},
		},
	}

	svc := NewDrillDownService(profiles, &mockDepartmentRepo{}, &mockRoleRepo{}, tracks)
	session, err := svc.LoadSession(txContext(), onboarding.ID())
	require.NoError(t, err)

	org := session.OrganizationLevel()
	locations := session.LocationBreakdown(org)

	sum := 0
	for _, l := range locations {
		sum += l.Value
	}
	assert.Equal(t, org.Value, sum, "every member has a location, so the groups partition the root")
}

func TestDrillDownService_LoadSession_UnknownTrack(t *testing.T) {
	t.Parallel()

	svc := NewDrillDownService(&mockProfileRepo{}, &mockDepartmentRepo{}, &mockRoleRepo{}, &mockTrackRepo{})
	_, err := svc.LoadSession(txContext(), uuid.New())
	require.ErrorIs(t, err, track.ErrNotFound)
}

func TestDrillDownService_LoadSession_EmptyTrack(t *testing.T) {
	t.Parallel()

	now := time.Now()
	onboarding := track.Hydrate(uuid.New(), "Onboarding", "", now, now)

	profiles := &mockProfileRepo{profiles: []profile.Profile{makeProfile(t, "Alice", strPtr("HQ"))}}
	tracks := &mockTrackRepo{tracks: []track.LearningTrack{onboarding}}

	svc := NewDrillDownService(profiles, &mockDepartmentRepo{}, &mockRoleRepo{}, tracks)
	session, err := svc.LoadSession(txContext(), onboarding.ID())
	require.NoError(t, err)

	org := session.OrganizationLevel()
	assert.Equal(t, 0, org.Value)
	assert.Empty(t, session.LocationBreakdown(org))
	assert.Empty(t, session.StaffList(org))
}

func TestDrillDownService_LoadSession_ExcludesInactiveProfiles(t *testing.T) {
	t.Parallel()

	now := time.Now()
	onboarding := track.Hydrate(uuid.New(), "Onboarding", "", now, now)

	former := profile.Hydrate(uuid.New(), "Former", strPtr("HQ"), profile.StatusInactive, now, now)
	active := makeProfile(t, "Active", strPtr("HQ"))

	profiles := &mockProfileRepo{profiles: []profile.Profile{former, active}}
	tracks := &mockTrackRepo{
		tracks: []track.LearningTrack{onboarding},
		assignments: []track.Assignment{
			{UserID: former.ID(), TrackID: onboarding.ID()},
			{UserID: active.ID(), TrackID: onboarding.ID()},
		},
	}

	svc := NewDrillDownService(profiles, &mockDepartmentRepo{}, &mockRoleRepo{}, tracks)
	session, err := svc.LoadSession(txContext(), onboarding.ID())
	require.NoError(t, err)

	org := session.OrganizationLevel()
	require.Equal(t, 1, org.Value)
	assert.Equal(t, "Active", org.Data[0].FullName())
}
