package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/department"
	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/profile"
	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/role"
	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/track"
	"github.com/lumenhr/orgadmin/pkg/composables"
)

// DrillDownSession is the immutable input of one drill-down view: every
// relation the aggregation needs, fetched together so the hierarchy is never
// computed over partial data.
type DrillDownSession struct {
	Track              track.LearningTrack
	AssignedProfiles   []profile.Profile
	Assignments        []track.Assignment
	Progress           []track.Progress
	PrimaryDepartments map[uuid.UUID]department.UserDepartment
	PrimaryRoles       map[uuid.UUID]role.UserRole
	DepartmentNames    map[uuid.UUID]string
	RoleNames          map[uuid.UUID]string
}

func (s *DrillDownSession) OrganizationLevel() LevelResult {
	return ComputeOrganizationLevel(s.AssignedProfiles)
}

func (s *DrillDownSession) LocationBreakdown(parent LevelResult) []LevelResult {
	return ComputeLocationBreakdown(parent)
}

func (s *DrillDownSession) DepartmentBreakdown(parent LevelResult) []LevelResult {
	return ComputeDepartmentBreakdown(parent, s.PrimaryDepartments, s.DepartmentNames)
}

func (s *DrillDownSession) StaffList(parent LevelResult) []StaffRow {
	return AnnotateStaff(
		ComputeStaffList(parent),
		s.PrimaryDepartments,
		s.DepartmentNames,
		s.PrimaryRoles,
		s.RoleNames,
		s.Assignments,
		s.Progress,
	)
}

type DrillDownService struct {
	profiles    profile.Repository
	departments department.Repository
	roles       role.Repository
	tracks      track.Repository
}

func NewDrillDownService(
	profiles profile.Repository,
	departments department.Repository,
	roles role.Repository,
	tracks track.Repository,
) *DrillDownService {
	return &DrillDownService{
		profiles:    profiles,
		departments: departments,
		roles:       roles,
		tracks:      tracks,
	}
}

// LoadSession fetches the relations behind one track's drill-down inside a
// single transaction. Any failed read fails the whole session; there is no
// partial hierarchy.
func (s *DrillDownService) LoadSession(ctx context.Context, trackID uuid.UUID) (*DrillDownSession, error) {
	start := time.Now()
	session, err := composables.InTxResult(ctx, func(txCtx context.Context) (*DrillDownSession, error) {
		return s.loadSession(txCtx, trackID)
	})
	if err != nil {
		drillDownSessionErrors.Inc()
		return nil, err
	}
	drillDownSessions.Inc()
	drillDownLoadSeconds.Observe(time.Since(start).Seconds())
	return session, nil
}

func (s *DrillDownService) loadSession(ctx context.Context, trackID uuid.UUID) (*DrillDownSession, error) {
	t, err := s.tracks.GetByID(ctx, trackID)
	if err != nil {
		return nil, err
	}

	profiles, err := s.profiles.GetAll(ctx, profile.StatusInactive)
	if err != nil {
		return nil, err
	}
	assignments, err := s.tracks.GetAssignments(ctx, trackID)
	if err != nil {
		return nil, err
	}
	progress, err := s.tracks.GetProgress(ctx, trackID)
	if err != nil {
		return nil, err
	}
	userDepartments, err := s.departments.GetUserDepartments(ctx, true)
	if err != nil {
		return nil, err
	}
	departments, err := s.departments.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	userRoles, err := s.roles.GetUserRoles(ctx, true)
	if err != nil {
		return nil, err
	}
	roles, err := s.roles.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	assignedIDs := make(map[uuid.UUID]struct{}, len(assignments))
	for _, a := range assignments {
		assignedIDs[a.UserID] = struct{}{}
	}
	assigned := make([]profile.Profile, 0, len(assignedIDs))
	for _, p := range profiles {
		if _, ok := assignedIDs[p.ID()]; ok {
			assigned = append(assigned, p)
		}
	}

	departmentNames := make(map[uuid.UUID]string, len(departments))
	for _, d := range departments {
		departmentNames[d.ID()] = d.Name()
	}
	roleNames := make(map[uuid.UUID]string, len(roles))
	for _, r := range roles {
		roleNames[r.ID()] = r.Name()
	}

	return &DrillDownSession{
		Track:              t,
		AssignedProfiles:   assigned,
		Assignments:        assignments,
		Progress:           progress,
		PrimaryDepartments: BuildPrimaryDepartmentIndex(userDepartments),
		PrimaryRoles:       BuildPrimaryRoleIndex(userRoles),
		DepartmentNames:    departmentNames,
		RoleNames:          roleNames,
	}, nil
}
