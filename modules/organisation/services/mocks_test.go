package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/department"
	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/profile"
	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/role"
	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/track"
	"github.com/lumenhr/orgadmin/pkg/composables"
	"github.com/lumenhr/orgadmin/pkg/eventbus"
)

// stubTx satisfies pgx.Tx so composables.InTx reuses it instead of opening a
// real transaction. The mocks never touch the connection, so the embedded nil
// interface is never called.
type stubTx struct {
	pgx.Tx
}

func txContext() context.Context {
	return composables.WithTx(context.Background(), stubTx{})
}

type stubPublisher struct {
	events []interface{}
}

func (s *stubPublisher) Publish(args ...interface{}) { s.events = append(s.events, args...) }

func (s *stubPublisher) Subscribe(handler interface{}) {}

func (s *stubPublisher) Unsubscribe(handler interface{}) {}

func (s *stubPublisher) Clear() { s.events = nil }

func (s *stubPublisher) SubscribersCount() int { return 0 }

var _ eventbus.EventBus = (*stubPublisher)(nil)

type mockProfileRepo struct {
	profiles []profile.Profile
	err      error
	created  []profile.Profile
}

func (m *mockProfileRepo) GetPaginated(ctx context.Context, params *profile.FindParams) ([]profile.Profile, int64, error) {
	return m.profiles, int64(len(m.profiles)), m.err
}

func (m *mockProfileRepo) GetAll(ctx context.Context, excludeStatus profile.Status) ([]profile.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]profile.Profile, 0, len(m.profiles))
	for _, p := range m.profiles {
		if excludeStatus != "" && p.Status() == excludeStatus {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *mockProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (profile.Profile, error) {
	if m.err != nil {
		return profile.Profile{}, m.err
	}
	for _, p := range m.profiles {
		if p.ID() == id {
			return p, nil
		}
	}
	return profile.Profile{}, profile.ErrNotFound
}

func (m *mockProfileRepo) Create(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	if m.err != nil {
		return profile.Profile{}, m.err
	}
	saved := profile.Hydrate(uuid.New(), p.FullName(), p.Location(), p.Status(), time.Now(), time.Now())
	m.profiles = append(m.profiles, saved)
	m.created = append(m.created, saved)
	return saved, nil
}

func (m *mockProfileRepo) Update(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	if m.err != nil {
		return profile.Profile{}, m.err
	}
	for i, existing := range m.profiles {
		if existing.ID() == p.ID() {
			m.profiles[i] = p
			return p, nil
		}
	}
	return profile.Profile{}, profile.ErrNotFound
}

func (m *mockProfileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, p := range m.profiles {
		if p.ID() == id {
			m.profiles = append(m.profiles[:i], m.profiles[i+1:]...)
			return nil
		}
	}
	return profile.ErrNotFound
}

type mockDepartmentRepo struct {
	departments     []department.Department
	userDepartments []department.UserDepartment
	err             error
}

func (m *mockDepartmentRepo) GetAll(ctx context.Context) ([]department.Department, error) {
	return m.departments, m.err
}

func (m *mockDepartmentRepo) GetByID(ctx context.Context, id uuid.UUID) (department.Department, error) {
	for _, d := range m.departments {
		if d.ID() == id {
			return d, nil
		}
	}
	return department.Department{}, department.ErrNotFound
}

func (m *mockDepartmentRepo) Create(ctx context.Context, d department.Department) (department.Department, error) {
	saved := department.Hydrate(uuid.New(), d.Name(), time.Now(), time.Now())
	m.departments = append(m.departments, saved)
	return saved, nil
}

func (m *mockDepartmentRepo) Update(ctx context.Context, d department.Department) (department.Department, error) {
	for i, existing := range m.departments {
		if existing.ID() == d.ID() {
			m.departments[i] = d
			return d, nil
		}
	}
	return department.Department{}, department.ErrNotFound
}

func (m *mockDepartmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, d := range m.departments {
		if d.ID() == id {
			m.departments = append(m.departments[:i], m.departments[i+1:]...)
			return nil
		}
	}
	return department.ErrNotFound
}

func (m *mockDepartmentRepo) GetUserDepartments(ctx context.Context, primaryOnly bool) ([]department.UserDepartment, error) {
	if m.err != nil {
		return nil, m.err
	}
	if !primaryOnly {
		return m.userDepartments, nil
	}
	out := make([]department.UserDepartment, 0, len(m.userDepartments))
	for _, link := range m.userDepartments {
		if link.IsPrimary {
			out = append(out, link)
		}
	}
	return out, nil
}

func (m *mockDepartmentRepo) GetUserDepartmentsByUser(ctx context.Context, userID uuid.UUID) ([]department.UserDepartment, error) {
	out := make([]department.UserDepartment, 0)
	for _, link := range m.userDepartments {
		if link.UserID == userID {
			out = append(out, link)
		}
	}
	return out, nil
}

func (m *mockDepartmentRepo) AssignUser(ctx context.Context, link department.UserDepartment) (department.UserDepartment, error) {
	link.PairingID = uuid.New()
	m.userDepartments = append(m.userDepartments, link)
	return link, nil
}

func (m *mockDepartmentRepo) RemoveUser(ctx context.Context, userID, departmentID uuid.UUID) error {
	for i, link := range m.userDepartments {
		if link.UserID == userID && link.DepartmentID == departmentID {
			m.userDepartments = append(m.userDepartments[:i], m.userDepartments[i+1:]...)
			return nil
		}
	}
	return department.ErrNotFound
}

func (m *mockDepartmentRepo) SetPrimary(ctx context.Context, userID, departmentID uuid.UUID) error {
	for i, link := range m.userDepartments {
		if link.UserID == userID {
			m.userDepartments[i].IsPrimary = link.DepartmentID == departmentID
		}
	}
	return nil
}

type mockRoleRepo struct {
	roles     []role.Role
	userRoles []role.UserRole
	err       error
}

func (m *mockRoleRepo) GetAll(ctx context.Context) ([]role.Role, error) {
	return m.roles, m.err
}

func (m *mockRoleRepo) GetByID(ctx context.Context, id uuid.UUID) (role.Role, error) {
	for _, r := range m.roles {
		if r.ID() == id {
			return r, nil
		}
	}
	return role.Role{}, role.ErrNotFound
}

func (m *mockRoleRepo) Create(ctx context.Context, r role.Role) (role.Role, error) {
	saved := role.Hydrate(uuid.New(), r.Name(), time.Now(), time.Now())
	m.roles = append(m.roles, saved)
	return saved, nil
}

func (m *mockRoleRepo) Update(ctx context.Context, r role.Role) (role.Role, error) {
	for i, existing := range m.roles {
		if existing.ID() == r.ID() {
			m.roles[i] = r
			return r, nil
		}
	}
	return role.Role{}, role.ErrNotFound
}

func (m *mockRoleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, r := range m.roles {
		if r.ID() == id {
			m.roles = append(m.roles[:i], m.roles[i+1:]...)
			return nil
		}
	}
	return role.ErrNotFound
}

func (m *mockRoleRepo) GetUserRoles(ctx context.Context, primaryOnly bool) ([]role.UserRole, error) {
	if m.err != nil {
		return nil, m.err
	}
	if !primaryOnly {
		return m.userRoles, nil
	}
	out := make([]role.UserRole, 0, len(m.userRoles))
	for _, link := range m.userRoles {
		if link.IsPrimary {
			out = append(out, link)
		}
	}
	return out, nil
}

func (m *mockRoleRepo) GetUserRolesByUser(ctx context.Context, userID uuid.UUID) ([]role.UserRole, error) {
	out := make([]role.UserRole, 0)
	for _, link := range m.userRoles {
		if link.UserID == userID {
			out = append(out, link)
		}
	}
	return out, nil
}

func (m *mockRoleRepo) AssignUser(ctx context.Context, link role.UserRole) (role.UserRole, error) {
	m.userRoles = append(m.userRoles, link)
	return link, nil
}

func (m *mockRoleRepo) RemoveUser(ctx context.Context, userID, roleID uuid.UUID) error {
	for i, link := range m.userRoles {
		if link.UserID == userID && link.RoleID == roleID {
			m.userRoles = append(m.userRoles[:i], m.userRoles[i+1:]...)
			return nil
		}
	}
	return role.ErrNotFound
}

func (m *mockRoleRepo) SetPrimary(ctx context.Context, userID, roleID uuid.UUID) error {
	for i, link := range m.userRoles {
		if link.UserID == userID {
			m.userRoles[i].IsPrimary = link.RoleID == roleID
		}
	}
	return nil
}

type mockTrackRepo struct {
	tracks      []track.LearningTrack
	assignments []track.Assignment
	progress    []track.Progress
	err         error
}

func (m *mockTrackRepo) GetAll(ctx context.Context) ([]track.LearningTrack, error) {
	return m.tracks, m.err
}

func (m *mockTrackRepo) GetByID(ctx context.Context, id uuid.UUID) (track.LearningTrack, error) {
	if m.err != nil {
		return track.LearningTrack{}, m.err
	}
	for _, t := range m.tracks {
		if t.ID() == id {
			return t, nil
		}
	}
	return track.LearningTrack{}, track.ErrNotFound
}

func (m *mockTrackRepo) Create(ctx context.Context, t track.LearningTrack) (track.LearningTrack, error) {
	saved := track.Hydrate(uuid.New(), t.Name(), t.Description(), time.Now(), time.Now())
	m.tracks = append(m.tracks, saved)
	return saved, nil
}

func (m *mockTrackRepo) Update(ctx context.Context, t track.LearningTrack) (track.LearningTrack, error) {
	for i, existing := range m.tracks {
		if existing.ID() == t.ID() {
			m.tracks[i] = t
			return t, nil
		}
	}
	return track.LearningTrack{}, track.ErrNotFound
}

func (m *mockTrackRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, t := range m.tracks {
		if t.ID() == id {
			m.tracks = append(m.tracks[:i], m.tracks[i+1:]...)
			return nil
		}
	}
	return track.ErrNotFound
}

func (m *mockTrackRepo) GetAssignments(ctx context.Context, trackID uuid.UUID) ([]track.Assignment, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]track.Assignment, 0, len(m.assignments))
	for _, a := range m.assignments {
		if a.TrackID == trackID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockTrackRepo) AssignUser(ctx context.Context, a track.Assignment) (track.Assignment, error) {
	for _, existing := range m.assignments {
		if existing.UserID == a.UserID && existing.TrackID == a.TrackID {
			return track.Assignment{}, track.ErrAlreadyAssigned
		}
	}
	m.assignments = append(m.assignments, a)
	return a, nil
}

func (m *mockTrackRepo) UnassignUser(ctx context.Context, userID, trackID uuid.UUID) error {
	for i, a := range m.assignments {
		if a.UserID == userID && a.TrackID == trackID {
			m.assignments = append(m.assignments[:i], m.assignments[i+1:]...)
			return nil
		}
	}
	return track.ErrNotFound
}

func (m *mockTrackRepo) GetProgress(ctx context.Context, trackID uuid.UUID) ([]track.Progress, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]track.Progress, 0, len(m.progress))
	for _, p := range m.progress {
		if p.TrackID == trackID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockTrackRepo) UpsertProgress(ctx context.Context, p track.Progress) (track.Progress, error) {
	for i, existing := range m.progress {
		if existing.UserID == p.UserID && existing.TrackID == p.TrackID {
			m.progress[i] = p
			return p, nil
		}
	}
	m.progress = append(m.progress, p)
	return p, nil
}
