package services

import (
	"github.com/google/uuid"

	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/department"
	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/profile"
	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/role"
	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/track"
)

// CompletionStatus is a user's standing on one learning track.
type CompletionStatus string

const (
	StatusNotAssigned CompletionStatus = "Not Assigned"
	StatusNotStarted  CompletionStatus = "Not Started"
	StatusInProgress  CompletionStatus = "In Progress"
	StatusCompleted   CompletionStatus = "Completed"
)

type LevelType string

const (
	LevelOrganization LevelType = "org"
	LevelLocation     LevelType = "location"
	LevelDepartment   LevelType = "department"
	LevelStaff        LevelType = "staff"
)

const (
	OrganizationTitle = "Organization"
	NoDepartmentLabel = "No Department"
	NoRoleLabel       = "No Role"
)

// LevelResult is one navigable node of the drill-down hierarchy. Value caches
// len(Data) at creation so it survives further drilling without recompute.
type LevelResult struct {
	Level int
	Title string
	Type  LevelType
	Data  []profile.Profile
	Value int
}

// BuildPrimaryDepartmentIndex maps each user to their primary department
// link. Rows without the primary flag are skipped. When a user carries more
// than one primary row the last one in input order wins; input order is not
// guaranteed by the store, so callers must not rely on a particular winner.
func BuildPrimaryDepartmentIndex(links []department.UserDepartment) map[uuid.UUID]department.UserDepartment {
	out := make(map[uuid.UUID]department.UserDepartment, len(links))
	for _, link := range links {
		if !link.IsPrimary {
			continue
		}
		out[link.UserID] = link
	}
	return out
}

// BuildPrimaryRoleIndex is the role-flavoured analogue of
// BuildPrimaryDepartmentIndex.
func BuildPrimaryRoleIndex(links []role.UserRole) map[uuid.UUID]role.UserRole {
	out := make(map[uuid.UUID]role.UserRole, len(links))
	for _, link := range links {
		if !link.IsPrimary {
			continue
		}
		out[link.UserID] = link
	}
	return out
}

// ResolveAssignmentStatus derives a user's standing on a track from the
// track-scoped assignment and progress rows. Precedence is strict:
// completed > started > assigned-only. The first matching row wins, so
// callers wanting determinism across duplicate rows must pre-sort.
func ResolveAssignmentStatus(userID uuid.UUID, assignments []track.Assignment, progress []track.Progress) CompletionStatus {
	assigned := false
	for _, a := range assignments {
		if a.UserID == userID {
			assigned = true
			break
		}
	}
	if !assigned {
		return StatusNotAssigned
	}

	for _, p := range progress {
		if p.UserID != userID {
			continue
		}
		if p.CompletedAt != nil {
			return StatusCompleted
		}
		if p.StartedAt != nil {
			return StatusInProgress
		}
		return StatusNotStarted
	}
	return StatusNotStarted
}

// ComputeOrganizationLevel builds the root of the hierarchy over the
// assigned-user set.
func ComputeOrganizationLevel(assigned []profile.Profile) LevelResult {
	return LevelResult{
		Level: 0,
		Title: OrganizationTitle,
		Type:  LevelOrganization,
		Data:  assigned,
		Value: len(assigned),
	}
}

// ComputeLocationBreakdown groups the parent's members by location display
// name. Members without a location appear in no group; groups keep the order
// in which their location first appears in the parent data, and empty groups
// are never emitted.
func ComputeLocationBreakdown(parent LevelResult) []LevelResult {
	groups := make(map[string][]profile.Profile)
	order := make([]string, 0)
	for _, p := range parent.Data {
		name := p.LocationName()
		if name == "" {
			continue
		}
		if _, seen := groups[name]; !seen {
			order = append(order, name)
		}
		groups[name] = append(groups[name], p)
	}

	out := make([]LevelResult, 0, len(order))
	for _, name := range order {
		members := groups[name]
		out = append(out, LevelResult{
			Level: parent.Level + 1,
			Title: name,
			Type:  LevelLocation,
			Data:  members,
			Value: len(members),
		})
	}
	return out
}

// ComputeDepartmentBreakdown groups the parent's members by their primary
// department. Lookups run against the global primary index because department
// membership is independent of location scope. Members without a primary
// department (or with a dangling department id) appear in no group; they are
// still part of the staff list. Groups are keyed by department id, so two
// departments sharing a display name stay separate.
func ComputeDepartmentBreakdown(
	parent LevelResult,
	primaryDepartments map[uuid.UUID]department.UserDepartment,
	departmentNames map[uuid.UUID]string,
) []LevelResult {
	groups := make(map[uuid.UUID][]profile.Profile)
	order := make([]uuid.UUID, 0)
	for _, p := range parent.Data {
		link, ok := primaryDepartments[p.ID()]
		if !ok {
			continue
		}
		if _, ok := departmentNames[link.DepartmentID]; !ok {
			continue
		}
		if _, seen := groups[link.DepartmentID]; !seen {
			order = append(order, link.DepartmentID)
		}
		groups[link.DepartmentID] = append(groups[link.DepartmentID], p)
	}

	out := make([]LevelResult, 0, len(order))
	for _, id := range order {
		members := groups[id]
		out = append(out, LevelResult{
			Level: parent.Level + 1,
			Title: departmentNames[id],
			Type:  LevelDepartment,
			Data:  members,
			Value: len(members),
		})
	}
	return out
}

// ComputeStaffList is the leaf view: the parent's member list unchanged.
func ComputeStaffList(parent LevelResult) []profile.Profile {
	return parent.Data
}

// StaffRow is one staff-list entry annotated for display.
type StaffRow struct {
	Profile        profile.Profile
	DepartmentName string
	RoleName       string
	Location       string
	Status         CompletionStatus
}

// AnnotateStaff resolves department, role and track status for each member.
// Missing primary links degrade to sentinel labels rather than errors.
func AnnotateStaff(
	members []profile.Profile,
	primaryDepartments map[uuid.UUID]department.UserDepartment,
	departmentNames map[uuid.UUID]string,
	primaryRoles map[uuid.UUID]role.UserRole,
	roleNames map[uuid.UUID]string,
	assignments []track.Assignment,
	progress []track.Progress,
) []StaffRow {
	out := make([]StaffRow, 0, len(members))
	for _, p := range members {
		deptName := NoDepartmentLabel
		if link, ok := primaryDepartments[p.ID()]; ok {
			if name, ok := departmentNames[link.DepartmentID]; ok {
				deptName = name
			}
		}
		roleName := NoRoleLabel
		if link, ok := primaryRoles[p.ID()]; ok {
			if name, ok := roleNames[link.RoleID]; ok {
				roleName = name
			}
		}
		out = append(out, StaffRow{
			Profile:        p,
			DepartmentName: deptName,
			RoleName:       roleName,
			Location:       p.LocationName(),
			Status:         ResolveAssignmentStatus(p.ID(), assignments, progress),
		})
	}
	return out
}
