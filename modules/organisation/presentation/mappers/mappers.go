package mappers

import (
	"time"

	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/asset"
	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/certificate"
	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/department"
	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/location"
	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/profile"
	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/role"
	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/track"
	"github.com/lumenhr/orgadmin/modules/organisation/presentation/viewmodels"
	"github.com/lumenhr/orgadmin/modules/organisation/services"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func ProfileToViewModel(p profile.Profile) viewmodels.Profile {
	return viewmodels.Profile{
		ID:        p.ID().String(),
		FullName:  p.FullName(),
		Location:  p.Location(),
		Status:    string(p.Status()),
		CreatedAt: formatTime(p.CreatedAt()),
		UpdatedAt: formatTime(p.UpdatedAt()),
	}
}

func ProfilesToViewModels(profiles []profile.Profile) []viewmodels.Profile {
	out := make([]viewmodels.Profile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, ProfileToViewModel(p))
	}
	return out
}

func DepartmentToViewModel(d department.Department) viewmodels.Department {
	return viewmodels.Department{
		ID:        d.ID().String(),
		Name:      d.Name(),
		CreatedAt: formatTime(d.CreatedAt()),
		UpdatedAt: formatTime(d.UpdatedAt()),
	}
}

func DepartmentsToViewModels(departments []department.Department) []viewmodels.Department {
	out := make([]viewmodels.Department, 0, len(departments))
	for _, d := range departments {
		out = append(out, DepartmentToViewModel(d))
	}
	return out
}

func UserDepartmentToViewModel(link department.UserDepartment) viewmodels.UserDepartment {
	return viewmodels.UserDepartment{
		PairingID:    link.PairingID.String(),
		UserID:       link.UserID.String(),
		DepartmentID: link.DepartmentID.String(),
		IsPrimary:    link.IsPrimary,
	}
}

func RoleToViewModel(r role.Role) viewmodels.Role {
	return viewmodels.Role{
		ID:        r.ID().String(),
		Name:      r.Name(),
		CreatedAt: formatTime(r.CreatedAt()),
		UpdatedAt: formatTime(r.UpdatedAt()),
	}
}

func RolesToViewModels(roles []role.Role) []viewmodels.Role {
	out := make([]viewmodels.Role, 0, len(roles))
	for _, r := range roles {
		out = append(out, RoleToViewModel(r))
	}
	return out
}

func UserRoleToViewModel(link role.UserRole) viewmodels.UserRole {
	return viewmodels.UserRole{
		UserID:    link.UserID.String(),
		RoleID:    link.RoleID.String(),
		IsPrimary: link.IsPrimary,
	}
}

func LocationToViewModel(l location.Location) viewmodels.Location {
	return viewmodels.Location{
		ID:        l.ID().String(),
		Name:      l.Name(),
		CreatedAt: formatTime(l.CreatedAt()),
		UpdatedAt: formatTime(l.UpdatedAt()),
	}
}

func LocationsToViewModels(locations []location.Location) []viewmodels.Location {
	out := make([]viewmodels.Location, 0, len(locations))
	for _, l := range locations {
		out = append(out, LocationToViewModel(l))
	}
	return out
}

func TrackToViewModel(t track.LearningTrack) viewmodels.LearningTrack {
	return viewmodels.LearningTrack{
		ID:          t.ID().String(),
		Name:        t.Name(),
		Description: t.Description(),
		CreatedAt:   formatTime(t.CreatedAt()),
		UpdatedAt:   formatTime(t.UpdatedAt()),
	}
}

func TracksToViewModels(tracks []track.LearningTrack) []viewmodels.LearningTrack {
	out := make([]viewmodels.LearningTrack, 0, len(tracks))
	for _, t := range tracks {
		out = append(out, TrackToViewModel(t))
	}
	return out
}

func AssignmentToViewModel(a track.Assignment) viewmodels.Assignment {
	return viewmodels.Assignment{
		UserID:     a.UserID.String(),
		TrackID:    a.TrackID.String(),
		AssignedAt: formatTime(a.AssignedAt),
		Status:     string(a.Status),
	}
}

func ProgressToViewModel(p track.Progress) viewmodels.Progress {
	return viewmodels.Progress{
		UserID:      p.UserID.String(),
		TrackID:     p.TrackID.String(),
		StartedAt:   formatTimePtr(p.StartedAt),
		CompletedAt: formatTimePtr(p.CompletedAt),
	}
}

func CertificateToViewModel(c certificate.Certificate) viewmodels.Certificate {
	return viewmodels.Certificate{
		ID:        c.ID().String(),
		UserID:    c.UserID().String(),
		Name:      c.Name(),
		IssuedAt:  formatTime(c.IssuedAt()),
		ExpiresAt: formatTimePtr(c.ExpiresAt()),
	}
}

func CertificatesToViewModels(certificates []certificate.Certificate) []viewmodels.Certificate {
	out := make([]viewmodels.Certificate, 0, len(certificates))
	for _, c := range certificates {
		out = append(out, CertificateToViewModel(c))
	}
	return out
}

func AssetToViewModel(a asset.Asset) viewmodels.Asset {
	var assignedTo *string
	if a.AssignedTo() != nil {
		s := a.AssignedTo().String()
		assignedTo = &s
	}
	return viewmodels.Asset{
		ID:         a.ID().String(),
		Kind:       string(a.Kind()),
		Name:       a.Name(),
		Serial:     a.Serial(),
		AssignedTo: assignedTo,
		AssignedAt: formatTimePtr(a.AssignedAt()),
	}
}

func AssetsToViewModels(assets []asset.Asset) []viewmodels.Asset {
	out := make([]viewmodels.Asset, 0, len(assets))
	for _, a := range assets {
		out = append(out, AssetToViewModel(a))
	}
	return out
}

func LevelToViewModel(level services.LevelResult) viewmodels.DrillDownLevel {
	return viewmodels.DrillDownLevel{
		Level: level.Level,
		Title: level.Title,
		Type:  string(level.Type),
		Value: level.Value,
	}
}

func LevelsToViewModels(levels []services.LevelResult) []viewmodels.DrillDownLevel {
	out := make([]viewmodels.DrillDownLevel, 0, len(levels))
	for _, l := range levels {
		out = append(out, LevelToViewModel(l))
	}
	return out
}

func StaffRowToViewModel(row services.StaffRow) viewmodels.StaffRow {
	return viewmodels.StaffRow{
		Profile:    ProfileToViewModel(row.Profile),
		Department: row.DepartmentName,
		Role:       row.RoleName,
		Location:   row.Location,
		Status:     string(row.Status),
	}
}

func StaffRowsToViewModels(rows []services.StaffRow) []viewmodels.StaffRow {
	out := make([]viewmodels.StaffRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, StaffRowToViewModel(row))
	}
	return out
}
