package controllers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lumenhr/orgadmin/modules/organisation/presentation/mappers"
	"github.com/lumenhr/orgadmin/modules/organisation/services"
	"github.com/lumenhr/orgadmin/pkg/application"
	"github.com/lumenhr/orgadmin/pkg/middleware"
)

// DrillDownController serves the per-track completion hierarchy. The scope is
// addressed by query parameters the same way a breadcrumb trail would be:
// no parameters is the organization root, location=HQ drills into a location,
// location=HQ&department=Engineering drills one level further.
type DrillDownController struct {
	app       application.Application
	drillDown *services.DrillDownService
	basePath  string
}

func NewDrillDownController(app application.Application) application.Controller {
	return &DrillDownController{
		app:       app,
		drillDown: app.Service(services.DrillDownService{}).(*services.DrillDownService),
		basePath:  "/organisation/api/tracks",
	}
}

func (c *DrillDownController) Key() string {
	return c.basePath + "/drilldown"
}

func (c *DrillDownController) Register(r *mux.Router) {
	api := r.PathPrefix(c.basePath).Subrouter()
	api.Use(middleware.WithTransaction())

	api.HandleFunc("/{id}/drilldown", c.DrillDown).Methods(http.MethodGet)
	api.HandleFunc("/{id}/drilldown/export", c.Export).Methods(http.MethodGet)
}

// resolveScope walks from the root to the level addressed by the query
// parameters, returning the breadcrumb trail. A missing group name is an
// error rather than an empty level, so clients cannot silently drill into
// stale breadcrumbs.
func resolveScope(session *services.DrillDownSession, locationName, departmentName string) (*services.DrillDownNavigator, error) {
	navigator := services.NewDrillDownNavigator()
	navigator.Init(session.OrganizationLevel())

	if locationName != "" {
		current, err := navigator.CurrentLevel()
		if err != nil {
			return nil, err
		}
		found := false
		for _, level := range session.LocationBreakdown(current) {
			if level.Title == locationName {
				if err := navigator.DrillDown(level); err != nil {
					return nil, err
				}
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("location %q has no assigned staff", locationName)
		}
	}

	if departmentName != "" {
		current, err := navigator.CurrentLevel()
		if err != nil {
			return nil, err
		}
		found := false
		for _, level := range session.DepartmentBreakdown(current) {
			if level.Title == departmentName {
				if err := navigator.DrillDown(level); err != nil {
					return nil, err
				}
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("department %q has no assigned staff in this scope", departmentName)
		}
	}

	return navigator, nil
}

func (c *DrillDownController) DrillDown(w http.ResponseWriter, r *http.Request) {
	trackID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	session, err := c.drillDown.LoadSession(r.Context(), trackID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	navigator, err := resolveScope(session, r.URL.Query().Get("location"), r.URL.Query().Get("department"))
	if err != nil {
		writeError(w, http.StatusNotFound, "SCOPE_NOT_FOUND", err.Error())
		return
	}

	current, err := navigator.CurrentLevel()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var children []services.LevelResult
	switch current.Type {
	case services.LevelOrganization:
		children = session.LocationBreakdown(current)
	case services.LevelLocation:
		children = session.DepartmentBreakdown(current)
	default:
		children = nil
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"track":      mappers.TrackToViewModel(session.Track),
		"breadcrumb": mappers.LevelsToViewModels(navigator.Path()),
		"current":    mappers.LevelToViewModel(current),
		"children":   mappers.LevelsToViewModels(children),
		"staff":      mappers.StaffRowsToViewModels(session.StaffList(current)),
	})
}

// Export streams the staff list of the addressed scope as an XLSX workbook.
func (c *DrillDownController) Export(w http.ResponseWriter, r *http.Request) {
	trackID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	session, err := c.drillDown.LoadSession(r.Context(), trackID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	navigator, err := resolveScope(session, r.URL.Query().Get("location"), r.URL.Query().Get("department"))
	if err != nil {
		writeError(w, http.StatusNotFound, "SCOPE_NOT_FOUND", err.Error())
		return
	}

	current, err := navigator.CurrentLevel()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", session.Track.Name()+"-staff.xlsx"))
	if err := services.WriteStaffXLSX(w, session.Track.Name(), session.StaffList(current)); err != nil {
		writeServiceError(w, r, err)
	}
}
