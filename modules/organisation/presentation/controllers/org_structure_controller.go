package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lumenhr/orgadmin/modules/organisation/presentation/mappers"
	"github.com/lumenhr/orgadmin/modules/organisation/services"
	"github.com/lumenhr/orgadmin/pkg/application"
	"github.com/lumenhr/orgadmin/pkg/middleware"
)

// OrgStructureController serves departments, roles and locations, plus the
// user pairings that place people in the org chart.
type OrgStructureController struct {
	app         application.Application
	departments *services.DepartmentService
	roles       *services.RoleService
	locations   *services.LocationService
	basePath    string
}

func NewOrgStructureController(app application.Application) application.Controller {
	return &OrgStructureController{
		app:         app,
		departments: app.Service(services.DepartmentService{}).(*services.DepartmentService),
		roles:       app.Service(services.RoleService{}).(*services.RoleService),
		locations:   app.Service(services.LocationService{}).(*services.LocationService),
		basePath:    "/organisation/api/structure",
	}
}

func (c *OrgStructureController) Key() string {
	return c.basePath
}

func (c *OrgStructureController) Register(r *mux.Router) {
	api := r.PathPrefix(c.basePath).Subrouter()
	api.Use(middleware.WithTransaction())

	api.HandleFunc("/departments", c.ListDepartments).Methods(http.MethodGet)
	api.HandleFunc("/departments", c.CreateDepartment).Methods(http.MethodPost)
	api.HandleFunc("/departments/{id}", c.RenameDepartment).Methods(http.MethodPut)
	api.HandleFunc("/departments/{id}", c.DeleteDepartment).Methods(http.MethodDelete)
	api.HandleFunc("/departments/{id}/users", c.AssignDepartmentUser).Methods(http.MethodPost)
	api.HandleFunc("/departments/{id}/users/{userId}", c.RemoveDepartmentUser).Methods(http.MethodDelete)
	api.HandleFunc("/departments/{id}/users/{userId}/primary", c.SetPrimaryDepartment).Methods(http.MethodPut)

	api.HandleFunc("/roles", c.ListRoles).Methods(http.MethodGet)
	api.HandleFunc("/roles", c.CreateRole).Methods(http.MethodPost)
	api.HandleFunc("/roles/{id}", c.RenameRole).Methods(http.MethodPut)
	api.HandleFunc("/roles/{id}", c.DeleteRole).Methods(http.MethodDelete)
	api.HandleFunc("/roles/{id}/users", c.AssignRoleUser).Methods(http.MethodPost)
	api.HandleFunc("/roles/{id}/users/{userId}", c.RemoveRoleUser).Methods(http.MethodDelete)
	api.HandleFunc("/roles/{id}/users/{userId}/primary", c.SetPrimaryRole).Methods(http.MethodPut)

	api.HandleFunc("/locations", c.ListLocations).Methods(http.MethodGet)
	api.HandleFunc("/locations", c.CreateLocation).Methods(http.MethodPost)
	api.HandleFunc("/locations/{id}", c.RenameLocation).Methods(http.MethodPut)
	api.HandleFunc("/locations/{id}", c.DeleteLocation).Methods(http.MethodDelete)
}

type nameRequest struct {
	Name string `json:"name"`
}

type assignUserRequest struct {
	UserID  string `json:"user_id"`
	Primary bool   `json:"primary"`
}

func (c *OrgStructureController) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := c.departments.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": mappers.DepartmentsToViewModels(departments),
	})
}

func (c *OrgStructureController) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	created, err := c.departments.Create(r.Context(), req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mappers.DepartmentToViewModel(created))
}

func (c *OrgStructureController) RenameDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req nameRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	updated, err := c.departments.Rename(r.Context(), id, req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.DepartmentToViewModel(updated))
}

func (c *OrgStructureController) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	deleted, err := c.departments.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.DepartmentToViewModel(deleted))
}

func (c *OrgStructureController) AssignDepartmentUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req assignUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	userID, ok := parseBodyUUID(w, req.UserID, "user_id")
	if !ok {
		return
	}
	link, err := c.departments.AssignUser(r.Context(), userID, id, req.Primary)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mappers.UserDepartmentToViewModel(link))
}

func (c *OrgStructureController) RemoveDepartmentUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}
	if err := c.departments.RemoveUser(r.Context(), userID, id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *OrgStructureController) SetPrimaryDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}
	if err := c.departments.SetPrimary(r.Context(), userID, id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *OrgStructureController) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := c.roles.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": mappers.RolesToViewModels(roles),
	})
}

func (c *OrgStructureController) CreateRole(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	created, err := c.roles.Create(r.Context(), req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mappers.RoleToViewModel(created))
}

func (c *OrgStructureController) RenameRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req nameRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	updated, err := c.roles.Rename(r.Context(), id, req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.RoleToViewModel(updated))
}

func (c *OrgStructureController) DeleteRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	deleted, err := c.roles.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.RoleToViewModel(deleted))
}

func (c *OrgStructureController) AssignRoleUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req assignUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	userID, ok := parseBodyUUID(w, req.UserID, "user_id")
	if !ok {
		return
	}
	link, err := c.roles.AssignUser(r.Context(), userID, id, req.Primary)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mappers.UserRoleToViewModel(link))
}

func (c *OrgStructureController) RemoveRoleUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}
	if err := c.roles.RemoveUser(r.Context(), userID, id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *OrgStructureController) SetPrimaryRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}
	if err := c.roles.SetPrimary(r.Context(), userID, id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *OrgStructureController) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := c.locations.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": mappers.LocationsToViewModels(locations),
	})
}

func (c *OrgStructureController) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	created, err := c.locations.Create(r.Context(), req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mappers.LocationToViewModel(created))
}

func (c *OrgStructureController) RenameLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req nameRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	updated, err := c.locations.Rename(r.Context(), id, req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.LocationToViewModel(updated))
}

func (c *OrgStructureController) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	deleted, err := c.locations.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.LocationToViewModel(deleted))
}
