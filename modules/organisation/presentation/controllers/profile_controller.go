package controllers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/profile"
	"github.com/lumenhr/orgadmin/modules/organisation/presentation/mappers"
	"github.com/lumenhr/orgadmin/modules/organisation/services"
	"github.com/lumenhr/orgadmin/pkg/application"
	"github.com/lumenhr/orgadmin/pkg/configuration"
	"github.com/lumenhr/orgadmin/pkg/middleware"
)

type ProfileController struct {
	app      application.Application
	profiles *services.ProfileService
	basePath string
}

func NewProfileController(app application.Application) application.Controller {
	return &ProfileController{
		app:      app,
		profiles: app.Service(services.ProfileService{}).(*services.ProfileService),
		basePath: "/organisation/api/profiles",
	}
}

func (c *ProfileController) Key() string {
	return c.basePath
}

func (c *ProfileController) Register(r *mux.Router) {
	api := r.PathPrefix(c.basePath).Subrouter()
	api.Use(middleware.WithTransaction())

	api.HandleFunc("", c.List).Methods(http.MethodGet)
	api.HandleFunc("", c.Create).Methods(http.MethodPost)
	api.HandleFunc("/search", c.Search).Methods(http.MethodGet)
	api.HandleFunc("/import", c.ImportCSV).Methods(http.MethodPost)
	api.HandleFunc("/{id}", c.Get).Methods(http.MethodGet)
	api.HandleFunc("/{id}", c.Update).Methods(http.MethodPut)
	api.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
}

func (c *ProfileController) List(w http.ResponseWriter, r *http.Request) {
	conf := configuration.Use()
	params := &profile.FindParams{
		Q:     r.URL.Query().Get("q"),
		Limit: conf.PageSize,
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 && limit <= conf.MaxPageSize {
		params.Limit = limit
	}
	if offset, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && offset > 0 {
		params.Offset = offset
	}
	if status := r.URL.Query().Get("status"); status != "" {
		params.Status = profile.Status(status)
	}

	profiles, total, err := c.profiles.GetPaginated(r.Context(), params)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":  mappers.ProfilesToViewModels(profiles),
		"total": total,
	})
}

func (c *ProfileController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	p, err := c.profiles.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.ProfileToViewModel(p))
}

func (c *ProfileController) Search(w http.ResponseWriter, r *http.Request) {
	limit := configuration.Use().PageSize
	if parsed, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && parsed > 0 {
		limit = parsed
	}
	results, err := c.profiles.Search(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": mappers.ProfilesToViewModels(results),
	})
}

func (c *ProfileController) Create(w http.ResponseWriter, r *http.Request) {
	dto := &profile.CreateDTO{}
	if !decodeJSON(w, r, dto) {
		return
	}
	if fields, ok := dto.Ok(); !ok {
		writeValidationErrors(w, fields)
		return
	}

	created, err := c.profiles.Create(r.Context(), dto)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mappers.ProfileToViewModel(created))
}

func (c *ProfileController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	dto := &profile.UpdateDTO{}
	if !decodeJSON(w, r, dto) {
		return
	}
	if fields, ok := dto.Ok(); !ok {
		writeValidationErrors(w, fields)
		return
	}

	updated, err := c.profiles.Update(r.Context(), id, dto)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.ProfileToViewModel(updated))
}

func (c *ProfileController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	deleted, err := c.profiles.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.ProfileToViewModel(deleted))
}

// ImportCSV accepts a text/csv body (or multipart upload under "file") and
// bulk-creates profiles.
func (c *ProfileController) ImportCSV(w http.ResponseWriter, r *http.Request) {
	conf := configuration.Use()
	reader := http.MaxBytesReader(w, r.Body, conf.MaxUploadSize)

	count, err := c.profiles.ImportCSV(r.Context(), reader)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "BAD_CSV", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"imported": count,
	})
}
