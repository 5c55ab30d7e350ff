package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lumenhr/orgadmin/modules/organisation/presentation/mappers"
	"github.com/lumenhr/orgadmin/modules/organisation/presentation/viewmodels"
	"github.com/lumenhr/orgadmin/modules/organisation/services"
	"github.com/lumenhr/orgadmin/pkg/application"
	"github.com/lumenhr/orgadmin/pkg/middleware"
)

type TrackController struct {
	app      application.Application
	tracks   *services.TrackService
	basePath string
}

func NewTrackController(app application.Application) application.Controller {
	return &TrackController{
		app:      app,
		tracks:   app.Service(services.TrackService{}).(*services.TrackService),
		basePath: "/organisation/api/tracks",
	}
}

func (c *TrackController) Key() string {
	return c.basePath
}

func (c *TrackController) Register(r *mux.Router) {
	api := r.PathPrefix(c.basePath).Subrouter()
	api.Use(middleware.WithTransaction())

	api.HandleFunc("", c.List).Methods(http.MethodGet)
	api.HandleFunc("", c.Create).Methods(http.MethodPost)
	api.HandleFunc("/{id}", c.Get).Methods(http.MethodGet)
	api.HandleFunc("/{id}", c.Update).Methods(http.MethodPut)
	api.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/{id}/assignments", c.ListAssignments).Methods(http.MethodGet)
	api.HandleFunc("/{id}/assignments", c.AssignUser).Methods(http.MethodPost)
	api.HandleFunc("/{id}/assignments/{userId}", c.UnassignUser).Methods(http.MethodDelete)
	api.HandleFunc("/{id}/progress/{userId}/start", c.StartProgress).Methods(http.MethodPost)
	api.HandleFunc("/{id}/progress/{userId}/complete", c.CompleteProgress).Methods(http.MethodPost)
}

type trackRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (c *TrackController) List(w http.ResponseWriter, r *http.Request) {
	tracks, err := c.tracks.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": mappers.TracksToViewModels(tracks),
	})
}

func (c *TrackController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	t, err := c.tracks.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.TrackToViewModel(t))
}

func (c *TrackController) Create(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusUnprocessableEntity, "VALIDATION", "name is required")
		return
	}
	created, err := c.tracks.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mappers.TrackToViewModel(created))
}

func (c *TrackController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req trackRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	updated, err := c.tracks.Update(r.Context(), id, req.Name, req.Description)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.TrackToViewModel(updated))
}

func (c *TrackController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	deleted, err := c.tracks.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.TrackToViewModel(deleted))
}

func (c *TrackController) ListAssignments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	assignments, err := c.tracks.GetAssignments(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	out := make([]viewmodels.Assignment, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, mappers.AssignmentToViewModel(a))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": out})
}

func (c *TrackController) AssignUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req struct {
		UserID string `json:"user_id"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	userID, ok := parseBodyUUID(w, req.UserID, "user_id")
	if !ok {
		return
	}
	assignment, err := c.tracks.AssignUser(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mappers.AssignmentToViewModel(assignment))
}

func (c *TrackController) UnassignUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}
	if err := c.tracks.UnassignUser(r.Context(), userID, id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *TrackController) StartProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}
	progress, err := c.tracks.StartProgress(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.ProgressToViewModel(progress))
}

func (c *TrackController) CompleteProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}
	progress, err := c.tracks.CompleteProgress(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.ProgressToViewModel(progress))
}
