package controllers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/asset"
	"github.com/lumenhr/orgadmin/modules/organisation/presentation/mappers"
	"github.com/lumenhr/orgadmin/modules/organisation/services"
	"github.com/lumenhr/orgadmin/pkg/application"
	"github.com/lumenhr/orgadmin/pkg/configuration"
	"github.com/lumenhr/orgadmin/pkg/middleware"
)

type AssetController struct {
	app      application.Application
	assets   *services.AssetService
	basePath string
}

func NewAssetController(app application.Application) application.Controller {
	return &AssetController{
		app:      app,
		assets:   app.Service(services.AssetService{}).(*services.AssetService),
		basePath: "/organisation/api/assets",
	}
}

func (c *AssetController) Key() string {
	return c.basePath
}

func (c *AssetController) Register(r *mux.Router) {
	api := r.PathPrefix(c.basePath).Subrouter()
	api.Use(middleware.WithTransaction())

	api.HandleFunc("", c.List).Methods(http.MethodGet)
	api.HandleFunc("", c.Create).Methods(http.MethodPost)
	api.HandleFunc("/user/{userId}", c.ListByUser).Methods(http.MethodGet)
	api.HandleFunc("/{id}", c.Get).Methods(http.MethodGet)
	api.HandleFunc("/{id}", c.Update).Methods(http.MethodPut)
	api.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/{id}/assign", c.Assign).Methods(http.MethodPost)
	api.HandleFunc("/{id}/return", c.Return).Methods(http.MethodPost)
}

type assetRequest struct {
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	Serial string `json:"serial"`
}

func (c *AssetController) List(w http.ResponseWriter, r *http.Request) {
	conf := configuration.Use()
	params := &asset.FindParams{Limit: conf.PageSize}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 && limit <= conf.MaxPageSize {
		params.Limit = limit
	}
	if offset, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && offset > 0 {
		params.Offset = offset
	}
	if kind := r.URL.Query().Get("kind"); kind != "" {
		params.Kind = asset.Kind(kind)
	}

	assets, total, err := c.assets.GetPaginated(r.Context(), params)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":  mappers.AssetsToViewModels(assets),
		"total": total,
	})
}

func (c *AssetController) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}
	assets, err := c.assets.GetByUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": mappers.AssetsToViewModels(assets),
	})
}

func (c *AssetController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	a, err := c.assets.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.AssetToViewModel(a))
}

func (c *AssetController) Create(w http.ResponseWriter, r *http.Request) {
	var req assetRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	kind := asset.Kind(req.Kind)
	if kind != asset.KindHardware && kind != asset.KindSoftware {
		writeError(w, http.StatusUnprocessableEntity, "VALIDATION", "kind must be hardware or software")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusUnprocessableEntity, "VALIDATION", "name is required")
		return
	}
	created, err := c.assets.Create(r.Context(), kind, req.Name, req.Serial)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mappers.AssetToViewModel(created))
}

func (c *AssetController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req assetRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	updated, err := c.assets.Update(r.Context(), id, req.Name, req.Serial)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.AssetToViewModel(updated))
}

func (c *AssetController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	deleted, err := c.assets.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.AssetToViewModel(deleted))
}

func (c *AssetController) Assign(w http.ResponseWriter, r *http.Request) {
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
	assigned, err := c.assets.Assign(r.Context(), id, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.AssetToViewModel(assigned))
}

func (c *AssetController) Return(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	returned, err := c.assets.Return(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.AssetToViewModel(returned))
}
