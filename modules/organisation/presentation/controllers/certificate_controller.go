package controllers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/lumenhr/orgadmin/modules/organisation/presentation/mappers"
	"github.com/lumenhr/orgadmin/modules/organisation/services"
	"github.com/lumenhr/orgadmin/pkg/application"
	"github.com/lumenhr/orgadmin/pkg/middleware"
)

type CertificateController struct {
	app          application.Application
	certificates *services.CertificateService
	basePath     string
}

func NewCertificateController(app application.Application) application.Controller {
	return &CertificateController{
		app:          app,
		certificates: app.Service(services.CertificateService{}).(*services.CertificateService),
		basePath:     "/organisation/api/certificates",
	}
}

func (c *CertificateController) Key() string {
	return c.basePath
}

func (c *CertificateController) Register(r *mux.Router) {
	api := r.PathPrefix(c.basePath).Subrouter()
	api.Use(middleware.WithTransaction())

	api.HandleFunc("", c.Create).Methods(http.MethodPost)
	api.HandleFunc("/expiring", c.ListExpiring).Methods(http.MethodGet)
	api.HandleFunc("/user/{userId}", c.ListByUser).Methods(http.MethodGet)
	api.HandleFunc("/{id}", c.Get).Methods(http.MethodGet)
	api.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
}

type createCertificateRequest struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	IssuedAt  string `json:"issued_at"`
	ExpiresAt string `json:"expires_at"`
}

func (c *CertificateController) Create(w http.ResponseWriter, r *http.Request) {
	var req createCertificateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	userID, ok := parseBodyUUID(w, req.UserID, "user_id")
	if !ok {
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusUnprocessableEntity, "VALIDATION", "name is required")
		return
	}
	issuedAt, err := time.Parse(time.RFC3339, req.IssuedAt)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "VALIDATION", "issued_at must be RFC3339")
		return
	}
	var expiresAt *time.Time
	if req.ExpiresAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.ExpiresAt)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "VALIDATION", "expires_at must be RFC3339")
			return
		}
		expiresAt = &parsed
	}

	created, err := c.certificates.Create(r.Context(), userID, req.Name, issuedAt, expiresAt)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mappers.CertificateToViewModel(created))
}

func (c *CertificateController) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}
	certificates, err := c.certificates.GetByUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": mappers.CertificatesToViewModels(certificates),
	})
}

// ListExpiring reports certificates expiring inside the configured warning
// window.
func (c *CertificateController) ListExpiring(w http.ResponseWriter, r *http.Request) {
	certificates, err := c.certificates.GetExpiringSoon(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": mappers.CertificatesToViewModels(certificates),
	})
}

func (c *CertificateController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	certificate, err := c.certificates.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.CertificateToViewModel(certificate))
}

func (c *CertificateController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	deleted, err := c.certificates.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.CertificateToViewModel(deleted))
}
