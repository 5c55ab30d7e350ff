package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/asset"
	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/certificate"
	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/department"
	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/location"
	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/profile"
	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/role"
	"github.com/lumenhr/orgadmin/modules/organisation/domain/aggregates/track"
	"github.com/lumenhr/orgadmin/pkg/composables"
	"github.com/lumenhr/orgadmin/pkg/serrors"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error": serrors.NewError(code, message, ""),
	})
}

func writeValidationErrors(w http.ResponseWriter, fields map[string]string) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
		"error":  serrors.NewError("VALIDATION", "request failed validation", ""),
		"fields": fields,
	})
}

// writeServiceError translates domain sentinel errors into HTTP statuses.
// Anything unrecognized is a 500 with the detail logged, not leaked.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, profile.ErrNotFound),
		errors.Is(err, department.ErrNotFound),
		errors.Is(err, role.ErrNotFound),
		errors.Is(err, location.ErrNotFound),
		errors.Is(err, track.ErrNotFound),
		errors.Is(err, certificate.ErrNotFound),
		errors.Is(err, asset.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, department.ErrNameTaken),
		errors.Is(err, role.ErrNameTaken),
		errors.Is(err, location.ErrNameTaken),
		errors.Is(err, track.ErrAlreadyAssigned),
		errors.Is(err, asset.ErrAlreadyAssigned),
		errors.Is(err, asset.ErrNotAssigned):
		writeError(w, http.StatusConflict, "CONFLICT", err.Error())
	default:
		composables.UseLogger(r.Context()).WithError(err).Error("request failed")
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_JSON", "request body is not valid JSON")
		return false
	}
	return true
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_ID", name+" is not a valid uuid")
		return uuid.Nil, false
	}
	return id, true
}

func parseBodyUUID(w http.ResponseWriter, raw, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_ID", name+" is not a valid uuid")
		return uuid.Nil, false
	}
	return id, true
}
