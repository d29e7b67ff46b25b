package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"voltedge/internal/models"
	"voltedge/internal/registry"
	"voltedge/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// respondError maps domain sentinels onto client statuses; anything
// unrecognized is logged and hidden behind a 500.
func respondError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
		writeError(w, status, "internal error")
		return
	}
	writeError(w, status, err.Error())
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, registry.ErrStationNotFound),
		errors.Is(err, registry.ErrChargerNotFound),
		errors.Is(err, registry.ErrUserNotFound),
		errors.Is(err, registry.ErrMaintenanceNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrEmailInUse),
		errors.Is(err, registry.ErrStationExists),
		errors.Is(err, registry.ErrChargerExists),
		errors.Is(err, registry.ErrMaintenanceExists),
		errors.Is(err, models.ErrSessionActive):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, registry.ErrNoChargerAvailable),
		errors.Is(err, models.ErrNoActiveSession),
		errors.Is(err, models.ErrInvalidAmount),
		errors.Is(err, models.ErrChargerUnavailable),
		errors.Is(err, service.ErrInvalidRegistration),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidChargerKind),
		errors.Is(err, service.ErrInvalidMaintenanceKind),
		errors.Is(err, service.ErrMissingFrequency),
		errors.Is(err, service.ErrMissingFaultDescription):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(r *http.Request, target interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

func pathInt(r *http.Request, name string) (int, error) {
	return strconv.Atoi(r.PathValue(name))
}
