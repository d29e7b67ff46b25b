package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"voltedge/internal/http/middleware"
	"voltedge/internal/service"
)

// SessionHandlers serves charging session endpoints.
type SessionHandlers struct {
	charging *service.ChargingService
	logger   *zap.Logger
}

// NewSessionHandlers returns handler struct.
func NewSessionHandlers(charging *service.ChargingService, logger *zap.Logger) *SessionHandlers {
	return &SessionHandlers{charging: charging, logger: logger}
}

type startSessionRequest struct {
	StationID int `json:"station_id"`
}

// Start handles POST /sessions. Sessions are always started for the
// authenticated user.
func (h *SessionHandlers) Start(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req startSessionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	session, err := h.charging.StartCharging(current.ID, req.StationID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, newSessionResponse(session))
}

// Close handles POST /sessions/close for the authenticated user.
func (h *SessionHandlers) Close(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	session, err := h.charging.EndCharging(current.ID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionResponse(session))
}
