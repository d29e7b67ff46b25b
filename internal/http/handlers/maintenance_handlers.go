package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"voltedge/internal/models"
	"voltedge/internal/service"
)

// MaintenanceHandlers serves the maintenance workflow. All endpoints are
// admin only (enforced by middleware).
type MaintenanceHandlers struct {
	maintenance *service.MaintenanceService
	logger      *zap.Logger
}

// NewMaintenanceHandlers returns handler struct.
func NewMaintenanceHandlers(maintenance *service.MaintenanceService, logger *zap.Logger) *MaintenanceHandlers {
	return &MaintenanceHandlers{maintenance: maintenance, logger: logger}
}

type scheduleMaintenanceRequest struct {
	ID               int    `json:"id"`
	StationID        int    `json:"station_id"`
	Date             string `json:"date"`
	Technician       string `json:"technician"`
	Kind             string `json:"kind"`
	Frequency        string `json:"frequency"`
	FaultDescription string `json:"fault_description"`
}

// Schedule handles POST /maintenance.
func (h *MaintenanceHandlers) Schedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleMaintenanceRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	m, err := h.maintenance.Schedule(service.ScheduleMaintenanceInput{
		ID:               req.ID,
		StationID:        req.StationID,
		Date:             req.Date,
		Technician:       req.Technician,
		Kind:             models.MaintenanceKind(req.Kind),
		Frequency:        req.Frequency,
		FaultDescription: req.FaultDescription,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, newMaintenanceResponse(m))
}

// List handles GET /maintenance with an optional station_id filter.
func (h *MaintenanceHandlers) List(w http.ResponseWriter, r *http.Request) {
	stationID := 0
	if raw := r.URL.Query().Get("station_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid station_id")
			return
		}
		stationID = parsed
	}

	records := h.maintenance.List(stationID)
	resp := make([]maintenanceResponse, 0, len(records))
	for _, m := range records {
		resp = append(resp, newMaintenanceResponse(m))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Start handles POST /maintenance/{id}/start.
func (h *MaintenanceHandlers) Start(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid maintenance id")
		return
	}

	m, err := h.maintenance.Start(id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newMaintenanceResponse(m))
}

type completeMaintenanceRequest struct {
	Notes string `json:"notes"`
}

// Complete handles POST /maintenance/{id}/complete.
func (h *MaintenanceHandlers) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid maintenance id")
		return
	}

	var req completeMaintenanceRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	m, err := h.maintenance.Complete(id, req.Notes)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newMaintenanceResponse(m))
}
