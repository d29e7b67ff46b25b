package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"voltedge/internal/models"
	"voltedge/internal/service"
)

// StationHandlers serves station and charger endpoints.
type StationHandlers struct {
	charging *service.ChargingService
	logger   *zap.Logger
}

// NewStationHandlers returns handler struct.
func NewStationHandlers(charging *service.ChargingService, logger *zap.Logger) *StationHandlers {
	return &StationHandlers{charging: charging, logger: logger}
}

type createStationRequest struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Create handles POST /stations. Admin only.
func (h *StationHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req createStationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	station, err := h.charging.CreateStation(req.ID, req.Name, req.Location)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, newStationResponse(station))
}

// List handles GET /stations. Public.
func (h *StationHandlers) List(w http.ResponseWriter, r *http.Request) {
	stations := h.charging.Stations()
	resp := make([]stationResponse, 0, len(stations))
	for _, s := range stations {
		resp = append(resp, newStationResponse(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /stations/{id}. Public.
func (h *StationHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid station id")
		return
	}

	station, err := h.charging.Station(id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newStationResponse(station))
}

// Delete handles DELETE /stations/{id}. Admin only.
func (h *StationHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid station id")
		return
	}

	if err := h.charging.DeleteStation(id); err != nil {
		respondError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Availability handles GET /stations/{id}/availability. Public.
func (h *StationHandlers) Availability(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid station id")
		return
	}

	report, err := h.charging.Availability(id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Consumption handles GET /stations/{id}/consumption. Admin only.
func (h *StationHandlers) Consumption(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid station id")
		return
	}

	report, err := h.charging.Consumption(id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

type addChargerRequest struct {
	ChargerID int    `json:"charger_id"`
	Kind      string `json:"kind"`
}

// AddCharger handles POST /stations/{id}/chargers. Admin only.
func (h *StationHandlers) AddCharger(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid station id")
		return
	}

	var req addChargerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	charger, err := h.charging.AddCharger(id, req.ChargerID, models.ChargerKind(req.Kind))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, newChargerResponse(charger))
}

// ListChargers handles GET /chargers. Public.
func (h *StationHandlers) ListChargers(w http.ResponseWriter, r *http.Request) {
	chargers := h.charging.Chargers()
	resp := make([]chargerResponse, 0, len(chargers))
	for _, c := range chargers {
		resp = append(resp, newChargerResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetCharger handles GET /chargers/{id}. Public.
func (h *StationHandlers) GetCharger(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid charger id")
		return
	}

	charger, err := h.charging.Charger(id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newChargerResponse(charger))
}
