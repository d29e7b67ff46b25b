package handlers

import (
	"time"

	"voltedge/internal/models"
)

type userResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	Balance   float64 `json:"balance"`
	TariffKWh float64 `json:"tariff_kwh"`
}

func newUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Balance:   u.Balance,
		TariffKWh: u.Tariff(),
	}
}

type sessionResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	UserName        string  `json:"user_name"`
	ChargerID       int     `json:"charger_id"`
	StartedAt       string  `json:"started_at"`
	EndedAt         string  `json:"ended_at,omitempty"`
	DurationMinutes int     `json:"duration_minutes"`
	EnergyKWh       float64 `json:"energy_kwh"`
	Cost            float64 `json:"cost"`
	Active          bool    `json:"active"`
	Billed          bool    `json:"billed"`
}

func newSessionResponse(s *models.Session) sessionResponse {
	resp := sessionResponse{
		ID:        s.ID.String(),
		UserID:    s.User.ID.String(),
		UserName:  s.User.Name,
		ChargerID: s.Charger.ID,
		StartedAt: s.StartedAt.Format(time.RFC3339),
		Active:    s.Active(),
		Billed:    s.Billed,
	}
	resp.DurationMinutes = s.DurationMinutes()
	if s.Active() {
		// Live projection at the simulated metering rate.
		resp.EnergyKWh = float64(resp.DurationMinutes) * models.EnergyPerMinuteKWh
		resp.Cost = resp.EnergyKWh * s.User.Tariff()
	} else {
		resp.EndedAt = s.EndedAt.Format(time.RFC3339)
		resp.EnergyKWh = s.EnergyKWh
		resp.Cost = s.Cost
	}
	return resp
}

type chargerResponse struct {
	ID     int    `json:"id"`
	Kind   string `json:"kind"`
	Status string `json:"status"`
}

func newChargerResponse(c *models.Charger) chargerResponse {
	return chargerResponse{ID: c.ID, Kind: string(c.Kind), Status: string(c.Status)}
}

type stationResponse struct {
	ID            int               `json:"id"`
	Name          string            `json:"name"`
	Location      string            `json:"location"`
	TotalChargers int               `json:"total_chargers"`
	Available     int               `json:"available"`
	Chargers      []chargerResponse `json:"chargers"`
}

func newStationResponse(s *models.Station) stationResponse {
	chargers := make([]chargerResponse, 0, len(s.Chargers))
	for _, c := range s.Chargers {
		chargers = append(chargers, newChargerResponse(c))
	}
	return stationResponse{
		ID:            s.ID,
		Name:          s.Name,
		Location:      s.Location,
		TotalChargers: len(s.Chargers),
		Available:     len(s.AvailableChargers()),
		Chargers:      chargers,
	}
}

type maintenanceResponse struct {
	ID               int    `json:"id"`
	StationID        int    `json:"station_id"`
	Date             string `json:"date"`
	Technician       string `json:"technician"`
	Kind             string `json:"kind"`
	Status           string `json:"status"`
	Notes            string `json:"notes"`
	Frequency        string `json:"frequency,omitempty"`
	FaultDescription string `json:"fault_description,omitempty"`
}

func newMaintenanceResponse(m *models.Maintenance) maintenanceResponse {
	return maintenanceResponse{
		ID:               m.ID,
		StationID:        m.StationID,
		Date:             m.Date.Format("2006-01-02"),
		Technician:       m.Technician,
		Kind:             string(m.Kind),
		Status:           string(m.Status),
		Notes:            m.Notes,
		Frequency:        m.Frequency,
		FaultDescription: m.FaultDescription,
	}
}
