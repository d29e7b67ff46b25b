// Package registry holds the process-wide in-memory catalogs of stations,
// chargers, users, sessions and maintenance records. All state is volatile
// and rebuilt from zero on restart. Cross-entity mutations run under one
// write lock, so the availability check and occupancy mark of a charger
// reservation are atomic.
package registry

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"voltedge/internal/models"
)

var (
	ErrStationNotFound     = errors.New("registry: station not found")
	ErrStationExists       = errors.New("registry: station id already in use")
	ErrChargerNotFound     = errors.New("registry: charger not found")
	ErrChargerExists       = errors.New("registry: charger id already in use")
	ErrUserNotFound        = errors.New("registry: user not found")
	ErrEmailTaken          = errors.New("registry: email already registered")
	ErrMaintenanceNotFound = errors.New("registry: maintenance not found")
	ErrMaintenanceExists   = errors.New("registry: maintenance id already in use")
	ErrNoChargerAvailable  = errors.New("registry: no charger available")
)

// Registry is the explicit store object injected into every service; its
// lifecycle is tied to process start and stop.
type Registry struct {
	mu           sync.RWMutex
	stations     map[int]*models.Station
	chargers     map[int]*models.Charger
	users        map[uuid.UUID]*models.User
	active       map[uuid.UUID]*models.Session
	maintenances map[int]*models.Maintenance
	// sessionLog is append-only and keeps every session ever started, so
	// consumption reports cover full history rather than only the active
	// index.
	sessionLog []*models.Session
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		stations:     make(map[int]*models.Station),
		chargers:     make(map[int]*models.Charger),
		users:        make(map[uuid.UUID]*models.User),
		active:       make(map[uuid.UUID]*models.Session),
		maintenances: make(map[int]*models.Maintenance),
	}
}

// AddStation registers a new station under its id.
func (r *Registry) AddStation(station *models.Station) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.stations[station.ID]; ok {
		return ErrStationExists
	}
	r.stations[station.ID] = station
	return nil
}

// Station looks up a station by id.
func (r *Registry) Station(id int) (*models.Station, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	station, ok := r.stations[id]
	if !ok {
		return nil, ErrStationNotFound
	}
	return station, nil
}

// Stations lists all stations.
func (r *Registry) Stations() []*models.Station {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stations := make([]*models.Station, 0, len(r.stations))
	for _, s := range r.stations {
		stations = append(stations, s)
	}
	return stations
}

// DeleteStation removes a station and its chargers from the indexes.
// Maintenance records referencing the station keep their weak reference
// and are left dangling on purpose.
func (r *Registry) DeleteStation(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	station, ok := r.stations[id]
	if !ok {
		return ErrStationNotFound
	}
	for _, c := range station.Chargers {
		delete(r.chargers, c.ID)
	}
	delete(r.stations, id)
	return nil
}

// AddCharger attaches a charger to a station, enforcing system-wide charger
// id uniqueness.
func (r *Registry) AddCharger(stationID int, charger *models.Charger) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	station, ok := r.stations[stationID]
	if !ok {
		return ErrStationNotFound
	}
	if _, ok := r.chargers[charger.ID]; ok {
		return ErrChargerExists
	}
	station.AddCharger(charger)
	r.chargers[charger.ID] = charger
	return nil
}

// Charger looks up a charger by id.
func (r *Registry) Charger(id int) (*models.Charger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	charger, ok := r.chargers[id]
	if !ok {
		return nil, ErrChargerNotFound
	}
	return charger, nil
}

// Chargers lists all chargers across stations.
func (r *Registry) Chargers() []*models.Charger {
	r.mu.RLock()
	defer r.mu.RUnlock()
	chargers := make([]*models.Charger, 0, len(r.chargers))
	for _, c := range r.chargers {
		chargers = append(chargers, c)
	}
	return chargers
}

// StationForCharger returns the id of the station owning the charger.
func (r *Registry) StationForCharger(chargerID int) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stationForChargerLocked(chargerID)
}

func (r *Registry) stationForChargerLocked(chargerID int) (int, bool) {
	for id, station := range r.stations {
		for _, c := range station.Chargers {
			if c.ID == chargerID {
				return id, true
			}
		}
	}
	return 0, false
}

// AddUser stores a new user, enforcing email uniqueness.
func (r *Registry) AddUser(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return ErrEmailTaken
		}
	}
	r.users[user.ID] = user
	return nil
}

// User looks up a user by id.
func (r *Registry) User(id uuid.UUID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UserByEmail scans users for a matching email. No secondary index is kept.
func (r *Registry) UserByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

// Users lists all registered users.
func (r *Registry) Users() []*models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	return users
}

// StartCharging opens a session for the user on the station's first
// available charger and records it in the active index and session log.
// Users already holding an open session are rejected.
func (r *Registry) StartCharging(userID uuid.UUID, stationID int) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	station, ok := r.stations[stationID]
	if !ok {
		return nil, ErrStationNotFound
	}
	if user.ActiveSession != nil {
		return nil, models.ErrSessionActive
	}

	available := station.AvailableChargers()
	if len(available) == 0 {
		return nil, ErrNoChargerAvailable
	}

	session, err := user.StartSession(available[0])
	if err != nil {
		return nil, err
	}
	r.active[userID] = session
	r.sessionLog = append(r.sessionLog, session)
	return session, nil
}

// EndCharging closes the user's active session. The active index entry is
// removed regardless of whether a session existed.
func (r *Registry) EndCharging(userID uuid.UUID) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	session, err := user.EndSession()
	delete(r.active, userID)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// ActiveSession returns the open session recorded for the user, if any.
func (r *Registry) ActiveSession(userID uuid.UUID) (*models.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.active[userID]
	return session, ok
}

// RechargeBalance tops up the user's prepaid balance.
func (r *Registry) RechargeBalance(userID uuid.UUID, amount float64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	if err := user.Recharge(amount); err != nil {
		return nil, err
	}
	return user, nil
}

// SessionHistory returns the user's closed sessions in completion order.
func (r *Registry) SessionHistory(userID uuid.UUID) ([]*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user.History, nil
}

// AddMaintenance stores a maintenance record under its id.
func (r *Registry) AddMaintenance(m *models.Maintenance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.maintenances[m.ID]; ok {
		return ErrMaintenanceExists
	}
	r.maintenances[m.ID] = m
	return nil
}

// Maintenance looks up a maintenance record by id.
func (r *Registry) Maintenance(id int) (*models.Maintenance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.maintenances[id]
	if !ok {
		return nil, ErrMaintenanceNotFound
	}
	return m, nil
}

// Maintenances lists maintenance records, filtered by station when
// stationID is non-zero.
func (r *Registry) Maintenances(stationID int) []*models.Maintenance {
	r.mu.RLock()
	defer r.mu.RUnlock()
	records := make([]*models.Maintenance, 0, len(r.maintenances))
	for _, m := range r.maintenances {
		if stationID != 0 && m.StationID != stationID {
			continue
		}
		records = append(records, m)
	}
	return records
}

// AvailabilityReport summarizes charger availability at a station.
type AvailabilityReport struct {
	StationID           int     `json:"station_id"`
	StationName         string  `json:"station_name"`
	TotalChargers       int     `json:"total_chargers"`
	Available           int     `json:"available"`
	Occupied            int     `json:"occupied"`
	AvailabilityPercent float64 `json:"availability_percent"`
}

// Availability reports total, available and occupied charger counts for a
// station plus an availability percentage (zero for empty stations).
func (r *Registry) Availability(stationID int) (AvailabilityReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	station, ok := r.stations[stationID]
	if !ok {
		return AvailabilityReport{}, ErrStationNotFound
	}

	total := len(station.Chargers)
	available := len(station.AvailableChargers())
	report := AvailabilityReport{
		StationID:     stationID,
		StationName:   station.Name,
		TotalChargers: total,
		Available:     available,
		Occupied:      total - available,
	}
	if total > 0 {
		report.AvailabilityPercent = float64(available) / float64(total) * 100
	}
	return report, nil
}

// ConsumptionReport summarizes charging activity at a station.
type ConsumptionReport struct {
	StationID        int     `json:"station_id"`
	StationName      string  `json:"station_name"`
	TotalSessions    int     `json:"total_sessions"`
	ActiveSessions   int     `json:"active_sessions"`
	TotalEnergyKWh   float64 `json:"total_energy_kwh"`
	OccupiedChargers int     `json:"occupied_chargers"`
}

// Consumption counts every logged session whose charger belongs to the
// station, active and completed alike, together with delivered energy and
// the currently occupied charger count.
func (r *Registry) Consumption(stationID int) (ConsumptionReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	station, ok := r.stations[stationID]
	if !ok {
		return ConsumptionReport{}, ErrStationNotFound
	}

	owned := make(map[int]struct{}, len(station.Chargers))
	occupied := 0
	for _, c := range station.Chargers {
		owned[c.ID] = struct{}{}
		if c.Status == models.ChargerStatusOccupied {
			occupied++
		}
	}

	report := ConsumptionReport{
		StationID:        stationID,
		StationName:      station.Name,
		OccupiedChargers: occupied,
	}
	for _, s := range r.sessionLog {
		if _, ok := owned[s.Charger.ID]; !ok {
			continue
		}
		report.TotalSessions++
		if s.Active() {
			report.ActiveSessions++
		} else {
			report.TotalEnergyKWh += s.EnergyKWh
		}
	}
	return report, nil
}
