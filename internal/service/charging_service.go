package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"voltedge/internal/events"
	"voltedge/internal/models"
	"voltedge/internal/registry"
)

// ErrInvalidChargerKind is returned for charger kinds other than fast or
// normal.
var ErrInvalidChargerKind = errors.New("service: invalid charger kind")

// ChargingService orchestrates stations, chargers, sessions and balances
// over the shared registry. Charger status transitions are published to the
// event hub for live subscribers.
type ChargingService struct {
	reg    *registry.Registry
	hub    *events.Hub
	logger *zap.Logger
}

// NewChargingService builds the service. The hub may be nil when no live
// feed is attached.
func NewChargingService(reg *registry.Registry, hub *events.Hub, logger *zap.Logger) *ChargingService {
	return &ChargingService{reg: reg, hub: hub, logger: logger}
}

// CreateStation registers a new charging station.
func (s *ChargingService) CreateStation(id int, name, location string) (*models.Station, error) {
	station := models.NewStation(id, name, location)
	if err := s.reg.AddStation(station); err != nil {
		return nil, err
	}
	s.logger.Info("station created", zap.Int("station_id", id), zap.String("name", name), zap.String("location", location))
	return station, nil
}

// Station resolves a station by id.
func (s *ChargingService) Station(id int) (*models.Station, error) {
	return s.reg.Station(id)
}

// Stations lists all stations.
func (s *ChargingService) Stations() []*models.Station {
	return s.reg.Stations()
}

// DeleteStation removes a station. Maintenance records keep their weak
// station reference.
func (s *ChargingService) DeleteStation(id int) error {
	if err := s.reg.DeleteStation(id); err != nil {
		return err
	}
	s.logger.Info("station deleted", zap.Int("station_id", id))
	return nil
}

// AddCharger creates a charger and attaches it to the station.
func (s *ChargingService) AddCharger(stationID, chargerID int, kind models.ChargerKind) (*models.Charger, error) {
	if kind != models.ChargerKindFast && kind != models.ChargerKindNormal {
		return nil, ErrInvalidChargerKind
	}
	charger := models.NewCharger(chargerID, kind)
	if err := s.reg.AddCharger(stationID, charger); err != nil {
		return nil, err
	}
	s.logger.Info("charger added",
		zap.Int("station_id", stationID),
		zap.Int("charger_id", chargerID),
		zap.String("kind", string(kind)),
	)
	return charger, nil
}

// Charger resolves a charger by id.
func (s *ChargingService) Charger(id int) (*models.Charger, error) {
	return s.reg.Charger(id)
}

// Chargers lists all chargers.
func (s *ChargingService) Chargers() []*models.Charger {
	return s.reg.Chargers()
}

// StartCharging opens a session for the user on the station's first
// available charger.
func (s *ChargingService) StartCharging(userID uuid.UUID, stationID int) (*models.Session, error) {
	session, err := s.reg.StartCharging(userID, stationID)
	if err != nil {
		return nil, err
	}

	s.publishStatus(stationID, session.Charger)
	s.logger.Info("charging started",
		zap.String("user_id", userID.String()),
		zap.Int("station_id", stationID),
		zap.Int("charger_id", session.Charger.ID),
	)
	return session, nil
}

// EndCharging closes the user's active session and settles it. A billing
// shortfall never blocks closure; it is logged here.
func (s *ChargingService) EndCharging(userID uuid.UUID) (*models.Session, error) {
	session, err := s.reg.EndCharging(userID)
	if err != nil {
		return nil, err
	}

	if stationID, ok := s.reg.StationForCharger(session.Charger.ID); ok {
		s.publishStatus(stationID, session.Charger)
	}

	if !session.Billed && session.Cost > 0 {
		s.logger.Warn("insufficient balance, session closed unbilled",
			zap.String("user_id", userID.String()),
			zap.Float64("cost", session.Cost),
			zap.Float64("balance", session.User.Balance),
		)
	}
	s.logger.Info("charging ended",
		zap.String("user_id", userID.String()),
		zap.Int("charger_id", session.Charger.ID),
		zap.Int("duration_min", session.DurationMinutes()),
		zap.Float64("energy_kwh", session.EnergyKWh),
		zap.Float64("cost", session.Cost),
		zap.Bool("billed", session.Billed),
	)
	return session, nil
}

// ActiveSession returns the user's open session, if any.
func (s *ChargingService) ActiveSession(userID uuid.UUID) (*models.Session, bool) {
	return s.reg.ActiveSession(userID)
}

// Recharge tops up the user's prepaid balance.
func (s *ChargingService) Recharge(userID uuid.UUID, amount float64) (*models.User, error) {
	user, err := s.reg.RechargeBalance(userID, amount)
	if err != nil {
		return nil, err
	}
	s.logger.Info("balance recharged",
		zap.String("user_id", userID.String()),
		zap.Float64("amount", amount),
		zap.Float64("balance", user.Balance),
	)
	return user, nil
}

// History returns the user's closed sessions.
func (s *ChargingService) History(userID uuid.UUID) ([]*models.Session, error) {
	return s.reg.SessionHistory(userID)
}

// Availability reports charger availability for a station.
func (s *ChargingService) Availability(stationID int) (registry.AvailabilityReport, error) {
	return s.reg.Availability(stationID)
}

// Consumption reports historical charging activity for a station.
func (s *ChargingService) Consumption(stationID int) (registry.ConsumptionReport, error) {
	return s.reg.Consumption(stationID)
}

func (s *ChargingService) publishStatus(stationID int, charger *models.Charger) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(events.ChargerStatus{
		StationID:  stationID,
		ChargerID:  charger.ID,
		Status:     charger.Status,
		OccurredAt: time.Now().UTC(),
	})
}
