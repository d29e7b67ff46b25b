package service

import (
	"errors"

	"go.uber.org/zap"

	"voltedge/internal/models"
	"voltedge/internal/registry"
)

var (
	// ErrInvalidMaintenanceKind is returned for kinds other than
	// preventive or corrective.
	ErrInvalidMaintenanceKind = errors.New("service: invalid maintenance kind")
	// ErrMissingFrequency is returned when scheduling preventive
	// maintenance without a frequency.
	ErrMissingFrequency = errors.New("service: frequency is required for preventive maintenance")
	// ErrMissingFaultDescription is returned when scheduling corrective
	// maintenance without a fault description.
	ErrMissingFaultDescription = errors.New("service: fault description is required for corrective maintenance")
)

// ScheduleMaintenanceInput carries scheduling data for either variant.
type ScheduleMaintenanceInput struct {
	ID               int
	StationID        int
	Date             string
	Technician       string
	Kind             models.MaintenanceKind
	Frequency        string
	FaultDescription string
}

// MaintenanceService drives the maintenance workflow. Kind-specific
// required fields are validated here; the records themselves do not
// cross-validate.
type MaintenanceService struct {
	reg    *registry.Registry
	logger *zap.Logger
}

// NewMaintenanceService builds the service.
func NewMaintenanceService(reg *registry.Registry, logger *zap.Logger) *MaintenanceService {
	return &MaintenanceService{reg: reg, logger: logger}
}

// Schedule creates a maintenance record and assigns it to its station.
func (s *MaintenanceService) Schedule(input ScheduleMaintenanceInput) (*models.Maintenance, error) {
	var m *models.Maintenance
	switch input.Kind {
	case models.MaintenancePreventive:
		if input.Frequency == "" {
			return nil, ErrMissingFrequency
		}
		m = models.NewPreventiveMaintenance(input.ID, input.Date, input.Technician, input.Frequency)
	case models.MaintenanceCorrective:
		if input.FaultDescription == "" {
			return nil, ErrMissingFaultDescription
		}
		m = models.NewCorrectiveMaintenance(input.ID, input.Date, input.Technician, input.FaultDescription)
	default:
		return nil, ErrInvalidMaintenanceKind
	}

	m.AssignStation(input.StationID)
	if err := s.reg.AddMaintenance(m); err != nil {
		return nil, err
	}

	s.logger.Info(m.Schedule(),
		zap.Int("maintenance_id", m.ID),
		zap.Int("station_id", m.StationID),
		zap.String("kind", string(m.Kind)),
		zap.String("technician", m.Technician),
	)
	return m, nil
}

// Start moves a maintenance record to in_progress.
func (s *MaintenanceService) Start(id int) (*models.Maintenance, error) {
	m, err := s.reg.Maintenance(id)
	if err != nil {
		return nil, err
	}
	s.logger.Info(m.Start(), zap.Int("maintenance_id", m.ID))
	return m, nil
}

// Complete moves a maintenance record to completed with the given notes.
func (s *MaintenanceService) Complete(id int, notes string) (*models.Maintenance, error) {
	m, err := s.reg.Maintenance(id)
	if err != nil {
		return nil, err
	}
	s.logger.Info(m.Complete(notes), zap.Int("maintenance_id", m.ID))
	return m, nil
}

// Maintenance resolves a record by id.
func (s *MaintenanceService) Maintenance(id int) (*models.Maintenance, error) {
	return s.reg.Maintenance(id)
}

// List returns maintenance records, filtered by station when stationID is
// non-zero.
func (s *MaintenanceService) List(stationID int) []*models.Maintenance {
	return s.reg.Maintenances(stationID)
}
