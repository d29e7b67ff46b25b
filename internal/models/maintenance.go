package models

import (
	"fmt"
	"time"
)

// MaintenanceKind discriminates the maintenance variants.
type MaintenanceKind string

const (
	MaintenancePreventive MaintenanceKind = "preventive"
	MaintenanceCorrective MaintenanceKind = "corrective"
)

// MaintenanceStatus follows the linear scheduled -> in_progress -> completed
// path. There is no cancellation or reopening.
type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "scheduled"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
)

const maintenanceDateLayout = "2006-01-02"

// Maintenance is a service event weakly associated to a station by id.
// Frequency is set for preventive records, FaultDescription for corrective
// ones; kind-specific required fields are validated by the scheduling layer.
type Maintenance struct {
	ID               int               `json:"id"`
	Date             time.Time         `json:"date"`
	Technician       string            `json:"technician"`
	Kind             MaintenanceKind   `json:"kind"`
	Status           MaintenanceStatus `json:"status"`
	Notes            string            `json:"notes"`
	StationID        int               `json:"station_id,omitempty"`
	Frequency        string            `json:"frequency,omitempty"`
	FaultDescription string            `json:"fault_description,omitempty"`
}

// NewPreventiveMaintenance builds a scheduled preventive record.
func NewPreventiveMaintenance(id int, date, technician, frequency string) *Maintenance {
	m := newMaintenance(id, date, technician, MaintenancePreventive)
	m.Frequency = frequency
	return m
}

// NewCorrectiveMaintenance builds a scheduled corrective record.
func NewCorrectiveMaintenance(id int, date, technician, faultDescription string) *Maintenance {
	m := newMaintenance(id, date, technician, MaintenanceCorrective)
	m.FaultDescription = faultDescription
	return m
}

func newMaintenance(id int, date, technician string, kind MaintenanceKind) *Maintenance {
	// Unparseable dates fall back to the current date, matching the
	// tolerant intake the rest of the workflow expects.
	parsed, err := time.Parse(maintenanceDateLayout, date)
	if err != nil {
		parsed = timeNow()
	}
	return &Maintenance{
		ID:         id,
		Date:       parsed,
		Technician: technician,
		Kind:       kind,
		Status:     MaintenanceScheduled,
	}
}

// AssignStation records a weak reference to the station; callable any time.
func (m *Maintenance) AssignStation(stationID int) {
	m.StationID = stationID
}

// Schedule sets the scheduled status and returns a confirmation message.
func (m *Maintenance) Schedule() string {
	m.Status = MaintenanceScheduled
	return fmt.Sprintf("maintenance %d scheduled for %s at station %d",
		m.ID, m.Date.Format(maintenanceDateLayout), m.StationID)
}

// Start moves the record to in_progress unconditionally.
func (m *Maintenance) Start() string {
	m.Status = MaintenanceInProgress
	return fmt.Sprintf("maintenance %d started by %s", m.ID, m.Technician)
}

// Complete moves the record to completed and stores the notes verbatim.
func (m *Maintenance) Complete(notes string) string {
	m.Status = MaintenanceCompleted
	m.Notes = notes
	return fmt.Sprintf("maintenance %d completed. notes: %s", m.ID, m.Notes)
}
