package models

import "errors"

// ChargerKind distinguishes charging speeds.
type ChargerKind string

const (
	ChargerKindFast   ChargerKind = "fast"
	ChargerKindNormal ChargerKind = "normal"
)

// ChargerStatus is the availability state of a single charging point.
type ChargerStatus string

const (
	ChargerStatusAvailable   ChargerStatus = "available"
	ChargerStatusOccupied    ChargerStatus = "occupied"
	ChargerStatusMaintenance ChargerStatus = "maintenance"
)

var (
	// ErrChargerUnavailable is returned when starting a charge on a charger
	// that is occupied or under maintenance.
	ErrChargerUnavailable = errors.New("charger: not available")
	// ErrChargerNotOccupied is returned when stopping a charge on a charger
	// that is not occupied.
	ErrChargerNotOccupied = errors.New("charger: not occupied")
)

// Charger is a single charging point. It is owned by exactly one station;
// its status only changes through StartCharge and StopCharge.
type Charger struct {
	ID     int           `json:"id"`
	Kind   ChargerKind   `json:"kind"`
	Status ChargerStatus `json:"status"`
}

// NewCharger returns an available charger.
func NewCharger(id int, kind ChargerKind) *Charger {
	return &Charger{ID: id, Kind: kind, Status: ChargerStatusAvailable}
}

// IsAvailable reports whether the charger can accept a new session.
func (c *Charger) IsAvailable() bool {
	return c.Status == ChargerStatusAvailable
}

// StartCharge transitions available -> occupied.
func (c *Charger) StartCharge() error {
	if c.Status != ChargerStatusAvailable {
		return ErrChargerUnavailable
	}
	c.Status = ChargerStatusOccupied
	return nil
}

// StopCharge transitions occupied -> available.
func (c *Charger) StopCharge() error {
	if c.Status != ChargerStatusOccupied {
		return ErrChargerNotOccupied
	}
	c.Status = ChargerStatusAvailable
	return nil
}
