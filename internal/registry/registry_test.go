package registry

import (
	"errors"
	"testing"

	"voltedge/internal/models"
)

func seedStation(t *testing.T, reg *Registry, stationID int, chargerIDs ...int) *models.Station {
	t.Helper()
	station := models.NewStation(stationID, "Central", "Av. Paulista 1000")
	if err := reg.AddStation(station); err != nil {
		t.Fatalf("add station: %v", err)
	}
	for _, id := range chargerIDs {
		if err := reg.AddCharger(stationID, models.NewCharger(id, models.ChargerKindFast)); err != nil {
			t.Fatalf("add charger %d: %v", id, err)
		}
	}
	return station
}

func seedUser(t *testing.T, reg *Registry, email string, balance float64) *models.User {
	t.Helper()
	user := models.NewUser("Ana", email, "hash", models.RoleIndividual, balance)
	if err := reg.AddUser(user); err != nil {
		t.Fatalf("add user: %v", err)
	}
	return user
}

func TestRegistryStationAndChargerUniqueness(t *testing.T) {
	reg := New()
	seedStation(t, reg, 1, 101)

	if err := reg.AddStation(models.NewStation(1, "Dup", "elsewhere")); !errors.Is(err, ErrStationExists) {
		t.Fatalf("expected ErrStationExists, got %v", err)
	}

	other := models.NewStation(2, "Norte", "Rua A 10")
	if err := reg.AddStation(other); err != nil {
		t.Fatalf("add second station: %v", err)
	}
	// Charger ids are unique across the whole network, not per station.
	if err := reg.AddCharger(2, models.NewCharger(101, models.ChargerKindNormal)); !errors.Is(err, ErrChargerExists) {
		t.Fatalf("expected ErrChargerExists, got %v", err)
	}
	if err := reg.AddCharger(99, models.NewCharger(102, models.ChargerKindNormal)); !errors.Is(err, ErrStationNotFound) {
		t.Fatalf("expected ErrStationNotFound, got %v", err)
	}
}

func TestRegistryDeleteStationDropsItsChargers(t *testing.T) {
	reg := New()
	seedStation(t, reg, 1, 101, 102)

	if err := reg.DeleteStation(1); err != nil {
		t.Fatalf("delete station: %v", err)
	}
	if _, err := reg.Station(1); !errors.Is(err, ErrStationNotFound) {
		t.Fatalf("expected ErrStationNotFound, got %v", err)
	}
	if _, err := reg.Charger(101); !errors.Is(err, ErrChargerNotFound) {
		t.Fatalf("expected charger 101 gone, got %v", err)
	}
	if err := reg.DeleteStation(1); !errors.Is(err, ErrStationNotFound) {
		t.Fatalf("expected ErrStationNotFound on repeat delete, got %v", err)
	}
}

func TestRegistryUserEmailUniqueness(t *testing.T) {
	reg := New()
	seedUser(t, reg, "ana@example.com", 50)

	dup := models.NewUser("Other", "ana@example.com", "hash", models.RoleEmpresa, 0)
	if err := reg.AddUser(dup); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	found, err := reg.UserByEmail("ana@example.com")
	if err != nil {
		t.Fatalf("user by email: %v", err)
	}
	if found.Name != "Ana" {
		t.Fatalf("wrong user resolved: %s", found.Name)
	}
	if _, err := reg.UserByEmail("missing@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRegistryStartChargingTakesFirstAvailableCharger(t *testing.T) {
	reg := New()
	station := seedStation(t, reg, 1, 101, 102)
	user := seedUser(t, reg, "ana@example.com", 100)

	station.Chargers[0].Status = models.ChargerStatusMaintenance

	session, err := reg.StartCharging(user.ID, 1)
	if err != nil {
		t.Fatalf("start charging: %v", err)
	}
	if session.Charger.ID != 102 {
		t.Fatalf("expected charger 102, got %d", session.Charger.ID)
	}
	if session.Charger.Status != models.ChargerStatusOccupied {
		t.Fatalf("charger should be occupied, got %s", session.Charger.Status)
	}
	if got, ok := reg.ActiveSession(user.ID); !ok || got != session {
		t.Fatal("active session should be indexed for the user")
	}
}

func TestRegistryStartChargingRejectsSecondSession(t *testing.T) {
	reg := New()
	seedStation(t, reg, 1, 101, 102)
	user := seedUser(t, reg, "ana@example.com", 100)

	if _, err := reg.StartCharging(user.ID, 1); err != nil {
		t.Fatalf("start charging: %v", err)
	}
	if _, err := reg.StartCharging(user.ID, 1); !errors.Is(err, models.ErrSessionActive) {
		t.Fatalf("expected ErrSessionActive, got %v", err)
	}
}

func TestRegistryStartChargingWithNoFreeCharger(t *testing.T) {
	reg := New()
	seedStation(t, reg, 1, 101)
	first := seedUser(t, reg, "ana@example.com", 100)
	second := seedUser(t, reg, "bruno@example.com", 100)

	if _, err := reg.StartCharging(first.ID, 1); err != nil {
		t.Fatalf("start charging: %v", err)
	}
	if _, err := reg.StartCharging(second.ID, 1); !errors.Is(err, ErrNoChargerAvailable) {
		t.Fatalf("expected ErrNoChargerAvailable, got %v", err)
	}
}

func TestRegistryEndChargingClearsActiveIndex(t *testing.T) {
	reg := New()
	seedStation(t, reg, 1, 101)
	user := seedUser(t, reg, "ana@example.com", 100)

	started, err := reg.StartCharging(user.ID, 1)
	if err != nil {
		t.Fatalf("start charging: %v", err)
	}

	closed, err := reg.EndCharging(user.ID)
	if err != nil {
		t.Fatalf("end charging: %v", err)
	}
	if closed != started {
		t.Fatal("closed session should be the one started")
	}
	if closed.Active() {
		t.Fatal("session should be closed")
	}
	if _, ok := reg.ActiveSession(user.ID); ok {
		t.Fatal("active index should be cleared")
	}

	if _, err := reg.EndCharging(user.ID); !errors.Is(err, models.ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession on repeat end, got %v", err)
	}

	history, err := reg.SessionHistory(user.ID)
	if err != nil {
		t.Fatalf("session history: %v", err)
	}
	if len(history) != 1 || history[0] != closed {
		t.Fatalf("expected closed session in history, got %d entries", len(history))
	}
}

func TestRegistryAvailabilityReport(t *testing.T) {
	reg := New()
	station := seedStation(t, reg, 1, 101, 102, 103, 104)
	station.Chargers[0].Status = models.ChargerStatusOccupied

	report, err := reg.Availability(1)
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	if report.TotalChargers != 4 || report.Available != 3 || report.Occupied != 1 {
		t.Fatalf("unexpected counts: %+v", report)
	}
	if report.AvailabilityPercent != 75 {
		t.Fatalf("expected 75%%, got %.2f", report.AvailabilityPercent)
	}

	empty := models.NewStation(2, "Norte", "Rua A 10")
	if err := reg.AddStation(empty); err != nil {
		t.Fatalf("add station: %v", err)
	}
	report, err = reg.Availability(2)
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	if report.AvailabilityPercent != 0 {
		t.Fatalf("empty station should report 0%%, got %.2f", report.AvailabilityPercent)
	}

	if _, err := reg.Availability(9); !errors.Is(err, ErrStationNotFound) {
		t.Fatalf("expected ErrStationNotFound, got %v", err)
	}
}

func TestRegistryConsumptionCoversFullHistory(t *testing.T) {
	reg := New()
	seedStation(t, reg, 1, 101, 102)
	seedStation(t, reg, 2, 201)
	ana := seedUser(t, reg, "ana@example.com", 100)
	bruno := seedUser(t, reg, "bruno@example.com", 100)

	if _, err := reg.StartCharging(ana.ID, 1); err != nil {
		t.Fatalf("start charging: %v", err)
	}
	if _, err := reg.EndCharging(ana.ID); err != nil {
		t.Fatalf("end charging: %v", err)
	}
	if _, err := reg.StartCharging(ana.ID, 1); err != nil {
		t.Fatalf("restart charging: %v", err)
	}
	if _, err := reg.StartCharging(bruno.ID, 2); err != nil {
		t.Fatalf("start charging elsewhere: %v", err)
	}

	report, err := reg.Consumption(1)
	if err != nil {
		t.Fatalf("consumption: %v", err)
	}
	if report.TotalSessions != 2 {
		t.Fatalf("expected 2 sessions counted, got %d", report.TotalSessions)
	}
	if report.ActiveSessions != 1 {
		t.Fatalf("expected 1 active session, got %d", report.ActiveSessions)
	}
	if report.OccupiedChargers != 1 {
		t.Fatalf("expected 1 occupied charger, got %d", report.OccupiedChargers)
	}

	other, err := reg.Consumption(2)
	if err != nil {
		t.Fatalf("consumption: %v", err)
	}
	if other.TotalSessions != 1 || other.ActiveSessions != 1 {
		t.Fatalf("station 2 should only see its own session, got %+v", other)
	}
}

func TestRegistryStationForCharger(t *testing.T) {
	reg := New()
	seedStation(t, reg, 1, 101)

	stationID, ok := reg.StationForCharger(101)
	if !ok || stationID != 1 {
		t.Fatalf("expected station 1, got %d (found=%v)", stationID, ok)
	}
	if _, ok := reg.StationForCharger(999); ok {
		t.Fatal("unknown charger should not resolve")
	}
}

func TestRegistryMaintenanceFilter(t *testing.T) {
	reg := New()

	first := models.NewPreventiveMaintenance(5001, "2026-04-01", "Carlos", "monthly")
	first.AssignStation(1)
	second := models.NewCorrectiveMaintenance(5002, "2026-04-02", "Marta", "dead display")
	second.AssignStation(2)
	for _, m := range []*models.Maintenance{first, second} {
		if err := reg.AddMaintenance(m); err != nil {
			t.Fatalf("add maintenance: %v", err)
		}
	}

	if err := reg.AddMaintenance(models.NewPreventiveMaintenance(5001, "2026-04-03", "Carlos", "weekly")); !errors.Is(err, ErrMaintenanceExists) {
		t.Fatalf("expected ErrMaintenanceExists, got %v", err)
	}

	if got := reg.Maintenances(0); len(got) != 2 {
		t.Fatalf("expected 2 records unfiltered, got %d", len(got))
	}
	filtered := reg.Maintenances(2)
	if len(filtered) != 1 || filtered[0].ID != 5002 {
		t.Fatalf("expected only record 5002 for station 2, got %d records", len(filtered))
	}

	if _, err := reg.Maintenance(5999); !errors.Is(err, ErrMaintenanceNotFound) {
		t.Fatalf("expected ErrMaintenanceNotFound, got %v", err)
	}
}

func TestRegistryRechargeBalance(t *testing.T) {
	reg := New()
	user := seedUser(t, reg, "ana@example.com", 50)

	updated, err := reg.RechargeBalance(user.ID, 30)
	if err != nil {
		t.Fatalf("recharge: %v", err)
	}
	if updated.Balance != 80 {
		t.Fatalf("expected balance 80, got %.2f", updated.Balance)
	}
	if _, err := reg.RechargeBalance(user.ID, -5); !errors.Is(err, models.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}
