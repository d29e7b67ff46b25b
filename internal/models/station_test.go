package models

import "testing"

func TestStationAvailableChargersKeepsInsertionOrder(t *testing.T) {
	station := NewStation(1, "Central", "Av. Paulista 1000")
	first := NewCharger(101, ChargerKindFast)
	second := NewCharger(102, ChargerKindNormal)
	third := NewCharger(103, ChargerKindFast)
	station.AddCharger(first)
	station.AddCharger(second)
	station.AddCharger(third)

	second.Status = ChargerStatusOccupied

	available := station.AvailableChargers()
	if len(available) != 2 {
		t.Fatalf("expected 2 available chargers, got %d", len(available))
	}
	if available[0] != first || available[1] != third {
		t.Fatalf("expected insertion order [101 103], got [%d %d]", available[0].ID, available[1].ID)
	}
}

func TestStationReserveChargerTakesEarliestAvailable(t *testing.T) {
	station := NewStation(2, "Norte", "Rua A 10")
	first := NewCharger(201, ChargerKindNormal)
	second := NewCharger(202, ChargerKindFast)
	station.AddCharger(first)
	station.AddCharger(second)

	first.Status = ChargerStatusMaintenance

	reserved := station.ReserveCharger()
	if reserved != second {
		t.Fatalf("expected charger 202 reserved, got %v", reserved)
	}
	if reserved.Status != ChargerStatusOccupied {
		t.Fatalf("reserved charger should be occupied, got %s", reserved.Status)
	}

	if got := station.ReserveCharger(); got != nil {
		t.Fatalf("expected nil when no charger is available, got %d", got.ID)
	}
}

func TestStationWithoutChargersHasNoneAvailable(t *testing.T) {
	station := NewStation(3, "Sul", "Rua B 20")
	if got := station.AvailableChargers(); len(got) != 0 {
		t.Fatalf("expected no available chargers, got %d", len(got))
	}
	if got := station.ReserveCharger(); got != nil {
		t.Fatalf("expected nil reservation on empty station, got %d", got.ID)
	}
}
