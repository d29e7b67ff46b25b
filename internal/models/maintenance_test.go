package models

import (
	"strings"
	"testing"
	"time"
)

func TestMaintenanceLifecycle(t *testing.T) {
	m := NewPreventiveMaintenance(5001, "2026-04-01", "Carlos", "monthly")
	if m.Status != MaintenanceScheduled {
		t.Fatalf("new maintenance should be scheduled, got %s", m.Status)
	}
	if m.Frequency != "monthly" {
		t.Fatalf("expected frequency monthly, got %q", m.Frequency)
	}

	m.AssignStation(1)
	msg := m.Schedule()
	if !strings.Contains(msg, "5001") || !strings.Contains(msg, "2026-04-01") {
		t.Fatalf("schedule message missing id or date: %q", msg)
	}

	msg = m.Start()
	if m.Status != MaintenanceInProgress {
		t.Fatalf("expected in_progress after start, got %s", m.Status)
	}
	if !strings.Contains(msg, "Carlos") {
		t.Fatalf("start message should name the technician: %q", msg)
	}

	msg = m.Complete("replaced cable on charger 101")
	if m.Status != MaintenanceCompleted {
		t.Fatalf("expected completed, got %s", m.Status)
	}
	if m.Notes != "replaced cable on charger 101" {
		t.Fatalf("notes should be stored verbatim, got %q", m.Notes)
	}
	if !strings.Contains(msg, "replaced cable on charger 101") {
		t.Fatalf("completion message should carry the notes: %q", msg)
	}
}

func TestCorrectiveMaintenanceCarriesFault(t *testing.T) {
	m := NewCorrectiveMaintenance(5002, "2026-04-02", "Marta", "connector will not latch")
	if m.Kind != MaintenanceCorrective {
		t.Fatalf("expected corrective kind, got %s", m.Kind)
	}
	if m.FaultDescription != "connector will not latch" {
		t.Fatalf("fault description lost: %q", m.FaultDescription)
	}
	if m.Frequency != "" {
		t.Fatalf("corrective record should carry no frequency, got %q", m.Frequency)
	}
}

func TestMaintenanceDateFallsBackToNow(t *testing.T) {
	now := time.Date(2026, 5, 20, 15, 30, 0, 0, time.UTC)
	setClock(t, now)

	m := NewPreventiveMaintenance(5003, "next tuesday", "Carlos", "weekly")
	if !m.Date.Equal(now) {
		t.Fatalf("unparseable date should fall back to now, got %s", m.Date)
	}

	parsed := NewPreventiveMaintenance(5004, "2026-06-15", "Carlos", "weekly")
	want := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	if !parsed.Date.Equal(want) {
		t.Fatalf("expected parsed date %s, got %s", want, parsed.Date)
	}
}

func TestMaintenanceTransitionsAreUnconditional(t *testing.T) {
	m := NewCorrectiveMaintenance(5005, "2026-04-03", "Marta", "display dead")

	// Complete straight from scheduled, then restart. The linear path is
	// not enforced by the record itself.
	m.Complete("no fault found")
	if m.Status != MaintenanceCompleted {
		t.Fatalf("expected completed, got %s", m.Status)
	}
	m.Start()
	if m.Status != MaintenanceInProgress {
		t.Fatalf("expected in_progress after restart, got %s", m.Status)
	}
}
