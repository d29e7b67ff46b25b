package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"voltedge/internal/models"
	"voltedge/internal/registry"
)

func newMaintenanceService(t *testing.T) *MaintenanceService {
	t.Helper()
	return NewMaintenanceService(registry.New(), zap.NewNop())
}

func TestMaintenanceServiceScheduleAndWorkflow(t *testing.T) {
	svc := newMaintenanceService(t)

	m, err := svc.Schedule(ScheduleMaintenanceInput{
		ID:         5001,
		StationID:  1,
		Date:       "2026-04-01",
		Technician: "Carlos",
		Kind:       models.MaintenancePreventive,
		Frequency:  "monthly",
	})
	require.NoError(t, err)
	assert.Equal(t, models.MaintenanceScheduled, m.Status)
	assert.Equal(t, 1, m.StationID)

	started, err := svc.Start(5001)
	require.NoError(t, err)
	assert.Equal(t, models.MaintenanceInProgress, started.Status)

	completed, err := svc.Complete(5001, "replaced cable")
	require.NoError(t, err)
	assert.Equal(t, models.MaintenanceCompleted, completed.Status)
	assert.Equal(t, "replaced cable", completed.Notes)
}

func TestMaintenanceServiceKindValidation(t *testing.T) {
	svc := newMaintenanceService(t)

	_, err := svc.Schedule(ScheduleMaintenanceInput{
		ID: 1, Kind: models.MaintenancePreventive, Date: "2026-04-01", Technician: "Carlos",
	})
	assert.ErrorIs(t, err, ErrMissingFrequency)

	_, err = svc.Schedule(ScheduleMaintenanceInput{
		ID: 2, Kind: models.MaintenanceCorrective, Date: "2026-04-01", Technician: "Marta",
	})
	assert.ErrorIs(t, err, ErrMissingFaultDescription)

	_, err = svc.Schedule(ScheduleMaintenanceInput{
		ID: 3, Kind: "predictive", Date: "2026-04-01", Technician: "Marta",
	})
	assert.ErrorIs(t, err, ErrInvalidMaintenanceKind)
}

func TestMaintenanceServiceDuplicateAndLookup(t *testing.T) {
	svc := newMaintenanceService(t)

	input := ScheduleMaintenanceInput{
		ID: 5001, StationID: 1, Date: "2026-04-01", Technician: "Carlos",
		Kind: models.MaintenancePreventive, Frequency: "monthly",
	}
	_, err := svc.Schedule(input)
	require.NoError(t, err)

	_, err = svc.Schedule(input)
	assert.ErrorIs(t, err, registry.ErrMaintenanceExists)

	_, err = svc.Start(5999)
	assert.ErrorIs(t, err, registry.ErrMaintenanceNotFound)
	_, err = svc.Complete(5999, "n/a")
	assert.ErrorIs(t, err, registry.ErrMaintenanceNotFound)
}

func TestMaintenanceServiceListByStation(t *testing.T) {
	svc := newMaintenanceService(t)

	_, err := svc.Schedule(ScheduleMaintenanceInput{
		ID: 5001, StationID: 1, Date: "2026-04-01", Technician: "Carlos",
		Kind: models.MaintenancePreventive, Frequency: "monthly",
	})
	require.NoError(t, err)
	_, err = svc.Schedule(ScheduleMaintenanceInput{
		ID: 5002, StationID: 2, Date: "2026-04-02", Technician: "Marta",
		Kind: models.MaintenanceCorrective, FaultDescription: "dead display",
	})
	require.NoError(t, err)

	assert.Len(t, svc.List(0), 2)
	filtered := svc.List(2)
	require.Len(t, filtered, 1)
	assert.Equal(t, 5002, filtered[0].ID)
}
