package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entnt/dentalcare-server/internal/model"
)

func TestClinic_Incidents_RoleScoped(t *testing.T) {
	c, _ := newTestClinic(t)

	assert.Len(t, c.Incidents(adminCaller(t, c)), 4)

	own := c.Incidents(patientCaller(t, c))
	require.Len(t, own, 2)
	for _, i := range own {
		assert.Equal(t, "p1", i.PatientID)
	}
}

func TestClinic_IncidentByID_DeniesForeignRecord(t *testing.T) {
	c, _ := newTestClinic(t)
	patient := patientCaller(t, c)

	// i3 belongs to p2, the caller is linked to p1.
	_, err := c.IncidentByID(patient, "i3")
	require.ErrorIs(t, err, model.ErrNotFound)

	got, err := c.IncidentByID(patient, "i1")
	require.NoError(t, err)
	assert.Equal(t, "Routine Cleaning", got.Title)
}

func TestClinic_AddIncident(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClinic(t)
	admin := adminCaller(t, c)

	i, err := c.AddIncident(ctx, admin, model.CreateIncidentParams{
		PatientID:       "p3",
		Title:           "Wisdom Tooth Extraction",
		Description:     "Impacted lower left",
		AppointmentDate: "2025-02-10T09:30:00",
		Status:          model.StatusScheduled,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(i.ID, "i-"))
	assert.Len(t, c.Incidents(admin), 5)
}

func TestClinic_AddIncident_DefaultsStatusAndFiles(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClinic(t)
	admin := adminCaller(t, c)

	i, err := c.AddIncident(ctx, admin, model.CreateIncidentParams{
		PatientID:       "p1",
		Title:           "Checkup",
		AppointmentDate: "2025-03-01T10:00:00",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusScheduled, i.Status)
	assert.NotNil(t, i.Files)
	assert.Empty(t, i.Files)
}

func TestClinic_AddIncident_UnknownPatient(t *testing.T) {
	c, _ := newTestClinic(t)
	admin := adminCaller(t, c)

	_, err := c.AddIncident(context.Background(), admin, model.CreateIncidentParams{
		PatientID: "p999", Title: "X", AppointmentDate: "2025-03-01T10:00:00",
	})
	require.ErrorIs(t, err, model.ErrPatientNotFound)
	assert.Len(t, c.Incidents(admin), 4)
}

func TestClinic_AddIncident_InvalidStatus(t *testing.T) {
	c, _ := newTestClinic(t)

	_, err := c.AddIncident(context.Background(), adminCaller(t, c), model.CreateIncidentParams{
		PatientID: "p1", Title: "X", AppointmentDate: "2025-03-01T10:00:00", Status: "Done",
	})
	require.ErrorIs(t, err, model.ErrInvalidStatus)
}

func TestClinic_AddIncident_DeniedForPatientRole(t *testing.T) {
	c, _ := newTestClinic(t)

	_, err := c.AddIncident(context.Background(), patientCaller(t, c), model.CreateIncidentParams{
		PatientID: "p1", Title: "X", AppointmentDate: "2025-03-01T10:00:00",
	})
	require.ErrorIs(t, err, model.ErrPermissionDenied)
}

func TestClinic_UpdateIncident_PartialMerge(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClinic(t)
	admin := adminCaller(t, c)

	before, err := c.IncidentByID(admin, "i2")
	require.NoError(t, err)

	completed := model.StatusCompleted
	cost := 95.0
	require.NoError(t, c.UpdateIncident(ctx, admin, "i2", model.IncidentUpdate{
		Status: &completed,
		Cost:   &cost,
	}))

	after, err := c.IncidentByID(admin, "i2")
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, after.Status)
	require.NotNil(t, after.Cost)
	assert.Equal(t, 95.0, *after.Cost)

	before.Status = after.Status
	before.Cost = after.Cost
	assert.Equal(t, before, after)
}

func TestClinic_UpdateIncident_UnknownPatientReference(t *testing.T) {
	c, _ := newTestClinic(t)
	admin := adminCaller(t, c)

	ghost := "p999"
	err := c.UpdateIncident(context.Background(), admin, "i1", model.IncidentUpdate{PatientID: &ghost})
	require.ErrorIs(t, err, model.ErrPatientNotFound)

	unchanged, err := c.IncidentByID(admin, "i1")
	require.NoError(t, err)
	assert.Equal(t, "p1", unchanged.PatientID)
}

func TestClinic_UpdateIncident_InvalidStatus(t *testing.T) {
	c, _ := newTestClinic(t)

	bad := model.IncidentStatus("Finished")
	err := c.UpdateIncident(context.Background(), adminCaller(t, c), "i1", model.IncidentUpdate{Status: &bad})
	require.ErrorIs(t, err, model.ErrInvalidStatus)
}

func TestClinic_UpdateIncident_UnknownIDIsNoop(t *testing.T) {
	c, _ := newTestClinic(t)
	admin := adminCaller(t, c)

	title := "Ghost"
	require.NoError(t, c.UpdateIncident(context.Background(), admin, "nonexistent", model.IncidentUpdate{Title: &title}))
	assert.Len(t, c.Incidents(admin), 4)
}

func TestClinic_DeleteIncident(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClinic(t)
	admin := adminCaller(t, c)

	require.NoError(t, c.DeleteIncident(ctx, admin, "i1"))

	_, err := c.IncidentByID(admin, "i1")
	require.ErrorIs(t, err, model.ErrNotFound)
	assert.Len(t, c.Incidents(admin), 3)
}

func TestClinic_DeleteIncident_UnknownIDIsNoop(t *testing.T) {
	c, _ := newTestClinic(t)
	admin := adminCaller(t, c)

	require.NoError(t, c.DeleteIncident(context.Background(), admin, "nonexistent"))
	assert.Len(t, c.Incidents(admin), 4)
}

func TestClinic_DeleteIncident_DeniedForPatientRole(t *testing.T) {
	c, _ := newTestClinic(t)

	err := c.DeleteIncident(context.Background(), patientCaller(t, c), "i1")
	require.ErrorIs(t, err, model.ErrPermissionDenied)
}
