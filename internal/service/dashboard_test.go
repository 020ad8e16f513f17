package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entnt/dentalcare-server/internal/model"
)

func TestClinic_UpcomingAppointments_SortedSoonestFirst(t *testing.T) {
	c, _ := newTestClinic(t)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	upcoming := c.UpcomingAppointments(adminCaller(t, c), now, 0)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "i2", upcoming[0].ID)
	assert.Equal(t, "i4", upcoming[1].ID)
}

func TestClinic_UpcomingAppointments_Limit(t *testing.T) {
	c, _ := newTestClinic(t)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	upcoming := c.UpcomingAppointments(adminCaller(t, c), now, 1)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "i2", upcoming[0].ID)
}

func TestClinic_UpcomingAppointments_ExcludesPastAndNonScheduled(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClinic(t)
	admin := adminCaller(t, c)

	cancelled := model.StatusCancelled
	require.NoError(t, c.UpdateIncident(ctx, admin, "i2", model.IncidentUpdate{Status: &cancelled}))

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	upcoming := c.UpcomingAppointments(admin, now, 0)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "i4", upcoming[0].ID)
}

func TestClinic_UpcomingAppointments_RoleScoped(t *testing.T) {
	c, _ := newTestClinic(t)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	upcoming := c.UpcomingAppointments(patientCaller(t, c), now, 0)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "i2", upcoming[0].ID)
}

func TestClinic_DashboardStats_Admin(t *testing.T) {
	c, _ := newTestClinic(t)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	stats := c.DashboardStats(adminCaller(t, c), now)

	assert.Equal(t, 2, stats.PendingCount)
	assert.Equal(t, 2, stats.CompletedCount)
	assert.Equal(t, 300.0, stats.TotalRevenue)
	assert.Len(t, stats.UpcomingAppointments, 2)

	require.Len(t, stats.TopPatients, 3)
	// p2 spent 180, p1 spent 120, p3 nothing.
	assert.Equal(t, "p2", stats.TopPatients[0].Patient.ID)
	assert.Equal(t, 180.0, stats.TopPatients[0].TotalSpent)
	assert.Equal(t, "p1", stats.TopPatients[1].Patient.ID)
	assert.Equal(t, 120.0, stats.TopPatients[1].TotalSpent)
	assert.Equal(t, 0.0, stats.TopPatients[2].TotalSpent)
}

func TestClinic_DashboardStats_PatientSeesOwnOnly(t *testing.T) {
	c, _ := newTestClinic(t)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	stats := c.DashboardStats(patientCaller(t, c), now)

	assert.Equal(t, 1, stats.PendingCount)
	assert.Equal(t, 1, stats.CompletedCount)
	assert.Equal(t, 120.0, stats.TotalRevenue)
	assert.Empty(t, stats.TopPatients)
}

func TestClinic_AppointmentsBetween(t *testing.T) {
	c, _ := newTestClinic(t)
	admin := adminCaller(t, c)

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	january := c.AppointmentsBetween(admin, from, to)
	require.Len(t, january, 3)
	assert.Equal(t, "i3", january[0].ID)
	assert.Equal(t, "i2", january[1].ID)
	assert.Equal(t, "i4", january[2].ID)
}

func TestClinic_AppointmentsOn(t *testing.T) {
	c, _ := newTestClinic(t)
	admin := adminCaller(t, c)

	day := c.AppointmentsOn(admin, time.Date(2025, 1, 15, 23, 0, 0, 0, time.UTC))
	require.Len(t, day, 1)
	assert.Equal(t, "i2", day[0].ID)

	assert.Empty(t, c.AppointmentsOn(admin, time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)))
}

func TestClinic_AppointmentsBetween_EndExclusive(t *testing.T) {
	c, _ := newTestClinic(t)
	admin := adminCaller(t, c)

	// i4 sits exactly at 2025-01-20T11:00:00.
	from := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 20, 11, 0, 0, 0, time.UTC)
	assert.Empty(t, c.AppointmentsBetween(admin, from, to))

	to = to.Add(time.Second)
	day := c.AppointmentsBetween(admin, from, to)
	require.Len(t, day, 1)
	assert.Equal(t, "i4", day[0].ID)
}
