package service

import (
	"slices"
	"sort"
	"time"

	"github.com/entnt/dentalcare-server/internal/model"
)

// topPatientsLimit caps the admin spending ranking.
const topPatientsLimit = 5

// UpcomingAppointments lists scheduled incidents after now among those
// visible to the caller, soonest first. limit <= 0 means no limit.
// Incidents with an unparsable appointment date are skipped.
func (c *Clinic) UpcomingAppointments(caller model.User, now time.Time, limit int) []model.Incident {
	c.mu.RLock()
	incidents := c.visibleIncidents(caller)
	c.mu.RUnlock()

	var out []model.Incident
	for _, i := range incidents {
		t, err := i.AppointmentTime()
		if err != nil || i.Status != model.StatusScheduled {
			continue
		}
		if t.After(now) {
			out = append(out, i)
		}
	}
	sortByAppointment(out)

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// DashboardStats summarizes the incidents visible to the caller: the next
// upcoming appointments, pending and completed counts, and completed
// revenue. Admin callers additionally get the top patients by spend.
func (c *Clinic) DashboardStats(caller model.User, now time.Time) model.DashboardStats {
	c.mu.RLock()
	incidents := c.visibleIncidents(caller)
	patients := slices.Clone(c.patients)
	c.mu.RUnlock()

	stats := model.DashboardStats{
		UpcomingAppointments: c.UpcomingAppointments(caller, now, 10),
	}

	for _, i := range incidents {
		switch i.Status {
		case model.StatusScheduled, model.StatusPending:
			stats.PendingCount++
		case model.StatusCompleted:
			stats.CompletedCount++
			if i.Cost != nil {
				stats.TotalRevenue += *i.Cost
			}
		}
	}

	if caller.IsAdmin() {
		stats.TopPatients = topPatients(patients, incidents)
	}
	return stats
}

// AppointmentsBetween lists incidents visible to the caller whose
// appointment falls in [from, to), ascending by time. Used by the calendar
// month and day views.
func (c *Clinic) AppointmentsBetween(caller model.User, from, to time.Time) []model.Incident {
	c.mu.RLock()
	incidents := c.visibleIncidents(caller)
	c.mu.RUnlock()

	var out []model.Incident
	for _, i := range incidents {
		t, err := i.AppointmentTime()
		if err != nil {
			continue
		}
		if !t.Before(from) && t.Before(to) {
			out = append(out, i)
		}
	}
	sortByAppointment(out)
	return out
}

// AppointmentsOn lists the caller's appointments on one calendar day.
func (c *Clinic) AppointmentsOn(caller model.User, day time.Time) []model.Incident {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return c.AppointmentsBetween(caller, start, start.AddDate(0, 0, 1))
}

func topPatients(patients []model.Patient, incidents []model.Incident) []model.PatientSpend {
	spend := make([]model.PatientSpend, 0, len(patients))
	for _, p := range patients {
		total := 0.0
		for _, i := range incidents {
			if i.PatientID == p.ID && i.Status == model.StatusCompleted && i.Cost != nil {
				total += *i.Cost
			}
		}
		spend = append(spend, model.PatientSpend{Patient: p, TotalSpent: total})
	}
	sort.SliceStable(spend, func(a, b int) bool { return spend[a].TotalSpent > spend[b].TotalSpent })

	if len(spend) > topPatientsLimit {
		spend = spend[:topPatientsLimit]
	}
	return spend
}

func sortByAppointment(incidents []model.Incident) {
	sort.SliceStable(incidents, func(a, b int) bool {
		ta, _ := incidents[a].AppointmentTime()
		tb, _ := incidents[b].AppointmentTime()
		return ta.Before(tb)
	})
}
