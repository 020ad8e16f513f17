package service

import (
	"context"
	"slices"

	"github.com/entnt/dentalcare-server/internal/model"
)

// Incidents returns incident records visible to the caller: every record for
// an admin, only the caller's own for a patient user.
func (c *Clinic) Incidents(caller model.User) []model.Incident {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.visibleIncidents(caller)
}

// visibleIncidents filters by role. Callers hold c.mu.
func (c *Clinic) visibleIncidents(caller model.User) []model.Incident {
	if caller.IsAdmin() {
		return slices.Clone(c.incidents)
	}
	var out []model.Incident
	for _, i := range c.incidents {
		if i.PatientID == caller.PatientID {
			out = append(out, i)
		}
	}
	return out
}

// IncidentByID returns one incident. A patient caller asking for another
// patient's incident gets ErrNotFound, same as a missing ID.
func (c *Clinic) IncidentByID(caller model.User, id string) (model.Incident, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, i := range c.incidents {
		if i.ID == id {
			if !caller.IsAdmin() && i.PatientID != caller.PatientID {
				return model.Incident{}, model.ErrNotFound
			}
			return i, nil
		}
	}
	return model.Incident{}, model.ErrNotFound
}

// AddIncident appends a new incident and persists the full collection. Admin
// only. The referenced patient must exist; an empty status defaults to
// Scheduled.
func (c *Clinic) AddIncident(ctx context.Context, caller model.User, params model.CreateIncidentParams) (model.Incident, error) {
	if !caller.IsAdmin() {
		return model.Incident{}, model.ErrPermissionDenied
	}

	status := params.Status
	if status == "" {
		status = model.StatusScheduled
	}
	if !model.ValidStatus(status) {
		return model.Incident{}, model.ErrInvalidStatus
	}

	files := params.Files
	if files == nil {
		files = []model.FileAttachment{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hasPatient(params.PatientID) {
		return model.Incident{}, model.ErrPatientNotFound
	}

	i := model.Incident{
		ID:              newID("i"),
		PatientID:       params.PatientID,
		Title:           params.Title,
		Description:     params.Description,
		Comments:        params.Comments,
		AppointmentDate: params.AppointmentDate,
		Cost:            params.Cost,
		Treatment:       params.Treatment,
		Status:          status,
		NextDate:        params.NextDate,
		Files:           files,
	}

	c.incidents = append(c.incidents, i)
	if err := c.persistIncidents(ctx); err != nil {
		c.incidents = c.incidents[:len(c.incidents)-1]
		return model.Incident{}, err
	}

	c.logger.Info("incident added", "incident_id", i.ID, "patient_id", i.PatientID)
	return i, nil
}

// UpdateIncident merges the provided fields into the matching record; omitted
// fields are retained. Changing the patient reference requires the target
// patient to exist. An unknown ID is silently ignored.
func (c *Clinic) UpdateIncident(ctx context.Context, caller model.User, id string, update model.IncidentUpdate) error {
	if !caller.IsAdmin() {
		return model.ErrPermissionDenied
	}
	if update.Status != nil && !model.ValidStatus(*update.Status) {
		return model.ErrInvalidStatus
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if update.PatientID != nil && !c.hasPatient(*update.PatientID) {
		return model.ErrPatientNotFound
	}

	idx := slices.IndexFunc(c.incidents, func(i model.Incident) bool { return i.ID == id })
	if idx < 0 {
		c.logger.Debug("incident update ignored, unknown id", "incident_id", id)
		return nil
	}

	prev := c.incidents[idx]
	i := prev
	if update.PatientID != nil {
		i.PatientID = *update.PatientID
	}
	if update.Title != nil {
		i.Title = *update.Title
	}
	if update.Description != nil {
		i.Description = *update.Description
	}
	if update.Comments != nil {
		i.Comments = *update.Comments
	}
	if update.AppointmentDate != nil {
		i.AppointmentDate = *update.AppointmentDate
	}
	if update.Cost != nil {
		i.Cost = update.Cost
	}
	if update.Treatment != nil {
		i.Treatment = *update.Treatment
	}
	if update.Status != nil {
		i.Status = *update.Status
	}
	if update.NextDate != nil {
		i.NextDate = *update.NextDate
	}
	if update.Files != nil {
		i.Files = *update.Files
	}

	c.incidents[idx] = i
	if err := c.persistIncidents(ctx); err != nil {
		c.incidents[idx] = prev
		return err
	}
	return nil
}

// DeleteIncident removes one incident and persists the full collection. An
// unknown ID is silently ignored.
func (c *Clinic) DeleteIncident(ctx context.Context, caller model.User, id string) error {
	if !caller.IsAdmin() {
		return model.ErrPermissionDenied
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := slices.IndexFunc(c.incidents, func(i model.Incident) bool { return i.ID == id })
	if idx < 0 {
		c.logger.Debug("incident delete ignored, unknown id", "incident_id", id)
		return nil
	}

	prev := c.incidents
	c.incidents = slices.Delete(slices.Clone(c.incidents), idx, idx+1)
	if err := c.persistIncidents(ctx); err != nil {
		c.incidents = prev
		return err
	}

	c.logger.Info("incident deleted", "incident_id", id)
	return nil
}

// hasPatient reports whether a live patient has the given ID. Callers hold c.mu.
func (c *Clinic) hasPatient(id string) bool {
	return slices.ContainsFunc(c.patients, func(p model.Patient) bool { return p.ID == id })
}
