package service

import (
	"context"
	"slices"

	"github.com/entnt/dentalcare-server/internal/model"
)

// Patients returns patient records visible to the caller: every record for
// an admin, only the linked record for a patient user.
func (c *Clinic) Patients(caller model.User) []model.Patient {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if caller.IsAdmin() {
		return slices.Clone(c.patients)
	}
	for _, p := range c.patients {
		if p.ID == caller.PatientID {
			return []model.Patient{p}
		}
	}
	return nil
}

// PatientByID returns one patient record. A patient caller asking for a
// record other than its own gets ErrNotFound, same as a missing ID.
func (c *Clinic) PatientByID(caller model.User, id string) (model.Patient, error) {
	if !caller.IsAdmin() && caller.PatientID != id {
		return model.Patient{}, model.ErrNotFound
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.patients {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Patient{}, model.ErrNotFound
}

// AddPatient appends a new patient record and persists the full collection.
// Admin only. No uniqueness validation is applied to name, contact or email.
func (c *Clinic) AddPatient(ctx context.Context, caller model.User, params model.CreatePatientParams) (model.Patient, error) {
	if !caller.IsAdmin() {
		return model.Patient{}, model.ErrPermissionDenied
	}

	p := model.Patient{
		ID:         newID("p"),
		Name:       params.Name,
		DOB:        params.DOB,
		Contact:    params.Contact,
		Email:      params.Email,
		HealthInfo: params.HealthInfo,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.patients = append(c.patients, p)
	if err := c.persistPatients(ctx); err != nil {
		c.patients = c.patients[:len(c.patients)-1]
		return model.Patient{}, err
	}

	c.logger.Info("patient added", "patient_id", p.ID)
	return p, nil
}

// UpdatePatient merges the provided fields into the matching record; omitted
// fields are retained. An unknown ID is silently ignored.
func (c *Clinic) UpdatePatient(ctx context.Context, caller model.User, id string, update model.PatientUpdate) error {
	if !caller.IsAdmin() {
		return model.ErrPermissionDenied
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := slices.IndexFunc(c.patients, func(p model.Patient) bool { return p.ID == id })
	if idx < 0 {
		c.logger.Debug("patient update ignored, unknown id", "patient_id", id)
		return nil
	}

	prev := c.patients[idx]
	p := prev
	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.DOB != nil {
		p.DOB = *update.DOB
	}
	if update.Contact != nil {
		p.Contact = *update.Contact
	}
	if update.Email != nil {
		p.Email = *update.Email
	}
	if update.HealthInfo != nil {
		p.HealthInfo = *update.HealthInfo
	}

	c.patients[idx] = p
	if err := c.persistPatients(ctx); err != nil {
		c.patients[idx] = prev
		return err
	}
	return nil
}

// DeletePatient removes the patient and cascades to every incident
// referencing it, keeping incident patient references valid. Both
// collections are persisted. An unknown ID is silently ignored.
func (c *Clinic) DeletePatient(ctx context.Context, caller model.User, id string) error {
	if !caller.IsAdmin() {
		return model.ErrPermissionDenied
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !slices.ContainsFunc(c.patients, func(p model.Patient) bool { return p.ID == id }) {
		c.logger.Debug("patient delete ignored, unknown id", "patient_id", id)
		return nil
	}

	prevPatients := c.patients
	prevIncidents := c.incidents

	c.patients = slices.DeleteFunc(slices.Clone(c.patients), func(p model.Patient) bool { return p.ID == id })
	c.incidents = slices.DeleteFunc(slices.Clone(c.incidents), func(i model.Incident) bool { return i.PatientID == id })

	if err := c.persistPatients(ctx); err != nil {
		c.patients = prevPatients
		c.incidents = prevIncidents
		return err
	}
	if err := c.persistIncidents(ctx); err != nil {
		c.patients = prevPatients
		c.incidents = prevIncidents
		return err
	}

	c.logger.Info("patient deleted", "patient_id", id, "incidents_removed", len(prevIncidents)-len(c.incidents))
	return nil
}
