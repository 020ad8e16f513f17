package model

import (
	"slices"
	"time"
)

// IncidentStatus enumerates appointment lifecycle states.
type IncidentStatus string

const (
	// StatusScheduled is an upcoming booked appointment.
	StatusScheduled IncidentStatus = "Scheduled"
	// StatusPending is an appointment awaiting confirmation or follow-up.
	StatusPending IncidentStatus = "Pending"
	// StatusCompleted is a finished treatment.
	StatusCompleted IncidentStatus = "Completed"
	// StatusCancelled is a cancelled appointment.
	StatusCancelled IncidentStatus = "Cancelled"
)

// ValidStatus reports whether s is a known incident status.
func ValidStatus(s IncidentStatus) bool {
	return slices.Contains([]IncidentStatus{StatusScheduled, StatusPending, StatusCompleted, StatusCancelled}, s)
}

// FileAttachment is an opaque file embedded in an incident. URL carries the
// content as a data URI; there is no external file storage.
type FileAttachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// appointmentDateLayout is the wire format of appointment timestamps,
// a local ISO datetime without zone offset.
const appointmentDateLayout = "2006-01-02T15:04:05"

// Incident represents an appointment/treatment record tied to one patient.
type Incident struct {
	ID              string           `json:"id"`
	PatientID       string           `json:"patientId"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Comments        string           `json:"comments"`
	AppointmentDate string           `json:"appointmentDate"`
	Cost            *float64         `json:"cost,omitempty"`
	Treatment       string           `json:"treatment,omitempty"`
	Status          IncidentStatus   `json:"status"`
	NextDate        string           `json:"nextDate,omitempty"`
	Files           []FileAttachment `json:"files"`
}

// AppointmentTime parses the incident's appointment timestamp.
func (i Incident) AppointmentTime() (time.Time, error) {
	t, err := time.Parse(appointmentDateLayout, i.AppointmentDate)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, i.AppointmentDate)
}

// CreateIncidentParams contains fields to create an incident. An empty Status
// defaults to Scheduled.
type CreateIncidentParams struct {
	PatientID       string
	Title           string
	Description     string
	Comments        string
	AppointmentDate string
	Cost            *float64
	Treatment       string
	Status          IncidentStatus
	NextDate        string
	Files           []FileAttachment
}

// IncidentUpdate describes a partial incident update. Nil fields keep their
// current value.
type IncidentUpdate struct {
	PatientID       *string
	Title           *string
	Description     *string
	Comments        *string
	AppointmentDate *string
	Cost            *float64
	Treatment       *string
	Status          *IncidentStatus
	NextDate        *string
	Files           *[]FileAttachment
}
