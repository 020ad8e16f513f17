package service

import "github.com/entnt/dentalcare-server/internal/model"

// seedDataset returns the fixed bootstrap dataset written to any absent slot
// on first start. Seed IDs keep their short fixed forms so the demo
// credentials and patient links stay stable across installs.
func seedDataset() (users []model.User, patients []model.Patient, incidents []model.Incident) {
	users = []model.User{
		{ID: "1", Role: model.RoleAdmin, Email: "admin@entnt.in", Password: "admin123", Name: "Dr. Sarah Wilson"},
		{ID: "2", Role: model.RolePatient, Email: "john@entnt.in", Password: "patient123", Name: "John Doe", PatientID: "p1"},
		{ID: "3", Role: model.RolePatient, Email: "jane@entnt.in", Password: "patient123", Name: "Jane Smith", PatientID: "p2"},
	}

	patients = []model.Patient{
		{ID: "p1", Name: "John Doe", DOB: "1990-05-10", Contact: "1234567890", Email: "john@entnt.in", HealthInfo: "No known allergies"},
		{ID: "p2", Name: "Jane Smith", DOB: "1985-08-22", Contact: "0987654321", Email: "jane@entnt.in", HealthInfo: "Allergic to penicillin"},
		{ID: "p3", Name: "Mike Johnson", DOB: "1978-12-15", Contact: "5555555555", Email: "mike@entnt.in", HealthInfo: "Diabetes type 2"},
	}

	incidents = []model.Incident{
		{
			ID:              "i1",
			PatientID:       "p1",
			Title:           "Routine Cleaning",
			Description:     "6-month dental cleaning and checkup",
			Comments:        "Good oral hygiene, minor plaque buildup",
			AppointmentDate: "2024-12-30T10:00:00",
			Cost:            costOf(120),
			Treatment:       "Professional cleaning, fluoride treatment",
			Status:          model.StatusCompleted,
			NextDate:        "2025-06-30",
			Files:           []model.FileAttachment{},
		},
		{
			ID:              "i2",
			PatientID:       "p1",
			Title:           "Tooth Pain Consultation",
			Description:     "Patient experiencing pain in upper right molar",
			Comments:        "Sensitive to cold and pressure",
			AppointmentDate: "2025-01-15T14:30:00",
			Status:          model.StatusScheduled,
			Files:           []model.FileAttachment{},
		},
		{
			ID:              "i3",
			PatientID:       "p2",
			Title:           "Cavity Filling",
			Description:     "Fill cavity in lower left premolar",
			Comments:        "Small cavity detected during routine exam",
			AppointmentDate: "2025-01-08T09:00:00",
			Cost:            costOf(180),
			Treatment:       "Composite filling",
			Status:          model.StatusCompleted,
			Files:           []model.FileAttachment{},
		},
		{
			ID:              "i4",
			PatientID:       "p2",
			Title:           "Crown Preparation",
			Description:     "Prepare tooth for crown placement",
			Comments:        "Damaged tooth requires crown",
			AppointmentDate: "2025-01-20T11:00:00",
			Status:          model.StatusScheduled,
			Files:           []model.FileAttachment{},
		},
	}

	return users, patients, incidents
}

func costOf(v float64) *float64 {
	return &v
}
