package model

// Patient represents a clinic patient record.
type Patient struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	DOB        string `json:"dob"`
	Contact    string `json:"contact"`
	Email      string `json:"email,omitempty"`
	HealthInfo string `json:"healthInfo"`
}

// CreatePatientParams contains fields to create a patient record.
type CreatePatientParams struct {
	Name       string
	DOB        string
	Contact    string
	Email      string
	HealthInfo string
}

// PatientUpdate describes a partial patient update. Nil fields keep their
// current value.
type PatientUpdate struct {
	Name       *string
	DOB        *string
	Contact    *string
	Email      *string
	HealthInfo *string
}
