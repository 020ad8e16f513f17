package model

// Role enumerates dashboard account roles.
type Role string

const (
	// RoleAdmin is clinic staff with full access to patients and incidents.
	RoleAdmin Role = "Admin"
	// RolePatient is a patient account limited to its own records.
	RolePatient Role = "Patient"
)

// User represents a dashboard account. Accounts come from the seed dataset
// only and are immutable at runtime; there is no registration flow.
type User struct {
	ID       string `json:"id"`
	Role     Role   `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	// PatientID links a patient-role account to its patient record.
	PatientID string `json:"patientId,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
