package model

// PatientSpend ranks a patient by total completed-treatment cost.
type PatientSpend struct {
	Patient    Patient `json:"patient"`
	TotalSpent float64 `json:"totalSpent"`
}

// DashboardStats summarizes the incidents visible to the caller.
// TopPatients is populated for admin callers only.
type DashboardStats struct {
	UpcomingAppointments []Incident     `json:"upcomingAppointments"`
	PendingCount         int            `json:"pendingCount"`
	CompletedCount       int            `json:"completedCount"`
	TotalRevenue         float64        `json:"totalRevenue"`
	TopPatients          []PatientSpend `json:"topPatients,omitempty"`
}
