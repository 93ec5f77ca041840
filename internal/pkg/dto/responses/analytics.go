package responses

type NamedCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type DashboardAnalytics struct {
	TotalUsers               int          `json:"total_users"`
	TotalDoctors             int          `json:"total_doctors"`
	UsersByRole              []NamedCount `json:"users_by_role"`
	DoctorsBySpecialization  []NamedCount `json:"doctors_by_specialization"`
	BookingAttemptsByOutcome []NamedCount `json:"booking_attempts_by_outcome"`
}
