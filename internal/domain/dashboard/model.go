package dashboard

// Stats is the body of GET /get_dashboard_stats.
type Stats struct {
	TotalPatients     int `json:"total_patients"`
	TotalDoctors      int `json:"total_doctors"`
	TotalAppointments int `json:"total_appointments"`
	TodayAppointments int `json:"today_appointments"`
}
