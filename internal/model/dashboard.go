package model

// DashboardStats aggregates the collection counts and billing totals shown
// on the dashboard, plus the five most recent appointments and bills.
// TotalBilling is the sum of all bill amounts truncated to an integer.
type DashboardStats struct {
	TotalPatients      int            `json:"total_patients"`
	TotalAppointments  int            `json:"total_appointments"`
	UnpaidBills        int            `json:"unpaid_bills"`
	TotalBilling       int64          `json:"total_billing"`
	RecentAppointments []*Appointment `json:"recent_appointments"`
	RecentBills        []*Bill        `json:"recent_bills"`
}
