package domain

// DashboardStats is the summary block rendered on the dashboard screen.
type DashboardStats struct {
	TotalCustomers    int     `json:"totalCustomers"`
	TotalBookings     int     `json:"totalBookings"`
	MonthlyRevenue    float64 `json:"monthlyRevenue"`
	ActiveTours       int     `json:"activeTours"`
	PendingBookings   int     `json:"pendingBookings"`
	CompletedBookings int     `json:"completedBookings"`
}

// TourRevenue is one row of the top-tours ranking.
type TourRevenue struct {
	TourID   string  `json:"tourId"`
	Name     string  `json:"name"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

// MonthlyStat aggregates bookings that fall inside one calendar month.
type MonthlyStat struct {
	Month    string  `json:"month"` // e.g. "2024-04"
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

// CommissionTotals are the summary figures of the commission ledger.
type CommissionTotals struct {
	Total   float64 `json:"total"`
	Paid    float64 `json:"paid"`
	Pending float64 `json:"pending"`
}

// BookingValueStats describes the distribution of booking totals.
type BookingValueStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}
