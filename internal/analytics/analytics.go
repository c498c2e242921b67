// Package analytics computes the derived views rendered by the dashboard,
// analytics and commission screens. Every function is a pure computation over
// a snapshot of repository contents and never mutates its inputs; callers
// re-invoke them whenever they need fresh figures.
package analytics

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/tourwise/tourcrm/internal/domain"
)

// RevenueTotal sums TotalPrice over the given bookings.
func RevenueTotal(bookings []domain.Booking) float64 {
	var sum float64
	for _, b := range bookings {
		sum += b.TotalPrice
	}
	return sum
}

// RevenueTotalByStatus sums TotalPrice over bookings whose status is one of
// the given values.
func RevenueTotalByStatus(bookings []domain.Booking, statuses ...string) float64 {
	var sum float64
	for _, b := range bookings {
		for _, s := range statuses {
			if b.Status == s {
				sum += b.TotalPrice
				break
			}
		}
	}
	return sum
}

// TopToursByRevenue groups bookings by tour, sums revenue per tour, and
// returns the n highest earners in descending order. Ties keep the catalog's
// insertion order. Tours without bookings rank with zero revenue; bookings
// referencing a deleted tour are not represented, matching the screen they
// feed.
func TopToursByRevenue(tours []domain.Tour, bookings []domain.Booking, n int) []domain.TourRevenue {
	rows := make([]domain.TourRevenue, 0, len(tours))
	for _, t := range tours {
		row := domain.TourRevenue{TourID: t.ID, Name: t.Name}
		for _, b := range bookings {
			if b.TourID == t.ID {
				row.Bookings++
				row.Revenue += b.TotalPrice
			}
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue > rows[j].Revenue
	})
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// CustomerStatusDistribution counts customers per status value.
func CustomerStatusDistribution(customers []domain.Customer) map[string]int {
	dist := make(map[string]int, len(domain.CustomerStatuses))
	for _, s := range domain.CustomerStatuses {
		dist[s] = 0
	}
	for _, c := range customers {
		dist[c.Status]++
	}
	return dist
}

// CommissionTotals sums commission amounts overall and for the paid and
// pending slices independently.
func CommissionTotals(commissions []domain.Commission) domain.CommissionTotals {
	var t domain.CommissionTotals
	for _, c := range commissions {
		t.Total += c.CommissionAmount
		switch c.Status {
		case domain.CommissionStatusPaid:
			t.Paid += c.CommissionAmount
		case domain.CommissionStatusPending:
			t.Pending += c.CommissionAmount
		}
	}
	return t
}

// MonthlyTrend buckets bookings by the calendar month of their tour date and
// reports count and revenue per month in chronological order.
func MonthlyTrend(bookings []domain.Booking) []domain.MonthlyStat {
	byMonth := make(map[string]*domain.MonthlyStat)
	for _, b := range bookings {
		key := b.Date.Format("2006-01")
		row, ok := byMonth[key]
		if !ok {
			row = &domain.MonthlyStat{Month: key}
			byMonth[key] = row
		}
		row.Bookings++
		row.Revenue += b.TotalPrice
	}
	out := make([]domain.MonthlyStat, 0, len(byMonth))
	for _, row := range byMonth {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// DashboardStats assembles the dashboard summary block. Revenue counts
// confirmed and completed bookings only.
func DashboardStats(customers []domain.Customer, tours []domain.Tour, bookings []domain.Booking) domain.DashboardStats {
	s := domain.DashboardStats{
		TotalCustomers: len(customers),
		TotalBookings:  len(bookings),
		MonthlyRevenue: RevenueTotalByStatus(bookings, domain.BookingStatusConfirmed, domain.BookingStatusCompleted),
	}
	for _, t := range tours {
		if t.IsActive {
			s.ActiveTours++
		}
	}
	for _, b := range bookings {
		switch b.Status {
		case domain.BookingStatusPending:
			s.PendingBookings++
		case domain.BookingStatusCompleted:
			s.CompletedBookings++
		}
	}
	return s
}

// BookingValueStats describes the distribution of booking totals. An empty
// booking set yields all zeros.
func BookingValueStats(bookings []domain.Booking) domain.BookingValueStats {
	if len(bookings) == 0 {
		return domain.BookingValueStats{}
	}
	values := make([]float64, 0, len(bookings))
	for _, b := range bookings {
		values = append(values, b.TotalPrice)
	}
	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)
	max, _ := stats.Max(values)
	return domain.BookingValueStats{
		Count:  len(values),
		Mean:   mean,
		Median: median,
		Max:    max,
	}
}
