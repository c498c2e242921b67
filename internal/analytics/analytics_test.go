package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourwise/tourcrm/internal/domain"
)

func TestRevenueTotal(t *testing.T) {
	bookings := domain.DefaultBookings()
	assert.Equal(t, 735.0, RevenueTotal(bookings))
	assert.Zero(t, RevenueTotal(nil))
}

func TestRevenueTotalByStatus(t *testing.T) {
	bookings := domain.DefaultBookings()
	// confirmed 150 + completed 45 + confirmed 180
	got := RevenueTotalByStatus(bookings, domain.BookingStatusConfirmed, domain.BookingStatusCompleted)
	assert.Equal(t, 375.0, got)

	assert.Equal(t, 240.0, RevenueTotalByStatus(bookings, domain.BookingStatusPending))
	assert.Zero(t, RevenueTotalByStatus(bookings))
}

func TestTopToursByRevenue(t *testing.T) {
	tours := domain.DefaultTours()
	bookings := domain.DefaultBookings()

	top := TopToursByRevenue(tours, bookings, 5)
	require.Len(t, top, 5)
	assert.Equal(t, "Cultural Heritage Tour", top[0].Name)
	assert.Equal(t, 240.0, top[0].Revenue)
	assert.Equal(t, "Food & Wine Tasting", top[1].Name)
	assert.Equal(t, "Mountain Adventure Hike", top[2].Name)
	assert.Equal(t, "Nature Photography Safari", top[3].Name)
	assert.Equal(t, "City Explorer Walking Tour", top[4].Name)

	top = TopToursByRevenue(tours, bookings, 2)
	require.Len(t, top, 2)
	assert.Equal(t, 240.0, top[0].Revenue)
	assert.Equal(t, 180.0, top[1].Revenue)
}

func TestTopToursTiesKeepInsertionOrder(t *testing.T) {
	tours := []domain.Tour{
		{ID: "a", Name: "First"},
		{ID: "b", Name: "Second"},
	}
	bookings := []domain.Booking{
		{ID: "1", TourID: "a", TotalPrice: 100},
		{ID: "2", TourID: "b", TotalPrice: 100},
	}
	top := TopToursByRevenue(tours, bookings, 5)
	require.Len(t, top, 2)
	assert.Equal(t, "First", top[0].Name)
	assert.Equal(t, "Second", top[1].Name)
}

func TestCustomerStatusDistribution(t *testing.T) {
	dist := CustomerStatusDistribution(domain.DefaultCustomers())
	assert.Equal(t, 3, dist[domain.CustomerStatusActive])
	assert.Equal(t, 1, dist[domain.CustomerStatusProspect])
	assert.Equal(t, 1, dist[domain.CustomerStatusInactive])
}

func TestCommissionTotals(t *testing.T) {
	totals := CommissionTotals(domain.DefaultCommissions())
	assert.InDelta(t, 27.0, totals.Paid, 1e-9)
	assert.InDelta(t, 61.2, totals.Pending, 1e-9)
	assert.InDelta(t, 88.2, totals.Total, 1e-9)
}

func TestMonthlyTrend(t *testing.T) {
	trend := MonthlyTrend(domain.DefaultBookings())
	require.Len(t, trend, 1, "all seed bookings fall in April 2024")
	assert.Equal(t, "2024-04", trend[0].Month)
	assert.Equal(t, 5, trend[0].Bookings)
	assert.Equal(t, 735.0, trend[0].Revenue)

	assert.Empty(t, MonthlyTrend(nil))
}

func TestDashboardStats(t *testing.T) {
	stats := DashboardStats(domain.DefaultCustomers(), domain.DefaultTours(), domain.DefaultBookings())
	assert.Equal(t, domain.DashboardStats{
		TotalCustomers:    5,
		TotalBookings:     5,
		MonthlyRevenue:    375,
		ActiveTours:       5,
		PendingBookings:   1,
		CompletedBookings: 1,
	}, stats)
}

func TestBookingValueStats(t *testing.T) {
	stats := BookingValueStats(domain.DefaultBookings())
	assert.Equal(t, 5, stats.Count)
	assert.InDelta(t, 147.0, stats.Mean, 1e-9)
	assert.InDelta(t, 150.0, stats.Median, 1e-9)
	assert.InDelta(t, 240.0, stats.Max, 1e-9)

	assert.Equal(t, domain.BookingValueStats{}, BookingValueStats(nil))
}
