package adminapi

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tourwise/tourcrm/internal/analytics"
	"github.com/tourwise/tourcrm/internal/domain"
	"github.com/tourwise/tourcrm/internal/webserver"
)

// registerAnalyticsRoutes registers the derived-view endpoints. Each handler
// recomputes its figures from the current repository snapshots on every call.
func registerAnalyticsRoutes() {
	webserver.ApiGET("/crm/analytics/dashboard", dashboardStats)
	webserver.ApiGET("/crm/analytics/revenue", revenueSummary)
	webserver.ApiGET("/crm/analytics/top-tours", topTours)
	webserver.ApiGET("/crm/analytics/customer-status", customerStatusDistribution)
	webserver.ApiGET("/crm/analytics/monthly", monthlyTrend)
	webserver.ApiGET("/crm/analytics/booking-values", bookingValues)
}

func dashboardStats(c echo.Context) error {
	actx := webserver.GetApp(c)
	stats := analytics.DashboardStats(
		actx.Customers().List(),
		actx.Tours().List(),
		actx.Bookings().List(),
	)
	return ok(c, stats)
}

func revenueSummary(c echo.Context) error {
	bookings := webserver.GetApp(c).Bookings().List()
	return ok(c, map[string]float64{
		"total": analytics.RevenueTotal(bookings),
		"confirmed": analytics.RevenueTotalByStatus(bookings,
			domain.BookingStatusConfirmed, domain.BookingStatusCompleted),
	})
}

func topTours(c echo.Context) error {
	n := 5
	if v, err := strconv.Atoi(c.QueryParam("n")); err == nil && v > 0 {
		n = v
	}
	actx := webserver.GetApp(c)
	return ok(c, analytics.TopToursByRevenue(actx.Tours().List(), actx.Bookings().List(), n))
}

func customerStatusDistribution(c echo.Context) error {
	return ok(c, analytics.CustomerStatusDistribution(webserver.GetApp(c).Customers().List()))
}

func monthlyTrend(c echo.Context) error {
	return ok(c, analytics.MonthlyTrend(webserver.GetApp(c).Bookings().List()))
}

func bookingValues(c echo.Context) error {
	return ok(c, analytics.BookingValueStats(webserver.GetApp(c).Bookings().List()))
}
