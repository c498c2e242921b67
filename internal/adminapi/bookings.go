package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tourwise/tourcrm/internal/domain"
	"github.com/tourwise/tourcrm/internal/repository"
	"github.com/tourwise/tourcrm/internal/webserver"
)

// bookingRow joins the referenced customer and tour names for list screens.
// A dangling reference renders as an empty name rather than failing.
type bookingRow struct {
	domain.Booking
	CustomerName string `json:"customerName"`
	TourName     string `json:"tourName"`
}

// registerBookingRoutes registers booking CRUD endpoints
func registerBookingRoutes() {
	webserver.ApiGET("/crm/bookings", listBookings)
	webserver.ApiGET("/crm/bookings/:id", getBooking)
	webserver.ApiPOST("/crm/bookings", createBooking)
	webserver.ApiPUT("/crm/bookings/:id", updateBooking)
	webserver.ApiDELETE("/crm/bookings/:id", deleteBooking)
	webserver.ApiPOST("/crm/bookings/reset", resetBookings)
}

func listBookings(c echo.Context) error {
	page, pageSize := parsePagination(c)
	q := strings.TrimSpace(c.QueryParam("q"))
	status := strings.TrimSpace(c.QueryParam("status"))

	actx := webserver.GetApp(c)
	rows := actx.Bookings().Search(q, status)
	joined := make([]bookingRow, 0, len(rows))
	for _, b := range rows {
		joined = append(joined, joinBooking(actx, b))
	}
	lo, hi := pageSliceBounds(len(joined), page, pageSize)
	return paged(c, joined[lo:hi], len(joined), page, pageSize)
}

func getBooking(c echo.Context) error {
	actx := webserver.GetApp(c)
	booking, found := actx.Bookings().Find(c.Param("id"))
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Booking not found", nil)
	}
	return ok(c, joinBooking(actx, booking))
}

func createBooking(c echo.Context) error {
	var draft repository.BookingDraft
	if err := c.Bind(&draft); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse booking", err.Error())
	}
	booking, err := webserver.GetApp(c).Bookings().Add(draft)
	if err != nil {
		return repoFail(c, err, "booking")
	}
	return ok(c, booking)
}

func updateBooking(c echo.Context) error {
	var patch map[string]interface{}
	if err := c.Bind(&patch); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse patch", err.Error())
	}
	booking, err := webserver.GetApp(c).Bookings().Update(c.Param("id"), patch)
	if err != nil {
		return repoFail(c, err, "booking")
	}
	return ok(c, booking)
}

func deleteBooking(c echo.Context) error {
	id := c.Param("id")
	if err := webserver.GetApp(c).Bookings().Remove(id); err != nil {
		return repoFail(c, err, "booking")
	}
	return ok(c, map[string]interface{}{"id": id})
}

func resetBookings(c echo.Context) error {
	if !confirmed(c) {
		return fail(c, http.StatusBadRequest, "CONFIRM_REQUIRED", "Reset requires confirm=yes", nil)
	}
	seq, err := webserver.GetApp(c).Bookings().ResetToDefault()
	if err != nil {
		return repoFail(c, err, "booking")
	}
	return ok(c, seq)
}

func joinBooking(actx interface {
	Customers() *repository.CustomerRepository
	Tours() *repository.TourRepository
}, b domain.Booking) bookingRow {
	row := bookingRow{Booking: b}
	if customer, found := actx.Customers().Find(b.CustomerID); found {
		row.CustomerName = customer.Name
	}
	if tour, found := actx.Tours().Find(b.TourID); found {
		row.TourName = tour.Name
	}
	return row
}
