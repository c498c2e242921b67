package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tourwise/tourcrm/internal/repository"
	"github.com/tourwise/tourcrm/internal/webserver"
)

// registerTourRoutes registers tour catalog CRUD endpoints
func registerTourRoutes() {
	webserver.ApiGET("/crm/tours", listTours)
	webserver.ApiGET("/crm/tours/:id", getTour)
	webserver.ApiPOST("/crm/tours", createTour)
	webserver.ApiPUT("/crm/tours/:id", updateTour)
	webserver.ApiDELETE("/crm/tours/:id", deleteTour)
	webserver.ApiPOST("/crm/tours/reset", resetTours)
}

func listTours(c echo.Context) error {
	page, pageSize := parsePagination(c)
	q := strings.TrimSpace(c.QueryParam("q"))
	category := strings.TrimSpace(c.QueryParam("category"))

	rows := webserver.GetApp(c).Tours().Search(q, category)
	lo, hi := pageSliceBounds(len(rows), page, pageSize)
	return paged(c, rows[lo:hi], len(rows), page, pageSize)
}

func getTour(c echo.Context) error {
	tour, found := webserver.GetApp(c).Tours().Find(c.Param("id"))
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Tour not found", nil)
	}
	return ok(c, tour)
}

func createTour(c echo.Context) error {
	var draft repository.TourDraft
	if err := c.Bind(&draft); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse tour", err.Error())
	}
	tour, err := webserver.GetApp(c).Tours().Add(draft)
	if err != nil {
		return repoFail(c, err, "tour")
	}
	return ok(c, tour)
}

func updateTour(c echo.Context) error {
	var patch map[string]interface{}
	if err := c.Bind(&patch); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse patch", err.Error())
	}
	tour, err := webserver.GetApp(c).Tours().Update(c.Param("id"), patch)
	if err != nil {
		return repoFail(c, err, "tour")
	}
	return ok(c, tour)
}

// deleteTour removes the tour only; bookings referencing it keep their
// dangling reference and render an empty tour name.
func deleteTour(c echo.Context) error {
	id := c.Param("id")
	if err := webserver.GetApp(c).Tours().Remove(id); err != nil {
		return repoFail(c, err, "tour")
	}
	return ok(c, map[string]interface{}{"id": id})
}

func resetTours(c echo.Context) error {
	if !confirmed(c) {
		return fail(c, http.StatusBadRequest, "CONFIRM_REQUIRED", "Reset requires confirm=yes", nil)
	}
	seq, err := webserver.GetApp(c).Tours().ResetToDefault()
	if err != nil {
		return repoFail(c, err, "tour")
	}
	return ok(c, seq)
}
