// Package adminapi exposes the repository operations and derived views over
// HTTP for the presentation layer. It performs no business logic of its own:
// every handler validates transport-level input, invokes one repository or
// analytics operation, and renders the result.
package adminapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/tourwise/tourcrm/internal/repository"
	"github.com/tourwise/tourcrm/internal/webserver"
)

// InitRouter registers every admin API route on the webserver.
func InitRouter() {
	registerCustomerRoutes()
	registerTourRoutes()
	registerBookingRoutes()
	registerCommissionRoutes()
	registerAnalyticsRoutes()
	registerSettingsRoutes()
	registerActivityRoutes()

	webserver.ApiPOST("/crm/reset", resetAll)
}

// resetAll reseeds every data domain. Destructive; requires confirm=yes.
func resetAll(c echo.Context) error {
	if !confirmed(c) {
		return fail(c, http.StatusBadRequest, "CONFIRM_REQUIRED", "Reset requires confirm=yes", nil)
	}
	if err := webserver.GetApp(c).ResetAll(); err != nil {
		return fail(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to reset data", err.Error())
	}
	return ok(c, map[string]interface{}{"reset": "all"})
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"code": 0,
		"data": data,
	})
}

func fail(c echo.Context, status int, code, message string, detail interface{}) error {
	return c.JSON(status, map[string]interface{}{
		"code":    code,
		"message": message,
		"detail":  detail,
	})
}

func paged(c echo.Context, rows interface{}, total, page, pageSize int) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"code":    0,
		"data":    rows,
		"total":   total,
		"page":    page,
		"perPage": pageSize,
	})
}

func parsePagination(c echo.Context) (page, pageSize int) {
	page = 1
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	pageSize = 20
	if ps, err := strconv.Atoi(c.QueryParam("perPage")); err == nil && ps > 0 && ps <= 500 {
		pageSize = ps
	}
	return page, pageSize
}

// confirmed reports whether the caller supplied the explicit confirmation
// required for destructive operations.
func confirmed(c echo.Context) bool {
	return c.QueryParam("confirm") == "yes"
}

// repoFail maps repository errors onto the response envelope.
func repoFail(c echo.Context, err error, entity string) error {
	var verr *repository.ValidationError
	switch {
	case errors.As(err, &verr):
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", verr.Message, nil)
	case errors.Is(err, repository.ErrNotFound):
		return fail(c, http.StatusNotFound, "NOT_FOUND", entity+" not found", nil)
	default:
		return fail(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to persist "+entity, err.Error())
	}
}

// pageSliceBounds computes the [lo, hi) window of one page over total rows.
func pageSliceBounds(total, page, pageSize int) (lo, hi int) {
	lo = (page - 1) * pageSize
	if lo > total {
		lo = total
	}
	hi = lo + pageSize
	if hi > total {
		hi = total
	}
	return lo, hi
}
