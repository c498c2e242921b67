package adminapi

import (
	"net/http"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"

	"github.com/tourwise/tourcrm/internal/repository"
	"github.com/tourwise/tourcrm/internal/webserver"
)

// registerCustomerRoutes registers customer CRUD endpoints
func registerCustomerRoutes() {
	webserver.ApiGET("/crm/customers", listCustomers)
	webserver.ApiGET("/crm/customers/export", exportCustomers)
	webserver.ApiGET("/crm/customers/:id", getCustomer)
	webserver.ApiPOST("/crm/customers", createCustomer)
	webserver.ApiPUT("/crm/customers/:id", updateCustomer)
	webserver.ApiDELETE("/crm/customers/:id", deleteCustomer)
	webserver.ApiPOST("/crm/customers/reset", resetCustomers)
}

func listCustomers(c echo.Context) error {
	page, pageSize := parsePagination(c)
	q := strings.TrimSpace(c.QueryParam("q"))
	status := strings.TrimSpace(c.QueryParam("status"))

	rows := webserver.GetApp(c).Customers().Search(q, status)
	lo, hi := pageSliceBounds(len(rows), page, pageSize)
	return paged(c, rows[lo:hi], len(rows), page, pageSize)
}

func getCustomer(c echo.Context) error {
	customer, found := webserver.GetApp(c).Customers().Find(c.Param("id"))
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Customer not found", nil)
	}
	return ok(c, customer)
}

func createCustomer(c echo.Context) error {
	var draft repository.CustomerDraft
	if err := c.Bind(&draft); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse customer", err.Error())
	}
	customer, err := webserver.GetApp(c).Customers().Add(draft)
	if err != nil {
		return repoFail(c, err, "customer")
	}
	return ok(c, customer)
}

func updateCustomer(c echo.Context) error {
	var patch map[string]interface{}
	if err := c.Bind(&patch); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse patch", err.Error())
	}
	customer, err := webserver.GetApp(c).Customers().Update(c.Param("id"), patch)
	if err != nil {
		return repoFail(c, err, "customer")
	}
	return ok(c, customer)
}

func deleteCustomer(c echo.Context) error {
	id := c.Param("id")
	if err := webserver.GetApp(c).Customers().Remove(id); err != nil {
		return repoFail(c, err, "customer")
	}
	return ok(c, map[string]interface{}{"id": id})
}

// resetCustomers is destructive and irreversible; the caller must confirm.
func resetCustomers(c echo.Context) error {
	if !confirmed(c) {
		return fail(c, http.StatusBadRequest, "CONFIRM_REQUIRED", "Reset requires confirm=yes", nil)
	}
	seq, err := webserver.GetApp(c).Customers().ResetToDefault()
	if err != nil {
		return repoFail(c, err, "customer")
	}
	return ok(c, seq)
}

func exportCustomers(c echo.Context) error {
	rows := webserver.GetApp(c).Customers().List()
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="customers.csv"`)
	c.Response().WriteHeader(http.StatusOK)
	return gocsv.Marshal(&rows, c.Response().Writer)
}
