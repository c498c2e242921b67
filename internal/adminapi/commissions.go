package adminapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/labstack/echo/v4"

	"github.com/tourwise/tourcrm/internal/analytics"
	"github.com/tourwise/tourcrm/internal/webserver"
)

// registerCommissionRoutes registers the commission ledger endpoints. The
// ledger is read-only over the API: there is no create/update/delete, only
// listing, totals, the report download, the overdue sweep trigger and the
// confirmed reset.
func registerCommissionRoutes() {
	webserver.ApiGET("/crm/commissions", listCommissions)
	webserver.ApiGET("/crm/commissions/totals", commissionTotals)
	webserver.ApiGET("/crm/commissions/report", commissionReport)
	webserver.ApiPOST("/crm/commissions/sweep", runCommissionSweep)
	webserver.ApiPOST("/crm/commissions/reset", resetCommissions)
}

func listCommissions(c echo.Context) error {
	page, pageSize := parsePagination(c)
	q := strings.TrimSpace(c.QueryParam("q"))
	status := strings.TrimSpace(c.QueryParam("status"))

	rows := webserver.GetApp(c).Commissions().Search(q, status)
	lo, hi := pageSliceBounds(len(rows), page, pageSize)
	return paged(c, rows[lo:hi], len(rows), page, pageSize)
}

func commissionTotals(c echo.Context) error {
	ledger := webserver.GetApp(c).Commissions().List()
	return ok(c, analytics.CommissionTotals(ledger))
}

// runCommissionSweep flips pending entries past the overdue window without
// waiting for the daily job.
func runCommissionSweep(c echo.Context) error {
	webserver.GetApp(c).SchedCommissionOverdueTask()
	return ok(c, map[string]interface{}{"swept": true})
}

func resetCommissions(c echo.Context) error {
	if !confirmed(c) {
		return fail(c, http.StatusBadRequest, "CONFIRM_REQUIRED", "Reset requires confirm=yes", nil)
	}
	seq, err := webserver.GetApp(c).Commissions().ResetToDefault()
	if err != nil {
		return repoFail(c, err, "commission")
	}
	return ok(c, seq)
}

// commissionReport renders the ledger as a spreadsheet, one row per entry
// plus the totals block.
func commissionReport(c echo.Context) error {
	ledger := webserver.GetApp(c).Commissions().List()
	totals := analytics.CommissionTotals(ledger)

	const sheet = "Sheet1"
	xlsx := excelize.NewFile()
	headers := []string{"Tour", "Customer", "Rate", "Booking Amount", "Commission", "Status", "Date", "Paid Date"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		xlsx.SetCellValue(sheet, cell, h)
	}
	for i, entry := range ledger {
		row := i + 2
		paid := ""
		if entry.PaidDate != nil {
			paid = entry.PaidDate.Format("2006-01-02")
		}
		xlsx.SetCellValue(sheet, fmt.Sprintf("A%d", row), entry.TourName)
		xlsx.SetCellValue(sheet, fmt.Sprintf("B%d", row), entry.CustomerName)
		xlsx.SetCellValue(sheet, fmt.Sprintf("C%d", row), entry.CommissionRate)
		xlsx.SetCellValue(sheet, fmt.Sprintf("D%d", row), entry.BookingAmount)
		xlsx.SetCellValue(sheet, fmt.Sprintf("E%d", row), entry.CommissionAmount)
		xlsx.SetCellValue(sheet, fmt.Sprintf("F%d", row), entry.Status)
		xlsx.SetCellValue(sheet, fmt.Sprintf("G%d", row), entry.Date.Format("2006-01-02"))
		xlsx.SetCellValue(sheet, fmt.Sprintf("H%d", row), paid)
	}
	srow := len(ledger) + 3
	xlsx.SetCellValue(sheet, fmt.Sprintf("A%d", srow), "Total")
	xlsx.SetCellValue(sheet, fmt.Sprintf("E%d", srow), totals.Total)
	xlsx.SetCellValue(sheet, fmt.Sprintf("A%d", srow+1), "Paid")
	xlsx.SetCellValue(sheet, fmt.Sprintf("E%d", srow+1), totals.Paid)
	xlsx.SetCellValue(sheet, fmt.Sprintf("A%d", srow+2), "Pending")
	xlsx.SetCellValue(sheet, fmt.Sprintf("E%d", srow+2), totals.Pending)

	filename := fmt.Sprintf("commission-report-%s.xlsx", time.Now().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Response().WriteHeader(http.StatusOK)
	return xlsx.Write(c.Response().Writer)
}
