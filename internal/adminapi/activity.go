package adminapi

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tourwise/tourcrm/internal/webserver"
)

// registerActivityRoutes registers the activity feed endpoint
func registerActivityRoutes() {
	webserver.ApiGET("/crm/activity", recentActivity)
}

func recentActivity(c echo.Context) error {
	n := 50
	if v, err := strconv.Atoi(c.QueryParam("n")); err == nil && v > 0 {
		n = v
	}
	return ok(c, webserver.GetApp(c).Activity().Recent(n))
}
