package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tourwise/tourcrm/internal/app"
	"github.com/tourwise/tourcrm/internal/webserver"
)

type settingPayload struct {
	Key   string `json:"key" form:"key"`
	Value string `json:"value" form:"value"`
}

// registerSettingsRoutes registers operator settings endpoints
func registerSettingsRoutes() {
	webserver.ApiGET("/crm/settings", listSettings)
	webserver.ApiPUT("/crm/settings", putSetting)
}

func listSettings(c echo.Context) error {
	return ok(c, webserver.GetApp(c).Settings().All())
}

func putSetting(c echo.Context) error {
	var payload settingPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse setting", err.Error())
	}
	if payload.Key == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Setting key is required", nil)
	}
	if err := webserver.GetApp(c).Settings().Set(payload.Key, payload.Value); err != nil {
		if app.IsUnknownSetting(err) {
			return fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		}
		return fail(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to save setting", err.Error())
	}
	return ok(c, payload)
}
