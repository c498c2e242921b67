// Package webserver owns the echo instance serving the admin API. Handlers
// reach the application context through the request context, mirroring how
// they receive everything else.
package webserver

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/tourwise/tourcrm/internal/app"
)

const appContextKey = "tourcrm_appctx"

var server *echo.Echo

// Init builds the echo server and installs the shared middleware. The
// returned instance is also kept package-level for the route registration
// helpers.
func Init(actx app.AppContext) *echo.Echo {
	server = echo.New()
	server.HideBanner = true
	server.HidePort = true

	server.Use(middleware.Recover())
	server.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(appContextKey, actx)
			return next(c)
		}
	})
	server.Use(requestLogger())

	return server
}

// GetApp fetches the application context injected by Init's middleware.
func GetApp(c echo.Context) app.AppContext {
	return c.Get(appContextKey).(app.AppContext)
}

// Start serves until the listener fails or the server is shut down.
func Start(actx app.AppContext) error {
	cfg := actx.Config()
	addr := fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port)
	zap.S().Infof("admin api listening on %s", addr)
	return server.Start(addr)
}

// Instance returns the echo server built by Init.
func Instance() *echo.Echo {
	return server
}

func ApiGET(path string, h echo.HandlerFunc) {
	server.GET("/api"+path, h)
}

func ApiPOST(path string, h echo.HandlerFunc) {
	server.POST("/api"+path, h)
}

func ApiPUT(path string, h echo.HandlerFunc) {
	server.PUT("/api"+path, h)
}

func ApiDELETE(path string, h echo.HandlerFunc) {
	server.DELETE("/api"+path, h)
}

func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			zap.L().Debug("http request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("elapsed", time.Since(start)),
			)
			return err
		}
	}
}
