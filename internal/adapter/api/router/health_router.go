package router

import (
	"github.com/labstack/echo/v4"

	"marketdz/internal/adapter/api/handler"
)

// SetupHealthRouter initializes health check routes
func SetupHealthRouter(e *echo.Echo) {
	healthHandler := handler.GetHealthHandler()

	e.GET("/health", healthHandler.CheckHealth)
	e.GET("/health/store", healthHandler.CheckStoreHealth)
}
