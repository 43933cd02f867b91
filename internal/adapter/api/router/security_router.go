package router

import (
	"github.com/labstack/echo/v4"

	"marketdz/internal/adapter/api/handler"
	"marketdz/internal/adapter/api/middleware"
)

// SetupSecurityRouter initializes report and block routes
func SetupSecurityRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	securityHandler := handler.GetSecurityHandler()

	protected := e.Group("/v1/security")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("/reports", securityHandler.ReportItem)
	protected.GET("/reports", securityHandler.MyReports)
	protected.POST("/blocks", securityHandler.BlockUser)
	protected.DELETE("/blocks/:id", securityHandler.UnblockUser)
	protected.GET("/blocks", securityHandler.BlockedUsers)
}
