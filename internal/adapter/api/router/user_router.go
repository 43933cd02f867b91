package router

import (
	"github.com/labstack/echo/v4"

	"marketdz/internal/adapter/api/handler"
	"marketdz/internal/adapter/api/middleware"
)

// SetupUserRouter initializes user routes
func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()
	itemHandler := handler.GetItemHandler()

	e.GET("/v1/users/:id", userHandler.GetProfile)
	e.GET("/v1/users/:id/items", itemHandler.ListByUser)

	protected := e.Group("/v1/users")
	protected.Use(authMiddleware.Authenticate)

	protected.GET("/me", userHandler.GetMe)
	protected.PATCH("/me", userHandler.UpdateProfile)
	protected.PUT("/me/privacy", userHandler.UpdatePrivacy)
}
