package router

import (
	"github.com/labstack/echo/v4"

	"marketdz/internal/adapter/api/handler"
	"marketdz/internal/adapter/api/middleware"
)

// SetupPhotoRouter initializes item photo routes
func SetupPhotoRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	photoHandler := handler.GetPhotoHandler()

	e.GET("/v1/items/:id/photos", photoHandler.List)

	protected := e.Group("/v1/items/:id/photos")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("", photoHandler.Upload)
	protected.DELETE("/:photoId", photoHandler.Delete)
	protected.PUT("/:photoId/primary", photoHandler.SetPrimary)
	protected.PUT("/reorder", photoHandler.Reorder)
}
