package router

import (
	"github.com/labstack/echo/v4"

	"marketdz/internal/adapter/api/handler"
	"marketdz/internal/adapter/api/middleware"
)

// SetupMessageRouter initializes message routes
func SetupMessageRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	messageHandler := handler.GetMessageHandler()

	protected := e.Group("/v1/messages")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("", messageHandler.Send)
	protected.GET("/inbox", messageHandler.Inbox)
	protected.GET("/sent", messageHandler.Sent)
	protected.GET("/:id", messageHandler.Get)
	protected.PUT("/:id/read", messageHandler.MarkRead)
	protected.DELETE("/:id", messageHandler.Delete)
}
