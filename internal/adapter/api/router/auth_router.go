package router

import (
	"github.com/labstack/echo/v4"

	"marketdz/internal/adapter/api/handler"
	"marketdz/internal/adapter/api/middleware"
)

// SetupAuthRouter initializes auth routes
func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	// Public routes
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)
	e.GET("/v1/auth/check-email", authHandler.CheckEmail)
	e.POST("/v1/auth/verify-email", authHandler.VerifyEmail)
	e.POST("/v1/auth/forgot-password", authHandler.ForgotPassword)
	e.POST("/v1/auth/reset-password", authHandler.ResetPassword)

	// Protected routes
	protected := e.Group("/v1/auth")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("/refresh", authHandler.Refresh)
	protected.POST("/send-verification", authHandler.SendVerification)
	protected.POST("/change-password", authHandler.ChangePassword)
}
