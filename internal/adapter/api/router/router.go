package router

import (
	"github.com/labstack/echo/v4"

	"marketdz/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupItemRouter(e, authMiddleware)
	SetupPhotoRouter(e, authMiddleware)
	SetupMessageRouter(e, authMiddleware)
	SetupSecurityRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
