package router

import (
	"github.com/labstack/echo/v4"

	"marketdz/internal/adapter/api/handler"
	"marketdz/internal/adapter/api/middleware"
)

// SetupItemRouter initializes item routes
func SetupItemRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	itemHandler := handler.GetItemHandler()

	// Public routes
	e.GET("/v1/items", itemHandler.Search)
	e.GET("/v1/items/nearby", itemHandler.Nearby)
	e.GET("/v1/items/:id", itemHandler.Get)
	e.GET("/v1/items/:id/location", itemHandler.GetLocation)

	// Protected routes
	protected := e.Group("/v1/items")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("", itemHandler.Create)
	protected.PUT("/:id", itemHandler.Update)
	protected.DELETE("/:id", itemHandler.Delete)
	protected.PUT("/:id/status", itemHandler.SetStatus)
	protected.PUT("/:id/location", itemHandler.SaveLocation)
	protected.DELETE("/:id/location", itemHandler.DeleteLocation)
	protected.POST("/:id/favorite", itemHandler.Favorite)
	protected.DELETE("/:id/favorite", itemHandler.Unfavorite)

	favorites := e.Group("/v1/favorites")
	favorites.Use(authMiddleware.Authenticate)
	favorites.GET("", itemHandler.ListFavorites)
}
