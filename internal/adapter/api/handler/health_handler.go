package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"marketdz/internal/infrastructure/treedb"
)

type HealthHandler struct {
	db *treedb.Client
}

var healthHandler *HealthHandler

func NewHealthHandler(db *treedb.Client) *HealthHandler {
	return &HealthHandler{db: db}
}

func SetupHealthHandler(db *treedb.Client) {
	healthHandler = NewHealthHandler(db)
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "Server is running",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// CheckStoreHealth performs a round trip against the document store.
func (h *HealthHandler) CheckStoreHealth(c echo.Context) error {
	var probe interface{}
	err := h.db.Get(c.Request().Context(), "test", &probe)
	if err != nil && err != treedb.ErrNotFound {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"status": "Store connection failed",
			"error":  err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status": "Store connected successfully",
	})
}
