package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"marketdz/internal/adapter/api/middleware"
	"marketdz/internal/infrastructure/auth"
)

func TestHealthCheck(t *testing.T) {
	// Setup
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Define the handler
	healthHandler := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}

	// Assertions
	if assert.NoError(t, healthHandler(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "ok")
	}
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	tokens, err := auth.NewJWTService("test-secret", 3600)
	assert.NoError(t, err)
	authMiddleware := middleware.NewAuthMiddleware(tokens)

	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]int{"userId": middleware.UserID(c)})
	}, authMiddleware.Authenticate)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewarePassesValidToken(t *testing.T) {
	tokens, err := auth.NewJWTService("test-secret", 3600)
	assert.NoError(t, err)
	authMiddleware := middleware.NewAuthMiddleware(tokens)

	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]int{"userId": middleware.UserID(c)})
	}, authMiddleware.Authenticate)

	token, err := tokens.Generate(7, false)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "7")
}
