package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"marketdz/internal/domain/service"
)

// userIDKey is the echo context key the authenticated user id is stored
// under.
const userIDKey = "userID"

type AuthMiddleware struct {
	tokens service.TokenService
}

func NewAuthMiddleware(tokens service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		userID, err := m.tokens.Validate(parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set(userIDKey, userID)
		return next(c)
	}
}

// UserID returns the authenticated user id set by Authenticate. Zero when the
// request was not authenticated.
func UserID(c echo.Context) int {
	id, _ := c.Get(userIDKey).(int)
	return id
}
