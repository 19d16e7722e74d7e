package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"nigerland_backend/internal/services"
)

// RequireAuth returns a middleware that verifies admin bearer tokens
func RequireAuth(tokens *services.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization header")
			}

			raw := strings.TrimPrefix(authHeader, "Bearer ")
			if raw == authHeader {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
			}

			username, err := tokens.Parse(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authentication credentials")
			}

			// Downstream handlers read this for audit logging
			c.Set("adminUsername", username)

			return next(c)
		}
	}
}
