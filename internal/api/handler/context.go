package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/cityweather/services/internal/api/middleware"
	"github.com/cityweather/services/internal/core/domain"
)

// ctxUsername returns the username of the verified bearer token, or "" when
// the route is not behind the Auth middleware.
func ctxUsername(c echo.Context) string {
	claims, ok := c.Get(middleware.ClaimsKey).(*domain.Claims)
	if !ok || claims == nil {
		return ""
	}
	return claims.Username
}
