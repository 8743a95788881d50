package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const preflightAllowHeaders = "Content-Type,X-Amz-Date,Authorization,X-Api-Key"

// Preflight answers every OPTIONS request with 200 before routing, so no
// credential or body checks run. methods is the service's own method list,
// e.g. "POST" or "GET".
func Preflight(methods string) echo.MiddlewareFunc {
	allowMethods := methods + "," + http.MethodOptions

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodOptions {
				return next(c)
			}

			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlAllowOrigin, "*")
			h.Set(echo.HeaderAccessControlAllowHeaders, preflightAllowHeaders)
			h.Set(echo.HeaderAccessControlAllowMethods, allowMethods)
			return c.NoContent(http.StatusOK)
		}
	}
}

// CORSHeaders stamps the permissive CORS headers on every other response.
func CORSHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlAllowOrigin, "*")
			h.Set(echo.HeaderAccessControlAllowCredentials, "true")
			return next(c)
		}
	}
}
