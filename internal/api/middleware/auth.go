package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cityweather/services/internal/api/metrics"
	"github.com/cityweather/services/internal/core/domain"
	"github.com/cityweather/services/internal/core/ports"
)

// ClaimsKey is the echo context key holding *domain.Claims after Auth.
const ClaimsKey = "claims"

type messageResponse struct {
	Message string `json:"message"`
}

// Auth verifies the bearer token and injects its claims into the context.
// Rejected requests never reach the handler.
func Auth(verifier ports.TokenVerifier, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return c.JSON(http.StatusUnauthorized, messageResponse{Message: "No token provided"})
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				if errors.Is(err, domain.ErrMissingSecret) {
					return err
				}
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				log.Debug().Err(err).Str("path", c.Request().URL.Path).Msg("token rejected")
				return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Invalid token"})
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}

// bearerToken returns the second whitespace-separated segment of the
// Authorization header. The scheme word itself is not checked.
func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
