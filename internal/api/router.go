package api

import (
	"net/http"
	"time"

	echoprometheus "github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/cityweather/services/internal/api/handler"
	"github.com/cityweather/services/internal/api/middleware"
	"github.com/cityweather/services/internal/core/ports"
)

// Options configure the pieces every service router shares.
type Options struct {
	// Service names the binary; it is the echoprometheus subsystem.
	Service string
	// Methods lists the service's own HTTP methods for preflight answers.
	Methods        string
	RequestTimeout time.Duration
	// Metrics registers the HTTP collectors and /metrics. Collectors live
	// in the default registry, so only one router per process may enable it.
	Metrics bool
	Checks  map[string]handler.ReadinessCheck
	Logger  zerolog.Logger
}

// newRouter builds the Echo instance with the shared middleware chain and
// the health probes.
func newRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	// X-Forwarded-For is honoured only through loopback or private-network
	// proxies; the rightmost untrusted hop is the client.
	e.IPExtractor = echo.ExtractIPFromXFFHeader()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Before routing ---
	e.Pre(middleware.Preflight(opts.Methods))
	e.Pre(middleware.CORSHeaders())

	// --- Global middleware ---
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(opts.Logger))
	e.Use(middleware.Recover(opts.Logger))
	if opts.Metrics {
		e.Use(echoprometheus.NewMiddleware(opts.Service))
		e.GET("/metrics", echoprometheus.NewHandler())
	}
	if opts.RequestTimeout > 0 {
		e.Use(echomiddleware.ContextTimeout(opts.RequestTimeout))
	}

	// --- Health probes (no auth required) ---
	health := handler.NewHealthHandler(opts.Checks)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)

	return e
}

// RateLimit bounds requests per client IP on the credential endpoints.
type RateLimit struct {
	PerSecond float64
	Burst     int
}

// NewAuthRouter serves POST /auth/login and POST /auth/signup.
func NewAuthRouter(opts Options, auth *handler.AuthHandler, limit RateLimit) *echo.Echo {
	if opts.Methods == "" {
		opts.Methods = http.MethodPost
	}
	e := newRouter(opts)

	g := e.Group("/auth", middleware.RateLimit(limit.PerSecond, limit.Burst))
	g.POST("/login", auth.Login)
	g.POST("/signup", auth.Signup)

	return e
}

// NewSuggestionsRouter serves GET /city/suggestions behind bearer auth.
func NewSuggestionsRouter(opts Options, verifier ports.TokenVerifier, suggestions *handler.SuggestionHandler) *echo.Echo {
	if opts.Methods == "" {
		opts.Methods = http.MethodGet
	}
	e := newRouter(opts)

	e.GET("/city/suggestions", suggestions.Suggestions, middleware.Auth(verifier, opts.Logger))

	return e
}

// NewWeatherRouter serves GET /weather behind bearer auth.
func NewWeatherRouter(opts Options, verifier ports.TokenVerifier, weather *handler.WeatherHandler) *echo.Echo {
	if opts.Methods == "" {
		opts.Methods = http.MethodGet
	}
	e := newRouter(opts)

	e.GET("/weather", weather.Weather, middleware.Auth(verifier, opts.Logger))

	return e
}
