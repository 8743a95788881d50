// Command suggestions serves GET /city/suggestions backed by GeoNames.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cityweather/services/internal/api"
	"github.com/cityweather/services/internal/api/handler"
	"github.com/cityweather/services/internal/core/service"
	"github.com/cityweather/services/internal/infrastructure/geonames"
	"github.com/cityweather/services/internal/pkg/config"
	"github.com/cityweather/services/pkg/logger"
)

const serviceName = "suggestions"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadSuggestions(ctx, nil)
	if err != nil {
		log := logger.Init(logger.Options{Service: serviceName})
		log.Fatal().Err(err).Msg("load configuration")
	}

	log := logger.Init(logger.Options{
		Service: serviceName,
		Level:   cfg.LogLevel,
		Pretty:  cfg.Development(),
	})
	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Str("geonames", cfg.GeoNamesBaseURL).
		Msg("configuration loaded")

	directory := geonames.NewClient(geonames.Config{
		BaseURL:  cfg.GeoNamesBaseURL,
		Username: cfg.GeoNamesUsername,
		MaxRows:  cfg.GeoNamesMaxRows,
		Timeout:  cfg.RequestTimeout,
	})
	suggestions := service.NewSuggestionService(directory, log)
	verifier := service.NewTokenService(cfg.JWTSecret, 0)

	e := api.NewSuggestionsRouter(api.Options{
		Service:        serviceName,
		RequestTimeout: cfg.RequestTimeout,
		Metrics:        true,
		Logger:         log,
	}, verifier, handler.NewSuggestionHandler(suggestions, log))

	if err := api.Serve(ctx, e, cfg.Addr(), cfg.ShutdownTimeout, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
