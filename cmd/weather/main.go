// Command weather serves GET /weather backed by OpenWeatherMap.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cityweather/services/internal/api"
	"github.com/cityweather/services/internal/api/handler"
	"github.com/cityweather/services/internal/core/service"
	"github.com/cityweather/services/internal/infrastructure/openweather"
	"github.com/cityweather/services/internal/pkg/config"
	"github.com/cityweather/services/pkg/logger"
)

const serviceName = "weather"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadWeather(ctx, nil)
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
		Str("units", cfg.OpenWeatherUnits).
		Msg("configuration loaded")

	provider := openweather.NewClient(openweather.Config{
		BaseURL: cfg.OpenWeatherBaseURL,
		APIKey:  cfg.OpenWeatherAPIKey,
		Units:   cfg.OpenWeatherUnits,
		Timeout: cfg.RequestTimeout,
	})
	weather := service.NewWeatherService(provider, log)
	verifier := service.NewTokenService(cfg.JWTSecret, 0)

	e := api.NewWeatherRouter(api.Options{
		Service:        serviceName,
		RequestTimeout: cfg.RequestTimeout,
		Metrics:        true,
		Logger:         log,
	}, verifier, handler.NewWeatherHandler(weather, log))

	if err := api.Serve(ctx, e, cfg.Addr(), cfg.ShutdownTimeout, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
