// Command auth serves POST /auth/login and POST /auth/signup.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cityweather/services/internal/api"
	"github.com/cityweather/services/internal/api/handler"
	"github.com/cityweather/services/internal/core/service"
	"github.com/cityweather/services/internal/pkg/config"
	"github.com/cityweather/services/pkg/logger"
)

const serviceName = "auth"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadAuth(ctx, nil)
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
		Str("user_store", cfg.UserStore).
		Msg("configuration loaded")

	store, err := openUserStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open user store")
	}
	defer store.close()

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(store, tokens, log)

	e := api.NewAuthRouter(api.Options{
		Service:        serviceName,
		RequestTimeout: cfg.RequestTimeout,
		Metrics:        true,
		Checks:         store.checks,
		Logger:         log,
	}, handler.NewAuthHandler(authService, log), api.RateLimit{
		PerSecond: cfg.RateLimit,
		Burst:     cfg.RateBurst,
	})

	if err := api.Serve(ctx, e, cfg.Addr(), cfg.ShutdownTimeout, log); err != nil {
		// Fatal skips deferred calls
		store.close()
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
