package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/cityweather/services/internal/api/metrics"
	"github.com/cityweather/services/internal/core/domain"
	"github.com/cityweather/services/internal/core/ports"
)

// WeatherService looks up current conditions through a WeatherProvider and
// returns the provider's snapshot as is.
type WeatherService struct {
	provider ports.WeatherProvider
	log      zerolog.Logger
}

func NewWeatherService(provider ports.WeatherProvider, log zerolog.Logger) *WeatherService {
	return &WeatherService{provider: provider, log: log}
}

func (s *WeatherService) GetByCity(ctx context.Context, city string) (*domain.WeatherSnapshot, error) {
	start := time.Now()
	snapshot, err := s.provider.CurrentByCity(ctx, city)
	metrics.UpstreamRequestDuration.WithLabelValues("weather").Observe(time.Since(start).Seconds())
	if err != nil {
		outcome := "error"
		if errors.Is(err, domain.ErrCityNotFound) {
			outcome = "not_found"
		}
		metrics.UpstreamRequestsTotal.WithLabelValues("weather", outcome).Inc()
		return nil, err
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("weather", "ok").Inc()

	s.log.Debug().Str("city", city).Str("resolved", snapshot.Name).Msg("weather fetched")
	return snapshot, nil
}
