package ports

import (
	"context"

	"github.com/cityweather/services/internal/core/domain"
)

//go:generate mockgen -source=weather_service.go -destination=../../mock/weather_provider_mock.go -package=mock

// WeatherProvider fetches current conditions for a city name. It returns
// domain.ErrCityNotFound when the provider does not know the city.
type WeatherProvider interface {
	CurrentByCity(ctx context.Context, city string) (*domain.WeatherSnapshot, error)
}

type WeatherService interface {
	GetByCity(ctx context.Context, city string) (*domain.WeatherSnapshot, error)
}
