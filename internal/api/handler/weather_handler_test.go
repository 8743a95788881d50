package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cityweather/services/internal/core/domain"
	"github.com/cityweather/services/internal/mock"
)

func sampleWeather() *domain.WeatherSnapshot {
	return &domain.WeatherSnapshot{
		Coord: domain.WeatherCoord{Lon: -0.1278, Lat: 51.5074},
		Weather: []domain.WeatherCondition{
			{ID: 800, Main: "Clear", Description: "clear sky", Icon: "01d"},
		},
		Main:       domain.WeatherMain{Temp: 20, FeelsLike: 19, Humidity: 65, Pressure: 1015, TempMin: 18, TempMax: 22},
		Visibility: 10000,
		Wind:       domain.WeatherWind{Speed: 5.2, Deg: 280},
		Clouds:     domain.WeatherClouds{All: 20},
		Dt:         1677649420,
		Sys:        domain.WeatherSys{Country: "GB", Sunrise: 1677649420, Sunset: 1677685420},
		Timezone:   0,
		ID:         2643743,
		Name:       "London",
		Cod:        200,
	}
}

func TestWeatherHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockWeatherService(ctrl)
	svc.EXPECT().GetByCity(gomock.Any(), "London").Return(sampleWeather(), nil).Times(1)

	h := NewWeatherHandler(svc, zerolog.Nop())
	c, rec := newTestContext(http.MethodGet, "/weather?city=London", "")

	require.NoError(t, h.Weather(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got domain.WeatherSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, *sampleWeather(), got)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.NotContains(t, raw, "rain")
	assert.Equal(t, float64(200), raw["cod"])
}

func TestWeatherHandler_MissingCity(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockWeatherService(ctrl)

	h := NewWeatherHandler(svc, zerolog.Nop())
	c, rec := newTestContext(http.MethodGet, "/weather", "")

	require.NoError(t, h.Weather(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"City parameter is required."}`, rec.Body.String())
}

func TestWeatherHandler_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "not found",
			err:      domain.ErrCityNotFound,
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"City not found."}`,
		},
		{
			name:     "plain failure keeps its message",
			err:      errors.New("Service unavailable"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Service unavailable"}`,
		},
		{
			name:     "upstream failure",
			err:      &domain.UpstreamError{Provider: "openweather", Status: 401, Message: "Failed to fetch weather data: Invalid API key."},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Failed to fetch weather data: Invalid API key."}`,
		},
		{
			name:     "empty message falls back",
			err:      &domain.UpstreamError{Provider: "openweather"},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Failed to fetch weather data."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mock.NewMockWeatherService(ctrl)
			svc.EXPECT().GetByCity(gomock.Any(), "Somewhere").Return(nil, tt.err)

			h := NewWeatherHandler(svc, zerolog.Nop())
			c, rec := newTestContext(http.MethodGet, "/weather?city=Somewhere", "")

			require.NoError(t, h.Weather(c))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
