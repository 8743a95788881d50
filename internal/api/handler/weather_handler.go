package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cityweather/services/internal/core/domain"
	"github.com/cityweather/services/internal/core/ports"
)

const (
	msgCityRequired  = "City parameter is required."
	msgCityNotFound  = "City not found."
	msgWeatherFailed = "Failed to fetch weather data."
)

type WeatherHandler struct {
	weather ports.WeatherService
	log     zerolog.Logger
}

func NewWeatherHandler(weather ports.WeatherService, log zerolog.Logger) *WeatherHandler {
	return &WeatherHandler{weather: weather, log: log}
}

// Weather handles GET /weather?city=.
//
// @Summary      Current weather for a city
// @Tags         weather
// @Produce      json
// @Security     BearerAuth
// @Param        city  query     string  true  "City name (e.g. London)"
// @Success      200   {object}  domain.WeatherSnapshot
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /weather [get]
func (h *WeatherHandler) Weather(c echo.Context) error {
	city := c.QueryParam("city")
	if city == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: msgCityRequired})
	}

	snapshot, err := h.weather.GetByCity(c.Request().Context(), city)
	if err != nil {
		if errors.Is(err, domain.ErrCityNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: msgCityNotFound})
		}

		h.log.Error().
			Err(err).
			Str("city", city).
			Str("username", ctxUsername(c)).
			Msg("weather lookup failed")

		msg := err.Error()
		if msg == "" {
			msg = msgWeatherFailed
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: msg})
	}

	return c.JSON(http.StatusOK, snapshot)
}
