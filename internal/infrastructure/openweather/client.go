// Package openweather implements ports.WeatherProvider against the
// OpenWeatherMap current weather endpoint.
package openweather

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/cityweather/services/internal/core/domain"
	"github.com/cityweather/services/internal/infrastructure/upstream"
)

const (
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"
	DefaultUnits   = "metric"

	provider      = "openweather"
	messagePrefix = "Failed to fetch weather data: "
)

type Config struct {
	BaseURL string
	APIKey  string
	Units   string
	Timeout time.Duration
}

type Client struct {
	http   *resty.Client
	apiKey string
	units  string
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Units == "" {
		cfg.Units = DefaultUnits
	}

	return &Client{
		http:   upstream.NewClient(cfg.BaseURL, cfg.Timeout),
		apiKey: cfg.APIKey,
		units:  cfg.Units,
	}
}

// apiError is the body OpenWeatherMap sends with non-2xx responses. cod is
// a number on some endpoints and a string on others, so it is not decoded.
type apiError struct {
	Message string `json:"message"`
}

// CurrentByCity returns the provider's current conditions for city. A 404
// from the provider maps to domain.ErrCityNotFound.
func (c *Client) CurrentByCity(ctx context.Context, city string) (*domain.WeatherSnapshot, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":     city,
			"appid": c.apiKey,
			"units": c.units,
		}).
		Get("/weather")
	if err != nil {
		return nil, &domain.UpstreamError{
			Provider: provider,
			Message:  messagePrefix + upstream.Cause(err),
			Err:      err,
		}
	}

	if resp.StatusCode() == http.StatusNotFound {
		return nil, domain.ErrCityNotFound
	}
	if !upstream.Succeeded(resp) {
		return nil, &domain.UpstreamError{
			Provider: provider,
			Status:   resp.StatusCode(),
			Message:  messagePrefix + errorMessage(resp),
		}
	}

	snapshot, err := domain.DecodeWeatherSnapshot(resp.Body())
	if err != nil {
		return nil, &domain.UpstreamError{
			Provider: provider,
			Status:   resp.StatusCode(),
			Message:  messagePrefix + "malformed response",
			Err:      err,
		}
	}
	return snapshot, nil
}

func errorMessage(resp *resty.Response) string {
	var body apiError
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Message != "" {
		return body.Message
	}
	if text := http.StatusText(resp.StatusCode()); text != "" {
		return text
	}
	return resp.Status()
}
