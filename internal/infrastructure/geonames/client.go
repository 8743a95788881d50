// Package geonames implements ports.CityDirectory on top of the GeoNames
// searchJSON web service.
package geonames

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/cityweather/services/internal/core/domain"
	"github.com/cityweather/services/internal/infrastructure/upstream"
)

const (
	DefaultBaseURL = "http://api.geonames.org"
	DefaultMaxRows = 5

	provider = "geonames"
)

// Populated places only: plain cities, first and second order admin seats,
// and capitals.
var featureCodes = []string{"PPL", "PPLA", "PPLA2", "PPLC"}

type Config struct {
	BaseURL  string
	Username string
	MaxRows  int
	Timeout  time.Duration
}

type Client struct {
	http     *resty.Client
	username string
	maxRows  int
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.MaxRows <= 0 {
		cfg.MaxRows = DefaultMaxRows
	}

	return &Client{
		http:     upstream.NewClient(cfg.BaseURL, cfg.Timeout),
		username: cfg.Username,
		maxRows:  cfg.MaxRows,
	}
}

type searchResponse struct {
	Geonames []place `json:"geonames"`
	// GeoNames reports quota and auth failures as HTTP 200 with a status
	// object instead of results.
	Status *struct {
		Message string `json:"message"`
		Value   int    `json:"value"`
	} `json:"status"`
}

type place struct {
	ToponymName string `json:"toponymName"`
	Name        string `json:"name"`
	AdminName1  string `json:"adminName1"`
	CountryCode string `json:"countryCode"`
	Lat         string `json:"lat"`
	Lng         string `json:"lng"`
}

// Search returns up to maxRows populated places whose name starts with query,
// in relevance order.
func (c *Client) Search(ctx context.Context, query string) ([]domain.CitySuggestion, error) {
	params := url.Values{}
	params.Set("name_startsWith", query)
	params.Set("featureClass", "P")
	for _, code := range featureCodes {
		params.Add("featureCode", code)
	}
	params.Set("maxRows", strconv.Itoa(c.maxRows))
	params.Set("orderby", "relevance")
	params.Set("username", c.username)

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		Get("/searchJSON")
	if err != nil {
		return nil, &domain.UpstreamError{
			Provider: provider,
			Message:  "geonames request failed: " + upstream.Cause(err),
			Err:      err,
		}
	}
	if !upstream.Succeeded(resp) {
		return nil, &domain.UpstreamError{
			Provider: provider,
			Status:   resp.StatusCode(),
			Message:  fmt.Sprintf("geonames returned status %d", resp.StatusCode()),
		}
	}

	var payload searchResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, &domain.UpstreamError{
			Provider: provider,
			Status:   resp.StatusCode(),
			Message:  "geonames returned a malformed response",
			Err:      err,
		}
	}
	if payload.Status != nil {
		return nil, &domain.UpstreamError{
			Provider: provider,
			Status:   resp.StatusCode(),
			Message:  fmt.Sprintf("geonames error %d: %s", payload.Status.Value, payload.Status.Message),
		}
	}

	suggestions := make([]domain.CitySuggestion, 0, len(payload.Geonames))
	for _, p := range payload.Geonames {
		s, err := p.toSuggestion()
		if err != nil {
			return nil, &domain.UpstreamError{
				Provider: provider,
				Status:   resp.StatusCode(),
				Message:  "geonames returned invalid coordinates",
				Err:      err,
			}
		}
		suggestions = append(suggestions, s)
	}
	return suggestions, nil
}

func (p place) toSuggestion() (domain.CitySuggestion, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return domain.CitySuggestion{}, fmt.Errorf("lat %q: %w", p.Lat, err)
	}
	lon, err := strconv.ParseFloat(p.Lng, 64)
	if err != nil {
		return domain.CitySuggestion{}, fmt.Errorf("lng %q: %w", p.Lng, err)
	}

	// toponymName is the canonical name; name is the localized display form
	// used for the label.
	name, display := p.ToponymName, p.Name
	if name == "" {
		name = display
	}
	if display == "" {
		display = name
	}

	return domain.CitySuggestion{
		Name:        name,
		State:       p.AdminName1,
		Country:     p.CountryCode,
		Coordinates: domain.Coordinates{Lat: lat, Lon: lon},
		FullLabel:   domain.Label(display, p.AdminName1, p.CountryCode),
	}, nil
}
