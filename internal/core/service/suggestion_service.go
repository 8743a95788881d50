package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cityweather/services/internal/api/metrics"
	"github.com/cityweather/services/internal/core/domain"
	"github.com/cityweather/services/internal/core/ports"
)

// SuggestionService resolves autocomplete queries through a CityDirectory.
type SuggestionService struct {
	directory ports.CityDirectory
	log       zerolog.Logger
}

func NewSuggestionService(directory ports.CityDirectory, log zerolog.Logger) *SuggestionService {
	return &SuggestionService{directory: directory, log: log}
}

// Suggest makes exactly one directory call. The result is never nil.
func (s *SuggestionService) Suggest(ctx context.Context, query string) ([]domain.CitySuggestion, error) {
	start := time.Now()
	suggestions, err := s.directory.Search(ctx, query)
	metrics.UpstreamRequestDuration.WithLabelValues("geocoding").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("geocoding", "error").Inc()
		if !errors.Is(err, domain.ErrUpstream) {
			err = fmt.Errorf("%w: %w", domain.ErrUpstream, err)
		}
		return nil, fmt.Errorf("suggest cities: %w", err)
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("geocoding", "ok").Inc()

	if suggestions == nil {
		suggestions = []domain.CitySuggestion{}
	}

	s.log.Debug().Str("query", query).Int("count", len(suggestions)).Msg("city suggestions fetched")
	return suggestions, nil
}
