package ports

import (
	"context"

	"github.com/cityweather/services/internal/core/domain"
)

//go:generate mockgen -source=suggestion_service.go -destination=../../mock/city_directory_mock.go -package=mock

// CityDirectory looks up populated places whose name starts with query.
type CityDirectory interface {
	Search(ctx context.Context, query string) ([]domain.CitySuggestion, error)
}

type SuggestionService interface {
	Suggest(ctx context.Context, query string) ([]domain.CitySuggestion, error)
}
