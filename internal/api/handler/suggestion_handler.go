package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cityweather/services/internal/core/ports"
)

const (
	msgQueryRequired     = "Query parameter is required."
	msgSuggestionsFailed = "Failed to fetch city suggestions."
)

type errorResponse struct {
	Error string `json:"error"`
}

type SuggestionHandler struct {
	suggestions ports.SuggestionService
	log         zerolog.Logger
}

func NewSuggestionHandler(suggestions ports.SuggestionService, log zerolog.Logger) *SuggestionHandler {
	return &SuggestionHandler{suggestions: suggestions, log: log}
}

// Suggestions handles GET /city/suggestions?query=.
//
// @Summary      Suggest cities by name prefix
// @Tags         cities
// @Produce      json
// @Security     BearerAuth
// @Param        query  query     string  true  "Name prefix (e.g. Lon)"
// @Success      200    {array}   domain.CitySuggestion
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  map[string]string
// @Failure      500    {object}  errorResponse
// @Router       /city/suggestions [get]
func (h *SuggestionHandler) Suggestions(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: msgQueryRequired})
	}

	list, err := h.suggestions.Suggest(c.Request().Context(), query)
	if err != nil {
		h.log.Error().
			Err(err).
			Str("query", query).
			Str("username", ctxUsername(c)).
			Msg("city suggestions failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: msgSuggestionsFailed})
	}

	return c.JSON(http.StatusOK, list)
}
