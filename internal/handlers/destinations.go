package handlers

import (
	"net/http"
	"strings"

	"TRIPWISE_BACK-END/internal/dto"
	"TRIPWISE_BACK-END/internal/planner"
	"TRIPWISE_BACK-END/internal/utils"
)

// ListDestinations handles GET /api/destinations
// @Summary Known destinations
// @Tags destinations
// @Produce json
// @Success 200 {object} dto.DestinationsResponse
// @Router /api/destinations [get]
func ListDestinations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.DestinationsResponse{Destinations: planner.Destinations()})
}

// SuggestPlaces handles GET /api/destinations/suggestions
// @Summary Popular places for a destination
// @Tags destinations
// @Produce json
// @Param destination query string true "Destination"
// @Success 200 {object} dto.SuggestionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/destinations/suggestions [get]
func SuggestPlaces(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	destination := strings.TrimSpace(r.URL.Query().Get("destination"))
	if destination == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing destination", "destination query parameter is required")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.SuggestionsResponse{
		Destination: destination,
		Places:      planner.SuggestPlaces(destination),
	})
}
