package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"TRIPWISE_BACK-END/internal/dto"
	"TRIPWISE_BACK-END/internal/export"
	"TRIPWISE_BACK-END/internal/middleware"
	"TRIPWISE_BACK-END/internal/storage"
	"TRIPWISE_BACK-END/internal/utils"
)

// RecommendationsHandler serves recommendations for stored trips
type RecommendationsHandler struct {
	service TripService
	now     func() time.Time
}

// NewRecommendationsHandler creates a new RecommendationsHandler
func NewRecommendationsHandler(service TripService) *RecommendationsHandler {
	return &RecommendationsHandler{service: service, now: time.Now}
}

// currentTrip builds the handle for the request: a specific trip, the user's latest, or the guest's
func currentTrip(w http.ResponseWriter, r *http.Request) (storage.CurrentTripHandle, bool) {
	sc := middleware.SubmissionFromContext(r.Context())
	handle := storage.CurrentTripHandle{GuestKey: sc.GuestKey}
	if sc.Authenticated() {
		handle.OwnerID = sc.SessionID
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("trip_id")); raw != "" {
		if !sc.Authenticated() {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Sign in to view a saved trip")
			return storage.CurrentTripHandle{}, false
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid trip ID", "trip_id must be a UUID")
			return storage.CurrentTripHandle{}, false
		}
		handle.RemoteID = &id
	}
	return handle, true
}

// GetRecommendation handles GET /api/recommendations
// @Summary Recommendation for the current trip
// @Description Without trip_id, signed-in users get their latest trip and guests the trip under X-Guest-Key
// @Tags recommendations
// @Produce json
// @Param trip_id query string false "Trip ID"
// @Param X-Guest-Key header string false "Guest storage key"
// @Success 200 {object} dto.RecommendationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/recommendations [get]
func (h *RecommendationsHandler) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	handle, ok := currentTrip(w, r)
	if !ok {
		return
	}

	record, rec, err := h.service.Recommend(r.Context(), handle)
	if err != nil {
		writeTripError(w, "recommend", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.RecommendationResponse{Trip: toTripResponse(record), Recommendation: rec})
}

// ExportRecommendation handles GET /api/recommendations/export
// @Summary Download the recommendation as a spreadsheet
// @Tags recommendations
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param trip_id query string false "Trip ID"
// @Param X-Guest-Key header string false "Guest storage key"
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/recommendations/export [get]
func (h *RecommendationsHandler) ExportRecommendation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	handle, ok := currentTrip(w, r)
	if !ok {
		return
	}

	record, rec, err := h.service.Recommend(r.Context(), handle)
	if err != nil {
		writeTripError(w, "export recommendation", err)
		return
	}

	f, filename, err := export.RecommendationWorkbook(record, rec, h.now())
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to build workbook", err.Error())
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := f.Write(w); err != nil {
		log.Printf("write workbook: %v", err)
	}
}
