package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"TRIPWISE_BACK-END/internal/dto"
	"TRIPWISE_BACK-END/internal/intake"
	"TRIPWISE_BACK-END/internal/middleware"
	"TRIPWISE_BACK-END/internal/models"
	"TRIPWISE_BACK-END/internal/planner"
	"TRIPWISE_BACK-END/internal/storage"
	"TRIPWISE_BACK-END/internal/utils"
)

// TripService runs intake and recomputes recommendations
type TripService interface {
	Submit(ctx context.Context, sc storage.SubmissionContext, req models.TripRequest) (intake.Result, error)
	Recommend(ctx context.Context, h storage.CurrentTripHandle) (models.TripRecord, models.Recommendation, error)
}

// TripReader reads stored trips
type TripReader interface {
	Current(ctx context.Context, h storage.CurrentTripHandle) (models.TripRecord, error)
	List(ctx context.Context, owner uuid.UUID) ([]models.TripRecord, error)
}

// TripsHandler manages trip-related endpoints
type TripsHandler struct {
	service TripService
	trips   TripReader
}

// NewTripsHandler creates a new TripsHandler
func NewTripsHandler(service TripService, trips TripReader) *TripsHandler {
	return &TripsHandler{service: service, trips: trips}
}

// Trips dispatches by HTTP method for /api/trips
func (h *TripsHandler) Trips(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.SubmitTrip(w, r)
	case http.MethodGet:
		h.ListTrips(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// SubmitTrip handles POST /api/trips
// @Summary Submit a trip and get a recommendation
// @Description Signed-in users get the trip stored durably; guests get it stored under their X-Guest-Key
// @Tags trips
// @Accept json
// @Produce json
// @Param payload body dto.SubmitTripRequest true "Trip payload"
// @Param X-Guest-Key header string false "Guest storage key"
// @Success 201 {object} dto.SubmitTripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/trips [post]
func (h *TripsHandler) SubmitTrip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.SubmitTripRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	dateFrom, ok := parseOptionalDate(w, "date_from", req.DateFrom)
	if !ok {
		return
	}
	dateTo, ok := parseOptionalDate(w, "date_to", req.DateTo)
	if !ok {
		return
	}

	result, err := h.service.Submit(r.Context(), middleware.SubmissionFromContext(r.Context()), models.TripRequest{
		Destination:     req.Destination,
		MustVisitPlaces: req.MustVisitPlaces,
		DateFrom:        dateFrom,
		DateTo:          dateTo,
		MaxDurationDays: req.MaxDurationDays,
		NumPeople:       req.NumPeople,
		MaxBudget:       req.MaxBudget,
	})
	if err != nil {
		writeTripError(w, "submit trip", err)
		return
	}

	resp := dto.SubmitTripResponse{
		StorageMode:    string(result.Record.StorageMode),
		Trip:           toTripResponse(result.Record),
		Recommendation: result.Recommendation,
	}
	switch o := result.Outcome.(type) {
	case storage.RemoteStored:
		id := o.RemoteID.String()
		resp.TripID = &id
	case storage.LocalStored:
		key := o.GuestKey
		resp.GuestKey = &key
		w.Header().Set(middleware.GuestKeyHeader, key)
	}

	utils.WriteJSONResponse(w, http.StatusCreated, resp)
}

// parseOptionalDate leaves missing dates zero so validation reports them
func parseOptionalDate(w http.ResponseWriter, field, value string) (time.Time, bool) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, true
	}
	t, err := utils.ParseDate(value)
	if err != nil {
		utils.WriteCodedErrorResponse(w, http.StatusBadRequest, "Validation error",
			field+" must be ISO 8601 format (YYYY-MM-DD or RFC3339)", "invalid_date")
		return time.Time{}, false
	}
	return t, true
}

// ListTrips handles GET /api/trips
// @Summary List my trips
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TripListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips [get]
func (h *TripsHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Sign in to list saved trips")
		return
	}

	records, err := h.trips.List(r.Context(), userID)
	if err != nil {
		writeTripError(w, "list trips", err)
		return
	}

	resp := dto.TripListResponse{Trips: make([]dto.TripResponse, 0, len(records)), Total: len(records)}
	for _, rec := range records {
		resp.Trips = append(resp.Trips, toTripResponse(rec))
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// TripDetail handles GET /api/trips/{id}
// @Summary Get one of my trips
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {object} dto.TripDetailResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/trips/{id} [get]
func (h *TripsHandler) TripDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	tripID, err := uuid.Parse(strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/trips/"), "/"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid trip ID", "trip id must be a UUID")
		return
	}

	record, err := h.trips.Current(r.Context(), storage.CurrentTripHandle{RemoteID: &tripID, OwnerID: &userID})
	if err != nil {
		writeTripError(w, "get trip", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.TripDetailResponse{Trip: toTripResponse(record)})
}

// EstimateBudget handles POST /api/trips/estimate
// @Summary Preview a trip budget
// @Description Rough standard-tier budget from a partially filled trip form
// @Tags trips
// @Accept json
// @Produce json
// @Param payload body dto.EstimateRequest true "Partial trip"
// @Success 200 {object} dto.EstimateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/trips/estimate [post]
func (h *TripsHandler) EstimateBudget(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.EstimateRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	est := planner.EstimateBudget(req.Destination, req.MaxDurationDays, req.NumPeople, req.MustVisitPlaces)
	utils.WriteJSONResponse(w, http.StatusOK, dto.EstimateResponse{PerCategoryTotal: est.PerCategoryTotal, Total: est.Total})
}

func toTripResponse(rec models.TripRecord) dto.TripResponse {
	resp := dto.TripResponse{
		Destination:     rec.Destination,
		MustVisitPlaces: rec.MustVisitPlaces,
		DateFrom:        utils.FormatDate(rec.DateFrom),
		DateTo:          utils.FormatDate(rec.DateTo),
		MaxDurationDays: rec.MaxDurationDays,
		NumPeople:       rec.NumPeople,
		MaxBudget:       rec.MaxBudget,
		StorageMode:     string(rec.StorageMode),
		CreatedAt:       utils.FormatTimestamp(rec.CreatedAt),
		UpdatedAt:       utils.FormatTimestamp(rec.UpdatedAt),
	}
	if resp.MustVisitPlaces == nil {
		resp.MustVisitPlaces = []string{}
	}
	if rec.RemoteID != nil {
		id := rec.RemoteID.String()
		resp.ID = &id
	}
	return resp
}
