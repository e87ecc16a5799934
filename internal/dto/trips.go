package dto

import "TRIPWISE_BACK-END/internal/models"

// SubmitTripRequest represents the trip intake form
type SubmitTripRequest struct {
	Destination     string   `json:"destination"`
	MustVisitPlaces []string `json:"must_visit_places"`
	DateFrom        string   `json:"date_from"` // YYYY-MM-DD or RFC3339
	DateTo          string   `json:"date_to"`   // YYYY-MM-DD or RFC3339
	MaxDurationDays int      `json:"max_duration_days"`
	NumPeople       int      `json:"num_people"`
	MaxBudget       float64  `json:"max_budget"`
}

// TripResponse represents a stored trip in responses
type TripResponse struct {
	ID              *string  `json:"id,omitempty"`
	Destination     string   `json:"destination"`
	MustVisitPlaces []string `json:"must_visit_places"`
	DateFrom        string   `json:"date_from"`
	DateTo          string   `json:"date_to"`
	MaxDurationDays int      `json:"max_duration_days"`
	NumPeople       int      `json:"num_people"`
	MaxBudget       float64  `json:"max_budget"`
	StorageMode     string   `json:"storage_mode"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

// SubmitTripResponse envelope returned after intake.
// TripID is set for remote storage, GuestKey for local storage.
type SubmitTripResponse struct {
	StorageMode    string                `json:"storage_mode"`
	TripID         *string               `json:"trip_id,omitempty"`
	GuestKey       *string               `json:"guest_key,omitempty"`
	Trip           TripResponse          `json:"trip"`
	Recommendation models.Recommendation `json:"recommendation"`
}

// TripListResponse envelope
type TripListResponse struct {
	Trips []TripResponse `json:"trips"`
	Total int            `json:"total"`
}

// TripDetailResponse envelope
type TripDetailResponse struct {
	Trip TripResponse `json:"trip"`
}

// EstimateRequest is the partial form used for the budget preview
type EstimateRequest struct {
	Destination     string   `json:"destination"`
	MaxDurationDays int      `json:"max_duration_days"`
	NumPeople       int      `json:"num_people"`
	MustVisitPlaces []string `json:"must_visit_places"`
}

// EstimateResponse is the budget preview
type EstimateResponse struct {
	PerCategoryTotal map[models.Category]float64 `json:"per_category_total"`
	Total            float64                     `json:"total"`
}

// RecommendationResponse wraps a recommendation with the trip it was built for
type RecommendationResponse struct {
	Trip           TripResponse          `json:"trip"`
	Recommendation models.Recommendation `json:"recommendation"`
}

// DestinationsResponse lists known destinations
type DestinationsResponse struct {
	Destinations []string `json:"destinations"`
}

// SuggestionsResponse lists popular places for a destination
type SuggestionsResponse struct {
	Destination string   `json:"destination"`
	Places      []string `json:"places"`
}
