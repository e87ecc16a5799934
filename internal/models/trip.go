package models

import (
	"time"

	"github.com/google/uuid"
)

// StorageMode tells where a trip record lives
type StorageMode string

const (
	StorageRemote StorageMode = "remote"
	StorageLocal  StorageMode = "local"
)

// TripRequest represents a traveler's intent for a prospective trip
type TripRequest struct {
	Destination     string    `json:"destination"`
	MustVisitPlaces []string  `json:"must_visit_places"`
	DateFrom        time.Time `json:"date_from"`
	DateTo          time.Time `json:"date_to"`
	MaxDurationDays int       `json:"max_duration_days"`
	NumPeople       int       `json:"num_people"`
	MaxBudget       float64   `json:"max_budget"`
}

// TripRecord is the stored snapshot of one submission.
// A new submission always produces a new record.
type TripRecord struct {
	TripRequest
	StorageMode StorageMode `json:"storage_mode" db:"-"`
	RemoteID    *uuid.UUID  `json:"remote_id,omitempty" db:"id"`
	OwnerID     *uuid.UUID  `json:"owner_id,omitempty" db:"owner_id"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`
}

// NewTripRecord snapshots a validated request
func NewTripRecord(req TripRequest, mode StorageMode, now time.Time) TripRecord {
	places := make([]string, len(req.MustVisitPlaces))
	copy(places, req.MustVisitPlaces)
	req.MustVisitPlaces = places

	return TripRecord{
		TripRequest: req,
		StorageMode: mode,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
