package intake

import (
	"context"
	"fmt"

	"TRIPWISE_BACK-END/internal/models"
	"TRIPWISE_BACK-END/internal/planner"
	"TRIPWISE_BACK-END/internal/storage"
)

// Persister stores a validated trip and resolves stored trips
type Persister interface {
	Submit(ctx context.Context, sc storage.SubmissionContext, req models.TripRequest) storage.Outcome
	Current(ctx context.Context, h storage.CurrentTripHandle) (models.TripRecord, error)
}

// Recommender computes a recommendation for a stored trip
type Recommender interface {
	Recommend(record models.TripRecord) (models.Recommendation, error)
}

// Result is a successful intake
type Result struct {
	Outcome        storage.Outcome
	Record         models.TripRecord
	Recommendation models.Recommendation
}

// GuestKey returns the guest scope the trip was stored under, if any
func (r Result) GuestKey() string {
	if local, ok := r.Outcome.(storage.LocalStored); ok {
		return local.GuestKey
	}
	return ""
}

// Service runs validate, persist, recommend in that order
type Service struct {
	persister   Persister
	recommender Recommender
}

// NewService creates a Service
func NewService(p Persister, r Recommender) *Service {
	return &Service{persister: p, recommender: r}
}

// Submit validates and stores a trip, then recommends for the stored record.
// Nothing is stored for an invalid request and nothing is recommended for a failed store.
func (s *Service) Submit(ctx context.Context, sc storage.SubmissionContext, req models.TripRequest) (Result, error) {
	validated, err := planner.Validate(req)
	if err != nil {
		return Result{}, err
	}

	out := s.persister.Submit(ctx, sc, validated)
	var record models.TripRecord
	switch o := out.(type) {
	case storage.RemoteStored:
		record = o.Record
	case storage.LocalStored:
		record = o.Record
	case storage.Failed:
		return Result{}, o.Err
	default:
		return Result{}, fmt.Errorf("unexpected persistence state %s", out.State())
	}

	rec, err := s.recommender.Recommend(record)
	if err != nil {
		return Result{}, fmt.Errorf("recommend: %w", err)
	}
	return Result{Outcome: out, Record: record, Recommendation: rec}, nil
}

// Recommend recomputes the recommendation for a stored trip
func (s *Service) Recommend(ctx context.Context, h storage.CurrentTripHandle) (models.TripRecord, models.Recommendation, error) {
	record, err := s.persister.Current(ctx, h)
	if err != nil {
		return models.TripRecord{}, models.Recommendation{}, err
	}
	rec, err := s.recommender.Recommend(record)
	if err != nil {
		return models.TripRecord{}, models.Recommendation{}, fmt.Errorf("recommend: %w", err)
	}
	return record, rec, nil
}
