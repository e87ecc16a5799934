package intake

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRIPWISE_BACK-END/internal/models"
	"TRIPWISE_BACK-END/internal/planner"
	"TRIPWISE_BACK-END/internal/storage"
)

type failingTripStore struct {
	calls int
}

func (f *failingTripStore) InsertTrip(context.Context, uuid.UUID, models.TripRequest) (models.TripRecord, error) {
	f.calls++
	return models.TripRecord{}, errors.New("database unavailable")
}

func (f *failingTripStore) GetTrip(context.Context, uuid.UUID, uuid.UUID) (models.TripRecord, error) {
	return models.TripRecord{}, storage.ErrTripNotFound
}

func (f *failingTripStore) ListTrips(context.Context, uuid.UUID) ([]models.TripRecord, error) {
	return nil, nil
}

type countingPersister struct {
	Persister
	submits int
}

func (c *countingPersister) Submit(ctx context.Context, sc storage.SubmissionContext, req models.TripRequest) storage.Outcome {
	c.submits++
	return c.Persister.Submit(ctx, sc, req)
}

type countingRecommender struct {
	Recommender
	calls int
}

func (c *countingRecommender) Recommend(record models.TripRecord) (models.Recommendation, error) {
	c.calls++
	return c.Recommender.Recommend(record)
}

func goa() models.TripRequest {
	return models.TripRequest{
		Destination:     "Goa",
		MustVisitPlaces: []string{"Baga Beach", "Baga Beach"},
		DateFrom:        time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		DateTo:          time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC),
		MaxDurationDays: 4,
		NumPeople:       2,
		MaxBudget:       20000,
	}
}

func newService(trips storage.TripStore, guests *storage.MemoryGuestStore) (*Service, *countingPersister, *countingRecommender) {
	p := &countingPersister{Persister: storage.NewGateway(trips, guests, storage.GatewayOptions{})}
	r := &countingRecommender{Recommender: planner.NewEngine(planner.Options{Random: planner.Seeded(1)})}
	return NewService(p, r), p, r
}

func TestSubmit_GuestPath(t *testing.T) {
	guests := storage.NewMemoryGuestStore()
	svc, _, _ := newService(&failingTripStore{}, guests)

	res, err := svc.Submit(context.Background(), storage.SubmissionContext{GuestKey: "g"}, goa())
	require.NoError(t, err)

	assert.Equal(t, storage.StateLocalStored, res.Outcome.State())
	assert.Equal(t, "g", res.GuestKey())
	assert.Equal(t, []string{"Baga Beach"}, res.Record.MustVisitPlaces)
	assert.Equal(t, 4, res.Recommendation.StayNights)
	assert.Equal(t, "Baga Beach", res.Recommendation.Attractions[0].Name)
	assert.Len(t, res.Recommendation.Attractions, 5)
}

func TestSubmit_MissingDateRangeStoresNothing(t *testing.T) {
	guests := storage.NewMemoryGuestStore()
	trips := &failingTripStore{}
	svc, p, r := newService(trips, guests)

	req := goa()
	req.DateTo = time.Time{}

	_, err := svc.Submit(context.Background(), storage.SubmissionContext{GuestKey: "g"}, req)
	assert.ErrorIs(t, err, planner.ErrMissingDateRange)
	assert.Equal(t, 0, p.submits)
	assert.Equal(t, 0, r.calls)
	assert.Equal(t, 0, guests.Len())
	assert.Equal(t, 0, trips.calls)
}

func TestSubmit_RemoteFailureNoFallbackNoRecommendation(t *testing.T) {
	guests := storage.NewMemoryGuestStore()
	trips := &failingTripStore{}
	svc, _, r := newService(trips, guests)
	owner := uuid.New()

	_, err := svc.Submit(context.Background(), storage.SubmissionContext{SessionID: &owner, GuestKey: "g"}, goa())

	var perr *storage.PersistenceError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, storage.CodeRemoteWriteFailed, perr.Code)
	assert.Equal(t, 1, trips.calls)
	assert.Equal(t, 0, guests.Len())
	assert.Equal(t, 0, r.calls)
}

func TestRecommend_GuestTripReusable(t *testing.T) {
	guests := storage.NewMemoryGuestStore()
	svc, _, _ := newService(&failingTripStore{}, guests)

	res, err := svc.Submit(context.Background(), storage.SubmissionContext{GuestKey: "g"}, goa())
	require.NoError(t, err)

	record, rec, err := svc.Recommend(context.Background(), storage.CurrentTripHandle{GuestKey: "g"})
	require.NoError(t, err)
	assert.Equal(t, "Goa", record.Destination)
	assert.Equal(t, res.Recommendation.Budget, rec.Budget)

	_, _, err = svc.Recommend(context.Background(), storage.CurrentTripHandle{GuestKey: "nobody"})
	assert.ErrorIs(t, err, storage.ErrTripNotFound)
}
