package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRIPWISE_BACK-END/internal/models"
)

type fakeTripStore struct {
	trips   []models.TripRecord
	err     error
	inserts int
}

func (f *fakeTripStore) InsertTrip(_ context.Context, owner uuid.UUID, req models.TripRequest) (models.TripRecord, error) {
	f.inserts++
	if f.err != nil {
		return models.TripRecord{}, f.err
	}
	id := uuid.New()
	r := models.NewTripRecord(req, models.StorageRemote, time.Now())
	r.RemoteID = &id
	r.OwnerID = &owner
	f.trips = append([]models.TripRecord{r}, f.trips...)
	return r, nil
}

func (f *fakeTripStore) GetTrip(_ context.Context, id, owner uuid.UUID) (models.TripRecord, error) {
	for _, t := range f.trips {
		if *t.RemoteID == id && *t.OwnerID == owner {
			return t, nil
		}
	}
	return models.TripRecord{}, ErrTripNotFound
}

func (f *fakeTripStore) ListTrips(_ context.Context, owner uuid.UUID) ([]models.TripRecord, error) {
	out := []models.TripRecord{}
	for _, t := range f.trips {
		if *t.OwnerID == owner {
			out = append(out, t)
		}
	}
	return out, nil
}

func tripRequest() models.TripRequest {
	return models.TripRequest{
		Destination:     "Goa",
		MustVisitPlaces: []string{"Baga Beach"},
		DateFrom:        time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		DateTo:          time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC),
		MaxDurationDays: 4,
		NumPeople:       2,
		MaxBudget:       20000,
	}
}

func TestGateway_SubmitRemote(t *testing.T) {
	trips := &fakeTripStore{}
	guests := NewMemoryGuestStore()
	g := NewGateway(trips, guests, GatewayOptions{})
	owner := uuid.New()

	out := g.Submit(context.Background(), SubmissionContext{SessionID: &owner}, tripRequest())

	stored, ok := out.(RemoteStored)
	require.True(t, ok, "got %T", out)
	assert.Equal(t, StateRemoteStored, out.State())
	assert.Equal(t, *stored.Record.RemoteID, stored.RemoteID)
	assert.Equal(t, models.StorageRemote, stored.Record.StorageMode)
	assert.Equal(t, 0, guests.Len())
}

func TestGateway_SubmitRemoteFailureDoesNotFallBack(t *testing.T) {
	cause := errors.New("connection refused")
	trips := &fakeTripStore{err: cause}
	guests := NewMemoryGuestStore()
	g := NewGateway(trips, guests, GatewayOptions{})
	owner := uuid.New()

	out := g.Submit(context.Background(), SubmissionContext{SessionID: &owner, GuestKey: "g1"}, tripRequest())

	failed, ok := out.(Failed)
	require.True(t, ok, "got %T", out)
	assert.Equal(t, StateFailed, out.State())

	var perr *PersistenceError
	require.True(t, errors.As(failed.Err, &perr))
	assert.Equal(t, CodeRemoteWriteFailed, perr.Code)
	assert.ErrorIs(t, failed.Err, cause)

	assert.Equal(t, 1, trips.inserts)
	assert.Equal(t, 0, guests.Len())
}

func TestGateway_SubmitGuest(t *testing.T) {
	trips := &fakeTripStore{}
	guests := NewMemoryGuestStore()
	g := NewGateway(trips, guests, GatewayOptions{})

	out := g.Submit(context.Background(), SubmissionContext{GuestKey: "guest-1"}, tripRequest())

	stored, ok := out.(LocalStored)
	require.True(t, ok, "got %T", out)
	assert.Equal(t, "guest-1", stored.GuestKey)
	assert.Equal(t, models.StorageLocal, stored.Record.StorageMode)
	assert.Nil(t, stored.Record.RemoteID)
	assert.Equal(t, 0, trips.inserts)

	blob, ok := guests.Get("guest-1", GuestTripKey)
	require.True(t, ok)
	assert.Contains(t, string(blob), `"destination":"Goa"`)
}

func TestGateway_SubmitGuestGeneratesKey(t *testing.T) {
	g := NewGateway(&fakeTripStore{}, NewMemoryGuestStore(), GatewayOptions{})

	out := g.Submit(context.Background(), SubmissionContext{}, tripRequest())

	stored, ok := out.(LocalStored)
	require.True(t, ok)
	_, err := uuid.Parse(stored.GuestKey)
	assert.NoError(t, err)
}

func TestGateway_NilSessionIsGuest(t *testing.T) {
	nilID := uuid.Nil
	trips := &fakeTripStore{}
	g := NewGateway(trips, NewMemoryGuestStore(), GatewayOptions{})

	out := g.Submit(context.Background(), SubmissionContext{SessionID: &nilID, GuestKey: "g"}, tripRequest())
	assert.Equal(t, StateLocalStored, out.State())
	assert.Equal(t, 0, trips.inserts)
}

func TestGateway_CurrentGuest(t *testing.T) {
	guests := NewMemoryGuestStore()
	g := NewGateway(&fakeTripStore{}, guests, GatewayOptions{})
	g.Submit(context.Background(), SubmissionContext{GuestKey: "g"}, tripRequest())

	for i := 0; i < 2; i++ {
		record, err := g.Current(context.Background(), CurrentTripHandle{GuestKey: "g"})
		require.NoError(t, err)
		assert.Equal(t, "Goa", record.Destination)
		assert.Equal(t, []string{"Baga Beach"}, record.MustVisitPlaces)
		assert.True(t, record.DateFrom.Equal(tripRequest().DateFrom))
	}

	_, err := g.Current(context.Background(), CurrentTripHandle{GuestKey: "other"})
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestGateway_CurrentGuestClearAfterRead(t *testing.T) {
	guests := NewMemoryGuestStore()
	g := NewGateway(&fakeTripStore{}, guests, GatewayOptions{ClearAfterRead: true})
	g.Submit(context.Background(), SubmissionContext{GuestKey: "g"}, tripRequest())

	_, err := g.Current(context.Background(), CurrentTripHandle{GuestKey: "g"})
	require.NoError(t, err)

	_, err = g.Current(context.Background(), CurrentTripHandle{GuestKey: "g"})
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestGateway_CurrentGuestCorruptBlob(t *testing.T) {
	guests := NewMemoryGuestStore()
	require.NoError(t, guests.Put("g", GuestTripKey, []byte("{not json")))
	g := NewGateway(&fakeTripStore{}, guests, GatewayOptions{})

	_, err := g.Current(context.Background(), CurrentTripHandle{GuestKey: "g"})
	var perr *PersistenceError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, CodeSerialization, perr.Code)
}

func TestGateway_CurrentRemote(t *testing.T) {
	trips := &fakeTripStore{}
	g := NewGateway(trips, NewMemoryGuestStore(), GatewayOptions{})
	owner, stranger := uuid.New(), uuid.New()

	first := g.Submit(context.Background(), SubmissionContext{SessionID: &owner}, tripRequest()).(RemoteStored)
	second := g.Submit(context.Background(), SubmissionContext{SessionID: &owner}, tripRequest()).(RemoteStored)

	got, err := g.Current(context.Background(), CurrentTripHandle{RemoteID: &first.RemoteID, OwnerID: &owner})
	require.NoError(t, err)
	assert.Equal(t, first.RemoteID, *got.RemoteID)

	latest, err := g.Current(context.Background(), CurrentTripHandle{OwnerID: &owner})
	require.NoError(t, err)
	assert.Equal(t, second.RemoteID, *latest.RemoteID)

	_, err = g.Current(context.Background(), CurrentTripHandle{RemoteID: &first.RemoteID, OwnerID: &stranger})
	assert.ErrorIs(t, err, ErrTripNotFound)

	_, err = g.Current(context.Background(), CurrentTripHandle{OwnerID: &stranger})
	assert.ErrorIs(t, err, ErrTripNotFound)

	_, err = g.Current(context.Background(), CurrentTripHandle{})
	assert.ErrorIs(t, err, ErrTripNotFound)

	list, err := g.List(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
