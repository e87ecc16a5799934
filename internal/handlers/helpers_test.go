package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"TRIPWISE_BACK-END/internal/config"
	"TRIPWISE_BACK-END/internal/intake"
	"TRIPWISE_BACK-END/internal/middleware"
	"TRIPWISE_BACK-END/internal/models"
	"TRIPWISE_BACK-END/internal/planner"
	"TRIPWISE_BACK-END/internal/storage"
)

var testJWT = &config.JWTConfig{Secret: "handler-test-secret", AccessTokenTTL: time.Hour}

type memTripStore struct {
	mu    sync.Mutex
	trips []models.TripRecord
	fail  bool
}

func (m *memTripStore) InsertTrip(_ context.Context, owner uuid.UUID, req models.TripRequest) (models.TripRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return models.TripRecord{}, errors.New("connection reset by peer")
	}
	id := uuid.New()
	r := models.NewTripRecord(req, models.StorageRemote, time.Now())
	r.RemoteID = &id
	r.OwnerID = &owner
	m.trips = append([]models.TripRecord{r}, m.trips...)
	return r, nil
}

func (m *memTripStore) GetTrip(_ context.Context, id, owner uuid.UUID) (models.TripRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.trips {
		if *t.RemoteID == id && *t.OwnerID == owner {
			return t, nil
		}
	}
	return models.TripRecord{}, storage.ErrTripNotFound
}

func (m *memTripStore) ListTrips(_ context.Context, owner uuid.UUID) ([]models.TripRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.TripRecord{}
	for _, t := range m.trips {
		if *t.OwnerID == owner {
			out = append(out, t)
		}
	}
	return out, nil
}

type tripEnv struct {
	trips  *memTripStore
	guests *storage.MemoryGuestStore
	h      *TripsHandler
	recs   *RecommendationsHandler
}

func newTripEnv() *tripEnv {
	trips := &memTripStore{}
	guests := storage.NewMemoryGuestStore()
	gw := storage.NewGateway(trips, guests, storage.GatewayOptions{})
	svc := intake.NewService(gw, planner.NewEngine(planner.Options{Random: planner.Seeded(1)}))
	return &tripEnv{
		trips:  trips,
		guests: guests,
		h:      NewTripsHandler(svc, gw),
		recs:   NewRecommendationsHandler(svc),
	}
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func bearer(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := middleware.GenerateToken(userID, "traveler@example.com", testJWT)
	require.NoError(t, err)
	return "Bearer " + token
}

func goaPayload() map[string]any {
	return map[string]any{
		"destination":       "Goa",
		"must_visit_places": []string{"Baga Beach"},
		"date_from":         "2024-12-01",
		"date_to":           "2024-12-05",
		"max_duration_days": 4,
		"num_people":        2,
		"max_budget":        20000,
	}
}

func serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}
