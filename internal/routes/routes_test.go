package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"TRIPWISE_BACK-END/internal/config"
	"TRIPWISE_BACK-END/internal/handlers"
	"TRIPWISE_BACK-END/internal/intake"
	"TRIPWISE_BACK-END/internal/planner"
	"TRIPWISE_BACK-END/internal/storage"
)

func newMux() *http.ServeMux {
	jwtCfg := &config.JWTConfig{Secret: "routes-secret", AccessTokenTTL: time.Hour}
	gw := storage.NewGateway(nil, storage.NewMemoryGuestStore(), storage.GatewayOptions{})
	svc := intake.NewService(gw, planner.NewEngine(planner.Options{Random: planner.Seeded(1)}))

	mux := http.NewServeMux()
	SetupRoutes(mux, Handlers{
		Auth:            handlers.NewAuthHandler(nil, jwtCfg),
		Health:          handlers.NewHealthHandler(nil),
		Trips:           handlers.NewTripsHandler(svc, gw),
		Recommendations: handlers.NewRecommendationsHandler(svc),
	}, jwtCfg, nil)
	return mux
}

func TestRoutes(t *testing.T) {
	mux := newMux()

	tests := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodGet, "/nope", "", http.StatusNotFound},
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodGet, "/api/destinations", "", http.StatusOK},
		{http.MethodGet, "/api/trips", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/trips/" + "123", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/auth/profile", "", http.StatusUnauthorized},
		{http.MethodPost, "/api/trips/estimate", `{"destination":"Goa","max_duration_days":1,"num_people":1}`, http.StatusOK},
		{http.MethodPost, "/api/trips", `{"destination":"Goa","date_from":"2024-12-01","date_to":"2024-12-03","max_duration_days":2,"num_people":1,"max_budget":5000}`, http.StatusCreated},
		{http.MethodDelete, "/api/trips", "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}
