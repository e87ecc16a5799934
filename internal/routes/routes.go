package routes

import (
	"net/http"

	"github.com/newrelic/go-agent/v3/newrelic"
	httpSwagger "github.com/swaggo/http-swagger"

	"TRIPWISE_BACK-END/internal/config"
	"TRIPWISE_BACK-END/internal/handlers"
	"TRIPWISE_BACK-END/internal/middleware"
)

// Handlers groups the HTTP handlers served by the API
type Handlers struct {
	Auth            *handlers.AuthHandler
	Health          *handlers.HealthHandler
	Trips           *handlers.TripsHandler
	Recommendations *handlers.RecommendationsHandler
}

// SetupRoutes configures all application routes on mux.
// A nil app leaves handlers unwrapped.
func SetupRoutes(mux *http.ServeMux, h Handlers, jwtCfg *config.JWTConfig, app *newrelic.Application) {
	handle := func(pattern string, fn http.HandlerFunc) {
		mux.HandleFunc(newrelic.WrapHandleFunc(app, pattern, fn))
	}

	// Health check routes
	handle("/healthz", h.Health.HealthCheck)
	handle("/livez", h.Health.LivenessCheck)
	handle("/readyz", h.Health.ReadinessCheck)

	// Authentication routes
	handle("/api/auth/register", h.Auth.Register)
	handle("/api/auth/login", h.Auth.Login)
	handle("/api/auth/profile", middleware.AuthMiddleware(h.Auth.GetProfile, jwtCfg))

	// Trip routes
	handle("/api/trips", middleware.OptionalAuth(h.Trips.Trips, jwtCfg))
	handle("/api/trips/estimate", h.Trips.EstimateBudget)
	handle("/api/trips/", middleware.AuthMiddleware(h.Trips.TripDetail, jwtCfg))

	// Recommendation routes
	handle("/api/recommendations", middleware.OptionalAuth(h.Recommendations.GetRecommendation, jwtCfg))
	handle("/api/recommendations/export", middleware.OptionalAuth(h.Recommendations.ExportRecommendation, jwtCfg))

	// Destination routes
	handle("/api/destinations", handlers.ListDestinations)
	handle("/api/destinations/suggestions", handlers.SuggestPlaces)

	// Swagger documentation
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Root route
	mux.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Write([]byte("Tripwise backend is running."))
}
