// @title Tripwise Backend API
// @version 1.0
// @description Trip intake, recommendation and budget synthesis API
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/cors"

	_ "TRIPWISE_BACK-END/docs" // This is required for swagger
	"TRIPWISE_BACK-END/internal/config"
	"TRIPWISE_BACK-END/internal/handlers"
	"TRIPWISE_BACK-END/internal/intake"
	"TRIPWISE_BACK-END/internal/jobs"
	"TRIPWISE_BACK-END/internal/planner"
	"TRIPWISE_BACK-END/internal/routes"
	"TRIPWISE_BACK-END/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// pgxpool + simple protocol (required behind PgBouncer)
	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		log.Fatalf("parse dsn: %v", err)
	}
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "tripwise-backend"
	poolCfg.ConnConfig.RuntimeParams["statement_timeout"] = strconv.FormatInt(cfg.Database.QueryTimeout.Milliseconds(), 10)
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	// Ping and migrate at boot
	{
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			log.Fatalf("ping: %v", err)
		}
		if err := storage.EnsureSchema(ctx, pool); err != nil {
			log.Fatalf("schema: %v", err)
		}
	}

	var app *newrelic.Application
	if cfg.IsNewRelicConfigured() {
		app, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
		)
		if err != nil {
			log.Printf("New Relic disabled: %v", err)
			app = nil
		}
	}

	// --- Planner ---
	random := planner.Seeded(cfg.Planner.Seed)
	if cfg.Planner.LiveFluctuation {
		random = planner.Live()
	}
	selector, err := planner.ParseTierSelector(cfg.Planner.TierStrategy)
	if err != nil {
		log.Fatalf("planner: %v", err)
	}
	engine := planner.NewEngine(planner.Options{
		Random:             random,
		TierSelector:       selector,
		MinimumAttractions: cfg.Planner.MinimumAttractions,
	})

	// --- Storage ---
	guests := storage.NewMemoryGuestStore()
	gateway := storage.NewGateway(
		storage.NewPostgresTripStore(pool, cfg.Database.QueryTimeout),
		guests,
		storage.GatewayOptions{ClearAfterRead: cfg.Guest.ClearAfterRead},
	)
	users := storage.NewPostgresUserStore(pool, cfg.Database.QueryTimeout)

	sweeper, err := jobs.StartGuestSweeper(guests, cfg.Guest.SweepSchedule, cfg.Guest.TTL)
	if err != nil {
		log.Fatalf("cron: %v", err)
	}
	defer sweeper.Stop()

	// --- HTTP Handlers ---
	service := intake.NewService(gateway, engine)
	mux := http.NewServeMux()
	routes.SetupRoutes(mux, routes.Handlers{
		Auth:            handlers.NewAuthHandler(users, &cfg.JWT),
		Health:          handlers.NewHealthHandler(pool),
		Trips:           handlers.NewTripsHandler(service, gateway),
		Recommendations: handlers.NewRecommendationsHandler(service),
	}, &cfg.JWT, app)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   []string{"X-Guest-Key", "Content-Disposition"},
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           c.Handler(mux),
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	// Wait for SIGINT/SIGTERM to shut down gracefully
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	if app != nil {
		app.Shutdown(cfg.Server.ShutdownTimeout)
	}
	log.Println("Server stopped.")
}
