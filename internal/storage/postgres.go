package storage

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"TRIPWISE_BACK-END/internal/models"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema creates the users and trips tables when missing
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

const tripColumns = `id, owner_id, destination, must_visit_places, date_from, date_to,
	max_duration, num_people, max_budget, created_at, updated_at`

// PostgresTripStore keeps trips of signed-in users in Postgres
type PostgresTripStore struct {
	db           *pgxpool.Pool
	queryTimeout time.Duration
}

// NewPostgresTripStore creates a store over the pool
func NewPostgresTripStore(db *pgxpool.Pool, queryTimeout time.Duration) *PostgresTripStore {
	return &PostgresTripStore{db: db, queryTimeout: queryTimeout}
}

func (s *PostgresTripStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

// InsertTrip writes a new trip; id and timestamps are assigned here
func (s *PostgresTripStore) InsertTrip(ctx context.Context, owner uuid.UUID, req models.TripRequest) (models.TripRecord, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	places := req.MustVisitPlaces
	if places == nil {
		places = []string{}
	}

	row := s.db.QueryRow(ctx,
		`INSERT INTO trips (id, owner_id, destination, must_visit_places, date_from, date_to,
		 max_duration, num_people, max_budget, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
		 RETURNING `+tripColumns,
		uuid.New(), owner, req.Destination, places, req.DateFrom, req.DateTo,
		req.MaxDurationDays, req.NumPeople, req.MaxBudget,
	)
	record, err := scanTrip(row)
	if err != nil {
		return models.TripRecord{}, fmt.Errorf("insert trip: %w", err)
	}
	return record, nil
}

// GetTrip returns one trip if it belongs to owner
func (s *PostgresTripStore) GetTrip(ctx context.Context, id, owner uuid.UUID) (models.TripRecord, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	row := s.db.QueryRow(ctx,
		`SELECT `+tripColumns+` FROM trips WHERE id = $1 AND owner_id = $2`,
		id, owner,
	)
	record, err := scanTrip(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.TripRecord{}, ErrTripNotFound
	}
	if err != nil {
		return models.TripRecord{}, fmt.Errorf("get trip: %w", err)
	}
	return record, nil
}

// ListTrips returns an owner's trips, newest first
func (s *PostgresTripStore) ListTrips(ctx context.Context, owner uuid.UUID) ([]models.TripRecord, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.Query(ctx,
		`SELECT `+tripColumns+` FROM trips WHERE owner_id = $1 ORDER BY created_at DESC`,
		owner,
	)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	defer rows.Close()

	trips := []models.TripRecord{}
	for rows.Next() {
		record, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("scan trip: %w", err)
		}
		trips = append(trips, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	return trips, nil
}

func scanTrip(row pgx.Row) (models.TripRecord, error) {
	var (
		id, owner uuid.UUID
		r         models.TripRecord
	)
	err := row.Scan(&id, &owner, &r.Destination, &r.MustVisitPlaces, &r.DateFrom, &r.DateTo,
		&r.MaxDurationDays, &r.NumPeople, &r.MaxBudget, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return models.TripRecord{}, err
	}
	r.StorageMode = models.StorageRemote
	r.RemoteID = &id
	r.OwnerID = &owner
	return r, nil
}
