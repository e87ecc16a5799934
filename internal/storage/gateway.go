package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"TRIPWISE_BACK-END/internal/models"
)

// GuestTripKey is the key the current guest trip is stored under
const GuestTripKey = "tripData"

// State is the lifecycle position of a submission
type State int

const (
	StateUnresolved State = iota
	StateRemoteStored
	StateLocalStored
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateRemoteStored:
		return "remote_stored"
	case StateLocalStored:
		return "local_stored"
	case StateFailed:
		return "failed"
	default:
		return "unresolved"
	}
}

// Outcome is the resolved result of Submit: RemoteStored, LocalStored or Failed
type Outcome interface {
	State() State
	outcome()
}

// RemoteStored means the trip was written to the durable store
type RemoteStored struct {
	Record   models.TripRecord
	RemoteID uuid.UUID
}

// LocalStored means the trip was written to the guest's ephemeral scope
type LocalStored struct {
	Record   models.TripRecord
	GuestKey string
}

// Failed is terminal. Err is always a *PersistenceError.
type Failed struct {
	Err error
}

func (RemoteStored) State() State { return StateRemoteStored }
func (LocalStored) State() State  { return StateLocalStored }
func (Failed) State() State       { return StateFailed }

func (RemoteStored) outcome() {}
func (LocalStored) outcome()  {}
func (Failed) outcome()       {}

// SubmissionContext carries who is submitting.
// SessionID set means a signed-in user; otherwise GuestKey scopes the local store.
type SubmissionContext struct {
	SessionID *uuid.UUID
	GuestKey  string
}

// Authenticated reports whether the submission has a session
func (c SubmissionContext) Authenticated() bool {
	return c.SessionID != nil && *c.SessionID != uuid.Nil
}

// CurrentTripHandle identifies the trip a recommendation is computed for.
// With RemoteID it resolves that trip for OwnerID; with only OwnerID it resolves
// the owner's latest trip; otherwise it reads the guest blob.
type CurrentTripHandle struct {
	RemoteID *uuid.UUID
	OwnerID  *uuid.UUID
	GuestKey string
}

// GatewayOptions configures a Gateway
type GatewayOptions struct {
	ClearAfterRead bool
}

// Gateway routes trip submissions to the remote or guest store
type Gateway struct {
	trips          TripStore
	guests         GuestStore
	clearAfterRead bool
	now            func() time.Time
}

// NewGateway creates a gateway over the two stores
func NewGateway(trips TripStore, guests GuestStore, opts GatewayOptions) *Gateway {
	return &Gateway{
		trips:          trips,
		guests:         guests,
		clearAfterRead: opts.ClearAfterRead,
		now:            time.Now,
	}
}

// Submit persists a validated request exactly once.
// A failed remote write is terminal and never falls back to the guest store.
func (g *Gateway) Submit(ctx context.Context, sc SubmissionContext, req models.TripRequest) Outcome {
	if sc.Authenticated() {
		record, err := g.trips.InsertTrip(ctx, *sc.SessionID, req)
		if err != nil {
			return Failed{Err: &PersistenceError{Code: CodeRemoteWriteFailed, Err: err}}
		}
		if record.RemoteID == nil {
			return Failed{Err: &PersistenceError{Code: CodeRemoteWriteFailed, Err: errors.New("store returned no id")}}
		}
		return RemoteStored{Record: record, RemoteID: *record.RemoteID}
	}

	guestKey := sc.GuestKey
	if guestKey == "" {
		guestKey = uuid.NewString()
	}

	record := models.NewTripRecord(req, models.StorageLocal, g.now().UTC())
	blob, err := json.Marshal(record)
	if err != nil {
		return Failed{Err: &PersistenceError{Code: CodeSerialization, Err: err}}
	}
	if err := g.guests.Put(guestKey, GuestTripKey, blob); err != nil {
		return Failed{Err: &PersistenceError{Code: CodeSerialization, Err: err}}
	}
	return LocalStored{Record: record, GuestKey: guestKey}
}

// Current resolves the trip a handle points at
func (g *Gateway) Current(ctx context.Context, h CurrentTripHandle) (models.TripRecord, error) {
	switch {
	case h.RemoteID != nil:
		if h.OwnerID == nil {
			return models.TripRecord{}, ErrTripNotFound
		}
		return g.trips.GetTrip(ctx, *h.RemoteID, *h.OwnerID)
	case h.OwnerID != nil:
		trips, err := g.trips.ListTrips(ctx, *h.OwnerID)
		if err != nil {
			return models.TripRecord{}, err
		}
		if len(trips) == 0 {
			return models.TripRecord{}, ErrTripNotFound
		}
		return trips[0], nil
	case h.GuestKey != "":
		return g.readGuest(h.GuestKey)
	default:
		return models.TripRecord{}, ErrTripNotFound
	}
}

func (g *Gateway) readGuest(guestKey string) (models.TripRecord, error) {
	blob, ok := g.guests.Get(guestKey, GuestTripKey)
	if !ok {
		return models.TripRecord{}, ErrTripNotFound
	}

	var record models.TripRecord
	if err := json.Unmarshal(blob, &record); err != nil {
		return models.TripRecord{}, &PersistenceError{Code: CodeSerialization, Err: err}
	}
	if g.clearAfterRead {
		g.guests.Delete(guestKey, GuestTripKey)
	}
	return record, nil
}

// List returns an owner's remote trips, newest first
func (g *Gateway) List(ctx context.Context, owner uuid.UUID) ([]models.TripRecord, error) {
	return g.trips.ListTrips(ctx, owner)
}
