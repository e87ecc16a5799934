package storage

import (
	"context"

	"github.com/google/uuid"

	"TRIPWISE_BACK-END/internal/models"
)

// TripStore is the durable store for trips of signed-in users
type TripStore interface {
	InsertTrip(ctx context.Context, owner uuid.UUID, req models.TripRequest) (models.TripRecord, error)
	GetTrip(ctx context.Context, id, owner uuid.UUID) (models.TripRecord, error)
	ListTrips(ctx context.Context, owner uuid.UUID) ([]models.TripRecord, error)
}

// GuestStore keeps opaque blobs per guest, addressed by a well-known key
type GuestStore interface {
	Put(guestKey, key string, blob []byte) error
	Get(guestKey, key string) ([]byte, bool)
	Delete(guestKey, key string)
}
