package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRIPWISE_BACK-END/internal/storage"
)

type fakeSweeper struct {
	ttl   time.Duration
	calls int
}

func (f *fakeSweeper) Sweep(olderThan time.Duration) int {
	f.ttl = olderThan
	f.calls++
	return 3
}

func TestSweepGuests(t *testing.T) {
	s := &fakeSweeper{}
	assert.Equal(t, 3, SweepGuests(s, time.Hour))
	assert.Equal(t, time.Hour, s.ttl)
}

func TestSweepGuests_MemoryStore(t *testing.T) {
	store := storage.NewMemoryGuestStore()
	require.NoError(t, store.Put("g", storage.GuestTripKey, []byte("{}")))

	assert.Equal(t, 0, SweepGuests(store, time.Hour))
	assert.Equal(t, 1, store.Len())
}

func TestStartGuestSweeper(t *testing.T) {
	c, err := StartGuestSweeper(&fakeSweeper{}, "@every 10m", time.Hour)
	require.NoError(t, err)
	defer c.Stop()
	assert.Len(t, c.Entries(), 1)

	_, err = StartGuestSweeper(&fakeSweeper{}, "not a schedule", time.Hour)
	assert.Error(t, err)
}
