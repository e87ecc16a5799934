package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Sweeper removes guest blobs older than a cutoff
type Sweeper interface {
	Sweep(olderThan time.Duration) int
}

// StartGuestSweeper runs the sweeper on schedule until the returned cron is stopped
func StartGuestSweeper(store Sweeper, schedule string, ttl time.Duration) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() { SweepGuests(store, ttl) })
	if err != nil {
		return nil, fmt.Errorf("schedule guest sweep %q: %w", schedule, err)
	}

	c.Start()
	return c, nil
}

// SweepGuests runs one sweep and logs the count
func SweepGuests(store Sweeper, ttl time.Duration) int {
	removed := store.Sweep(ttl)
	if removed > 0 {
		log.Printf("[Cron] removed %d stale guest trips", removed)
	}
	return removed
}
