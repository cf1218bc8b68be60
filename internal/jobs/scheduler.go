package jobs

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/hydroshield/specbuilder-backend/internal/selection"
)

type Scheduler struct {
	cache *selection.OptionCache
}

func NewScheduler(cache *selection.OptionCache) *Scheduler {
	return &Scheduler{cache: cache}
}

// Start schedules the nightly option-cache flush so back-office edits to the
// product-system tables surface without waiting for TTL expiry.
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	// (12:00 AM)
	_, err := c.AddFunc("0 0 0 * * *", func() {
		if err := s.cache.Flush(context.Background()); err != nil {
			log.Printf("Option cache flush failed: %v", err)
			return
		}
		log.Println("Option cache flushed")
	})

	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Cron scheduler started (flushing option cache nightly at 12:00AM)")
	c.Start()
}
