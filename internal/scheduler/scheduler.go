// Package scheduler runs recurring background jobs, currently the
// nightly market-price refresh.
package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler wraps a cron runner with the application's jobs.
type Scheduler struct {
	cron *cron.Cron
}

// New creates a scheduler with the quote-refresh job registered on the
// given cron expression. An empty expression disables scheduling.
func New(refreshSchedule string, refreshJob func()) (*Scheduler, error) {
	c := cron.New()

	if refreshSchedule != "" {
		if _, err := c.AddFunc(refreshSchedule, refreshJob); err != nil {
			return nil, fmt.Errorf("invalid quote refresh schedule %q: %w", refreshSchedule, err)
		}
		log.Printf("Scheduled quote refresh: %s", refreshSchedule)
	}

	return &Scheduler{cron: c}, nil
}

// Start begins running jobs in their own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
