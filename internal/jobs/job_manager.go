package jobs

import (
	"context"
	"fmt"
)

// JobManager coordinates all background work of the service.
// Provides a unified interface to start and stop it.
type JobManager struct {
	overdueSweepJob *OverdueSweepJob
	expiryScheduler *ExpiryScheduler
}

func NewJobManager(overdueSweepJob *OverdueSweepJob, expiryScheduler *ExpiryScheduler) *JobManager {
	return &JobManager{
		overdueSweepJob: overdueSweepJob,
		expiryScheduler: expiryScheduler,
	}
}

// StartAll starts all scheduled jobs. The expiry scheduler needs no start:
// it runs as soon as timers are scheduled.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue sweep job: %w", err)
	}
	return nil
}

// StopAll stops the sweep and the expiry timers, waiting for running work
// until ctx ends.
func (jm *JobManager) StopAll(ctx context.Context) error {
	jm.overdueSweepJob.Stop()

	if err := jm.expiryScheduler.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to stop expiry scheduler: %w", err)
	}
	return nil
}
