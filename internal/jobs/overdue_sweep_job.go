package jobs

import (
	"context"
	"log/slog"

	"pickup/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOverdueSweepSpec runs the sweep at second 0 of every minute.
const DefaultOverdueSweepSpec = "0 * * * * *"

type overdueOrdersExpirer interface {
	Handle(ctx context.Context, command commands.ExpireOverdueOrdersCommand) (int, error)
}

// OverdueSweepJob periodically fails active orders whose deadline has passed.
// It catches orders whose timer was lost or whose expiry failed.
type OverdueSweepJob struct {
	handler overdueOrdersExpirer
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueSweepJob creates the job; spec is a six-field cron expression
// with seconds, DefaultOverdueSweepSpec when empty.
func NewOverdueSweepJob(handler overdueOrdersExpirer, spec string, logger *slog.Logger) *OverdueSweepJob {
	if spec == "" {
		spec = DefaultOverdueSweepSpec
	}
	return &OverdueSweepJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  logger.With("component", "overdue_sweep_job"),
	}
}

func (j *OverdueSweepJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue sweep job started", "spec", j.spec)
	return nil
}

// Run performs one sweep.
func (j *OverdueSweepJob) Run() {
	ctx := context.Background()

	expired, err := j.handler.Handle(ctx, commands.NewExpireOverdueOrdersCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue sweep failed", "error", err, "overdue", expired)
		return
	}
	if expired > 0 {
		j.logger.InfoContext(ctx, "Overdue orders expired", "count", expired)
	}
}

// Stop stops the schedule and waits for a running sweep to finish.
func (j *OverdueSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Overdue sweep job stopped")
}
