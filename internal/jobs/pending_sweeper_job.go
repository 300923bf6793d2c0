package jobs

import (
	"context"
	"errors"
	"log/slog"

	"scheduling/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// PendingJobSweeperJob periodically re-enqueues jobs stuck in Pending
// status. Covers jobs that were accepted while the queue was full and
// jobs whose queue entry was lost in a restart.
type PendingJobSweeperJob struct {
	uowFactory ports.UnitOfWorkFactory
	queue      ports.JobQueue
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewPendingJobSweeperJob creates a sweeper running every 30 seconds.
func NewPendingJobSweeperJob(
	uowFactory ports.UnitOfWorkFactory,
	queue ports.JobQueue,
	logger *slog.Logger,
) *PendingJobSweeperJob {
	return &PendingJobSweeperJob{
		uowFactory: uowFactory,
		queue:      queue,
		cron:       cron.New(),
		logger:     logger.With("component", "pending_job_sweeper"),
	}
}

// Start begins the sweeper schedule.
func (j *PendingJobSweeperJob) Start() error {
	_, err := j.cron.AddFunc("@every 30s", func() {
		j.sweep(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending job sweeper started (running every 30 seconds)")
	return nil
}

// Stop stops the sweeper.
func (j *PendingJobSweeperJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending job sweeper stopped")
}

func (j *PendingJobSweeperJob) sweep(ctx context.Context) {
	uow := j.uowFactory.Create()

	pending, err := uow.ScheduleJobRepository().GetAllInPendingStatus(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending job sweep failed", "error", err)
		return
	}

	for _, job := range pending {
		if err := j.queue.Enqueue(ctx, job.ID()); err != nil {
			if errors.Is(err, ErrQueueFull) {
				// The rest will be picked up by a later sweep.
				j.logger.WarnContext(ctx, "Job queue full, sweep deferred", "job_id", job.ID())
				return
			}
			j.logger.ErrorContext(ctx, "Failed to enqueue pending job", "job_id", job.ID(), "error", err)
		}
	}

	if len(pending) > 0 {
		j.logger.InfoContext(ctx, "Re-enqueued pending jobs", "count", len(pending))
	}
}
