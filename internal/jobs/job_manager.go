package jobs

import (
	"fmt"
	"log/slog"

	"scheduling/internal/core/application/usecases/commands"
	"scheduling/internal/core/ports"
)

// JobManager coordinates all background work in the application.
// Provides a unified interface to start and stop the worker pool and the
// scheduled sweeper.
type JobManager struct {
	workerPool *ScheduleWorkerPool
	sweeperJob *PendingJobSweeperJob
}

// NewJobManager creates a job manager wiring the queue and the process
// handler into the worker pool and the pending job sweeper.
func NewJobManager(
	queue *ChannelJobQueue,
	processHandler commands.ProcessScheduleCommandHandler,
	uowFactory ports.UnitOfWorkFactory,
	workerCount int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		workerPool: NewScheduleWorkerPool(queue, processHandler, workerCount, logger),
		sweeperJob: NewPendingJobSweeperJob(uowFactory, queue, logger),
	}
}

// StartAll starts the workers and the sweeper.
// Returns an error if any component fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.workerPool.Start(); err != nil {
		return fmt.Errorf("failed to start schedule workers: %w", err)
	}

	if err := jm.sweeperJob.Start(); err != nil {
		// Stop already started components if this one fails
		jm.workerPool.Stop()
		return fmt.Errorf("failed to start pending job sweeper: %w", err)
	}

	return nil
}

// StopAll stops the sweeper and the workers gracefully.
// The sweeper stops first so no new work is enqueued while workers drain.
func (jm *JobManager) StopAll() {
	jm.sweeperJob.Stop()
	jm.workerPool.Stop()
}
