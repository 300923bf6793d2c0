package jobs

import (
	"context"
	"log/slog"
	"sync"

	"scheduling/internal/core/application/usecases/commands"
	"scheduling/internal/core/domain/model/kernel"
)

// ScheduleWorkerPool consumes the job queue and runs schedule generation.
// Each worker claims a job transactionally before processing, so running
// several workers (or receiving duplicate queue entries) is safe.
type ScheduleWorkerPool struct {
	queue   *ChannelJobQueue
	handler commands.ProcessScheduleCommandHandler
	workers int
	logger  *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScheduleWorkerPool creates a worker pool of the given size.
// A non-positive size falls back to a single worker.
func NewScheduleWorkerPool(
	queue *ChannelJobQueue,
	handler commands.ProcessScheduleCommandHandler,
	workers int,
	logger *slog.Logger,
) *ScheduleWorkerPool {
	if workers <= 0 {
		workers = 1
	}

	return &ScheduleWorkerPool{
		queue:   queue,
		handler: handler,
		workers: workers,
		logger:  logger.With("component", "schedule_worker_pool"),
	}
}

// Start launches the workers. Calling Start on a running pool is a no-op.
func (p *ScheduleWorkerPool) Start() error {
	if p.cancel != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel

	for i := range p.workers {
		p.wg.Add(1)
		go p.run(ctx, i)
	}

	p.logger.InfoContext(ctx, "Schedule workers started", "count", p.workers)
	return nil
}

// Stop signals all workers to finish and waits for them.
// A job being processed is completed before its worker exits; jobs still
// in the queue are left for the sweeper after restart.
func (p *ScheduleWorkerPool) Stop() {
	if p.cancel == nil {
		return
	}

	p.cancel()
	p.wg.Wait()
	p.cancel = nil

	p.logger.InfoContext(context.Background(), "Schedule workers stopped")
}

func (p *ScheduleWorkerPool) run(ctx context.Context, worker int) {
	defer p.wg.Done()
	logger := p.logger.With("worker", worker)

	for {
		select {
		case <-ctx.Done():
			return
		case jobID := <-p.queue.Jobs():
			// The stop signal only interrupts dequeueing. A dequeued job
			// runs under its own context so it reaches a terminal status.
			p.process(context.WithoutCancel(ctx), logger, jobID)
		}
	}
}

func (p *ScheduleWorkerPool) process(ctx context.Context, logger *slog.Logger, jobID kernel.UUID) {
	command, err := commands.NewProcessScheduleCommand(jobID)
	if err != nil {
		logger.ErrorContext(ctx, "Invalid job ID dequeued", "job_id", jobID, "error", err)
		return
	}

	if err := p.handler.Handle(ctx, command); err != nil {
		logger.ErrorContext(ctx, "Schedule processing failed", "job_id", jobID, "error", err)
	}
}
