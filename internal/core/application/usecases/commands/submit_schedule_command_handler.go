package commands

import (
	"context"

	"scheduling/internal/core/domain/model/schedulejob"
	"scheduling/internal/core/ports"
)

// SubmitScheduleCommandHandler handles the business logic for accepting a
// new schedule job. Persists the job in Pending status and hands it to the
// background queue for processing.
//
// Example:
//
//	handler := NewSubmitScheduleCommandHandler(uowFactory, queue)
//	cmd, _ := NewSubmitScheduleCommand(jobID, groupID, period)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("schedule submission failed: %w", err)
//	}
//	// Job is accepted and will be processed asynchronously
type SubmitScheduleCommandHandler struct {
	uowFactory JobUoWFactory
	queue      ports.JobQueue
}

// NewSubmitScheduleCommandHandler creates a handler for schedule submission.
// Requires a JobUoWFactory for transactional persistence and a JobQueue to
// hand accepted jobs over to the workers.
func NewSubmitScheduleCommandHandler(uowFactory JobUoWFactory, queue ports.JobQueue) SubmitScheduleCommandHandler {
	return SubmitScheduleCommandHandler{
		uowFactory: uowFactory,
		queue:      queue,
	}
}

// Handle processes the schedule submission command.
// Creates the job in Pending status and commits it before enqueueing, so
// an accepted job is never lost: if the queue is full the handler returns
// the queue's error while the pending job remains visible to the sweeper,
// which re-enqueues it later.
func (h SubmitScheduleCommandHandler) Handle(ctx context.Context, command SubmitScheduleCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	job, err := schedulejob.NewScheduleJob(command.JobID(), command.StaffGroupID(), command.Period())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ScheduleJobRepository().Add(ctx, job); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.queue.Enqueue(ctx, job.ID())
}
