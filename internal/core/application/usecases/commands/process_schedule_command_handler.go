package commands

import (
	"context"
	"errors"
	"log/slog"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedulejob"
	"scheduling/internal/core/domain/services"
	"scheduling/internal/core/ports"
	"scheduling/internal/pkg/errs"
)

// ProcessScheduleCommandHandler orchestrates the processing of one pending
// schedule job: it claims the job, resolves the staff group through the
// external data service, builds the plan and stores the result.
//
// Processing is split into two transactions. The first durably marks the
// job as Processing, so a crashed worker leaves a diagnosable state rather
// than a silently re-runnable job. The second stores the plan and the
// final status atomically, so a completed job always has its full set of
// assignments.
//
// Resolver failures (unknown group, unreachable data service) fail the job
// with the resolver's message instead of failing the worker: the outcome is
// recorded on the job where the client submitted it.
type ProcessScheduleCommandHandler struct {
	uowFactory UoWFactory
	resolver   ports.StaffGroupResolver
	planner    services.Planner
	logger     *slog.Logger
}

// NewProcessScheduleCommandHandler creates a handler for schedule processing.
// Requires a UoWFactory covering jobs and assignments, the staff group
// resolver and a configured planner.
func NewProcessScheduleCommandHandler(
	uowFactory UoWFactory,
	resolver ports.StaffGroupResolver,
	planner services.Planner,
	logger *slog.Logger,
) ProcessScheduleCommandHandler {
	return ProcessScheduleCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		planner:    planner,
		logger:     logger.With("component", "process_schedule_handler"),
	}
}

// Handle processes one schedule job end to end.
//
// Jobs no longer in Pending status are skipped without error: the queue
// may deliver a job more than once (worker restarts, sweeper re-enqueues)
// and only the first delivery may process it.
func (h ProcessScheduleCommandHandler) Handle(ctx context.Context, command ProcessScheduleCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	job, claimed, err := h.claimJob(ctx, command.JobID())
	if err != nil {
		return err
	}
	if !claimed {
		return nil
	}

	members, err := h.resolver.ResolveMembers(ctx, job.StaffGroupID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, errs.ErrExternalService) {
			return h.failJob(ctx, job, err.Error())
		}
		return err
	}

	staffIDs := make([]kernel.UUID, len(members))
	for i, member := range members {
		staffIDs[i] = member.ID
	}

	plan, err := h.planner.Plan(job.Period(), staffIDs)
	if err != nil {
		return h.failJob(ctx, job, err.Error())
	}

	for _, violation := range h.planner.Rules().CheckPlan(job.Period(), plan) {
		attrs := []any{
			"job_id", job.ID().String(),
			"rule", violation.Rule,
			"date", violation.Date.Format("2006-01-02"),
			"detail", violation.Message,
		}
		if violation.StaffID != nil {
			attrs = append(attrs, "staff_id", violation.StaffID.String())
		}
		h.logger.WarnContext(ctx, "Schedule violates a constraint", attrs...)
	}

	if err = h.completeJob(ctx, job, plan); err != nil {
		h.failJobBestEffort(ctx, job.ID(), err.Error())
		return err
	}
	return nil
}

// claimJob durably transitions the job from Pending to Processing in its
// own transaction. Returns claimed=false when the job is no longer pending.
func (h ProcessScheduleCommandHandler) claimJob(
	ctx context.Context,
	jobID kernel.UUID,
) (*schedulejob.ScheduleJob, bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.ScheduleJobRepository()
	job, err := jobRepo.Get(ctx, jobID)
	if err != nil {
		return nil, false, err
	}

	if job.Status() != schedulejob.Pending {
		h.logger.InfoContext(ctx, "Skipping job that is no longer pending",
			"job_id", job.ID().String(), "status", job.Status().String())
		return nil, false, nil
	}

	if err = job.Process(); err != nil {
		return nil, false, err
	}

	if err = jobRepo.Update(ctx, job); err != nil {
		return nil, false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, false, err
	}

	return job, true, nil
}

// completeJob stores the plan and the Completed status in one transaction.
func (h ProcessScheduleCommandHandler) completeJob(
	ctx context.Context,
	job *schedulejob.ScheduleJob,
	plan []schedulejob.Assignment,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ShiftAssignmentRepository().AddBatch(ctx, job.ID(), plan); err != nil {
		return err
	}

	if err := job.Complete(); err != nil {
		return err
	}

	if err := uow.ScheduleJobRepository().Update(ctx, job); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Schedule job completed",
		"job_id", job.ID().String(), "assignments", len(plan))
	return nil
}

// failJob records the failure reason on the job.
func (h ProcessScheduleCommandHandler) failJob(
	ctx context.Context,
	job *schedulejob.ScheduleJob,
	message string,
) error {
	if err := job.Fail(message); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ScheduleJobRepository().Update(ctx, job); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.WarnContext(ctx, "Schedule job failed",
		"job_id", job.ID().String(), "reason", message)
	return nil
}

// failJobBestEffort marks a claimed job as Failed after a storage error, so
// it does not stay in Processing forever. It reloads the job because the
// in-memory aggregate may already hold the unpersisted Completed status.
// A failure of this write is only logged; the caller still surfaces the
// original storage error.
func (h ProcessScheduleCommandHandler) failJobBestEffort(
	ctx context.Context,
	jobID kernel.UUID,
	message string,
) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		h.logger.ErrorContext(ctx, "Could not record job failure",
			"job_id", jobID.String(), "error", err)
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.ScheduleJobRepository()
	job, err := jobRepo.Get(ctx, jobID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Could not record job failure",
			"job_id", jobID.String(), "error", err)
		return
	}

	if job.Status() != schedulejob.Processing {
		return
	}

	if err = job.Fail(message); err == nil {
		err = jobRepo.Update(ctx, job)
	}
	if err == nil {
		err = uow.Commit(ctx)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "Could not record job failure",
			"job_id", jobID.String(), "error", err)
		return
	}

	h.logger.WarnContext(ctx, "Schedule job failed",
		"job_id", jobID.String(), "reason", message)
}
