package commands_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"scheduling/internal/core/application/usecases/commands"
	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedulejob"
	"scheduling/internal/core/domain/services"
	"scheduling/internal/core/ports"
	"scheduling/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testPlanner(t *testing.T) services.Planner {
	t.Helper()
	rules, err := services.NewRuleSet(1, 2, 1)
	require.NoError(t, err)
	planner, err := services.NewPlanner(rules)
	require.NoError(t, err)
	return planner
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func pendingJob(t *testing.T, jobID, groupID kernel.UUID) *schedulejob.ScheduleJob {
	t.Helper()
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	job, err := schedulejob.RestoreScheduleJob(
		jobID, groupID, validPeriod(t), schedulejob.Pending, "", now, now, nil)
	require.NoError(t, err)
	return job
}

func staffMembers(count int) []ports.StaffMember {
	members := make([]ports.StaffMember, count)
	for i := range members {
		members[i] = ports.StaffMember{ID: kernel.NewUUID(), Name: "Staff Member"}
	}
	return members
}

func TestProcessScheduleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	jobID := kernel.NewUUID()
	groupID := kernel.NewUUID()
	job := pendingJob(t, jobID, groupID)
	cmd, _ := commands.NewProcessScheduleCommand(jobID)

	jobRepo := new(MockJobRepository)
	assignmentRepo := new(MockAssignmentRepository)
	claimUoW := new(MockUoW)
	storeUoW := new(MockUoW)
	resolver := new(MockStaffGroupResolver)

	mock.InOrder(
		claimUoW.On("Begin", ctx).Return(nil).Once(),
		claimUoW.On("ScheduleJobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", mock.Anything, jobID).Return(job, nil).Once(),
		jobRepo.On("Update", mock.Anything, job).Return(nil).Once(),
		claimUoW.On("Commit", ctx).Return(nil).Once(),
		claimUoW.On("Rollback", ctx).Return(nil).Once(),
		resolver.On("ResolveMembers", mock.Anything, groupID).Return(staffMembers(5), nil).Once(),
		storeUoW.On("Begin", ctx).Return(nil).Once(),
		storeUoW.On("ShiftAssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("AddBatch", mock.Anything, jobID, mock.MatchedBy(func(plan []schedulejob.Assignment) bool {
			return len(plan) == 5*kernel.PeriodLengthDays
		})).Return(nil).Once(),
		storeUoW.On("ScheduleJobRepository").Return(jobRepo).Once(),
		jobRepo.On("Update", mock.Anything, job).Return(nil).Once(),
		storeUoW.On("Commit", ctx).Return(nil).Once(),
		storeUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(claimUoW).Once()
	factory.On("Create").Return(storeUoW).Once()

	h := commands.NewProcessScheduleCommandHandler(factory, resolver, testPlanner(t), discardLogger())
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, schedulejob.Completed, job.Status())
	jobRepo.AssertExpectations(t)
	assignmentRepo.AssertExpectations(t)
	claimUoW.AssertExpectations(t)
	storeUoW.AssertExpectations(t)
	resolver.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestProcessScheduleCommandHandler_Handle_SkipsNonPendingJob(t *testing.T) {
	ctx := t.Context()
	jobID := kernel.NewUUID()
	groupID := kernel.NewUUID()
	job := pendingJob(t, jobID, groupID)
	require.NoError(t, job.Process())
	cmd, _ := commands.NewProcessScheduleCommand(jobID)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)
	resolver := new(MockStaffGroupResolver)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ScheduleJobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", mock.Anything, jobID).Return(job, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessScheduleCommandHandler(factory, resolver, testPlanner(t), discardLogger())
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	resolver.AssertNotCalled(t, "ResolveMembers", mock.Anything, mock.Anything)
	jobRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestProcessScheduleCommandHandler_Handle_GroupNotFound(t *testing.T) {
	ctx := t.Context()
	jobID := kernel.NewUUID()
	groupID := kernel.NewUUID()
	job := pendingJob(t, jobID, groupID)
	cmd, _ := commands.NewProcessScheduleCommand(jobID)

	notFound := errs.NewObjectNotFoundError("staffGroupId", groupID.String())

	jobRepo := new(MockJobRepository)
	claimUoW := new(MockUoW)
	failUoW := new(MockUoW)
	resolver := new(MockStaffGroupResolver)

	mock.InOrder(
		claimUoW.On("Begin", ctx).Return(nil).Once(),
		claimUoW.On("ScheduleJobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", mock.Anything, jobID).Return(job, nil).Once(),
		jobRepo.On("Update", mock.Anything, job).Return(nil).Once(),
		claimUoW.On("Commit", ctx).Return(nil).Once(),
		claimUoW.On("Rollback", ctx).Return(nil).Once(),
		resolver.On("ResolveMembers", mock.Anything, groupID).Return(nil, notFound).Once(),
		failUoW.On("Begin", ctx).Return(nil).Once(),
		failUoW.On("ScheduleJobRepository").Return(jobRepo).Once(),
		jobRepo.On("Update", mock.Anything, job).Return(nil).Once(),
		failUoW.On("Commit", ctx).Return(nil).Once(),
		failUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(claimUoW).Once()
	factory.On("Create").Return(failUoW).Once()

	h := commands.NewProcessScheduleCommandHandler(factory, resolver, testPlanner(t), discardLogger())
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, schedulejob.Failed, job.Status())
	assert.Equal(t, notFound.Error(), job.ErrorMessage())
	jobRepo.AssertExpectations(t)
}

func TestProcessScheduleCommandHandler_Handle_ResolverUnavailable(t *testing.T) {
	ctx := t.Context()
	jobID := kernel.NewUUID()
	groupID := kernel.NewUUID()
	job := pendingJob(t, jobID, groupID)
	cmd, _ := commands.NewProcessScheduleCommand(jobID)

	unavailable := errs.NewExternalServiceErrorWithCause("data-service", errors.New("connection refused"))

	jobRepo := new(MockJobRepository)
	claimUoW := new(MockUoW)
	failUoW := new(MockUoW)
	resolver := new(MockStaffGroupResolver)

	claimUoW.On("Begin", ctx).Return(nil).Once()
	claimUoW.On("ScheduleJobRepository").Return(jobRepo).Once()
	claimUoW.On("Commit", ctx).Return(nil).Once()
	claimUoW.On("Rollback", ctx).Return(nil).Once()
	jobRepo.On("Get", mock.Anything, jobID).Return(job, nil).Once()
	jobRepo.On("Update", mock.Anything, job).Return(nil).Twice()
	resolver.On("ResolveMembers", mock.Anything, groupID).Return(nil, unavailable).Once()
	failUoW.On("Begin", ctx).Return(nil).Once()
	failUoW.On("ScheduleJobRepository").Return(jobRepo).Once()
	failUoW.On("Commit", ctx).Return(nil).Once()
	failUoW.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(claimUoW).Once()
	factory.On("Create").Return(failUoW).Once()

	h := commands.NewProcessScheduleCommandHandler(factory, resolver, testPlanner(t), discardLogger())
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, schedulejob.Failed, job.Status())
	assert.Contains(t, job.ErrorMessage(), "data-service")
}

func TestProcessScheduleCommandHandler_Handle_EmptyStaffGroupCompletes(t *testing.T) {
	ctx := t.Context()
	jobID := kernel.NewUUID()
	groupID := kernel.NewUUID()
	job := pendingJob(t, jobID, groupID)
	cmd, _ := commands.NewProcessScheduleCommand(jobID)

	jobRepo := new(MockJobRepository)
	assignmentRepo := new(MockAssignmentRepository)
	claimUoW := new(MockUoW)
	storeUoW := new(MockUoW)
	resolver := new(MockStaffGroupResolver)

	claimUoW.On("Begin", ctx).Return(nil).Once()
	claimUoW.On("ScheduleJobRepository").Return(jobRepo).Once()
	claimUoW.On("Commit", ctx).Return(nil).Once()
	claimUoW.On("Rollback", ctx).Return(nil).Once()
	jobRepo.On("Get", mock.Anything, jobID).Return(job, nil).Once()
	jobRepo.On("Update", mock.Anything, job).Return(nil).Twice()
	// a group without members is a legitimate, empty schedule
	resolver.On("ResolveMembers", mock.Anything, groupID).Return([]ports.StaffMember{}, nil).Once()
	storeUoW.On("Begin", ctx).Return(nil).Once()
	storeUoW.On("ShiftAssignmentRepository").Return(assignmentRepo).Once()
	assignmentRepo.On("AddBatch", mock.Anything, jobID, mock.MatchedBy(func(plan []schedulejob.Assignment) bool {
		return len(plan) == 0
	})).Return(nil).Once()
	storeUoW.On("ScheduleJobRepository").Return(jobRepo).Once()
	storeUoW.On("Commit", ctx).Return(nil).Once()
	storeUoW.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(claimUoW).Once()
	factory.On("Create").Return(storeUoW).Once()

	h := commands.NewProcessScheduleCommandHandler(factory, resolver, testPlanner(t), discardLogger())
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, schedulejob.Completed, job.Status())
}

func TestProcessScheduleCommandHandler_Handle_StoreFailureFailsJob(t *testing.T) {
	ctx := t.Context()
	jobID := kernel.NewUUID()
	groupID := kernel.NewUUID()
	job := pendingJob(t, jobID, groupID)
	cmd, _ := commands.NewProcessScheduleCommand(jobID)

	insertErr := errors.New("insert failed")

	jobRepo := new(MockJobRepository)
	assignmentRepo := new(MockAssignmentRepository)
	claimUoW := new(MockUoW)
	storeUoW := new(MockUoW)
	failUoW := new(MockUoW)
	resolver := new(MockStaffGroupResolver)

	claimUoW.On("Begin", ctx).Return(nil).Once()
	claimUoW.On("ScheduleJobRepository").Return(jobRepo).Once()
	claimUoW.On("Commit", ctx).Return(nil).Once()
	claimUoW.On("Rollback", ctx).Return(nil).Once()
	jobRepo.On("Get", mock.Anything, jobID).Return(job, nil).Twice()
	jobRepo.On("Update", mock.Anything, job).Return(nil).Twice()
	resolver.On("ResolveMembers", mock.Anything, groupID).Return(staffMembers(3), nil).Once()
	storeUoW.On("Begin", ctx).Return(nil).Once()
	storeUoW.On("ShiftAssignmentRepository").Return(assignmentRepo).Once()
	assignmentRepo.On("AddBatch", mock.Anything, jobID, mock.Anything).Return(insertErr).Once()
	storeUoW.On("Rollback", ctx).Return(nil).Once()
	failUoW.On("Begin", ctx).Return(nil).Once()
	failUoW.On("ScheduleJobRepository").Return(jobRepo).Once()
	failUoW.On("Commit", ctx).Return(nil).Once()
	failUoW.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(claimUoW).Once()
	factory.On("Create").Return(storeUoW).Once()
	factory.On("Create").Return(failUoW).Once()

	h := commands.NewProcessScheduleCommandHandler(factory, resolver, testPlanner(t), discardLogger())
	err := h.Handle(ctx, cmd)

	// The storage error surfaces, and the job does not strand in Processing.
	require.ErrorIs(t, err, insertErr)
	assert.Equal(t, schedulejob.Failed, job.Status())
	assert.Equal(t, insertErr.Error(), job.ErrorMessage())
	jobRepo.AssertExpectations(t)
	assignmentRepo.AssertExpectations(t)
	claimUoW.AssertExpectations(t)
	storeUoW.AssertExpectations(t)
	failUoW.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestProcessScheduleCommandHandler_Handle_StoreFailureToleratesFailWriteError(t *testing.T) {
	ctx := t.Context()
	jobID := kernel.NewUUID()
	groupID := kernel.NewUUID()
	job := pendingJob(t, jobID, groupID)
	cmd, _ := commands.NewProcessScheduleCommand(jobID)

	insertErr := errors.New("insert failed")

	jobRepo := new(MockJobRepository)
	failRepo := new(MockJobRepository)
	assignmentRepo := new(MockAssignmentRepository)
	claimUoW := new(MockUoW)
	storeUoW := new(MockUoW)
	failUoW := new(MockUoW)
	resolver := new(MockStaffGroupResolver)

	claimUoW.On("Begin", ctx).Return(nil).Once()
	claimUoW.On("ScheduleJobRepository").Return(jobRepo).Once()
	claimUoW.On("Commit", ctx).Return(nil).Once()
	claimUoW.On("Rollback", ctx).Return(nil).Once()
	jobRepo.On("Get", mock.Anything, jobID).Return(job, nil).Once()
	jobRepo.On("Update", mock.Anything, job).Return(nil).Once()
	resolver.On("ResolveMembers", mock.Anything, groupID).Return(staffMembers(3), nil).Once()
	storeUoW.On("Begin", ctx).Return(nil).Once()
	storeUoW.On("ShiftAssignmentRepository").Return(assignmentRepo).Once()
	assignmentRepo.On("AddBatch", mock.Anything, jobID, mock.Anything).Return(insertErr).Once()
	storeUoW.On("Rollback", ctx).Return(nil).Once()
	failUoW.On("Begin", ctx).Return(nil).Once()
	failUoW.On("ScheduleJobRepository").Return(failRepo).Once()
	failRepo.On("Get", mock.Anything, jobID).Return(job, nil).Once()
	failRepo.On("Update", mock.Anything, job).Return(errors.New("db down")).Once()
	failUoW.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(claimUoW).Once()
	factory.On("Create").Return(storeUoW).Once()
	factory.On("Create").Return(failUoW).Once()

	h := commands.NewProcessScheduleCommandHandler(factory, resolver, testPlanner(t), discardLogger())
	err := h.Handle(ctx, cmd)

	// The original storage error still surfaces even when recording the
	// failure does not stick.
	require.ErrorIs(t, err, insertErr)
	failUoW.AssertNotCalled(t, "Commit", mock.Anything)
	jobRepo.AssertExpectations(t)
	failRepo.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestProcessScheduleCommandHandler_Handle_GetError(t *testing.T) {
	ctx := t.Context()
	jobID := kernel.NewUUID()
	cmd, _ := commands.NewProcessScheduleCommand(jobID)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ScheduleJobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", mock.Anything, jobID).Return(nil, errors.New("connection lost")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	resolver := new(MockStaffGroupResolver)

	h := commands.NewProcessScheduleCommandHandler(factory, resolver, testPlanner(t), discardLogger())
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
}

func TestProcessScheduleCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ProcessScheduleCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	resolver := new(MockStaffGroupResolver)

	h := commands.NewProcessScheduleCommandHandler(factory, resolver, testPlanner(t), discardLogger())
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
}
