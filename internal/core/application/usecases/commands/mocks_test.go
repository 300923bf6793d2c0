package commands_test

import (
	"context"

	"scheduling/internal/core/application/usecases/commands"
	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedulejob"
	"scheduling/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, job *schedulejob.ScheduleJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, job *schedulejob.ScheduleJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*schedulejob.ScheduleJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schedulejob.ScheduleJob), args.Error(1)
}

func (m *MockJobRepository) GetAllInPendingStatus(ctx context.Context) ([]*schedulejob.ScheduleJob, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*schedulejob.ScheduleJob), args.Error(1)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) AddBatch(
	ctx context.Context,
	jobID kernel.UUID,
	assignments []schedulejob.Assignment,
) error {
	args := m.Called(ctx, jobID, assignments)
	return args.Error(0)
}

func (m *MockAssignmentRepository) GetByJob(
	ctx context.Context,
	jobID kernel.UUID,
) ([]schedulejob.Assignment, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schedulejob.Assignment), args.Error(1)
}

// MockUoW satisfies both commands.JobUoW and commands.UoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ScheduleJobRepository() ports.ScheduleJobRepository {
	args := m.Called()
	return args.Get(0).(ports.ScheduleJobRepository)
}

func (m *MockUoW) ShiftAssignmentRepository() ports.ShiftAssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShiftAssignmentRepository)
}

type MockJobUoWFactory struct{ mock.Mock }

func (m *MockJobUoWFactory) Create() commands.JobUoW {
	args := m.Called()
	return args.Get(0).(commands.JobUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockJobQueue struct{ mock.Mock }

func (m *MockJobQueue) Enqueue(ctx context.Context, jobID kernel.UUID) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}

type MockStaffGroupResolver struct{ mock.Mock }

func (m *MockStaffGroupResolver) ResolveMembers(
	ctx context.Context,
	groupID kernel.UUID,
) ([]ports.StaffMember, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.StaffMember), args.Error(1)
}
