package ports

import (
	"context"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedulejob"
)

// ScheduleJobRepository defines the persistence contract for schedule job
// aggregates. Provides methods for storing, retrieving, and querying jobs
// by lifecycle status.
type ScheduleJobRepository interface {
	// Add persists a new schedule job aggregate to storage.
	// The job must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *schedulejob.ScheduleJob) error

	// Update persists changes to an existing schedule job aggregate.
	// The job must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *schedulejob.ScheduleJob) error

	// Get retrieves a schedule job aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError if no such job exists.
	Get(ctx context.Context, id kernel.UUID) (*schedulejob.ScheduleJob, error)

	// GetAllInPendingStatus retrieves all jobs still waiting for a worker.
	// Used by the sweeper to re-enqueue jobs lost on restart.
	GetAllInPendingStatus(ctx context.Context) ([]*schedulejob.ScheduleJob, error)
}
