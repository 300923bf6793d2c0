package ports

import (
	"context"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedulejob"
)

// ShiftAssignmentRepository defines the persistence contract for the
// assignments produced for a schedule job.
type ShiftAssignmentRepository interface {
	// AddBatch persists a complete plan for the given job in one write.
	// The assignments must not already exist for the job.
	AddBatch(ctx context.Context, jobID kernel.UUID, assignments []schedulejob.Assignment) error

	// GetByJob retrieves all assignments stored for the given job,
	// ordered by date first, then by staff member identifier.
	GetByJob(ctx context.Context, jobID kernel.UUID) ([]schedulejob.Assignment, error)
}
