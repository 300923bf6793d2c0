// Package queries contains read-only operations over the persisted
// schedule data. Implements the Query side of the CQRS architecture:
// handlers read the database directly and return plain response models,
// bypassing the domain aggregates.
package queries

import (
	"errors"
	"time"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedulejob"
	"scheduling/internal/pkg/guard"
)

var ErrGetScheduleStatusQueryIsNotConstructed = errors.New(
	"GetScheduleStatusQuery must be created via NewGetScheduleStatusQuery constructor",
)

// GetScheduleStatusQuery retrieves the lifecycle state of one schedule job.
// Used by clients to poll an accepted job until it reaches a final status.
//
// Example:
//
//	query, err := NewGetScheduleStatusQuery(jobID)
//	if err != nil {
//	    return err
//	}
//
//	status, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // Unknown job ID
//	}
type GetScheduleStatusQuery struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetScheduleStatusQuery creates a query for the given job.
// Validates that the job ID is valid.
func NewGetScheduleStatusQuery(jobID kernel.UUID) (GetScheduleStatusQuery, error) {
	if err := jobID.Validate(); err != nil {
		return GetScheduleStatusQuery{}, err
	}

	return GetScheduleStatusQuery{
		jobID: jobID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetScheduleStatusQueryIsNotConstructed if validation fails.
func (q GetScheduleStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetScheduleStatusQueryIsNotConstructed)
}

// JobID returns the identifier of the job being queried.
func (q GetScheduleStatusQuery) JobID() kernel.UUID {
	return q.jobID
}

// GetScheduleStatusQueryResponse represents one job's lifecycle state.
type GetScheduleStatusQueryResponse struct {
	ID           kernel.UUID
	Status       schedulejob.Status
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CompletedAt  *time.Time
}
