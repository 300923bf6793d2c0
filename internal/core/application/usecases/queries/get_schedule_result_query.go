package queries

import (
	"errors"
	"time"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedulejob"
	"scheduling/internal/pkg/guard"
)

var (
	ErrGetScheduleResultQueryIsNotConstructed = errors.New(
		"GetScheduleResultQuery must be created via NewGetScheduleResultQuery constructor",
	)

	// ErrScheduleNotCompleted is returned when the requested job exists but
	// has not produced a schedule yet (or never will, having failed).
	ErrScheduleNotCompleted = errors.New("schedule job is not completed")
)

// GetScheduleResultQuery retrieves the generated schedule of a completed
// job, one shift per staff member per day of the period.
//
// Example:
//
//	query, err := NewGetScheduleResultQuery(jobID)
//	if err != nil {
//	    return err
//	}
//
//	result, err := handler.Handle(ctx, query)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // Unknown job ID
//	case errors.Is(err, ErrScheduleNotCompleted):
//	    // Still pending, processing, or failed
//	}
type GetScheduleResultQuery struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetScheduleResultQuery creates a query for the given job.
// Validates that the job ID is valid.
func NewGetScheduleResultQuery(jobID kernel.UUID) (GetScheduleResultQuery, error) {
	if err := jobID.Validate(); err != nil {
		return GetScheduleResultQuery{}, err
	}

	return GetScheduleResultQuery{
		jobID: jobID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetScheduleResultQueryIsNotConstructed if validation fails.
func (q GetScheduleResultQuery) Validate() error {
	return q.guard.Validate(ErrGetScheduleResultQueryIsNotConstructed)
}

// JobID returns the identifier of the job being queried.
func (q GetScheduleResultQuery) JobID() kernel.UUID {
	return q.jobID
}

// ScheduleAssignmentResponse represents one assignment of the generated
// schedule.
type ScheduleAssignmentResponse struct {
	StaffID kernel.UUID
	Date    time.Time
	Shift   schedulejob.Shift
}

// GetScheduleResultQueryResponse represents a completed schedule.
// Assignments are ordered by date first, then by staff identifier.
type GetScheduleResultQueryResponse struct {
	ID           kernel.UUID
	StaffGroupID kernel.UUID
	PeriodStart  time.Time
	PeriodEnd    time.Time
	Assignments  []ScheduleAssignmentResponse
}
