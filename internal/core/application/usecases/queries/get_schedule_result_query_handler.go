package queries

import (
	"context"
	"time"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedulejob"
	"scheduling/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetScheduleResultQueryHandler reads a completed schedule from the
// database, job row first and then the stored assignments.
//
// Example:
//
//	handler := NewGetScheduleResultQueryHandler(db)
//	query, _ := NewGetScheduleResultQuery(jobID)
//
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d assignments for group %s\n", len(result.Assignments), result.StaffGroupID)
type GetScheduleResultQueryHandler struct {
	db *gorm.DB
}

// NewGetScheduleResultQueryHandler creates a handler for schedule result queries.
// Requires a GORM database connection for query execution.
func NewGetScheduleResultQueryHandler(db *gorm.DB) GetScheduleResultQueryHandler {
	return GetScheduleResultQueryHandler{db: db}
}

// Handle executes the result query.
// Returns errs.ObjectNotFoundError when no job with the given ID exists and
// ErrScheduleNotCompleted when the job has not reached Completed status.
// Assignments are sorted by date, then by staff identifier.
func (h GetScheduleResultQueryHandler) Handle(
	ctx context.Context,
	query GetScheduleResultQuery,
) (GetScheduleResultQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetScheduleResultQueryResponse{}, err
	}

	response, err := h.fetchJob(ctx, query.JobID())
	if err != nil {
		return GetScheduleResultQueryResponse{}, err
	}

	assignments, err := h.fetchAssignments(ctx, query.JobID())
	if err != nil {
		return GetScheduleResultQueryResponse{}, err
	}
	response.Assignments = assignments

	return response, nil
}

// fetchJob loads the job row and enforces the Completed status requirement.
func (h GetScheduleResultQueryHandler) fetchJob(
	ctx context.Context,
	jobID kernel.UUID,
) (GetScheduleResultQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			staff_group_id,
			period_begin,
			status
		FROM schedule_jobs
		WHERE id = ?
	`, jobID.Bytes()).Rows()
	if err != nil {
		return GetScheduleResultQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetScheduleResultQueryResponse{}, err
		}
		return GetScheduleResultQueryResponse{}, errs.NewObjectNotFoundError("scheduleJobId", jobID.String())
	}

	var (
		id          uuid.UUID
		groupID     uuid.UUID
		periodBegin time.Time
		status      int
	)

	if err = rows.Scan(&id, &groupID, &periodBegin, &status); err != nil {
		return GetScheduleResultQueryResponse{}, err
	}

	if schedulejob.Status(status) != schedulejob.Completed {
		return GetScheduleResultQueryResponse{}, ErrScheduleNotCompleted
	}

	responseID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetScheduleResultQueryResponse{}, err
	}
	staffGroupID, err := kernel.UUIDFromBytes(groupID[:])
	if err != nil {
		return GetScheduleResultQueryResponse{}, err
	}
	period, err := kernel.NewPeriod(periodBegin.UTC())
	if err != nil {
		return GetScheduleResultQueryResponse{}, err
	}

	return GetScheduleResultQueryResponse{
		ID:           responseID,
		StaffGroupID: staffGroupID,
		PeriodStart:  period.BeginDate(),
		PeriodEnd:    period.EndDate(),
	}, nil
}

// fetchAssignments loads the stored plan in response order.
func (h GetScheduleResultQueryHandler) fetchAssignments(
	ctx context.Context,
	jobID kernel.UUID,
) ([]ScheduleAssignmentResponse, error) {
	assignments := make([]ScheduleAssignmentResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			staff_id,
			date,
			shift
		FROM shift_assignments
		WHERE schedule_job_id = ?
		ORDER BY date, staff_id
	`, jobID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			staffID uuid.UUID
			date    time.Time
			shift   int
		)

		if err = rows.Scan(&staffID, &date, &shift); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(staffID[:])
		if idErr != nil {
			return nil, idErr
		}

		assignments = append(assignments, ScheduleAssignmentResponse{
			StaffID: id,
			Date:    date.UTC(),
			Shift:   schedulejob.Shift(shift),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
