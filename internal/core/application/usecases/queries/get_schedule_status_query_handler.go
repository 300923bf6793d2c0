package queries

import (
	"context"
	"database/sql"
	"time"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedulejob"
	"scheduling/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetScheduleStatusQueryHandler reads one job's lifecycle state from the
// database.
//
// Example:
//
//	handler := NewGetScheduleStatusQueryHandler(db)
//	query, _ := NewGetScheduleStatusQuery(jobID)
//
//	status, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("job %s is %s\n", status.ID, status.Status)
type GetScheduleStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetScheduleStatusQueryHandler creates a handler for job status queries.
// Requires a GORM database connection for query execution.
func NewGetScheduleStatusQueryHandler(db *gorm.DB) GetScheduleStatusQueryHandler {
	return GetScheduleStatusQueryHandler{db: db}
}

// Handle executes the status query.
// Returns errs.ObjectNotFoundError when no job with the given ID exists.
func (h GetScheduleStatusQueryHandler) Handle(
	ctx context.Context,
	query GetScheduleStatusQuery,
) (GetScheduleStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetScheduleStatusQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			error_message,
			created_at,
			updated_at,
			completed_at
		FROM schedule_jobs
		WHERE id = ?
	`, query.JobID().Bytes()).Rows()
	if err != nil {
		return GetScheduleStatusQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetScheduleStatusQueryResponse{}, err
		}
		return GetScheduleStatusQueryResponse{},
			errs.NewObjectNotFoundError("scheduleJobId", query.JobID().String())
	}

	var (
		id           uuid.UUID
		status       int
		errorMessage string
		createdAt    time.Time
		updatedAt    time.Time
		completedAt  sql.NullTime
	)

	if err = rows.Scan(&id, &status, &errorMessage, &createdAt, &updatedAt, &completedAt); err != nil {
		return GetScheduleStatusQueryResponse{}, err
	}

	jobID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetScheduleStatusQueryResponse{}, err
	}

	response := GetScheduleStatusQueryResponse{
		ID:           jobID,
		Status:       schedulejob.Status(status),
		ErrorMessage: errorMessage,
		CreatedAt:    createdAt.UTC(),
		UpdatedAt:    updatedAt.UTC(),
	}
	if completedAt.Valid {
		completed := completedAt.Time.UTC()
		response.CompletedAt = &completed
	}

	return response, nil
}
