package assignmentrepo

import (
	"context"
	"errors"
	"fmt"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedulejob"
	"scheduling/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// GormShiftAssignmentRepository implements ShiftAssignmentRepository using GORM.
type GormShiftAssignmentRepository struct {
	db *gorm.DB
}

// NewGormShiftAssignmentRepository creates a new GORM shift assignment repository.
func NewGormShiftAssignmentRepository(db *gorm.DB) *GormShiftAssignmentRepository {
	return &GormShiftAssignmentRepository{
		db: db,
	}
}

// AddBatch saves all assignments of a schedule in a single insert.
func (r *GormShiftAssignmentRepository) AddBatch(
	ctx context.Context, jobID kernel.UUID, assignments []schedulejob.Assignment,
) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	if len(assignments) == 0 {
		return nil
	}

	dtos := make([]ShiftAssignmentDTO, 0, len(assignments))
	for _, assignment := range assignments {
		if err := assignment.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(jobID, assignment))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("assignments for schedule job %s already exist", jobID), err)
		}
		return err
	}

	return nil
}

// GetByJob retrieves all assignments of a schedule job ordered by date,
// then staff ID.
func (r *GormShiftAssignmentRepository) GetByJob(
	ctx context.Context, jobID kernel.UUID,
) ([]schedulejob.Assignment, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ShiftAssignmentDTO
	err := r.db.WithContext(ctx).
		Order("date, staff_id").
		Find(&dtos, "schedule_job_id = ?", jobID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	assignments := make([]schedulejob.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		assignment, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	return assignments, nil
}
