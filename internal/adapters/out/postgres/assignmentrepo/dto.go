// Package assignmentrepo provides a PostgreSQL implementation of the
// ShiftAssignmentRepository port using GORM.
package assignmentrepo

import (
	"time"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedulejob"

	"github.com/google/uuid"
)

// ShiftAssignmentDTO is the database representation of a shift assignment.
// The composite primary key guarantees a single shift per staff member per
// day within a schedule.
type ShiftAssignmentDTO struct {
	ScheduleJobID uuid.UUID `gorm:"type:uuid;primaryKey"`
	StaffID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Date          time.Time `gorm:"primaryKey"`
	Shift         int
}

// TableName returns the database table name for the ShiftAssignmentDTO.
func (ShiftAssignmentDTO) TableName() string {
	return "shift_assignments"
}

func fromDomain(jobID kernel.UUID, assignment schedulejob.Assignment) ShiftAssignmentDTO {
	return ShiftAssignmentDTO{
		ScheduleJobID: jobID.Bytes(),
		StaffID:       assignment.StaffID().Bytes(),
		Date:          assignment.Date(),
		Shift:         int(assignment.Shift()),
	}
}

func toDomain(dto ShiftAssignmentDTO) (schedulejob.Assignment, error) {
	staffID, err := kernel.UUIDFromBytes(dto.StaffID[:])
	if err != nil {
		return schedulejob.Assignment{}, err
	}

	return schedulejob.NewAssignment(staffID, dto.Date.UTC(), schedulejob.Shift(dto.Shift))
}
