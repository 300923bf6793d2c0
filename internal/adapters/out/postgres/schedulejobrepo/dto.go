// Package schedulejobrepo provides data transfer objects and mapping
// functions for schedule job persistence. This package implements the
// repository pattern for the schedule job aggregate, handling the
// conversion between domain entities and database representations.
package schedulejobrepo

import (
	"time"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedulejob"

	"github.com/google/uuid"
)

// ScheduleJobDTO represents the database structure for persisting schedule
// job aggregates. Timestamps are managed by the aggregate, not by GORM, so
// the automatic tracking is disabled.
type ScheduleJobDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	StaffGroupID uuid.UUID `gorm:"type:uuid;index"`
	PeriodBegin  time.Time
	Status       int `gorm:"index"`
	ErrorMessage string
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false"`
	CompletedAt  *time.Time
}

// TableName specifies the database table name for schedule job entities.
// Overrides GORM's default naming convention to use "schedule_jobs".
func (ScheduleJobDTO) TableName() string {
	return "schedule_jobs"
}

// fromDomain converts a schedule job aggregate to its database representation.
func fromDomain(job *schedulejob.ScheduleJob) ScheduleJobDTO {
	return ScheduleJobDTO{
		ID:           job.ID().Bytes(),
		StaffGroupID: job.StaffGroupID().Bytes(),
		PeriodBegin:  job.Period().BeginDate(),
		Status:       int(job.Status()),
		ErrorMessage: job.ErrorMessage(),
		CreatedAt:    job.CreatedAt(),
		UpdatedAt:    job.UpdatedAt(),
		CompletedAt:  job.CompletedAt(),
	}
}

// toDomain converts a database DTO to a schedule job aggregate.
// Reconstructs the complete aggregate including status, timestamps and any
// failure message using RestoreScheduleJob.
func toDomain(dto ScheduleJobDTO) (*schedulejob.ScheduleJob, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	staffGroupID, err := kernel.UUIDFromBytes(dto.StaffGroupID[:])
	if err != nil {
		return nil, err
	}

	period, err := kernel.NewPeriod(dto.PeriodBegin.UTC())
	if err != nil {
		return nil, err
	}

	var completedAt *time.Time
	if dto.CompletedAt != nil {
		completed := dto.CompletedAt.UTC()
		completedAt = &completed
	}

	return schedulejob.RestoreScheduleJob(
		id,
		staffGroupID,
		period,
		schedulejob.Status(dto.Status),
		dto.ErrorMessage,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
		completedAt,
	)
}
