package schedulejobrepo

import (
	"context"
	"errors"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedulejob"
	"scheduling/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormScheduleJobRepository implements ScheduleJobRepository using GORM.
type GormScheduleJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormScheduleJobRepository creates a new GORM schedule job repository.
func NewGormScheduleJobRepository(db *gorm.DB, tracker aggregateTracker) *GormScheduleJobRepository {
	return &GormScheduleJobRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new schedule job to the database.
func (r *GormScheduleJobRepository) Add(ctx context.Context, aggregate *schedulejob.ScheduleJob) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing schedule job to the database.
func (r *GormScheduleJobRepository) Update(ctx context.Context, aggregate *schedulejob.ScheduleJob) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ScheduleJobDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("scheduleJob", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a schedule job by ID.
func (r *GormScheduleJobRepository) Get(ctx context.Context, id kernel.UUID) (*schedulejob.ScheduleJob, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ScheduleJobDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("scheduleJob", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInPendingStatus retrieves all jobs with Pending status, oldest first.
func (r *GormScheduleJobRepository) GetAllInPendingStatus(ctx context.Context) ([]*schedulejob.ScheduleJob, error) {
	var dtos []ScheduleJobDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "status = ?", schedulejob.Pending).Error
	if err != nil {
		return nil, err
	}

	jobs := make([]*schedulejob.ScheduleJob, 0, len(dtos))
	for _, dto := range dtos {
		job, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}
