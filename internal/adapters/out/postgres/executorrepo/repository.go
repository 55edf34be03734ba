package executorrepo

import (
	"context"
	"errors"

	"dispatchops/internal/core/domain/model/executor"
	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormExecutorRepository implements ExecutorRepository using GORM.
type GormExecutorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormExecutorRepository creates a new GORM executor repository.
func NewGormExecutorRepository(db *gorm.DB, tracker aggregateTracker) *GormExecutorRepository {
	return &GormExecutorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new executor to the database.
func (r *GormExecutorRepository) Add(ctx context.Context, aggregate *executor.Executor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(dto.ID, aggregate)
	return nil
}

// Update saves an existing executor to the database.
func (r *GormExecutorRepository) Update(ctx context.Context, aggregate *executor.Executor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ExecutorDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("executorID", dto.ID)
	}

	r.tracker.TrackAggregate(dto.ID, aggregate)
	return nil
}

// Get retrieves an executor by ID.
func (r *GormExecutorRepository) Get(ctx context.Context, id kernel.ExecutorID) (*executor.Executor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ExecutorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("executorID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves the full executor roster.
func (r *GormExecutorRepository) GetAll(ctx context.Context) ([]*executor.Executor, error) {
	var dtos []ExecutorDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	executors := make([]*executor.Executor, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		executors = append(executors, e)
	}
	return executors, nil
}
