// Package executorrepo provides data transfer objects and mapping
// functions for executor roster persistence.
package executorrepo

import (
	"dispatchops/internal/core/domain/model/executor"
	"dispatchops/internal/core/domain/model/kernel"
)

// ExecutorDTO represents the database structure for persisting executor aggregates.
type ExecutorDTO struct {
	ID           string `gorm:"type:varchar(64);primaryKey"`
	Name         string
	Phone        string
	Vehicle      string
	Availability string `gorm:"type:varchar(16)"`
}

// TableName specifies the database table name for executor entities.
func (ExecutorDTO) TableName() string {
	return "executors"
}

// fromDomain converts an executor domain aggregate to its database representation.
func fromDomain(aggregate *executor.Executor) ExecutorDTO {
	return ExecutorDTO{
		ID:           aggregate.ID().String(),
		Name:         aggregate.Name(),
		Phone:        aggregate.Phone(),
		Vehicle:      aggregate.Vehicle(),
		Availability: aggregate.Availability().String(),
	}
}

// toDomain converts a database DTO to an executor domain aggregate.
func toDomain(dto ExecutorDTO) (*executor.Executor, error) {
	id, err := kernel.ExecutorIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	availability, err := executor.AvailabilityFromString(dto.Availability)
	if err != nil {
		return nil, err
	}

	return executor.RestoreExecutor(id, dto.Name, dto.Phone, dto.Vehicle, availability)
}
