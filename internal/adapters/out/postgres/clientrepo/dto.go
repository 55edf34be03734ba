// Package clientrepo provides data transfer objects and mapping functions
// for client roster persistence.
package clientrepo

import (
	"dispatchops/internal/core/domain/model/client"
	"dispatchops/internal/core/domain/model/kernel"
)

// ClientDTO represents the database structure for persisting client aggregates.
type ClientDTO struct {
	ID          string `gorm:"type:varchar(64);primaryKey"`
	Name        string
	Email       string
	Phone       string
	Category    string `gorm:"type:varchar(8)"`
	TotalOrders int
}

// TableName specifies the database table name for client entities.
func (ClientDTO) TableName() string {
	return "clients"
}

// fromDomain converts a client domain aggregate to its database representation.
func fromDomain(aggregate *client.Client) ClientDTO {
	return ClientDTO{
		ID:          aggregate.ID().String(),
		Name:        aggregate.Name(),
		Email:       aggregate.Email(),
		Phone:       aggregate.Phone(),
		Category:    aggregate.Category().String(),
		TotalOrders: aggregate.TotalOrders(),
	}
}

// toDomain converts a database DTO to a client domain aggregate.
func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.ClientIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	category, err := client.CategoryFromString(dto.Category)
	if err != nil {
		return nil, err
	}

	return client.RestoreClient(id, dto.Name, dto.Email, dto.Phone, category, dto.TotalOrders)
}
