// Package customerrepo reads the customer snapshot used to check that an
// order is placed by a known customer.
package customerrepo

import (
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	FirstName string    `gorm:"type:varchar(255)"`
	LastName  string    `gorm:"type:varchar(255)"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromRaw(dto.ID)
	if err != nil {
		return nil, err
	}

	return customer.NewCustomer(kernel.CustomerIDFrom(id), dto.Username, dto.FirstName, dto.LastName)
}
