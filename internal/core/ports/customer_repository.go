package ports

import (
	"context"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
)

// CustomerRepository reads the local customer snapshot.
type CustomerRepository interface {
	// Get returns errs.ObjectNotFoundError for an unknown customer.
	Get(ctx context.Context, id kernel.CustomerID) (*customer.Customer, error)
}
