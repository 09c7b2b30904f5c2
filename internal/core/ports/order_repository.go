// Package ports defines the contracts between the ordering core and its
// infrastructure: repositories, the unit of work and the event publisher.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new, initialized order together with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status and failure messages of an existing order.
	// The write succeeds only if the stored version still equals the version the
	// aggregate was loaded with, and it increments that version. A lost race
	// returns errs.VersionIsInvalidError. Items never change after Add.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items by internal identifier.
	// Returns errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetByTrackingID retrieves an order by the identifier exposed to clients
	// and saga participants. Returns errs.ObjectNotFoundError when absent.
	GetByTrackingID(ctx context.Context, trackingID kernel.TrackingID) (*order.Order, error)
}
