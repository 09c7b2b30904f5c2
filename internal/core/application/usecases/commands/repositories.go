// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"ordering/internal/core/ports"
)

// Unit of Work interfaces give each handler exactly the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// CreateOrderUoW reads the customer and restaurant snapshots and writes the
	// new order with its first outbox message.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		RestaurantRepoFactory
		CustomerRepoFactory
		OutboxRepoFactory
	}

	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// SagaUoW moves an existing order one saga step and records the resulting
	// outbox message, if any, in the same transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetByTrackingID(ctx, trackingID)
	//   // ... apply the domain step
	//   err = uow.OrderRepository().Update(ctx, o)
	//   err = uow.OutboxRepository().Add(ctx, message)
	//
	//   err = uow.Commit(ctx)
	SagaUoW interface {
		TxManager
		OrderRepoFactory
		OutboxRepoFactory
	}

	SagaUoWFactory interface {
		Create() SagaUoW
	}

	// OutboxUoW is used by the relay and the cleanup.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
