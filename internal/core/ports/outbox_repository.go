package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/outbox"
)

// OutboxRepository stores integration events next to the aggregate changes
// that produced them.
type OutboxRepository interface {
	// Add stores a pending message.
	Add(ctx context.Context, message *outbox.Message) error

	// GetPending returns up to limit unpublished messages, oldest first.
	// Inside a transaction the rows stay locked until commit and rows locked by
	// another relay are skipped, so concurrent relays never claim the same message.
	GetPending(ctx context.Context, limit int) ([]*outbox.Message, error)

	// Update persists the publication time of a message.
	Update(ctx context.Context, message *outbox.Message) error

	// DeletePublishedBefore removes messages published before the given moment
	// and returns how many rows were deleted.
	DeletePublishedBefore(ctx context.Context, before time.Time) (int64, error)
}
