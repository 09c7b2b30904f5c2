package ports

import (
	"context"

	"ordering/internal/core/domain/model/outbox"
)

// EventPublisher hands an outbox message to the message broker.
//
// Delivery is at least once: a message may be published again if marking it
// published fails afterwards, so consumers must tolerate duplicates.
type EventPublisher interface {
	Publish(ctx context.Context, message *outbox.Message) error
}
