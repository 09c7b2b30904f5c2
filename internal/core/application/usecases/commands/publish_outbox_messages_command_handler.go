package commands

import (
	"context"
	"fmt"
	"time"

	"ordering/internal/core/ports"
)

// PublishOutboxMessagesCommandHandler relays pending outbox messages to the broker.
//
// The batch is claimed with row locks, so several relay instances can run side
// by side. Messages are published oldest first and the batch stops at the first
// failure; messages published before it are still marked and committed.
type PublishOutboxMessagesCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	now        func() time.Time
}

func NewPublishOutboxMessagesCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
) PublishOutboxMessagesCommandHandler {
	return PublishOutboxMessagesCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle returns how many messages were published and committed.
func (h *PublishOutboxMessagesCommandHandler) Handle(
	ctx context.Context,
	cmd PublishOutboxMessagesCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outboxRepo := uow.OutboxRepository()
	pending, err := outboxRepo.GetPending(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	published := 0
	var publishErr error
	for _, message := range pending {
		if publishErr = h.publisher.Publish(ctx, message); publishErr != nil {
			publishErr = fmt.Errorf("failed to publish outbox message %s: %w", message.ID(), publishErr)
			break
		}

		if err = message.MarkPublished(h.now()); err != nil {
			return 0, err
		}

		if err = outboxRepo.Update(ctx, message); err != nil {
			return 0, err
		}
		published++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return published, publishErr
}
