package commands

import (
	"context"
)

// CleanupOutboxCommandHandler deletes published outbox messages. Pending
// messages are never touched, whatever their age.
type CleanupOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
}

func NewCleanupOutboxCommandHandler(uowFactory OutboxUoWFactory) CleanupOutboxCommandHandler {
	return CleanupOutboxCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of deleted messages.
func (h *CleanupOutboxCommandHandler) Handle(ctx context.Context, cmd CleanupOutboxCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	return uow.OutboxRepository().DeletePublishedBefore(ctx, cmd.PublishedBefore())
}
