package commands

import (
	"context"

	"ordering/internal/core/domain/events"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// sagaStep applies one domain transition. It returns the event to publish, or
// nil when the transition does not notify anyone.
type sagaStep func(o *order.Order) (events.OrderEvent, error)

// applySagaStep loads the order by tracking id, applies step and writes the
// order together with the outbox message of the returned event.
func applySagaStep(
	ctx context.Context,
	uowFactory SagaUoWFactory,
	trackingID kernel.TrackingID,
	step sagaStep,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return err
	}

	event, err := step(o)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if event != nil {
		message, msgErr := newOutboxMessage(event)
		if msgErr != nil {
			return msgErr
		}

		if err = uow.OutboxRepository().Add(ctx, message); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
