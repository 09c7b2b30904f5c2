package commands

import (
	"context"

	"ordering/internal/core/domain/events"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
)

// RejectOrderCommandHandler starts compensation of a paid order: the order
// moves to Cancelling and the payment service is asked for a refund.
type RejectOrderCommandHandler struct {
	uowFactory    SagaUoWFactory
	domainService services.OrderDomainService
}

func NewRejectOrderCommandHandler(
	uowFactory SagaUoWFactory,
	domainService services.OrderDomainService,
) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory:    uowFactory,
		domainService: domainService,
	}
}

func (h *RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applySagaStep(ctx, h.uowFactory, cmd.TrackingID(), func(o *order.Order) (events.OrderEvent, error) {
		cancelled, err := h.domainService.CancelOrderPayment(o, cmd.FailureMessages())
		if err != nil {
			return nil, err
		}
		return cancelled, nil
	})
}
