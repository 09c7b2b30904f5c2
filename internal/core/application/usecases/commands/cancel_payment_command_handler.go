package commands

import (
	"context"

	"ordering/internal/core/domain/events"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
)

// CancelPaymentCommandHandler cancels a Pending order whose payment failed, or
// finishes compensation of a Cancelling order once the refund went through.
type CancelPaymentCommandHandler struct {
	uowFactory    SagaUoWFactory
	domainService services.OrderDomainService
}

func NewCancelPaymentCommandHandler(
	uowFactory SagaUoWFactory,
	domainService services.OrderDomainService,
) CancelPaymentCommandHandler {
	return CancelPaymentCommandHandler{
		uowFactory:    uowFactory,
		domainService: domainService,
	}
}

func (h *CancelPaymentCommandHandler) Handle(ctx context.Context, cmd CancelPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applySagaStep(ctx, h.uowFactory, cmd.TrackingID(), func(o *order.Order) (events.OrderEvent, error) {
		return nil, h.domainService.CancelOrder(o, cmd.FailureMessages())
	})
}
