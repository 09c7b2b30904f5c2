package commands

import (
	"context"

	"ordering/internal/core/domain/events"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
)

// CompletePaymentCommandHandler marks the order paid and asks the restaurant
// for approval.
type CompletePaymentCommandHandler struct {
	uowFactory    SagaUoWFactory
	domainService services.OrderDomainService
}

func NewCompletePaymentCommandHandler(
	uowFactory SagaUoWFactory,
	domainService services.OrderDomainService,
) CompletePaymentCommandHandler {
	return CompletePaymentCommandHandler{
		uowFactory:    uowFactory,
		domainService: domainService,
	}
}

// Handle fails with errs.DomainRuleViolationError when the order is not
// Pending, which is the case for a redelivered payment response.
func (h *CompletePaymentCommandHandler) Handle(ctx context.Context, cmd CompletePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applySagaStep(ctx, h.uowFactory, cmd.TrackingID(), func(o *order.Order) (events.OrderEvent, error) {
		paid, err := h.domainService.PayOrder(o)
		if err != nil {
			return nil, err
		}
		return paid, nil
	})
}
