package commands

import (
	"context"

	"ordering/internal/core/domain/events"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
)

// ApproveOrderCommandHandler completes the saga for an accepted order.
type ApproveOrderCommandHandler struct {
	uowFactory    SagaUoWFactory
	domainService services.OrderDomainService
}

func NewApproveOrderCommandHandler(
	uowFactory SagaUoWFactory,
	domainService services.OrderDomainService,
) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory:    uowFactory,
		domainService: domainService,
	}
}

func (h *ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applySagaStep(ctx, h.uowFactory, cmd.TrackingID(), func(o *order.Order) (events.OrderEvent, error) {
		return nil, h.domainService.ApproveOrder(o)
	})
}
