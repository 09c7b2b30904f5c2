package commands

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
)

// CreateOrderResult is what the caller needs to follow the order afterwards.
type CreateOrderResult struct {
	TrackingID kernel.TrackingID
	Status     order.Status
}

// CreateOrderCommandHandler validates a new order against the restaurant
// snapshot and starts the saga.
//
// The order and the payment request it triggers are written in one
// transaction; the outbox relay publishes the request later.
type CreateOrderCommandHandler struct {
	uowFactory    CreateOrderUoWFactory
	domainService services.OrderDomainService
}

func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	domainService services.OrderDomainService,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:    uowFactory,
		domainService: domainService,
	}
}

// Handle fails with errs.ObjectNotFoundError when the customer or restaurant is
// unknown and with errs.DomainRuleViolationError when the order does not match
// the restaurant snapshot. Nothing is persisted on failure.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return CreateOrderResult{}, err
	}

	r, err := uow.RestaurantRepository().GetRestaurantInformation(ctx, cmd.RestaurantID(), cmd.ProductIDs())
	if err != nil {
		return CreateOrderResult{}, err
	}

	o, err := newOrder(cmd)
	if err != nil {
		return CreateOrderResult{}, err
	}

	created, err := h.domainService.ValidateAndInitiateOrder(o, r)
	if err != nil {
		return CreateOrderResult{}, err
	}

	message, err := newOutboxMessage(created)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.OutboxRepository().Add(ctx, message); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		TrackingID: o.TrackingID(),
		Status:     o.Status(),
	}, nil
}

func newOrder(cmd CreateOrderCommand) (*order.Order, error) {
	requested := cmd.Items()
	items := make([]*order.OrderItem, 0, len(requested))
	for _, line := range requested {
		product, err := order.NewProduct(line.ProductID, line.Price)
		if err != nil {
			return nil, err
		}

		item, err := order.NewOrderItem(product, line.Quantity, line.Price, line.SubTotal)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.NewOrder(order.NewOrderParams{
		CustomerID:      cmd.CustomerID(),
		RestaurantID:    cmd.RestaurantID(),
		DeliveryAddress: cmd.DeliveryAddress(),
		Price:           cmd.Price(),
		Items:           items,
	})
}
