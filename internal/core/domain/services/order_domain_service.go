package services

import (
	"fmt"
	"time"

	"ordering/internal/core/domain/events"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/pkg/errs"
)

// OrderDomainService drives an order through the saga. It is stateless apart
// from its clock and safe for concurrent use on different orders.
type OrderDomainService struct {
	now func() time.Time
}

func NewOrderDomainService() OrderDomainService {
	return OrderDomainService{now: utcNow}
}

// NewOrderDomainServiceWithClock is used where event timestamps must be predictable.
func NewOrderDomainServiceWithClock(now func() time.Time) OrderDomainService {
	return OrderDomainService{now: now}
}

// ValidateAndInitiateOrder checks the order against the restaurant snapshot,
// validates its pricing invariants and initializes it.
//
// It fails with a domain rule violation when the restaurant is inactive or is
// not the one the order was placed with, or when an ordered product is missing
// from the menu, unavailable, or priced differently than quoted. Nothing is
// changed on failure.
func (s OrderDomainService) ValidateAndInitiateOrder(
	o *order.Order,
	r *restaurant.Restaurant,
) (events.OrderCreatedEvent, error) {
	if err := o.Validate(); err != nil {
		return events.OrderCreatedEvent{}, err
	}
	if err := r.Validate(); err != nil {
		return events.OrderCreatedEvent{}, err
	}

	if err := validateRestaurant(o, r); err != nil {
		return events.OrderCreatedEvent{}, err
	}

	if err := validateProducts(o, r); err != nil {
		return events.OrderCreatedEvent{}, err
	}

	if err := o.ValidateOrder(); err != nil {
		return events.OrderCreatedEvent{}, err
	}

	if err := o.InitializeOrder(); err != nil {
		return events.OrderCreatedEvent{}, err
	}

	return events.NewOrderCreatedEvent(o, s.clock()), nil
}

// PayOrder marks the order paid after the payment service confirmed payment.
func (s OrderDomainService) PayOrder(o *order.Order) (events.OrderPaidEvent, error) {
	if err := o.Validate(); err != nil {
		return events.OrderPaidEvent{}, err
	}

	if err := o.Pay(); err != nil {
		return events.OrderPaidEvent{}, err
	}

	return events.NewOrderPaidEvent(o, s.clock()), nil
}

// ApproveOrder completes the saga after the restaurant accepted the order.
func (s OrderDomainService) ApproveOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	return o.Approve()
}

// CancelOrderPayment starts compensation of a paid order that the restaurant
// rejected. The returned event asks the payment service for a refund.
func (s OrderDomainService) CancelOrderPayment(
	o *order.Order,
	failureMessages []string,
) (events.OrderCancelledEvent, error) {
	if err := o.Validate(); err != nil {
		return events.OrderCancelledEvent{}, err
	}

	if err := o.InitCancel(failureMessages); err != nil {
		return events.OrderCancelledEvent{}, err
	}

	return events.NewOrderCancelledEvent(o, s.clock()), nil
}

// CancelOrder moves the order to its terminal Cancelled state.
func (s OrderDomainService) CancelOrder(o *order.Order, failureMessages []string) error {
	if err := o.Validate(); err != nil {
		return err
	}

	return o.Cancel(failureMessages)
}

func (s OrderDomainService) clock() time.Time {
	if s.now == nil {
		return utcNow()
	}
	return s.now()
}

func validateRestaurant(o *order.Order, r *restaurant.Restaurant) error {
	if !r.ID().IsEqual(o.RestaurantID()) {
		return errs.NewDomainRuleViolationError(fmt.Sprintf(
			"restaurant %s does not match order restaurant %s", r.ID(), o.RestaurantID(),
		))
	}

	if !r.IsActive() {
		return errs.NewDomainRuleViolationError(fmt.Sprintf(
			"restaurant %s is currently not active", r.ID(),
		))
	}

	return nil
}

func validateProducts(o *order.Order, r *restaurant.Restaurant) error {
	for _, item := range o.Items() {
		quoted := item.Product()

		product, ok := r.FindProduct(quoted.ID())
		if !ok {
			return errs.NewDomainRuleViolationError(fmt.Sprintf(
				"product %s is not offered by restaurant %s", quoted.ID(), r.ID(),
			))
		}

		if !product.IsAvailable() {
			return errs.NewDomainRuleViolationError(fmt.Sprintf(
				"product %s is not available", quoted.ID(),
			))
		}

		if !product.Price().IsEqual(quoted.Price()) {
			return errs.NewDomainRuleViolationError(fmt.Sprintf(
				"product %s price %s does not match quoted price %s",
				quoted.ID(), product.Price(), quoted.Price(),
			))
		}
	}

	return nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
