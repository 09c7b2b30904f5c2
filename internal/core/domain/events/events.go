// Package events defines the facts the order saga emits after a successful
// transition. Each event carries the order and the moment the transition
// happened; publishing them is left to the application layer.
package events

import (
	"time"

	"ordering/internal/core/domain/model/order"
)

// Kind names an event type on the wire and in the outbox.
type Kind string

const (
	KindOrderCreated   Kind = "order.created"
	KindOrderPaid      Kind = "order.paid"
	KindOrderCancelled Kind = "order.cancelled"
)

// OrderEvent is implemented by every saga event.
type OrderEvent interface {
	Kind() Kind
	Order() *order.Order
	CreatedAt() time.Time
}

type orderEvent struct {
	order     *order.Order
	createdAt time.Time
}

func (e orderEvent) Order() *order.Order {
	return e.order
}

func (e orderEvent) CreatedAt() time.Time {
	return e.createdAt
}

// OrderCreatedEvent is emitted once an order is validated and initialized. It
// starts the saga by requesting payment.
type OrderCreatedEvent struct {
	orderEvent
}

func NewOrderCreatedEvent(o *order.Order, createdAt time.Time) OrderCreatedEvent {
	return OrderCreatedEvent{orderEvent{order: o, createdAt: createdAt}}
}

func (OrderCreatedEvent) Kind() Kind {
	return KindOrderCreated
}

// OrderPaidEvent is emitted when payment completed. It requests restaurant approval.
type OrderPaidEvent struct {
	orderEvent
}

func NewOrderPaidEvent(o *order.Order, createdAt time.Time) OrderPaidEvent {
	return OrderPaidEvent{orderEvent{order: o, createdAt: createdAt}}
}

func (OrderPaidEvent) Kind() Kind {
	return KindOrderPaid
}

// OrderCancelledEvent is emitted when a paid order starts cancelling. It asks
// the payment service to refund.
type OrderCancelledEvent struct {
	orderEvent
}

func NewOrderCancelledEvent(o *order.Order, createdAt time.Time) OrderCancelledEvent {
	return OrderCancelledEvent{orderEvent{order: o, createdAt: createdAt}}
}

func (OrderCancelledEvent) Kind() Kind {
	return KindOrderCancelled
}

var (
	_ OrderEvent = OrderCreatedEvent{}
	_ OrderEvent = OrderPaidEvent{}
	_ OrderEvent = OrderCancelledEvent{}
)
