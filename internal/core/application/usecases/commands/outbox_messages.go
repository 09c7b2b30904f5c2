package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"ordering/internal/core/domain/events"
	"ordering/internal/core/domain/model/outbox"
)

// Status values carried by outgoing requests.
const (
	PaymentOrderStatusPending   = "PENDING"
	PaymentOrderStatusCancelled = "CANCELLED"

	RestaurantOrderStatusPaid = "PAID"
)

// PaymentRequest asks the payment service to charge or refund an order.
type PaymentRequest struct {
	OrderID            string    `json:"orderId"`
	TrackingID         string    `json:"trackingId"`
	CustomerID         string    `json:"customerId"`
	Price              string    `json:"price"`
	PaymentOrderStatus string    `json:"paymentOrderStatus"`
	CreatedAt          time.Time `json:"createdAt"`
}

// RestaurantApprovalRequest asks the restaurant to accept a paid order.
type RestaurantApprovalRequest struct {
	OrderID               string                      `json:"orderId"`
	TrackingID            string                      `json:"trackingId"`
	RestaurantID          string                      `json:"restaurantId"`
	RestaurantOrderStatus string                      `json:"restaurantOrderStatus"`
	Products              []RestaurantApprovalProduct `json:"products"`
	Price                 string                      `json:"price"`
	CreatedAt             time.Time                   `json:"createdAt"`
}

type RestaurantApprovalProduct struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// newOutboxMessage turns a saga event into the request it triggers downstream.
func newOutboxMessage(event events.OrderEvent) (*outbox.Message, error) {
	var payload any
	switch e := event.(type) {
	case events.OrderCreatedEvent:
		payload = newPaymentRequest(e, PaymentOrderStatusPending)
	case events.OrderCancelledEvent:
		payload = newPaymentRequest(e, PaymentOrderStatusCancelled)
	case events.OrderPaidEvent:
		payload = newRestaurantApprovalRequest(e)
	default:
		return nil, fmt.Errorf("no outbox mapping for event %T", event)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", event.Kind(), err)
	}

	return outbox.NewMessage(
		string(event.Kind()),
		event.Order().TrackingID().UUID(),
		data,
		event.CreatedAt(),
	)
}

func newPaymentRequest(event events.OrderEvent, status string) PaymentRequest {
	o := event.Order()
	return PaymentRequest{
		OrderID:            o.ID().String(),
		TrackingID:         o.TrackingID().String(),
		CustomerID:         o.CustomerID().String(),
		Price:              o.Price().String(),
		PaymentOrderStatus: status,
		CreatedAt:          event.CreatedAt(),
	}
}

func newRestaurantApprovalRequest(event events.OrderPaidEvent) RestaurantApprovalRequest {
	o := event.Order()

	items := o.Items()
	products := make([]RestaurantApprovalProduct, 0, len(items))
	for _, item := range items {
		products = append(products, RestaurantApprovalProduct{
			ID:       item.Product().ID().String(),
			Quantity: item.Quantity(),
		})
	}

	return RestaurantApprovalRequest{
		OrderID:               o.ID().String(),
		TrackingID:            o.TrackingID().String(),
		RestaurantID:          o.RestaurantID().String(),
		RestaurantOrderStatus: RestaurantOrderStatusPaid,
		Products:              products,
		Price:                 o.Price().String(),
		CreatedAt:             event.CreatedAt(),
	}
}
