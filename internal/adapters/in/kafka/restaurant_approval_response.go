package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"

	"github.com/segmentio/kafka-go"
)

// Approval statuses reported by the restaurant service.
const (
	OrderApprovalStatusApproved = "APPROVED"
	OrderApprovalStatusRejected = "REJECTED"
)

const (
	SignalRestaurantApproved = "restaurant.approved"
	SignalRestaurantRejected = "restaurant.rejected"
)

// RestaurantApprovalResponse is the restaurant's answer to an approval request.
type RestaurantApprovalResponse struct {
	ID                  string    `json:"id"`
	OrderID             string    `json:"orderId"`
	TrackingID          string    `json:"trackingId"`
	RestaurantID        string    `json:"restaurantId"`
	OrderApprovalStatus string    `json:"orderApprovalStatus"`
	FailureMessages     []string  `json:"failureMessages"`
	CreatedAt           time.Time `json:"createdAt"`
}

type ApproveOrderHandler interface {
	Handle(ctx context.Context, cmd commands.ApproveOrderCommand) error
}

type RejectOrderHandler interface {
	Handle(ctx context.Context, cmd commands.RejectOrderCommand) error
}

type RestaurantApprovalResponseHandler struct {
	approve ApproveOrderHandler
	reject  RejectOrderHandler
}

func NewRestaurantApprovalResponseHandler(
	approve ApproveOrderHandler,
	reject RejectOrderHandler,
) *RestaurantApprovalResponseHandler {
	return &RestaurantApprovalResponseHandler{approve: approve, reject: reject}
}

func (h *RestaurantApprovalResponseHandler) Handle(ctx context.Context, msg kafka.Message) (string, error) {
	var response RestaurantApprovalResponse
	if err := json.Unmarshal(msg.Value, &response); err != nil {
		return signalUnknown, fmt.Errorf("%w: restaurant approval response: %w", ErrMalformedMessage, err)
	}

	trackingID, err := kernel.ParseTrackingID(response.TrackingID)
	if err != nil {
		return signalUnknown, fmt.Errorf("%w: restaurant approval response: %w", ErrMalformedMessage, err)
	}

	switch response.OrderApprovalStatus {
	case OrderApprovalStatusApproved:
		cmd, cmdErr := commands.NewApproveOrderCommand(trackingID)
		if cmdErr != nil {
			return SignalRestaurantApproved, fmt.Errorf("%w: %w", ErrMalformedMessage, cmdErr)
		}
		return SignalRestaurantApproved, h.approve.Handle(ctx, cmd)

	case OrderApprovalStatusRejected:
		cmd, cmdErr := commands.NewRejectOrderCommand(trackingID, response.FailureMessages)
		if cmdErr != nil {
			return SignalRestaurantRejected, fmt.Errorf("%w: %w", ErrMalformedMessage, cmdErr)
		}
		return SignalRestaurantRejected, h.reject.Handle(ctx, cmd)

	default:
		return signalUnknown, fmt.Errorf("%w: unknown approval status %q",
			ErrMalformedMessage, response.OrderApprovalStatus)
	}
}
