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

// Payment statuses reported by the payment service.
const (
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusCancelled = "CANCELLED"
	PaymentStatusFailed    = "FAILED"
)

const (
	SignalPaymentCompleted = "payment.completed"
	SignalPaymentCancelled = "payment.cancelled"

	signalUnknown = "unknown"
)

// PaymentResponse is the payment service's answer to a payment request.
type PaymentResponse struct {
	ID              string    `json:"id"`
	OrderID         string    `json:"orderId"`
	TrackingID      string    `json:"trackingId"`
	PaymentID       string    `json:"paymentId"`
	CustomerID      string    `json:"customerId"`
	Price           string    `json:"price"`
	PaymentStatus   string    `json:"paymentStatus"`
	FailureMessages []string  `json:"failureMessages"`
	CreatedAt       time.Time `json:"createdAt"`
}

type CompletePaymentHandler interface {
	Handle(ctx context.Context, cmd commands.CompletePaymentCommand) error
}

type CancelPaymentHandler interface {
	Handle(ctx context.Context, cmd commands.CancelPaymentCommand) error
}

// PaymentResponseHandler maps COMPLETED to CompletePaymentCommand and
// CANCELLED or FAILED to CancelPaymentCommand.
type PaymentResponseHandler struct {
	complete CompletePaymentHandler
	cancel   CancelPaymentHandler
}

func NewPaymentResponseHandler(complete CompletePaymentHandler, cancel CancelPaymentHandler) *PaymentResponseHandler {
	return &PaymentResponseHandler{complete: complete, cancel: cancel}
}

func (h *PaymentResponseHandler) Handle(ctx context.Context, msg kafka.Message) (string, error) {
	var response PaymentResponse
	if err := json.Unmarshal(msg.Value, &response); err != nil {
		return signalUnknown, fmt.Errorf("%w: payment response: %w", ErrMalformedMessage, err)
	}

	trackingID, err := kernel.ParseTrackingID(response.TrackingID)
	if err != nil {
		return signalUnknown, fmt.Errorf("%w: payment response: %w", ErrMalformedMessage, err)
	}

	switch response.PaymentStatus {
	case PaymentStatusCompleted:
		cmd, cmdErr := commands.NewCompletePaymentCommand(trackingID)
		if cmdErr != nil {
			return SignalPaymentCompleted, fmt.Errorf("%w: %w", ErrMalformedMessage, cmdErr)
		}
		return SignalPaymentCompleted, h.complete.Handle(ctx, cmd)

	case PaymentStatusCancelled, PaymentStatusFailed:
		cmd, cmdErr := commands.NewCancelPaymentCommand(trackingID, response.FailureMessages)
		if cmdErr != nil {
			return SignalPaymentCancelled, fmt.Errorf("%w: %w", ErrMalformedMessage, cmdErr)
		}
		return SignalPaymentCancelled, h.cancel.Handle(ctx, cmd)

	default:
		return signalUnknown, fmt.Errorf("%w: unknown payment status %q", ErrMalformedMessage, response.PaymentStatus)
	}
}
