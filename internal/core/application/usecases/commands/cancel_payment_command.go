package commands

import (
	"errors"
	"slices"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrCancelPaymentCommandIsNotConstructed = errors.New(
	"CancelPaymentCommand must be created via NewCancelPaymentCommand constructor",
)

// CancelPaymentCommand reports that the payment failed or that a refund
// completed. Either way the order ends Cancelled.
type CancelPaymentCommand struct { //nolint:recvcheck //using for validation
	trackingID      kernel.TrackingID
	failureMessages []string

	guard guard.ConstructorGuard
}

func NewCancelPaymentCommand(trackingID kernel.TrackingID, failureMessages []string) (CancelPaymentCommand, error) {
	if err := trackingID.Validate(); err != nil {
		return CancelPaymentCommand{}, err
	}

	return CancelPaymentCommand{
		trackingID:      trackingID,
		failureMessages: slices.Clone(failureMessages),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c CancelPaymentCommand) Validate() error {
	return c.guard.Validate(ErrCancelPaymentCommandIsNotConstructed)
}

func (c CancelPaymentCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

func (c CancelPaymentCommand) FailureMessages() []string {
	return slices.Clone(c.failureMessages)
}
