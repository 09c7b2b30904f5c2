package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrCompletePaymentCommandIsNotConstructed = errors.New(
	"CompletePaymentCommand must be created via NewCompletePaymentCommand constructor",
)

// CompletePaymentCommand reports that the payment service charged the customer.
type CompletePaymentCommand struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

func NewCompletePaymentCommand(trackingID kernel.TrackingID) (CompletePaymentCommand, error) {
	if err := trackingID.Validate(); err != nil {
		return CompletePaymentCommand{}, err
	}

	return CompletePaymentCommand{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CompletePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCompletePaymentCommandIsNotConstructed)
}

func (c CompletePaymentCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}
